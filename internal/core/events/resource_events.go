package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ResourceChangedEvent reports a committed create, update or delete.
type ResourceChangedEvent struct {
	BaseEvent
	Resource   string `json:"resource"`
	Action     string `json:"action"`
	ResourceID int64  `json:"resource_id"`
}

// EventType returns "<resource>.<action>", e.g. "employee.created".
func EventType(resource, action string) string {
	return fmt.Sprintf("%s.%s", resource, action)
}

func NewResourceChangedEvent(resource, action string, id int64) *ResourceChangedEvent {
	return &ResourceChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventType(resource, action),
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"resource":    resource,
				"action":      action,
				"resource_id": id,
			},
		},
		Resource:   resource,
		Action:     action,
		ResourceID: id,
	}
}

// AuditLogger records every resource change on the given logger.
func AuditLogger(logger *slog.Logger) Handler {
	return func(ctx context.Context, event Event) error {
		logger.InfoContext(ctx, "audit",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}
}
