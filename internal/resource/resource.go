// Package resource implements the create/get/list/update/delete flow shared
// by every HRMS collection. Each entity package supplies its row model,
// request shapes and response shape; this package supplies validation
// ordering, store error mapping, change events and the HTTP surface.
package resource

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/core/events"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("unique constraint violated")
	ErrReferenceViolation = errors.New("foreign key constraint violated")
)

// Model is a stored row.
type Model interface {
	TableName() string
	EntityID() int64
}

// CreateInput is a decoded create payload.
type CreateInput[M any] interface {
	Validate() error
	ToModel() *M
}

// UpdateInput is a decoded partial update. ApplyTo copies only the fields
// present in the payload and may reject the change by returning an error.
type UpdateInput[M any] interface {
	Validate() error
	ApplyTo(m *M) error
}

// Repository stores one entity type. GetByID, Update and Delete return
// ErrNotFound for unknown ids; constraint failures come back as
// ErrDuplicate or ErrReferenceViolation.
type Repository[M any] interface {
	Create(ctx context.Context, m *M) error
	GetByID(ctx context.Context, id int64) (*M, error)
	List(ctx context.Context, page Page) ([]*M, error)
	Update(ctx context.Context, id int64, apply func(*M) error) (*M, error)
	Delete(ctx context.Context, id int64) (*M, error)
}

type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Descriptor names a collection for messages, routes and events.
type Descriptor struct {
	Name   string
	Plural string
	Path   string
	Event  string
}

func (d Descriptor) NotFoundMessage() string {
	return fmt.Sprintf("%s not found", d.Name)
}

// Page is an offset window over a collection ordered by id.
type Page struct {
	Offset int
	Limit  int
}

// ParsePage reads skip and limit from the query string.
func ParsePage(q url.Values) (Page, error) {
	page := Page{Offset: 0, Limit: DefaultLimit}
	var errs []internal.ValidationError

	if raw := q.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, internal.ValidationError{
				Field:   "skip",
				Message: "skip must be a non-negative integer",
				Code:    string(internal.ErrCodeInvalidPage),
			})
		} else {
			page.Offset = n
		}
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, internal.ValidationError{
				Field:   "limit",
				Message: "limit must be a non-negative integer",
				Code:    string(internal.ErrCodeInvalidPage),
			})
		} else {
			page.Limit = min(n, MaxLimit)
		}
	}

	if len(errs) > 0 {
		return page, internal.NewValidationErrors(errs)
	}
	return page, nil
}
