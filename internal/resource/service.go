package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/core/events"
)

type Service[M Model, C CreateInput[M], U UpdateInput[M]] struct {
	desc      Descriptor
	repo      Repository[M]
	publisher Publisher
	logger    *slog.Logger
}

func NewService[M Model, C CreateInput[M], U UpdateInput[M]](desc Descriptor, repo Repository[M], publisher Publisher, logger *slog.Logger) *Service[M, C, U] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service[M, C, U]{
		desc:      desc,
		repo:      repo,
		publisher: publisher,
		logger:    logger.With("resource", desc.Event),
	}
}

func (s *Service[M, C, U]) Descriptor() Descriptor {
	return s.desc
}

func (s *Service[M, C, U]) Create(ctx context.Context, in C) (*M, error) {
	if err := in.Validate(); err != nil {
		s.logger.Debug("create validation failed", "error", err)
		return nil, err
	}

	m := in.ToModel()
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, s.storeError(ctx, "create", 0, err)
	}

	id := (*m).EntityID()
	s.logger.Info("created", "id", id)
	s.publish(ctx, events.ActionCreated, id)
	return m, nil
}

func (s *Service[M, C, U]) Get(ctx context.Context, id int64) (*M, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, "get", id, err)
	}
	return m, nil
}

func (s *Service[M, C, U]) List(ctx context.Context, page Page) ([]*M, error) {
	if page.Limit == 0 {
		return []*M{}, nil
	}
	items, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, s.storeError(ctx, "list", 0, err)
	}
	if items == nil {
		items = []*M{}
	}
	return items, nil
}

func (s *Service[M, C, U]) Update(ctx context.Context, id int64, in U) (*M, error) {
	if err := in.Validate(); err != nil {
		s.logger.Debug("update validation failed", "id", id, "error", err)
		return nil, err
	}

	m, err := s.repo.Update(ctx, id, in.ApplyTo)
	if err != nil {
		return nil, s.storeError(ctx, "update", id, err)
	}

	s.logger.Info("updated", "id", id)
	s.publish(ctx, events.ActionUpdated, id)
	return m, nil
}

func (s *Service[M, C, U]) Delete(ctx context.Context, id int64) (*M, error) {
	m, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, "delete", id, err)
	}

	s.logger.Info("deleted", "id", id)
	s.publish(ctx, events.ActionDeleted, id)
	return m, nil
}

func (s *Service[M, C, U]) publish(ctx context.Context, action string, id int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewResourceChangedEvent(s.desc.Event, action, id)); err != nil {
		s.logger.Warn("failed to publish change event", "action", action, "id", id, "error", err)
	}
}

// storeError maps repository failures onto the API error taxonomy.
func (s *Service[M, C, U]) storeError(ctx context.Context, op string, id int64, err error) error {
	if appErr, ok := internal.IsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return internal.NewNotFoundError(s.desc.NotFoundMessage(), internal.ErrCodeResourceNotFound)
	case errors.Is(err, ErrDuplicate):
		s.logger.InfoContext(ctx, "unique constraint rejected write", "op", op, "id", id, "error", err)
		return internal.NewConflictError(
			fmt.Sprintf("%s conflicts with an existing record", s.desc.Name),
			internal.ErrCodeDuplicateResource,
		).WithCause(err)
	case errors.Is(err, ErrReferenceViolation):
		s.logger.InfoContext(ctx, "foreign key rejected write", "op", op, "id", id, "error", err)
		message := fmt.Sprintf("%s references a record that does not exist", s.desc.Name)
		if op == "delete" {
			message = fmt.Sprintf("%s is still referenced by other records", s.desc.Name)
		}
		return internal.NewConflictError(message, internal.ErrCodeReferenceViolation).WithCause(err)
	}

	s.logger.ErrorContext(ctx, "store operation failed", "op", op, "id", id, "error", err)
	return internal.NewInternalError(fmt.Sprintf("failed to %s %s", op, s.desc.Name), err)
}
