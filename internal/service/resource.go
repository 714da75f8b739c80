package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/catalog"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/events"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/repository"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrUnknownOperation  = errors.New("unknown operation")
)

// ValidationError carries per-field problems from entity validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Resource implements the uniform operations every managed resource exposes:
// paginated filtered lists, CRUD, declared status transitions, and bulk
// operations. Domain differences live entirely in the catalog descriptor.
type Resource[T domain.Entity] struct {
	res       catalog.Resource[T]
	repo      repository.Repository[T]
	publisher events.Publisher
	log       *logger.Logger
}

// NewResource creates a resource service from its descriptor and storage.
func NewResource[T domain.Entity](res catalog.Resource[T], repo repository.Repository[T], publisher events.Publisher, log *logger.Logger) *Resource[T] {
	return &Resource[T]{
		res:       res,
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Descriptor returns the catalog entry this service was built from.
func (s *Resource[T]) Descriptor() catalog.Resource[T] {
	return s.res
}

// List retrieves records matching the query.
func (s *Resource[T]) List(ctx context.Context, query dto.ListQuery) ([]T, int64, error) {
	query.SetDefaults()
	return s.repo.List(ctx, query)
}

// Get retrieves one record by ID.
func (s *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if isNil(record) {
		return zero, ErrNotFound
	}
	return record, nil
}

// Create validates and stores a new record, assigning identity, timestamps,
// and the default status when none was supplied.
func (s *Resource[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T

	if entity.EntityStatus() == "" {
		entity.SetEntityStatus(s.res.DefaultStatus)
	}
	if problems := entity.Validate(); len(problems) > 0 {
		return zero, &ValidationError{Fields: problems}
	}

	entity.SetEntityID(uuid.New().String())
	entity.Stamp(time.Now().UTC())

	if err := s.repo.Create(ctx, entity); err != nil {
		return zero, err
	}

	s.log.InfoContext(ctx, "record created",
		zap.String("resource", s.res.Name),
		zap.String("id", entity.EntityID()))
	s.publisher.Publish(ctx, events.Notification{
		Resource: s.res.Name,
		EntityID: entity.EntityID(),
		Action:   events.ActionCreated,
		Status:   string(entity.EntityStatus()),
	})

	return entity, nil
}

// Update fetches the record, lets apply mutate it (typically a JSON merge of
// the request body), re-validates, and stores the result. Identity, creation
// time, and status are preserved across apply; status changes go through
// Transition.
func (s *Resource[T]) Update(ctx context.Context, id string, apply func(T) error) (T, error) {
	var zero T

	record, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	createdAt := record.CreatedTime()
	status := record.EntityStatus()

	if err := apply(record); err != nil {
		return zero, err
	}

	record.SetEntityID(id)
	record.SetEntityStatus(status)
	record.Stamp(createdAt)
	record.Touch(time.Now().UTC())

	if problems := record.Validate(); len(problems) > 0 {
		return zero, &ValidationError{Fields: problems}
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return zero, err
	}

	s.publisher.Publish(ctx, events.Notification{
		Resource: s.res.Name,
		EntityID: id,
		Action:   events.ActionUpdated,
		Status:   string(record.EntityStatus()),
	})

	return record, nil
}

// Delete removes a record.
func (s *Resource[T]) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "record deleted",
		zap.String("resource", s.res.Name),
		zap.String("id", id))
	s.publisher.Publish(ctx, events.Notification{
		Resource: s.res.Name,
		EntityID: id,
		Action:   events.ActionDeleted,
	})
	return nil
}

// Transition applies a declared status-change action to one record.
func (s *Resource[T]) Transition(ctx context.Context, id, action string) (T, error) {
	var zero T

	rule, ok := s.res.Transitions[action]
	if !ok {
		return zero, ErrUnknownOperation
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	if !rule.AllowedFrom(record.EntityStatus()) {
		return zero, fmt.Errorf("%w: cannot %s a %s %s",
			ErrInvalidTransition, action, record.EntityStatus(), s.res.Name)
	}

	record.SetEntityStatus(rule.To)
	record.Touch(time.Now().UTC())

	if err := s.repo.Update(ctx, record); err != nil {
		return zero, err
	}

	s.log.InfoContext(ctx, "record transitioned",
		zap.String("resource", s.res.Name),
		zap.String("id", id),
		zap.String("action", action),
		zap.String("status", string(rule.To)))
	s.publisher.Publish(ctx, events.Notification{
		Resource: s.res.Name,
		EntityID: id,
		Action:   events.ActionStatusChanged,
		Status:   string(rule.To),
	})

	return record, nil
}

// Bulk applies one operation to many records. The operation is "delete" or
// any declared transition action; records are processed independently and
// per-record failures are reported, not short-circuited.
func (s *Resource[T]) Bulk(ctx context.Context, operation string, ids []string) (*dto.BulkResult, error) {
	if operation != "delete" {
		if _, ok := s.res.Transitions[operation]; !ok {
			return nil, ErrUnknownOperation
		}
	}

	result := &dto.BulkResult{
		Operation: operation,
		Requested: len(ids),
		Failures:  make(map[string]string),
	}

	for _, id := range ids {
		var err error
		if operation == "delete" {
			err = s.Delete(ctx, id)
		} else {
			_, err = s.Transition(ctx, id, operation)
		}

		if err != nil {
			result.Failed++
			result.Failures[id] = err.Error()
			continue
		}
		result.Succeeded++
	}

	if result.Failed == 0 {
		result.Failures = nil
	}

	s.log.InfoContext(ctx, "bulk operation finished",
		zap.String("resource", s.res.Name),
		zap.String("operation", operation),
		zap.Int("requested", result.Requested),
		zap.Int("failed", result.Failed))

	return result, nil
}

// isNil reports whether a pointer-typed entity is nil. Entity values are
// always pointers, so a typed-nil check through the interface is reliable.
func isNil[T domain.Entity](entity T) bool {
	var zero T
	return any(entity) == any(zero)
}
