package client

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/catalog"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/events"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/repository"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/service"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/response"
)

// MockFacade runs the real service code against an in-memory repository, so
// demo mode and tests exercise the same validation, transition, and bulk
// semantics as the live API.
type MockFacade[T domain.Entity] struct {
	svc *service.Resource[T]
}

// NewMock creates an empty in-memory facade for one resource.
func NewMock[T domain.Entity](res catalog.Resource[T], log *logger.Logger) *MockFacade[T] {
	repo := repository.NewMemory(res.New)
	return &MockFacade[T]{
		svc: service.NewResource(res, repo, events.NewNoopPublisher(), log),
	}
}

// mockError normalizes service errors into the same *APIError values the
// HTTP facade produces from envelope errors.
func mockError(err error) error {
	if err == nil {
		return nil
	}

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return &APIError{Code: response.ErrCodeValidationFailed, Message: "Validation failed", Details: verr.Fields}
	case errors.Is(err, service.ErrNotFound):
		return &APIError{Code: response.ErrCodeNotFound, Message: "Resource not found"}
	case errors.Is(err, service.ErrInvalidTransition):
		return &APIError{Code: response.ErrCodeInvalidTransition, Message: err.Error()}
	case errors.Is(err, service.ErrUnknownOperation):
		return &APIError{Code: response.ErrCodeUnknownOperation, Message: err.Error()}
	case errors.Is(err, service.ErrEventFull):
		return &APIError{Code: response.ErrCodeEventFull, Message: "Event has reached capacity"}
	case errors.Is(err, service.ErrRSVPClosed):
		return &APIError{Code: response.ErrCodeRSVPClosed, Message: err.Error()}
	default:
		return &APIError{Code: response.ErrCodeInternalError, Message: err.Error()}
	}
}

// List returns one page of records with the same pagination math as the API.
func (f *MockFacade[T]) List(ctx context.Context, query dto.ListQuery) ([]T, *response.Pagination, error) {
	query.SetDefaults()
	records, total, err := f.svc.List(ctx, query)
	if err != nil {
		return nil, nil, mockError(err)
	}

	envelope := response.Paginated(records, query.Page, query.Limit, total)
	return records, envelope.Pagination, nil
}

// Get fetches one record.
func (f *MockFacade[T]) Get(ctx context.Context, id string) (T, error) {
	record, err := f.svc.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, mockError(err)
	}
	return record, nil
}

// Create stores a new record.
func (f *MockFacade[T]) Create(ctx context.Context, record T) (T, error) {
	created, err := f.svc.Create(ctx, record)
	if err != nil {
		var zero T
		return zero, mockError(err)
	}
	return created, nil
}

// Update replaces a record's editable fields, mirroring the API's merge
// semantics through the service's fetch-then-apply path.
func (f *MockFacade[T]) Update(ctx context.Context, id string, record T) (T, error) {
	updated, err := f.svc.Update(ctx, id, func(stored T) error {
		return copyInto(record, stored)
	})
	if err != nil {
		var zero T
		return zero, mockError(err)
	}
	return updated, nil
}

// Delete removes a record.
func (f *MockFacade[T]) Delete(ctx context.Context, id string) error {
	return mockError(f.svc.Delete(ctx, id))
}

// Transition applies a declared status-change action.
func (f *MockFacade[T]) Transition(ctx context.Context, id, action string) (T, error) {
	record, err := f.svc.Transition(ctx, id, action)
	if err != nil {
		var zero T
		return zero, mockError(err)
	}
	return record, nil
}

// Bulk applies one operation to many records.
func (f *MockFacade[T]) Bulk(ctx context.Context, operation string, ids []string) (*dto.BulkResult, error) {
	result, err := f.svc.Bulk(ctx, operation, ids)
	if err != nil {
		return nil, mockError(err)
	}
	return result, nil
}

// copyInto overwrites dst's fields from src's JSON form, the same merge a
// PUT body performs on the stored record.
func copyInto[T domain.Entity](src, dst T) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
