package repository

import (
	"context"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
)

// Repository defines data access for one managed resource. GetByID returns
// the zero value (nil pointer) without an error when the record is missing;
// callers decide whether that is a not-found condition.
type Repository[T domain.Entity] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context, query dto.ListQuery) ([]T, int64, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id string) error
	// Apply runs one atomic read-modify-write: the record is loaded, apply
	// mutates it, and the result is stored, all under the repository's
	// write coordination so concurrent Applies on the same record
	// serialize. An apply error aborts the write. A miss returns the zero
	// value without an error, like GetByID.
	Apply(ctx context.Context, id string, apply func(T) error) (T, error)
}
