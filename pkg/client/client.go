// Package client is the domain service facade consumed by portal frontends
// and background workers. Two implementations share one interface and one
// envelope: HTTP against the live API, and an in-memory mock running the
// same service code. The implementation is chosen once at construction from
// configuration, never per call.
package client

import (
	"context"
	"fmt"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/catalog"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/config"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/response"
)

// Facade exposes one managed resource to consumers. Every implementation
// returns the same envelope semantics: errors are always *APIError, never
// raw transport or storage errors.
type Facade[T domain.Entity] interface {
	List(ctx context.Context, query dto.ListQuery) ([]T, *response.Pagination, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, id string, record T) (T, error)
	Delete(ctx context.Context, id string) error
	Transition(ctx context.Context, id, action string) (T, error)
	Bulk(ctx context.Context, operation string, ids []string) (*dto.BulkResult, error)
}

// APIError is the normalized error every facade method returns. Code is one
// of the response package's error codes.
type APIError struct {
	Code    string
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// apiErrorFrom converts an envelope error into an *APIError.
func apiErrorFrom(info *response.ErrorInfo) *APIError {
	if info == nil {
		return &APIError{Code: response.ErrCodeInternalError, Message: "unknown error"}
	}
	return &APIError{Code: info.Code, Message: info.Message, Details: info.Details}
}

// networkError wraps a transport failure so callers never see raw transport
// errors.
func networkError(err error) *APIError {
	return &APIError{Code: response.ErrCodeNetworkError, Message: err.Error()}
}

// TokenSource supplies the Bearer token for authenticated requests. Return
// "" to send the request unauthenticated.
type TokenSource func() string

// New selects the facade implementation once from configuration.
func New[T domain.Entity](cfg *config.Config, res catalog.Resource[T], tokens TokenSource, log *logger.Logger) Facade[T] {
	if cfg.API.UseMockAPI {
		return NewMock(res, log)
	}
	return NewHTTP(HTTPConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, res, tokens)
}
