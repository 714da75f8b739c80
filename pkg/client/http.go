package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/catalog"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/response"
)

// HTTPConfig holds the settings of the HTTP facade.
type HTTPConfig struct {
	BaseURL string
	Timeout time.Duration
}

// HTTPFacade talks to the live REST API.
type HTTPFacade[T domain.Entity] struct {
	base   string
	res    catalog.Resource[T]
	tokens TokenSource
	client *http.Client
}

// NewHTTP creates the HTTP facade for one resource.
func NewHTTP[T domain.Entity](cfg HTTPConfig, res catalog.Resource[T], tokens TokenSource) *HTTPFacade[T] {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFacade[T]{
		base:   strings.TrimRight(cfg.BaseURL, "/") + "/" + res.Path,
		res:    res,
		tokens: tokens,
		client: &http.Client{Timeout: timeout},
	}
}

// envelope mirrors response.Response with a raw data payload so each call
// site can decode into its own type.
type envelope struct {
	Success    bool                 `json:"success"`
	Data       json.RawMessage      `json:"data,omitempty"`
	Message    string               `json:"message,omitempty"`
	Error      *response.ErrorInfo  `json:"error,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
}

func (f *HTTPFacade[T]) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Code: response.ErrCodeBadRequest, Message: err.Error()}
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.base+path, reader)
	if err != nil {
		return nil, networkError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if f.tokens != nil {
		if token := f.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, networkError(fmt.Errorf("decode response: %w", err))
	}
	if !env.Success {
		return nil, apiErrorFrom(env.Error)
	}
	return &env, nil
}

func (f *HTTPFacade[T]) decodeOne(env *envelope) (T, error) {
	record := f.res.New()
	if err := json.Unmarshal(env.Data, record); err != nil {
		var zero T
		return zero, networkError(fmt.Errorf("decode record: %w", err))
	}
	return record, nil
}

// List fetches one page of records.
func (f *HTTPFacade[T]) List(ctx context.Context, query dto.ListQuery) ([]T, *response.Pagination, error) {
	query.SetDefaults()

	values := url.Values{}
	values.Set("page", strconv.Itoa(query.Page))
	values.Set("limit", strconv.Itoa(query.Limit))
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	for key, value := range query.Filters {
		if value != "" {
			values.Set(key, value)
		}
	}

	env, err := f.do(ctx, http.MethodGet, "?"+values.Encode(), nil)
	if err != nil {
		return nil, nil, err
	}

	records := []T{}
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, nil, networkError(fmt.Errorf("decode records: %w", err))
	}
	return records, env.Pagination, nil
}

// Get fetches one record.
func (f *HTTPFacade[T]) Get(ctx context.Context, id string) (T, error) {
	env, err := f.do(ctx, http.MethodGet, "/"+id, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.decodeOne(env)
}

// Create stores a new record.
func (f *HTTPFacade[T]) Create(ctx context.Context, record T) (T, error) {
	env, err := f.do(ctx, http.MethodPost, "", record)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.decodeOne(env)
}

// Update replaces a record's editable fields.
func (f *HTTPFacade[T]) Update(ctx context.Context, id string, record T) (T, error) {
	env, err := f.do(ctx, http.MethodPut, "/"+id, record)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.decodeOne(env)
}

// Delete removes a record.
func (f *HTTPFacade[T]) Delete(ctx context.Context, id string) error {
	_, err := f.do(ctx, http.MethodDelete, "/"+id, nil)
	return err
}

// Transition applies a declared status-change action.
func (f *HTTPFacade[T]) Transition(ctx context.Context, id, action string) (T, error) {
	env, err := f.do(ctx, http.MethodPost, "/"+id+"/"+action, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.decodeOne(env)
}

// Bulk applies one operation to many records.
func (f *HTTPFacade[T]) Bulk(ctx context.Context, operation string, ids []string) (*dto.BulkResult, error) {
	env, err := f.do(ctx, http.MethodPost, "/bulk", dto.BulkRequest{Operation: operation, IDs: ids})
	if err != nil {
		return nil, err
	}

	var result dto.BulkResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, networkError(fmt.Errorf("decode bulk result: %w", err))
	}
	return &result, nil
}
