package listview

import (
	"context"
	"sync"
)

// Mutation wraps one write operation (create, update, delete, bulk) with
// loading and error state. On failure it records the error state, invokes
// OnError, and returns the error, so callers can rely on either channel
// without checking both.
type Mutation[A, R any] struct {
	mu        sync.Mutex
	run       func(context.Context, A) (R, error)
	onSuccess func(R)
	onError   func(error)
	loading   bool
	errMsg    string
}

// NewMutation creates a mutation around the given operation.
func NewMutation[A, R any](run func(context.Context, A) (R, error)) *Mutation[A, R] {
	return &Mutation[A, R]{run: run}
}

// OnSuccess registers a callback invoked after each successful Do.
func (m *Mutation[A, R]) OnSuccess(fn func(R)) *Mutation[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onSuccess = fn
	return m
}

// OnError registers a callback invoked after each failed Do.
func (m *Mutation[A, R]) OnError(fn func(error)) *Mutation[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onError = fn
	return m
}

// Do executes the operation.
func (m *Mutation[A, R]) Do(ctx context.Context, arg A) (R, error) {
	m.mu.Lock()
	m.loading = true
	m.errMsg = ""
	run, onSuccess, onError := m.run, m.onSuccess, m.onError
	m.mu.Unlock()

	result, err := run(ctx, arg)

	m.mu.Lock()
	m.loading = false
	if err != nil {
		m.errMsg = err.Error()
	}
	m.mu.Unlock()

	if err != nil {
		if onError != nil {
			onError(err)
		}
		return result, err
	}
	if onSuccess != nil {
		onSuccess(result)
	}
	return result, nil
}

// Loading reports whether a Do call is in flight.
func (m *Mutation[A, R]) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Err returns the last error message, or "" after a success.
func (m *Mutation[A, R]) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}
