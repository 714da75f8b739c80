package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
)

// Memory is an in-memory Repository used by the mock facade and in demo
// mode. Records are deep-copied on the way in and out so callers can never
// mutate stored state.
type Memory[T domain.Entity] struct {
	mu      sync.RWMutex
	records map[string]T
	newFn   func() T
}

// NewMemory creates an empty in-memory repository. newFn must return a
// fresh zero record; it is used to materialize deep copies.
func NewMemory[T domain.Entity](newFn func() T) *Memory[T] {
	return &Memory[T]{
		records: make(map[string]T),
		newFn:   newFn,
	}
}

func (m *Memory[T]) clone(src T) (T, error) {
	dst := m.newFn()
	raw, err := json.Marshal(src)
	if err != nil {
		return dst, fmt.Errorf("copy record: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return dst, fmt.Errorf("copy record: %w", err)
	}
	return dst, nil
}

// Create stores a new record.
func (m *Memory[T]) Create(ctx context.Context, entity T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[entity.EntityID()]; exists {
		return fmt.Errorf("record %s already exists", entity.EntityID())
	}

	copied, err := m.clone(entity)
	if err != nil {
		return err
	}
	m.records[entity.EntityID()] = copied
	return nil
}

// GetByID retrieves a record by ID, nil without error on a miss.
func (m *Memory[T]) GetByID(ctx context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var zero T
	record, exists := m.records[id]
	if !exists {
		return zero, nil
	}
	return m.clone(record)
}

// List returns records matching the query, newest first.
func (m *Memory[T]) List(ctx context.Context, query dto.ListQuery) ([]T, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query.SetDefaults()

	matched := make([]T, 0, len(m.records))
	for _, record := range m.records {
		if m.matches(record, query) {
			matched = append(matched, record)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		ti, tj := matched[i].CreatedTime(), matched[j].CreatedTime()
		if ti.Equal(tj) {
			return matched[i].EntityID() > matched[j].EntityID()
		}
		return ti.After(tj)
	})

	total := int64(len(matched))

	start := (query.Page - 1) * query.Limit
	if start >= len(matched) {
		return []T{}, total, nil
	}
	end := start + query.Limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]T, 0, end-start)
	for _, record := range matched[start:end] {
		copied, err := m.clone(record)
		if err != nil {
			return nil, 0, err
		}
		page = append(page, copied)
	}
	return page, total, nil
}

func (m *Memory[T]) matches(record T, query dto.ListQuery) bool {
	for key, want := range query.Filters {
		if want == "" {
			continue
		}
		if record.FilterValue(key) != want {
			return false
		}
	}
	if query.Search != "" {
		if !strings.Contains(record.SearchText(), strings.ToLower(query.Search)) {
			return false
		}
	}
	return true
}

// Update replaces an existing record.
func (m *Memory[T]) Update(ctx context.Context, entity T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[entity.EntityID()]; !exists {
		return fmt.Errorf("record %s not found", entity.EntityID())
	}

	copied, err := m.clone(entity)
	if err != nil {
		return err
	}
	m.records[entity.EntityID()] = copied
	return nil
}

// Apply atomically mutates one record under the write lock, so concurrent
// Applies on the same record never lose updates.
func (m *Memory[T]) Apply(ctx context.Context, id string, apply func(T) error) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T
	record, exists := m.records[id]
	if !exists {
		return zero, nil
	}

	working, err := m.clone(record)
	if err != nil {
		return zero, err
	}
	if err := apply(working); err != nil {
		return zero, err
	}

	stored, err := m.clone(working)
	if err != nil {
		return zero, err
	}
	m.records[id] = stored
	return working, nil
}

// Delete removes a record. Deleting a missing record is an error, matching
// the persistent implementation.
func (m *Memory[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[id]; !exists {
		return fmt.Errorf("record %s not found", id)
	}
	delete(m.records, id)
	return nil
}

// Clear removes all records (for testing).
func (m *Memory[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]T)
}

// Count returns the number of stored records (for testing).
func (m *Memory[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
