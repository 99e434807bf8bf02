package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"deskflow/internal/cascade"
)

type rowsKey struct {
	schoolID int64
	formType string
}

// InMemoryStore serves seeded rows; used in development and tests.
type InMemoryStore struct {
	mu   sync.RWMutex
	rows map[rowsKey][]cascade.FlatRow
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{rows: make(map[rowsKey][]cascade.FlatRow)}
}

// Seed appends rows for a school and order form type.
func (s *InMemoryStore) Seed(schoolID int64, formType string, rows ...cascade.FlatRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := rowsKey{schoolID: schoolID, formType: strings.ToUpper(formType)}
	s.rows[key] = append(s.rows[key], rows...)
}

func (s *InMemoryStore) ListRows(_ context.Context, schoolID int64, formType string) ([]cascade.FlatRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := rowsKey{schoolID: schoolID, formType: strings.ToUpper(formType)}
	out := slices.Clone(s.rows[key])
	if out == nil {
		out = []cascade.FlatRow{}
	}
	return out, nil
}
