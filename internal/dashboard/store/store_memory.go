package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"deskflow/internal/dashboard"
)

type order struct {
	schoolID int64
	formID   int64
	formType string
}

// InMemoryStore answers the schools listing from seeded schools and form
// distributions.
type InMemoryStore struct {
	mu      sync.RWMutex
	schools map[int64]dashboard.School
	orders  []order
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{schools: make(map[int64]dashboard.School)}
}

// AddSchool registers a school. TotalOrders is ignored and recomputed.
func (s *InMemoryStore) AddSchool(school dashboard.School) {
	s.mu.Lock()
	defer s.mu.Unlock()
	school.TotalOrders = 0
	s.schools[school.ID] = school
}

// Distribute records that order form formID reached a unit of schoolID.
func (s *InMemoryStore) Distribute(schoolID, formID int64, formType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order{schoolID: schoolID, formID: formID, formType: strings.ToUpper(formType)})
}

func (s *InMemoryStore) ListSchools(_ context.Context, formTypes []string) ([]dashboard.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	forms := make(map[int64]map[int64]struct{})
	for _, o := range s.orders {
		if len(formTypes) > 0 && !slices.Contains(formTypes, o.formType) {
			continue
		}
		if _, ok := s.schools[o.schoolID]; !ok {
			continue
		}
		if forms[o.schoolID] == nil {
			forms[o.schoolID] = make(map[int64]struct{})
		}
		forms[o.schoolID][o.formID] = struct{}{}
	}

	out := make([]dashboard.School, 0, len(forms))
	for id, set := range forms {
		school := s.schools[id]
		school.TotalOrders = len(set)
		out = append(out, school)
	}
	slices.SortFunc(out, func(a, b dashboard.School) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}
