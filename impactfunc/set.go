package impactfunc

import (
	"fmt"
	"sort"
)

// Set is a registry of vulnerability curves keyed by
// (hazard type, function id). The zero Set is not usable; construct
// with NewSet. Set is safe for concurrent reads once populated.
type Set struct {
	funcs map[string]map[int]*ImpactFunc
}

// NewSet returns an empty registry.
func NewSet() *Set {
	return &Set{funcs: make(map[string]map[int]*ImpactFunc)}
}

// Add validates fn and registers it. The curve is stored by reference;
// callers must not mutate it afterwards.
//
// Returns the validation error, or ErrDuplicateFunc when the
// (hazard type, id) slot is taken.
func (s *Set) Add(fn *ImpactFunc) error {
	if err := fn.Validate(); err != nil {
		return err
	}
	byID, ok := s.funcs[fn.HazType]
	if !ok {
		byID = make(map[int]*ImpactFunc)
		s.funcs[fn.HazType] = byID
	}
	if _, taken := byID[fn.ID]; taken {
		return fmt.Errorf("%w: haz type %q id %d", ErrDuplicateFunc, fn.HazType, fn.ID)
	}
	byID[fn.ID] = fn
	return nil
}

// Get resolves the curve registered under (hazType, id).
//
// Returns ErrFuncNotFound, wrapped with both identifiers, when absent.
// Complexity: O(1).
func (s *Set) Get(hazType string, id int) (*ImpactFunc, error) {
	if fn, ok := s.funcs[hazType][id]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: haz type %q id %d", ErrFuncNotFound, hazType, id)
}

// HazTypes returns the registered hazard types in sorted order.
func (s *Set) HazTypes() []string {
	types := make([]string, 0, len(s.funcs))
	for ht := range s.funcs {
		types = append(types, ht)
	}
	sort.Strings(types)
	return types
}

// IDs returns the function ids registered for a hazard type, sorted.
// Unknown hazard types yield an empty slice.
func (s *Set) IDs(hazType string) []int {
	ids := make([]int, 0, len(s.funcs[hazType]))
	for id := range s.funcs[hazType] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Size returns the total number of registered curves.
func (s *Set) Size() int {
	n := 0
	for _, byID := range s.funcs {
		n += len(byID)
	}
	return n
}
