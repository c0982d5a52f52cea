package vm

import "maps"

// Store is the flat variable table: one namespace, no lexical scoping, last
// write wins. Loop and conditional bodies read and write the same namespace
// as the range that encloses them.
//
// A Store is exclusively owned by one Machine and is accessed synchronously
// within a single call stack, so it carries no locking. Sharing a Machine
// across goroutines is a caller error; do not retrofit synchronization here:
// the evaluation algorithm assumes sequential access with no concurrent
// writers.
type Store struct {
	vars map[string]float64
}

// NewStore returns an empty variable table.
func NewStore() *Store {
	return &Store{vars: make(map[string]float64)}
}

// Assign inserts or overwrites a variable. It never fails.
func (s *Store) Assign(name string, value float64) {
	s.vars[name] = value
}

// Lookup reads a variable. A missing name reports false and never defaults
// to zero; the machine turns a miss into ErrUndefinedVariable.
func (s *Store) Lookup(name string) (float64, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Len returns the number of assigned variables.
func (s *Store) Len() int {
	return len(s.vars)
}

// Snapshot returns a copy of the table. Mutating the copy does not affect
// the store.
func (s *Store) Snapshot() map[string]float64 {
	return maps.Clone(s.vars)
}
