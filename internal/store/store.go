// Package store provides the process-lifetime keyed storage shared by every
// service. All operations take the store's lock, so id allocation and map
// mutation are atomic with respect to each other.
package store

import (
	"slices"
	"sync"
)

type Store[T any] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64
}

func New[T any]() *Store[T] {
	return &Store[T]{
		items:  make(map[int64]T),
		nextID: 1,
	}
}

// Insert allocates the next id and stores the value built for it. The build
// func runs under the lock and must not call back into the store.
func (s *Store[T]) Insert(build func(id int64) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	v := build(id)
	s.items[id] = v
	return v
}

// Put stores v under id. Ids at or above the allocation cursor advance it, so
// seeded records are never handed out again by Insert.
func (s *Store[T]) Put(id int64, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[id] = v
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	return v, ok
}

// Update applies fn to the stored value and writes the result back.
func (s *Store[T]) Update(id int64, fn func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[id]
	if !ok {
		return v, false
	}
	v = fn(v)
	s.items[id] = v
	return v, true
}

// List returns every value ordered by id, which is also insertion order for
// values created through Insert.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.items[id])
	}
	return out
}

// Filter returns the values matching keep, ordered by id.
func (s *Store[T]) Filter(keep func(T) bool) []T {
	all := s.List()
	out := make([]T, 0, len(all))
	for _, v := range all {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
