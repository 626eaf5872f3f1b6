package catalog

import "sort"

// FavoriteSet is a user's set of favorite exercise ids. Not safe for concurrent use.
type FavoriteSet struct {
	ids map[int]struct{}
}

// NewFavoriteSet builds a set from ids.
func NewFavoriteSet(ids ...int) *FavoriteSet {
	s := &FavoriteSet{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle adds id if absent and removes it otherwise. It reports whether id is a favorite afterwards.
func (s *FavoriteSet) Toggle(id int) bool {
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Contains is nil-safe.
func (s *FavoriteSet) Contains(id int) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// IDs returns the members in ascending order.
func (s *FavoriteSet) IDs() []int {
	if s == nil {
		return []int{}
	}
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *FavoriteSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}
