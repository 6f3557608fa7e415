package tree

import "sort"

// ExpandedSet holds the ids of expanded nodes.
// Every mutation bumps a revision counter so projections can be cached.
type ExpandedSet struct {
	ids      map[string]struct{}
	revision uint64
}

// NewExpandedSet creates a set seeded with ids
func NewExpandedSet(ids ...string) *ExpandedSet {
	s := &ExpandedSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether id is expanded. A nil set has nothing expanded.
func (s *ExpandedSet) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// Add expands id and reports whether the set changed
func (s *ExpandedSet) Add(id string) bool {
	if s.Has(id) {
		return false
	}
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	s.ids[id] = struct{}{}
	s.revision++
	return true
}

// Remove collapses id and reports whether the set changed
func (s *ExpandedSet) Remove(id string) bool {
	if !s.Has(id) {
		return false
	}
	delete(s.ids, id)
	s.revision++
	return true
}

// Toggle flips id and returns the new expanded state
func (s *ExpandedSet) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	s.Add(id)
	return true
}

// Len returns the number of expanded ids
func (s *ExpandedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the expanded ids in sorted order
func (s *ExpandedSet) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy
func (s *ExpandedSet) Clone() *ExpandedSet {
	return NewExpandedSet(s.IDs()...)
}

// Revision returns a counter that changes whenever the set is mutated
func (s *ExpandedSet) Revision() uint64 {
	if s == nil {
		return 0
	}
	return s.revision
}
