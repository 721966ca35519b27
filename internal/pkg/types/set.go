package types

// Set is a generic hash set for comparable types backed by map[T]struct{}.
//
// It is mutable: Add and Delete modify the set in place.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and optionally inserts the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether value is a member of the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Insert adds value and reports whether it was absent before the call.
//
// It is the building block of first-occurrence deduplication:
//
//	seen := types.NewSet[string]()
//	for _, id := range ids {
//	    if !seen.Insert(id) {
//	        continue // duplicate
//	    }
//	    ...
//	}
func (s Set[T]) Insert(value T) bool {
	if s.Has(value) {
		return false
	}

	s[value] = struct{}{}
	return true
}
