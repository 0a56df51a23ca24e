package util

// OrderedSet is a set of values keyed by name that remembers the order in
// which keys were first added. Re-adding an existing key replaces its value
// but keeps its position.
//
// The zero value is not ready for use; create one with NewOrderedSet.
type OrderedSet[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet[V any]() *OrderedSet[V] {
	return &OrderedSet[V]{values: map[string]V{}}
}

// Put adds the value under key. If key is already present, its value is
// replaced and its position is unchanged.
func (s *OrderedSet[V]) Put(key string, v V) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// Get returns the value stored under key and whether it was present.
func (s *OrderedSet[V]) Get(key string) (V, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has returns whether key is in the set.
func (s *OrderedSet[V]) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Remove removes key from the set and returns the value it held. If key is not
// present, the zero value and false are returned.
func (s *OrderedSet[V]) Remove(key string) (V, bool) {
	v, ok := s.values[key]
	if !ok {
		return v, false
	}
	delete(s.values, key)
	for i := range s.keys {
		if s.keys[i] == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// Len returns the number of elements in the set.
func (s *OrderedSet[V]) Len() int {
	return len(s.keys)
}

// Empty returns whether the set has no elements.
func (s *OrderedSet[V]) Empty() bool {
	return len(s.keys) == 0
}

// Keys returns a copy of the keys in insertion order.
func (s *OrderedSet[V]) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Values returns the values in insertion order of their keys.
func (s *OrderedSet[V]) Values() []V {
	vals := make([]V, len(s.keys))
	for i := range s.keys {
		vals[i] = s.values[s.keys[i]]
	}
	return vals
}

// StringSet is a map[string]bool used as a simple unordered set.
type StringSet map[string]bool

// Add adds the given element to the set.
func (s StringSet) Add(element string) {
	s[element] = true
}

// Has returns whether the set has the given element.
func (s StringSet) Has(element string) bool {
	return s[element]
}
