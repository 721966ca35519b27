package types

// OrderedDefaultMap is a map that remembers key insertion order and creates
// missing values on first access with a user supplied factory.
//
// It is handy for aggregations whose output must follow the order in which
// keys were first observed (e.g. report totals grouped by category).
type OrderedDefaultMap[K comparable, V any] struct {
	data        map[K]V  // underlying key-value storage
	keys        []K      // keys in first-insertion order
	defaultFunc func() V // factory for values of missing keys
}

// NewOrderedDefaultMap creates an empty map that uses defaultFunc for missing keys.
func NewOrderedDefaultMap[K comparable, V any](defaultFunc func() V) *OrderedDefaultMap[K, V] {
	return &OrderedDefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value stored for key, creating and storing a default value
// if the key is missing.
func (m *OrderedDefaultMap[K, V]) Get(key K) V {
	if val, ok := m.data[key]; ok {
		return val
	}

	val := m.defaultFunc()
	m.Set(key, val)
	return val
}

// Set stores val under key. New keys are appended to the iteration order.
func (m *OrderedDefaultMap[K, V]) Set(key K, val V) {
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.data[key] = val
}

// Update replaces the value of key with fn applied to its current (or default) value.
func (m *OrderedDefaultMap[K, V]) Update(key K, fn func(V) V) {
	m.Set(key, fn(m.Get(key)))
}

// Keys returns the keys in first-insertion order.
func (m *OrderedDefaultMap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *OrderedDefaultMap[K, V]) Len() int {
	return len(m.keys)
}
