package internal

// Map is an insertion-ordered key/value array. It backs both list-like and
// associative levels of a container tree; nested levels are *Map values.
type Map struct {
	keys   []Key
	values map[Key]any
	next   int
}

// NewMap creates an empty map with room for capacity entries
func NewMap(capacity int) *Map {
	if capacity < 0 {
		capacity = 0
	}
	return &Map{
		keys:   make([]Key, 0, capacity),
		values: make(map[Key]any, capacity),
	}
}

// NewList creates a list-like map holding values under keys 0..n-1
func NewList(values ...any) *Map {
	m := NewMap(len(values))
	for _, v := range values {
		m.Append(v)
	}
	return m
}

// Len returns the number of immediate entries
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under k
func (m *Map) Get(k Key) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[k]
	return v, ok
}

// Has reports whether k is present
func (m *Map) Has(k Key) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[k]
	return ok
}

// Set stores v under k. An existing key keeps its position.
func (m *Map) Set(k Key, v any) {
	if _, exists := m.values[k]; !exists {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
	if k.isInt && k.num >= m.next {
		m.next = k.num + 1
	}
}

// Append stores v under the next free integer key and returns that key
func (m *Map) Append(v any) Key {
	k := IntKey(m.next)
	m.Set(k, v)
	return k
}

// Delete removes k and reports whether it was present. The next append
// index is not lowered, so deleting from a list leaves a gap.
func (m *Map) Delete(k Key) bool {
	if _, ok := m.values[k]; !ok {
		return false
	}
	delete(m.values, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a copy of the keys in order
func (m *Map) Keys() []Key {
	if m == nil {
		return nil
	}
	out := make([]Key, len(m.keys))
	copy(out, m.keys)
	return out
}

// At returns the i-th entry in insertion order
func (m *Map) At(i int) (Key, any) {
	k := m.keys[i]
	return k, m.values[k]
}

// Range calls fn for each entry in order until fn returns false
func (m *Map) Range(fn func(k Key, v any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// NextIndex returns the key Append would use
func (m *Map) NextIndex() int {
	return m.next
}

// ResetNextIndex recomputes the append index from the remaining integer keys
func (m *Map) ResetNextIndex() {
	m.next = 0
	for _, k := range m.keys {
		if k.isInt && k.num >= m.next {
			m.next = k.num + 1
		}
	}
}

// Clear removes every entry
func (m *Map) Clear() {
	m.keys = m.keys[:0]
	m.values = make(map[Key]any)
	m.next = 0
}

// IsList reports whether the keys are exactly 0..n-1 in order
func (m *Map) IsList() bool {
	for i, k := range m.keys {
		if !k.isInt || k.num != i {
			return false
		}
	}
	return true
}

// Clone returns a deep copy; nested maps are cloned, scalars are copied.
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap(0)
	}
	out := &Map{
		keys:   make([]Key, len(m.keys)),
		values: make(map[Key]any, len(m.values)),
		next:   m.next,
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		if child, ok := v.(*Map); ok {
			v = child.Clone()
		}
		out.values[k] = v
	}
	return out
}

// Reindexed returns a shallow copy whose integer keys are renumbered from 0
// in order; string keys are kept.
func (m *Map) Reindexed() *Map {
	out := NewMap(m.Len())
	for _, k := range m.keys {
		if k.isInt {
			out.Append(m.values[k])
		} else {
			out.Set(k, m.values[k])
		}
	}
	return out
}

// ValueList returns a shallow list of the values in order
func (m *Map) ValueList() *Map {
	out := NewMap(m.Len())
	for _, k := range m.keys {
		out.Append(m.values[k])
	}
	return out
}
