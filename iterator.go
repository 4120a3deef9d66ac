package container

import (
	"iter"

	"github.com/cybergodev/container/internal"
)

type iterFrame struct {
	m    *internal.Map
	pos  int
	path []internal.Key
}

// RecursiveIterator walks every entry of a container in pre-order: each
// array is yielded before its children, children in insertion order.
//
// The iterator reads the live tree. Any mutation of the container after the
// iterator is created stops it, and Err reports ErrConcurrentModification.
//
//	it := c.Iterator()
//	for it.Next() {
//	    fmt.Println(it.Path(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
type RecursiveIterator struct {
	owner *Container
	mods  uint64
	stack []iterFrame

	key   internal.Key
	value any
	path  []internal.Key
	err   error
}

// Iterator returns a pre-order iterator over the whole tree
func (c *Container) Iterator() *RecursiveIterator {
	return &RecursiveIterator{
		owner: c,
		mods:  c.mods,
		stack: []iterFrame{{m: c.data}},
	}
}

// Next advances to the next entry and reports whether there is one
func (it *RecursiveIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.owner.mods != it.mods {
		it.err = newOperationError("iterate", "container was modified", ErrConcurrentModification)
		it.stack = nil
		return false
	}

	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.pos >= top.m.Len() {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		k, v := top.m.At(top.pos)
		top.pos++

		path := append(top.path[:len(top.path):len(top.path)], k)
		it.key, it.value, it.path = k, v, path
		if child, ok := v.(*internal.Map); ok {
			it.stack = append(it.stack, iterFrame{m: child, path: path})
		}
		return true
	}
	return false
}

// Key returns the current entry's key within its parent
func (it *RecursiveIterator) Key() Key {
	return it.key
}

// Value returns the current value; arrays are returned as containers
func (it *RecursiveIterator) Value() any {
	return it.owner.export(it.value)
}

// IsArray reports whether the current value is a nested array
func (it *RecursiveIterator) IsArray() bool {
	_, ok := it.value.(*internal.Map)
	return ok
}

// Depth returns the nesting level of the current entry, 0 for root children
func (it *RecursiveIterator) Depth() int {
	return len(it.path) - 1
}

// Path returns the dot path of the current entry
func (it *RecursiveIterator) Path() string {
	return internal.JoinPath(it.path)
}

// Err returns the error that stopped iteration, if any
func (it *RecursiveIterator) Err() error {
	return it.err
}

// All iterates over the immediate entries
func (c *Container) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		c.data.Range(func(k internal.Key, v any) bool {
			return yield(k, c.export(v))
		})
	}
}

// Walk iterates over every entry in pre-order, keyed by dot path
func (c *Container) Walk() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		it := c.Iterator()
		for it.Next() {
			if !yield(it.Path(), it.Value()) {
				return
			}
		}
	}
}
