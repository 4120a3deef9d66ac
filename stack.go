package container

import (
	"context"

	"github.com/cybergodev/container/internal"
)

// Push appends values under the next integer keys
func (c *Container) Push(values ...any) *Container {
	for _, v := range values {
		stored, err := toValue(v, 0, c.config.MaxDepth)
		if err != nil {
			logError(context.Background(), "push", "", err)
			continue
		}
		c.data.Append(stored)
	}
	c.touch()
	return c
}

// Pop removes and returns the last entry
func (c *Container) Pop() (any, bool) {
	n := c.data.Len()
	if n == 0 {
		return nil, false
	}
	k, v := c.data.At(n - 1)
	c.data.Delete(k)
	c.data.ResetNextIndex()
	c.touch()
	return c.export(v), true
}

// Shift removes and returns the first entry, renumbering integer keys
func (c *Container) Shift() (any, bool) {
	if c.data.Len() == 0 {
		return nil, false
	}
	k, v := c.data.At(0)
	c.data.Delete(k)
	c.data = c.data.Reindexed()
	c.touch()
	return c.export(v), true
}

// Unshift inserts values at the front, renumbering integer keys
func (c *Container) Unshift(values ...any) *Container {
	out := internal.NewMap(c.data.Len() + len(values))
	for _, v := range values {
		stored, err := toValue(v, 0, c.config.MaxDepth)
		if err != nil {
			logError(context.Background(), "unshift", "", err)
			continue
		}
		out.Append(stored)
	}
	c.data.Range(func(k internal.Key, v any) bool {
		if k.IsInt() {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
		return true
	})
	c.data = out
	c.touch()
	return c
}

// Prepend inserts value under key at the front. An existing key is moved.
func (c *Container) Prepend(key, value any) error {
	k, err := toKey("prepend", key)
	if err != nil {
		return err
	}
	stored, err := toValue(value, 0, c.config.MaxDepth)
	if err != nil {
		return err
	}
	out := internal.NewMap(c.data.Len() + 1)
	out.Set(k, stored)
	c.data.Range(func(ek internal.Key, v any) bool {
		if ek != k {
			out.Set(ek, v)
		}
		return true
	})
	c.data = out
	c.touch()
	return nil
}

// First returns the first value
func (c *Container) First() (any, error) {
	if c.data.Len() == 0 {
		return nil, newOperationError("first", "container has no entries", ErrEmptyContainer)
	}
	_, v := c.data.At(0)
	return c.export(v), nil
}

// Last returns the last value
func (c *Container) Last() (any, error) {
	n := c.data.Len()
	if n == 0 {
		return nil, newOperationError("last", "container has no entries", ErrEmptyContainer)
	}
	_, v := c.data.At(n - 1)
	return c.export(v), nil
}

// FirstKey returns the first key
func (c *Container) FirstKey() (Key, error) {
	if c.data.Len() == 0 {
		return Key{}, newOperationError("first_key", "container has no entries", ErrEmptyContainer)
	}
	k, _ := c.data.At(0)
	return k, nil
}

// LastKey returns the last key
func (c *Container) LastKey() (Key, error) {
	n := c.data.Len()
	if n == 0 {
		return Key{}, newOperationError("last_key", "container has no entries", ErrEmptyContainer)
	}
	k, _ := c.data.At(n - 1)
	return k, nil
}
