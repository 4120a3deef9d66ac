package container

import (
	"github.com/cybergodev/container/internal"
)

// Chunk splits the immediate children into containers of size entries;
// the last chunk may be shorter. A size larger than Len fails with
// ErrBadLength, a size below one with ErrBadArgument.
func (c *Container) Chunk(size int, preserveKeys bool) (*Container, error) {
	if size < 1 {
		return nil, newOperationError("chunk", "chunk size must be at least 1", ErrBadArgument)
	}
	if size > c.data.Len() {
		return nil, newLengthError("chunk", size, c.data.Len())
	}

	out := internal.NewMap((c.data.Len() + size - 1) / size)
	var current *internal.Map
	c.data.Range(func(k internal.Key, v any) bool {
		if current == nil || current.Len() == size {
			current = internal.NewMap(size)
			out.Append(current)
		}
		if child, ok := v.(*internal.Map); ok {
			v = child.Clone()
		}
		if preserveKeys {
			current.Set(k, v)
		} else {
			current.Append(v)
		}
		return true
	})
	return c.derive(out), nil
}

// Slice returns length entries starting at offset. A negative offset counts
// from the end; a negative length stops that many entries before the end.
// String keys are always kept; integer keys are renumbered unless
// preserveKeys is set.
func (c *Container) Slice(offset, length int, preserveKeys bool) *Container {
	n := c.data.Len()
	start := offset
	if start < 0 {
		start = max(n+start, 0)
	}
	if start > n {
		start = n
	}

	end := n
	switch {
	case length < 0:
		end = n + length
	case length < n-start:
		end = start + length
	}

	out := internal.NewMap(0)
	for i := start; i < end; i++ {
		k, v := c.data.At(i)
		if child, ok := v.(*internal.Map); ok {
			v = child.Clone()
		}
		if k.IsInt() && !preserveKeys {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
	}
	return c.derive(out)
}

// RestAfterIndex returns the entries after position index
func (c *Container) RestAfterIndex(index int) *Container {
	if index < 0 {
		return c.Slice(0, c.data.Len(), false)
	}
	return c.Slice(index+1, c.data.Len(), false)
}

// RestAfterKey returns the entries after key; a missing key yields an
// empty container.
func (c *Container) RestAfterKey(key any) *Container {
	k, ok := internal.NormalizeKey(key)
	if !ok {
		return c.derive(internal.NewMap(0))
	}
	for i := 0; i < c.data.Len(); i++ {
		if ck, _ := c.data.At(i); ck == k {
			return c.Slice(i+1, c.data.Len(), false)
		}
	}
	return c.derive(internal.NewMap(0))
}

// Only returns the entries whose key is listed, in container order
func (c *Container) Only(keys ...any) *Container {
	want := normalizeKeys(keys)
	return c.keepWhere(func(k internal.Key, _ any) bool {
		_, ok := want[k]
		return ok
	})
}

// Except returns the entries whose key is not listed
func (c *Container) Except(keys ...any) *Container {
	skip := normalizeKeys(keys)
	return c.keepWhere(func(k internal.Key, _ any) bool {
		_, ok := skip[k]
		return !ok
	})
}

func normalizeKeys(keys []any) map[internal.Key]struct{} {
	set := make(map[internal.Key]struct{}, len(keys))
	for _, raw := range keys {
		if k, ok := internal.NormalizeKey(raw); ok {
			set[k] = struct{}{}
		}
	}
	return set
}
