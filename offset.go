package container

import (
	"fmt"

	"github.com/cybergodev/container/internal"
)

// offsetSegments turns a subscript into path segments. Strings are dot
// paths; any other scalar is a single key.
func offsetSegments(op string, offset any) ([]internal.Key, error) {
	if s, ok := offset.(string); ok {
		return internal.SplitPath(s), nil
	}
	k, err := toKey(op, offset)
	if err != nil {
		return nil, err
	}
	return []internal.Key{k}, nil
}

// OffsetGet is subscript access. Unlike Get, a missing offset is an error.
func (c *Container) OffsetGet(offset any) (any, error) {
	segs, err := offsetSegments("offset_get", offset)
	if err != nil {
		return nil, err
	}
	v, ok := internal.Lookup(c.data, segs)
	if !ok {
		return nil, newPathError("offset_get", internal.JoinPath(segs),
			fmt.Sprintf("offset %v does not exist", offset), ErrOffsetNotFound)
	}
	return c.export(v), nil
}

// OffsetSet assigns value at offset; a nil offset appends
func (c *Container) OffsetSet(offset, value any) error {
	stored, err := toValue(value, 0, c.config.MaxDepth)
	if err != nil {
		return err
	}
	if offset == nil {
		c.data.Append(stored)
		c.touch()
		return nil
	}
	segs, err := offsetSegments("offset_set", offset)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return newOperationError("offset_set", "empty offset", ErrBadArgument)
	}
	internal.Assign(c.data, segs, stored)
	c.touch()
	return nil
}

// OffsetExists reports whether offset resolves
func (c *Container) OffsetExists(offset any) bool {
	segs, err := offsetSegments("offset_exists", offset)
	if err != nil {
		return false
	}
	_, ok := internal.Lookup(c.data, segs)
	return ok
}

// OffsetUnset removes offset; a missing offset is ignored
func (c *Container) OffsetUnset(offset any) {
	segs, err := offsetSegments("offset_unset", offset)
	if err != nil || len(segs) == 0 {
		return
	}
	if internal.Remove(c.data, segs) {
		c.touch()
	}
}
