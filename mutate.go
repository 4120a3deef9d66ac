package container

import (
	"context"
	"math/rand/v2"

	"github.com/cybergodev/container/internal"
)

// Merge appends the entries of others in place. Integer keys, including
// the receiver's, are renumbered; string keys are overwritten.
func (c *Container) Merge(others ...any) error {
	maps, err := c.operands("merge", others)
	if err != nil {
		return err
	}
	c.data = mergeMaps(c.data, maps...)
	c.touch()
	return nil
}

func mergeMaps(base *internal.Map, others ...*internal.Map) *internal.Map {
	out := base.Reindexed()
	for _, m := range others {
		m.Range(func(k internal.Key, v any) bool {
			if k.IsInt() {
				out.Append(v)
			} else {
				out.Set(k, v)
			}
			return true
		})
	}
	return out
}

// MergeAt merges other into the array at path, creating it when missing.
// An empty path, or a path holding a scalar, fails with ErrBadArgument.
func (c *Container) MergeAt(path string, other any) error {
	segs := internal.SplitPath(path)
	if len(segs) == 0 {
		return newPathError("merge_at", path, "merge target key cannot be empty", ErrBadArgument)
	}
	for _, seg := range segs {
		if !seg.IsInt() && seg.String() == "" {
			return newPathError("merge_at", path, "merge target key has an empty segment", ErrBadArgument)
		}
	}
	om, err := toMap("merge_at", other, c.config.MaxDepth)
	if err != nil {
		return err
	}

	target := internal.NewMap(0)
	if existing, ok := internal.Lookup(c.data, segs); ok {
		m, isMap := existing.(*internal.Map)
		if !isMap {
			return newPathError("merge_at", path, "merge target is not an array", ErrBadArgument)
		}
		target = m
	}
	internal.Assign(c.data, segs, mergeMaps(target, om))
	c.touch()
	return nil
}

// Replace overwrites entries with those of others by key, without renumbering
func (c *Container) Replace(others ...any) error {
	maps, err := c.operands("replace", others)
	if err != nil {
		return err
	}
	for _, m := range maps {
		m.Range(func(k internal.Key, v any) bool {
			c.data.Set(k, v)
			return true
		})
	}
	c.touch()
	return nil
}

// ReplaceRecursive is Replace descending into arrays present on both sides
func (c *Container) ReplaceRecursive(others ...any) error {
	maps, err := c.operands("replace_recursive", others)
	if err != nil {
		return err
	}
	for _, m := range maps {
		replaceRecursive(c.data, m)
	}
	c.touch()
	return nil
}

func replaceRecursive(dst, src *internal.Map) {
	src.Range(func(k internal.Key, v any) bool {
		if srcChild, ok := v.(*internal.Map); ok {
			if existing, has := dst.Get(k); has {
				if dstChild, ok := existing.(*internal.Map); ok {
					replaceRecursive(dstChild, srcChild)
					return true
				}
			}
		}
		dst.Set(k, v)
		return true
	})
}

// Flip exchanges keys and values in place. Only int and string values can
// become keys; other entries are dropped.
func (c *Container) Flip() *Container {
	out := internal.NewMap(c.data.Len())
	c.data.Range(func(k internal.Key, v any) bool {
		switch v.(type) {
		case int, string:
			nk, _ := internal.NormalizeKey(v)
			out.Set(nk, k.Value())
		default:
			logDebug(context.Background(), "dropping entry that cannot be flipped", "flip", k.String())
		}
		return true
	})
	c.data = out
	c.touch()
	return c
}

// Reverse reverses entry order in place. String keys are kept; integer keys
// are renumbered unless preserveKeys is set.
func (c *Container) Reverse(preserveKeys bool) *Container {
	out := internal.NewMap(c.data.Len())
	for i := c.data.Len() - 1; i >= 0; i-- {
		k, v := c.data.At(i)
		if k.IsInt() && !preserveKeys {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
	}
	c.data = out
	c.touch()
	return c
}

// Shuffle randomizes the order of values in place and renumbers keys from 0
func (c *Container) Shuffle() *Container {
	list := c.data.ValueList()
	values := make([]any, list.Len())
	for i := range values {
		_, values[i] = list.At(i)
	}
	rand.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	c.data = internal.NewList(values...)
	c.touch()
	return c
}
