package container

import (
	"strings"

	"github.com/cybergodev/container/internal"
)

// Filter returns the entries for which keep returns true. A nil keep drops
// falsy values (nil, false, 0, "", "0" and empty arrays). With recursive
// set, nested arrays are filtered first and then tested themselves.
func (c *Container) Filter(keep func(v any, k Key) bool, recursive bool) *Container {
	return c.derive(c.filterMap(c.data, keep, recursive))
}

func (c *Container) filterMap(m *internal.Map, keep func(v any, k Key) bool, recursive bool) *internal.Map {
	out := internal.NewMap(0)
	m.Range(func(k internal.Key, v any) bool {
		if child, ok := v.(*internal.Map); ok {
			if recursive {
				v = c.filterMap(child, keep, true)
			} else {
				v = child.Clone()
			}
		}
		var ok bool
		if keep == nil {
			ok = internal.ToBool(v)
		} else {
			ok = keep(c.export(v), k)
		}
		if ok {
			out.Set(k, v)
		}
		return true
	})
	return out
}

// Reject returns the entries for which drop returns false
func (c *Container) Reject(drop func(v any, k Key) bool) *Container {
	return c.Filter(func(v any, k Key) bool { return !drop(v, k) }, false)
}

// Map returns a container holding fn's result for every entry, keys kept
func (c *Container) Map(fn func(v any, k Key) any) (*Container, error) {
	out := internal.NewMap(c.data.Len())
	var err error
	c.data.Range(func(k internal.Key, v any) bool {
		var stored any
		stored, err = toValue(fn(c.export(v), k), 0, c.config.MaxDepth)
		if err != nil {
			return false
		}
		out.Set(k, stored)
		return true
	})
	if err != nil {
		return nil, err
	}
	return c.derive(out), nil
}

// Each calls fn for every immediate entry until fn returns false
func (c *Container) Each(fn func(k Key, v any) bool) {
	c.data.Range(func(k internal.Key, v any) bool {
		return fn(k, c.export(v))
	})
}

// Reduce folds the immediate values into one
func (c *Container) Reduce(fn func(acc, v any, k Key) any, initial any) any {
	acc := initial
	c.data.Range(func(k internal.Key, v any) bool {
		acc = fn(acc, c.export(v), k)
		return true
	})
	return acc
}

// Search returns the key of the first value equal to value. Loose equality
// applies unless strict is set.
func (c *Container) Search(value any, strict bool) (Key, bool) {
	want, err := toValue(value, 0, c.config.MaxDepth)
	if err != nil {
		return Key{}, false
	}
	var found internal.Key
	ok := false
	c.data.Range(func(k internal.Key, v any) bool {
		if strict {
			ok = internal.StrictEqual(v, want)
		} else {
			ok = internal.LooseEqual(v, want)
		}
		if ok {
			found = k
		}
		return !ok
	})
	return found, ok
}

// Contains reports whether any immediate value loosely equals value
func (c *Container) Contains(value any) bool {
	_, ok := c.Search(value, false)
	return ok
}

// ContainsKey reports whether key is an immediate key
func (c *Container) ContainsKey(key any) bool {
	k, ok := internal.NormalizeKey(key)
	return ok && c.data.Has(k)
}

// Implode joins the immediate values as strings
func (c *Container) Implode(sep string) string {
	parts := make([]string, 0, c.data.Len())
	c.data.Range(func(_ internal.Key, v any) bool {
		parts = append(parts, internal.ScalarString(v))
		return true
	})
	return strings.Join(parts, sep)
}

// Sum adds the numeric immediate values; other values count as zero
func (c *Container) Sum() float64 {
	var total float64
	c.data.Range(func(_ internal.Key, v any) bool {
		if _, isMap := v.(*internal.Map); isMap {
			return true
		}
		if f, ok := internal.ToNumber(v); ok {
			total += f
		}
		return true
	})
	return total
}

// Min returns the smallest immediate value under the natural ordering
func (c *Container) Min() (any, error) {
	return c.extreme("min", -1)
}

// Max returns the largest immediate value under the natural ordering
func (c *Container) Max() (any, error) {
	return c.extreme("max", 1)
}

func (c *Container) extreme(op string, sign int) (any, error) {
	if c.data.Len() == 0 {
		return nil, newOperationError(op, "container has no entries", ErrEmptyContainer)
	}
	_, best := c.data.At(0)
	c.data.Range(func(_ internal.Key, v any) bool {
		if internal.Compare(v, best)*sign > 0 {
			best = v
		}
		return true
	})
	return c.export(best), nil
}

// CountValues counts occurrences of every int and string value
func (c *Container) CountValues() *Container {
	out := internal.NewMap(0)
	c.data.Range(func(_ internal.Key, v any) bool {
		switch v.(type) {
		case int, string:
			k, _ := internal.NormalizeKey(v)
			n, _ := out.Get(k)
			count, _ := n.(int)
			out.Set(k, count+1)
		}
		return true
	})
	return c.derive(out)
}
