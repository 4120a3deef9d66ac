package container

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cybergodev/container/internal"
)

// Comparator orders two values, returning a negative number, zero or a
// positive number. Nested arrays are passed as *Container.
type Comparator func(a, b any) int

// Collated returns a Comparator ordering values by their string form under
// the collation rules of tag. Non-string values are compared as strings.
func Collated(tag language.Tag, opts ...collate.Option) Comparator {
	col := collate.New(tag, opts...)
	return func(a, b any) int {
		return col.CompareString(comparableString(a), comparableString(b))
	}
}

func comparableString(v any) string {
	if c, ok := v.(*Container); ok {
		return c.String()
	}
	return internal.ScalarString(v)
}

type entry struct {
	key   internal.Key
	value any
}

func (c *Container) entries() []entry {
	out := make([]entry, c.data.Len())
	for i := range out {
		out[i].key, out[i].value = c.data.At(i)
	}
	return out
}

// Sort orders entries by value in place, stable. A nil cmp uses the natural
// ordering: numbers and numeric strings numerically, other strings bytewise.
// Integer keys are renumbered unless preserveKeys is set.
func (c *Container) Sort(cmp Comparator, preserveKeys bool) *Container {
	es := c.entries()
	if cmp == nil {
		slices.SortStableFunc(es, func(a, b entry) int { return internal.Compare(a.value, b.value) })
	} else {
		slices.SortStableFunc(es, func(a, b entry) int { return cmp(c.export(a.value), c.export(b.value)) })
	}

	out := internal.NewMap(len(es))
	for _, e := range es {
		if preserveKeys || !e.key.IsInt() {
			out.Set(e.key, e.value)
		} else {
			out.Append(e.value)
		}
	}
	c.data = out
	c.touch()
	return c
}

// SortKeys orders entries by key in place. A nil cmp puts integer keys
// first in numeric order, then string keys bytewise.
func (c *Container) SortKeys(cmp Comparator) *Container {
	es := c.entries()
	if cmp == nil {
		slices.SortStableFunc(es, func(a, b entry) int {
			switch {
			case a.key.Less(b.key):
				return -1
			case b.key.Less(a.key):
				return 1
			}
			return 0
		})
	} else {
		slices.SortStableFunc(es, func(a, b entry) int { return cmp(a.key.Value(), b.key.Value()) })
	}

	out := internal.NewMap(len(es))
	for _, e := range es {
		out.Set(e.key, e.value)
	}
	c.data = out
	c.touch()
	return c
}
