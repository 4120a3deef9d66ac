package container

import "github.com/cybergodev/container/internal"

// Flatten collects every leaf scalar, depth first, into a new container.
// Leaves under integer keys are appended; leaves under string keys are
// stored under that key, so equal keys in different branches overwrite one
// another and the last visited value wins.
func (c *Container) Flatten() *Container {
	out := internal.NewMap(0)
	flattenInto(out, c.data)
	return c.derive(out)
}

func flattenInto(out, m *internal.Map) {
	m.Range(func(k internal.Key, v any) bool {
		if child, ok := v.(*internal.Map); ok {
			flattenInto(out, child)
			return true
		}
		if k.IsInt() {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
		return true
	})
}

// FlattenPaths collects every leaf scalar keyed by its full dot path
func (c *Container) FlattenPaths() *Container {
	out := internal.NewMap(0)
	flattenPaths(out, c.data, nil)
	return c.derive(out)
}

func flattenPaths(out, m *internal.Map, prefix []internal.Key) {
	m.Range(func(k internal.Key, v any) bool {
		path := append(prefix[:len(prefix):len(prefix)], k)
		if child, ok := v.(*internal.Map); ok && child.Len() > 0 {
			flattenPaths(out, child, path)
			return true
		}
		out.Set(internal.StringKey(internal.JoinPath(path)), v)
		return true
	})
}
