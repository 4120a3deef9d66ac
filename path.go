package container

import (
	"context"
	"log/slog"

	"github.com/cybergodev/container/internal"
)

// Get returns the value at path, or def when any segment is missing or an
// intermediate value is a scalar. Nested arrays are returned as independent
// containers. The empty path addresses the root.
func (c *Container) Get(path string, def any) any {
	v, ok := c.Value(path)
	if !ok {
		return def
	}
	return v
}

// Value returns the value at path and whether it exists
func (c *Container) Value(path string) (any, bool) {
	v, ok := internal.Lookup(c.data, internal.SplitPath(path))
	if !ok {
		return nil, false
	}
	return c.export(v), true
}

// Has reports whether every segment of path resolves
func (c *Container) Has(path string) bool {
	_, ok := internal.Lookup(c.data, internal.SplitPath(path))
	return ok
}

// Set stores value at path, creating maps for missing intermediate
// segments. An intermediate scalar is replaced by a new map and its value is
// lost. Setting the empty path replaces the root with an arrayable value.
func (c *Container) Set(path string, value any) *Container {
	stored, err := toValue(value, 0, c.config.MaxDepth)
	if err != nil {
		logError(context.Background(), "set", path, err)
		return c
	}

	segs := internal.SplitPath(path)
	if len(segs) == 0 {
		m, ok := stored.(*internal.Map)
		if !ok {
			logDebug(context.Background(), "ignoring scalar assigned to root", "set", path,
				slog.String("type", typeName(stored)))
			return c
		}
		c.data = m
		c.touch()
		return c
	}

	internal.Assign(c.data, segs, stored)
	c.touch()
	return c
}

// Forget removes the value at path. Missing segments make it a no-op.
// Removing a list element leaves a gap; see Reindex.
func (c *Container) Forget(path string) *Container {
	segs := internal.SplitPath(path)
	if len(segs) == 0 {
		return c.Reset()
	}
	if internal.Remove(c.data, segs) {
		c.touch()
	}
	return c
}

// GetString returns the value at path converted to a string, or def
func (c *Container) GetString(path, def string) string {
	v, ok := internal.Lookup(c.data, internal.SplitPath(path))
	if !ok {
		return def
	}
	if _, isMap := v.(*internal.Map); isMap {
		return def
	}
	return internal.ScalarString(v)
}

// GetInt returns the value at path converted to an int, or def
func (c *Container) GetInt(path string, def int) int {
	v, ok := internal.Lookup(c.data, internal.SplitPath(path))
	if !ok {
		return def
	}
	if n, ok := v.(int); ok {
		return n
	}
	f, ok := internal.ToNumber(v)
	if !ok {
		return def
	}
	return int(f)
}

// GetFloat returns the value at path converted to a float64, or def
func (c *Container) GetFloat(path string, def float64) float64 {
	v, ok := internal.Lookup(c.data, internal.SplitPath(path))
	if !ok {
		return def
	}
	f, ok := internal.ToNumber(v)
	if !ok {
		return def
	}
	return f
}

// GetBool returns the truthiness of the value at path, or def
func (c *Container) GetBool(path string, def bool) bool {
	v, ok := internal.Lookup(c.data, internal.SplitPath(path))
	if !ok {
		return def
	}
	return internal.ToBool(v)
}

// GetContainer returns the nested array at path, or nil when the path is
// missing or holds a scalar.
func (c *Container) GetContainer(path string) *Container {
	v, ok := internal.Lookup(c.data, internal.SplitPath(path))
	if !ok {
		return nil
	}
	m, ok := v.(*internal.Map)
	if !ok {
		return nil
	}
	return c.derive(m.Clone())
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case *internal.Map:
		return "array"
	default:
		return "unknown"
	}
}
