package container

import (
	"fmt"

	"github.com/cybergodev/container/internal"
)

// Combine creates a container using the values of keys as keys and the
// values of values as values. Both must have the same length.
func Combine(keys, values any, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts)
	km, err := toMap("combine", keys, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}
	vm, err := toMap("combine", values, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}
	m, err := combineMaps(km, vm)
	if err != nil {
		return nil, err
	}
	return newContainer(m, cfg), nil
}

func combineMaps(keys, values *internal.Map) (*internal.Map, error) {
	if keys.Len() != values.Len() {
		return nil, newLengthError("combine", values.Len(), keys.Len())
	}
	out := internal.NewMap(keys.Len())
	for i := 0; i < keys.Len(); i++ {
		_, rawKey := keys.At(i)
		if _, isMap := rawKey.(*internal.Map); isMap {
			return nil, newOperationError("combine", "an array cannot be used as a key", ErrBadArgument)
		}
		k, _ := internal.NormalizeKey(rawKey)
		_, v := values.At(i)
		out.Set(k, v)
	}
	return out, nil
}

// CombineWith combines the receiver with other. In CombineKeys mode other
// supplies the keys; in CombineValues mode it supplies the values.
func (c *Container) CombineWith(other any, mode CombineMode) (*Container, error) {
	om, err := toMap("combine", other, c.config.MaxDepth)
	if err != nil {
		return nil, err
	}
	var m *internal.Map
	switch mode {
	case CombineKeys:
		m, err = combineMaps(om, c.data.Clone())
	case CombineValues:
		m, err = combineMaps(c.data, om)
	default:
		return nil, newOperationError("combine", fmt.Sprintf("invalid combine mode %q", mode), ErrBadArgument)
	}
	if err != nil {
		return nil, err
	}
	return c.derive(m), nil
}

// Divide splits the immediate children into a list of keys and a list of values
func (c *Container) Divide() (keys, values *Container) {
	return c.Keys(), c.Values()
}

// Lists plucks valueKey from every child array. When keyKey is not nil the
// result is keyed by each child's keyKey value; children lacking it are
// appended. Children lacking valueKey, and scalar children, are skipped.
// A nil valueKey takes the whole child.
func (c *Container) Lists(valueKey, keyKey any) *Container {
	out := internal.NewMap(0)

	var vk, kk internal.Key
	var ok bool
	if valueKey != nil {
		if vk, ok = internal.NormalizeKey(valueKey); !ok {
			return c.derive(out)
		}
	}
	if keyKey != nil {
		if kk, ok = internal.NormalizeKey(keyKey); !ok {
			return c.derive(out)
		}
	}

	c.data.Range(func(_ internal.Key, v any) bool {
		row, isMap := v.(*internal.Map)
		if !isMap {
			return true
		}
		var picked any = row
		if valueKey != nil {
			if picked, ok = row.Get(vk); !ok {
				return true
			}
		}
		if child, isMap := picked.(*internal.Map); isMap {
			picked = child.Clone()
		}

		if keyKey != nil {
			if rawKey, has := row.Get(kk); has {
				if _, isMap := rawKey.(*internal.Map); !isMap {
					k, _ := internal.NormalizeKey(rawKey)
					out.Set(k, picked)
					return true
				}
			}
		}
		out.Append(picked)
		return true
	})
	return c.derive(out)
}

// Column is an alias of Lists
func (c *Container) Column(valueKey, keyKey any) *Container {
	return c.Lists(valueKey, keyKey)
}
