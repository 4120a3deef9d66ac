package container

import "github.com/cybergodev/container/internal"

// Unique drops values loosely equal to an earlier value, keeping the first
// occurrence and its key. With recursive set, nested arrays are made unique
// first.
func (c *Container) Unique(recursive bool) *Container {
	return c.derive(uniqueMap(c.data, recursive))
}

func uniqueMap(m *internal.Map, recursive bool) *internal.Map {
	out := internal.NewMap(m.Len())
	kept := make([]any, 0, m.Len())
	m.Range(func(k internal.Key, v any) bool {
		if child, ok := v.(*internal.Map); ok {
			if recursive {
				v = uniqueMap(child, true)
			} else {
				v = child.Clone()
			}
		}
		for _, seen := range kept {
			if internal.LooseEqual(seen, v) {
				return true
			}
		}
		kept = append(kept, v)
		out.Set(k, v)
		return true
	})
	return out
}

func (c *Container) operands(op string, others []any) ([]*internal.Map, error) {
	maps := make([]*internal.Map, 0, len(others))
	for _, other := range others {
		m, err := toMap(op, other, c.config.MaxDepth)
		if err != nil {
			return nil, newOperationError(op, "operand is not arrayable", ErrBadArgument)
		}
		maps = append(maps, m)
	}
	return maps, nil
}

// keepWhere copies the entries for which keep returns true
func (c *Container) keepWhere(keep func(k internal.Key, v any) bool) *Container {
	out := internal.NewMap(0)
	c.data.Range(func(k internal.Key, v any) bool {
		if keep(k, v) {
			if child, ok := v.(*internal.Map); ok {
				v = child.Clone()
			}
			out.Set(k, v)
		}
		return true
	})
	return c.derive(out)
}

func containsValue(m *internal.Map, v any) bool {
	found := false
	m.Range(func(_ internal.Key, other any) bool {
		found = internal.LooseEqual(v, other)
		return !found
	})
	return found
}

func valueAt(m *internal.Map, k internal.Key, v any) bool {
	other, ok := m.Get(k)
	return ok && internal.LooseEqual(v, other)
}

// Intersect keeps entries whose value appears in every operand
func (c *Container) Intersect(others ...any) (*Container, error) {
	maps, err := c.operands("intersect", others)
	if err != nil {
		return nil, err
	}
	return c.keepWhere(func(_ internal.Key, v any) bool {
		for _, m := range maps {
			if !containsValue(m, v) {
				return false
			}
		}
		return true
	}), nil
}

// IntersectAssoc keeps entries present with an equal value under the same
// key in every operand
func (c *Container) IntersectAssoc(others ...any) (*Container, error) {
	maps, err := c.operands("intersect_assoc", others)
	if err != nil {
		return nil, err
	}
	return c.keepWhere(func(k internal.Key, v any) bool {
		for _, m := range maps {
			if !valueAt(m, k, v) {
				return false
			}
		}
		return true
	}), nil
}

// IntersectKey keeps entries whose key exists in every operand
func (c *Container) IntersectKey(others ...any) (*Container, error) {
	maps, err := c.operands("intersect_key", others)
	if err != nil {
		return nil, err
	}
	return c.keepWhere(func(k internal.Key, _ any) bool {
		for _, m := range maps {
			if !m.Has(k) {
				return false
			}
		}
		return true
	}), nil
}

// Diff keeps entries whose value appears in no operand
func (c *Container) Diff(others ...any) (*Container, error) {
	maps, err := c.operands("diff", others)
	if err != nil {
		return nil, err
	}
	return c.keepWhere(func(_ internal.Key, v any) bool {
		for _, m := range maps {
			if containsValue(m, v) {
				return false
			}
		}
		return true
	}), nil
}

// DiffAssoc keeps entries not present with an equal value under the same
// key in any operand
func (c *Container) DiffAssoc(others ...any) (*Container, error) {
	maps, err := c.operands("diff_assoc", others)
	if err != nil {
		return nil, err
	}
	return c.keepWhere(func(k internal.Key, v any) bool {
		for _, m := range maps {
			if valueAt(m, k, v) {
				return false
			}
		}
		return true
	}), nil
}

// DiffKey keeps entries whose key exists in no operand
func (c *Container) DiffKey(others ...any) (*Container, error) {
	maps, err := c.operands("diff_key", others)
	if err != nil {
		return nil, err
	}
	return c.keepWhere(func(k internal.Key, _ any) bool {
		for _, m := range maps {
			if m.Has(k) {
				return false
			}
		}
		return true
	}), nil
}
