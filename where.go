package container

import "github.com/cybergodev/container/internal"

// Condition matches arrays holding Key. A nil Value only requires the key
// to be present; any other Value must equal the stored value loosely.
type Condition struct {
	Key   any
	Value any
}

// WhereCondition is an ordered list of conditions applied as a pipeline
type WhereCondition []Condition

// Cond builds a Condition requiring key == value
func Cond(key, value any) Condition {
	return Condition{Key: key, Value: value}
}

// Present builds a Condition requiring only that key exists
func Present(key any) Condition {
	return Condition{Key: key}
}

// Where searches every array below the root for matches, using the
// container's default key policy. See WhereKeys.
func (c *Container) Where(conds ...Condition) *Container {
	return c.WhereKeys(c.config.WherePreserveKeys, conds...)
}

// WhereKeys applies conds one after another. The first condition is matched
// against arrays at every depth of the tree; each following condition is
// matched against every depth of the previous stage's result, not the
// original tree. Matches keep their parent-relative key when preserveKeys
// is set (later matches overwrite earlier ones under the same key) and are
// appended otherwise. With no conditions the result is a copy.
func (c *Container) WhereKeys(preserveKeys bool, conds ...Condition) *Container {
	working := c.data.Clone()
	for _, cond := range conds {
		if working.Len() == 0 {
			break
		}
		key, ok := internal.NormalizeKey(cond.Key)
		if !ok {
			return c.derive(internal.NewMap(0))
		}
		var want any
		presenceOnly := cond.Value == nil
		if !presenceOnly {
			v, err := toValue(cond.Value, 0, c.config.MaxDepth)
			if err != nil {
				return c.derive(internal.NewMap(0))
			}
			want = v
		}

		out := internal.NewMap(0)
		collectMatches(out, working, key, want, presenceOnly, preserveKeys)
		working = out
	}
	return c.derive(working)
}

// collectMatches walks m in pre-order and stores every nested array that
// satisfies the condition.
func collectMatches(out, m *internal.Map, key internal.Key, want any, presenceOnly, preserveKeys bool) {
	m.Range(func(k internal.Key, v any) bool {
		node, ok := v.(*internal.Map)
		if !ok {
			return true
		}
		if got, has := node.Get(key); has && (presenceOnly || internal.LooseEqual(got, want)) {
			if preserveKeys {
				out.Set(k, node.Clone())
			} else {
				out.Append(node.Clone())
			}
		}
		collectMatches(out, node, key, want, presenceOnly, preserveKeys)
		return true
	})
}
