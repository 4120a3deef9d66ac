package container

import (
	"fmt"
	"reflect"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/cybergodev/container/internal"
)

// Arrayable is implemented by any value that can present itself as an
// ordered mapping. The result of ToArray may be anything New accepts:
// a *Container, []Pair, a slice, a map or a struct.
type Arrayable interface {
	ToArray() any
}

// Pair is one ordered key/value entry of a literal
type Pair struct {
	Key   any
	Value any
}

// P is shorthand for building a Pair
func P(key, value any) Pair {
	return Pair{Key: key, Value: value}
}

// toValue converts v to its stored form: nil, bool, int, float64, string
// or *internal.Map. Nested containers are deep-copied.
func toValue(v any, depth, maxDepth int) (any, error) {
	if depth > maxDepth {
		return nil, newOperationError("convert", fmt.Sprintf("nesting depth exceeds %d", maxDepth), ErrBadArgument)
	}

	switch x := v.(type) {
	case nil, bool, string:
		return x, nil
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case json.Number:
		return numberValue(string(x)), nil
	case []byte:
		return string(x), nil
	case *internal.Map:
		return x.Clone(), nil
	case *Container:
		if x == nil {
			return nil, nil
		}
		return x.data.Clone(), nil
	case Container:
		return x.data.Clone(), nil
	case Pair:
		return pairsToMap([]Pair{x}, depth, maxDepth)
	case []Pair:
		return pairsToMap(x, depth, maxDepth)
	case Arrayable:
		return toValue(x.ToArray(), depth+1, maxDepth)
	case []any:
		m := internal.NewMap(len(x))
		for _, item := range x {
			child, err := toValue(item, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			m.Append(child)
		}
		return m, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := internal.NewMap(len(x))
		for _, k := range keys {
			child, err := toValue(x[k], depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			m.Set(internal.StringKey(k), child)
		}
		return m, nil
	}

	return reflectValue(v, depth, maxDepth)
}

// reflectValue handles typed slices, maps, pointers and structs
func reflectValue(v any, depth, maxDepth int) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return toValue(rv.Elem().Interface(), depth, maxDepth)

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return internal.NewMap(0), nil
		}
		m := internal.NewMap(rv.Len())
		for i := 0; i < rv.Len(); i++ {
			child, err := toValue(rv.Index(i).Interface(), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			m.Append(child)
		}
		return m, nil

	case reflect.Map:
		type entry struct {
			key internal.Key
			val reflect.Value
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, ok := internal.NormalizeKey(iter.Key().Interface())
			if !ok {
				k = internal.StringKey(fmt.Sprint(iter.Key().Interface()))
			}
			entries = append(entries, entry{key: k, val: iter.Value()})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key.Less(entries[j].key) })
		m := internal.NewMap(len(entries))
		for _, e := range entries {
			child, err := toValue(e.val.Interface(), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			m.Set(e.key, child)
		}
		return m, nil

	case reflect.Struct:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, newOperationError("convert", fmt.Sprintf("cannot convert %T", v), err)
		}
		return decodeJSON(raw, maxDepth-depth)

	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return nil, newOperationError("convert", fmt.Sprintf("unsupported value of type %T", v), ErrInvalidArgument)
}

func pairsToMap(pairs []Pair, depth, maxDepth int) (*internal.Map, error) {
	m := internal.NewMap(len(pairs))
	for _, p := range pairs {
		child, err := toValue(p.Value, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		if p.Key == nil {
			m.Append(child)
			continue
		}
		k, ok := internal.NormalizeKey(p.Key)
		if !ok {
			return nil, newOperationError("convert", fmt.Sprintf("illegal key type %T", p.Key), ErrBadArgument)
		}
		m.Set(k, child)
	}
	return m, nil
}

// toMap converts an arrayable input to a map, rejecting scalars
func toMap(op string, v any, maxDepth int) (*internal.Map, error) {
	stored, err := toValue(v, 0, maxDepth)
	if err != nil {
		return nil, err
	}
	m, ok := stored.(*internal.Map)
	if !ok {
		return nil, newOperationError(op, fmt.Sprintf("%T is not arrayable", v), ErrInvalidArgument)
	}
	return m, nil
}

// toKey converts a scalar to a key, reporting illegal key types
func toKey(op string, v any) (internal.Key, error) {
	if c, ok := v.(*Container); ok && c != nil {
		return internal.Key{}, newOperationError(op, "a container cannot be used as a key", ErrBadArgument)
	}
	k, ok := internal.NormalizeKey(v)
	if !ok {
		return internal.Key{}, newOperationError(op, fmt.Sprintf("illegal key type %T", v), ErrBadArgument)
	}
	return k, nil
}

// export converts a stored value for callers: nested maps are returned as
// independent containers.
func (c *Container) export(v any) any {
	if m, ok := v.(*internal.Map); ok {
		return c.derive(m.Clone())
	}
	return v
}

// nativeValue converts a stored value to plain Go values
func nativeValue(v any) any {
	m, ok := v.(*internal.Map)
	if !ok {
		return v
	}
	if m.IsList() {
		out := make([]any, 0, m.Len())
		m.Range(func(_ internal.Key, child any) bool {
			out = append(out, nativeValue(child))
			return true
		})
		return out
	}
	out := make(map[string]any, m.Len())
	m.Range(func(k internal.Key, child any) bool {
		out[k.String()] = nativeValue(child)
		return true
	})
	return out
}
