package internal

import "strings"

// PathSeparator separates segments of a dot path
const PathSeparator = "."

// SplitPath splits a dot path into keys. The empty path addresses the root
// and yields no segments. Segments in canonical integer form become integer keys.
// The result may be shared through the path cache and must not be modified.
func SplitPath(path string) []Key {
	if path == "" {
		return nil
	}
	if segs, ok := defaultPathCache.Get(path); ok {
		return segs
	}
	parts := strings.Split(path, PathSeparator)
	segs := make([]Key, len(parts))
	for i, part := range parts {
		segs[i] = StringKey(part)
	}
	defaultPathCache.Put(path, segs)
	return segs
}

// JoinPath is the inverse of SplitPath
func JoinPath(segs []Key) string {
	switch len(segs) {
	case 0:
		return ""
	case 1:
		return segs[0].String()
	}
	var sb strings.Builder
	for i, k := range segs {
		if i > 0 {
			sb.WriteString(PathSeparator)
		}
		sb.WriteString(k.String())
	}
	return sb.String()
}

// Lookup walks segs from root. It fails on the first missing key or when an
// intermediate value is a scalar.
func Lookup(root *Map, segs []Key) (any, bool) {
	var current any = root
	for _, seg := range segs {
		m, ok := current.(*Map)
		if !ok {
			return nil, false
		}
		if current, ok = m.Get(seg); !ok {
			return nil, false
		}
	}
	return current, true
}

// Assign stores v at segs, creating a map for every missing intermediate
// segment. An intermediate scalar is replaced by a fresh map.
func Assign(root *Map, segs []Key, v any) {
	if len(segs) == 0 {
		return
	}
	current := root
	for _, seg := range segs[:len(segs)-1] {
		next, ok := current.Get(seg)
		child, isMap := next.(*Map)
		if !ok || !isMap {
			child = NewMap(0)
			current.Set(seg, child)
		}
		current = child
	}
	current.Set(segs[len(segs)-1], v)
}

// Remove deletes the value at segs. A missing segment anywhere along the
// path makes it a no-op.
func Remove(root *Map, segs []Key) bool {
	if len(segs) == 0 {
		return false
	}
	parent, ok := Lookup(root, segs[:len(segs)-1])
	if !ok {
		return false
	}
	m, ok := parent.(*Map)
	if !ok {
		return false
	}
	return m.Delete(segs[len(segs)-1])
}
