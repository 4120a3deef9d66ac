package container

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cybergodev/container/internal"
)

// Key is a single array key, either an integer or a string.
type Key = internal.Key

// IntKey creates an integer key
func IntKey(n int) Key { return internal.IntKey(n) }

// StringKey creates a key from s; canonical integers become integer keys
func StringKey(s string) Key { return internal.StringKey(s) }

// Container is an ordered tree of values addressable by dot paths.
//
// The root is always an ordered array. Nested arrays are owned by the
// container; values handed out by Get, First, Pop and friends are copies.
// A Container is not safe for concurrent mutation.
type Container struct {
	data   *internal.Map
	config *Config
	mods   uint64
}

// New creates a container from input.
//
// Accepted inputs are nil (empty container), another *Container (copied),
// any Arrayable, []Pair, slices, maps, structs, a JSON string, a serialized
// blob or the path of a file FromFile accepts. A path that does not resolve
// fails with ErrNotAFile; anything else fails with ErrInvalidArgument.
func New(input any, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts)

	switch v := input.(type) {
	case nil:
		return newContainer(internal.NewMap(0), cfg), nil
	case string:
		m, err := parseString(v, cfg, true)
		if err != nil {
			return nil, err
		}
		return newContainer(m, cfg), nil
	case []byte:
		m, err := parseString(string(v), cfg, false)
		if err != nil {
			return nil, err
		}
		return newContainer(m, cfg), nil
	}

	m, err := toMap("new", input, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}
	return newContainer(m, cfg), nil
}

// MustNew is like New but panics on error
func MustNew(input any, opts ...Option) *Container {
	c, err := New(input, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// FromPairs creates a container holding pairs in order. A nil key appends.
func FromPairs(pairs ...Pair) (*Container, error) {
	return New(pairs)
}

func newContainer(m *internal.Map, cfg *Config) *Container {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Container{data: m, config: cfg}
}

// parseString decodes s as JSON, then as a serialized blob. When allowPath
// is set, any other string names a file to load.
func parseString(s string, cfg *Config, allowPath bool) (*internal.Map, error) {
	ctx := context.Background()

	v, jsonErr := decodeJSON([]byte(s), cfg.MaxDepth)
	if jsonErr == nil {
		if m, ok := v.(*internal.Map); ok {
			return m, nil
		}
	}
	if looksLikeJSON(s) {
		return nil, newOperationError("new", "string is not a JSON array", ErrInvalidArgument)
	}

	if IsSerialized(s) {
		v, err := decodeSerialized([]byte(s), cfg.MaxDepth)
		if err == nil {
			if m, ok := v.(*internal.Map); ok {
				return m, nil
			}
		}
	}

	if !allowPath || s == "" || strings.ContainsRune(s, 0) {
		return nil, newOperationError("new", "input is neither a JSON array nor a serialized array", ErrInvalidArgument)
	}

	logDebug(ctx, "input is not JSON or serialized, loading as a file", "new", s,
		slog.Int("length", len(s)))
	c, err := FromFile(s, WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	return c.data, nil
}

// looksLikeJSON reports whether s opens a JSON object or array
func looksLikeJSON(s string) bool {
	trimmed := strings.TrimLeft(s, " \t\r\n")
	return trimmed != "" && (trimmed[0] == '{' || trimmed[0] == '[')
}

// derive creates a container sharing this container's configuration
func (c *Container) derive(m *internal.Map) *Container {
	return newContainer(m, c.config)
}

// touch records a mutation for iterator invalidation
func (c *Container) touch() {
	c.mods++
}

// Config returns a copy of the container configuration
func (c *Container) Config() *Config {
	return c.config.Clone()
}

// Copy returns an independent deep copy
func (c *Container) Copy() *Container {
	return c.derive(c.data.Clone())
}

// Len returns the number of immediate children
func (c *Container) Len() int {
	return c.data.Len()
}

// Count returns Len, or the number of entries at every depth when recursive
func (c *Container) Count(recursive bool) int {
	if !recursive {
		return c.data.Len()
	}
	return countRecursive(c.data)
}

func countRecursive(m *internal.Map) int {
	n := 0
	m.Range(func(_ internal.Key, v any) bool {
		n++
		if child, ok := v.(*internal.Map); ok {
			n += countRecursive(child)
		}
		return true
	})
	return n
}

// IsEmpty reports whether the container has no children
func (c *Container) IsEmpty() bool {
	return c.data.Len() == 0
}

// IsList reports whether the keys are exactly 0..n-1 in order
func (c *Container) IsList() bool {
	return c.data.IsList()
}

// IsAssoc reports whether the container is not list-like
func (c *Container) IsAssoc() bool {
	return !c.data.IsList()
}

// Keys returns the immediate keys as a list container
func (c *Container) Keys() *Container {
	out := internal.NewMap(c.data.Len())
	c.data.Range(func(k internal.Key, _ any) bool {
		out.Append(k.Value())
		return true
	})
	return c.derive(out)
}

// KeyList returns the immediate keys in order
func (c *Container) KeyList() []Key {
	return c.data.Keys()
}

// Values returns the immediate values re-keyed 0..n-1
func (c *Container) Values() *Container {
	return c.derive(c.data.Clone().ValueList())
}

// Reindex renumbers integer keys from 0, closing gaps left by Forget
func (c *Container) Reindex() *Container {
	c.data = c.data.Reindexed()
	c.touch()
	return c
}

// Reset removes every child
func (c *Container) Reset() *Container {
	c.data.Clear()
	c.touch()
	return c
}

// Equal reports loose structural equality with other
func (c *Container) Equal(other any) bool {
	m, err := toMap("equal", other, c.config.MaxDepth)
	if err != nil {
		return false
	}
	return internal.LooseEqual(c.data, m)
}

// ToArray converts the tree to plain Go values: list-like levels become
// []any and every other level map[string]any.
func (c *Container) ToArray() any {
	return nativeValue(c.data)
}

// String returns the compact JSON form
func (c *Container) String() string {
	s, err := c.ToJSON()
	if err != nil {
		return ""
	}
	return s
}
