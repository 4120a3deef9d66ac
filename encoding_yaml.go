package container

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cybergodev/container/internal"
)

// FromYAML creates a container from a YAML document whose top level is a
// mapping or sequence. Mapping order is kept.
func FromYAML(data []byte, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts)

	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, newOperationError("from_yaml", "malformed YAML", err)
	}
	r := &yamlReader{maxDepth: cfg.MaxDepth}
	v, err := r.value(&doc, 0)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*internal.Map)
	if !ok {
		return nil, newOperationError("from_yaml", "top-level YAML value is not a mapping or sequence", ErrInvalidArgument)
	}
	return newContainer(m, cfg), nil
}

// ToYAML encodes the tree as YAML, keeping key order
func (c *Container) ToYAML() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(c.data)); err != nil {
		return "", newOperationError("to_yaml", "encoding failed", err)
	}
	if err := enc.Close(); err != nil {
		return "", newOperationError("to_yaml", "encoding failed", err)
	}
	return buf.String(), nil
}

// MarshalYAML implements yaml.Marshaler
func (c *Container) MarshalYAML() (any, error) {
	return yamlNode(c.data), nil
}

func yamlNode(v any) *yaml.Node {
	switch x := v.(type) {
	case *internal.Map:
		if x.IsList() && x.Len() > 0 {
			n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			x.Range(func(_ internal.Key, child any) bool {
				n.Content = append(n.Content, yamlNode(child))
				return true
			})
			return n
		}
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if x.Len() == 0 {
			n.Style = yaml.FlowStyle
		}
		x.Range(func(k internal.Key, child any) bool {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.String()}
			if k.IsInt() {
				key.Tag = "!!int"
			}
			n.Content = append(n.Content, key, yamlNode(child))
			return true
		})
		return n
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(x)}
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(x)}
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(x, 'g', -1, 64)}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: internal.ScalarString(v)}
	}
}

// yamlReader converts a yaml.Node tree into container values. Aliases are
// expanded by hand, so it applies the same alias budget yaml.v3 applies
// when decoding into Go values.
type yamlReader struct {
	maxDepth    int
	decodeCount int
	aliasCount  int
	aliasDepth  int
}

// allowedAliasRatio returns the share of decoded nodes that may come from
// alias expansion after decodeCount nodes.
func allowedAliasRatio(decodeCount int) float64 {
	switch {
	case decodeCount <= 400000:
		return 0.99
	case decodeCount >= 4000000:
		return 0.10
	}
	return 0.99 - 0.89*(float64(decodeCount-400000)/3600000)
}

func (r *yamlReader) value(n *yaml.Node, depth int) (any, error) {
	if depth > r.maxDepth {
		return nil, newOperationError("from_yaml", fmt.Sprintf("nesting depth exceeds %d", r.maxDepth), ErrBadArgument)
	}

	r.decodeCount++
	if r.aliasDepth > 0 {
		r.aliasCount++
	}
	if r.aliasCount > 100 && r.decodeCount > 1000 &&
		float64(r.aliasCount)/float64(r.decodeCount) > allowedAliasRatio(r.decodeCount) {
		return nil, newOperationError("from_yaml", "document contains excessive aliasing", ErrBadArgument)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return internal.NewMap(0), nil
		}
		return r.value(n.Content[0], depth)

	case yaml.AliasNode:
		r.aliasDepth++
		v, err := r.value(n.Alias, depth+1)
		r.aliasDepth--
		return v, err

	case yaml.SequenceNode:
		m := internal.NewMap(len(n.Content))
		for _, item := range n.Content {
			child, err := r.value(item, depth+1)
			if err != nil {
				return nil, err
			}
			m.Append(child)
		}
		return m, nil

	case yaml.MappingNode:
		m := internal.NewMap(len(n.Content) / 2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := r.value(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			m.Set(internal.StringKey(n.Content[i].Value), child)
		}
		return m, nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, newOperationError("from_yaml", "malformed scalar", err)
		}
		return toValue(v, depth, r.maxDepth)
	}

	return nil, newOperationError("from_yaml", fmt.Sprintf("unsupported node kind %d", n.Kind), ErrInvalidArgument)
}
