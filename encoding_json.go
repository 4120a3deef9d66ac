package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/cybergodev/container/internal"
)

// EncodeOption customizes JSON output
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	pretty      bool
	indent      string
	escapeHTML  bool
	forceObject bool
}

// Pretty indents the output using the container's JSONIndent
func Pretty() EncodeOption {
	return func(ec *encodeConfig) { ec.pretty = true }
}

// Indent indents the output with the given string
func Indent(indent string) EncodeOption {
	return func(ec *encodeConfig) {
		ec.pretty = true
		ec.indent = indent
	}
}

// EscapeHTML toggles escaping of <, > and & inside strings
func EscapeHTML(escape bool) EncodeOption {
	return func(ec *encodeConfig) { ec.escapeHTML = escape }
}

// ForceObject writes list-like levels as objects
func ForceObject() EncodeOption {
	return func(ec *encodeConfig) { ec.forceObject = true }
}

func (c *Container) encodeConfig(opts []EncodeOption) *encodeConfig {
	ec := &encodeConfig{
		indent:     c.config.JSONIndent,
		escapeHTML: c.config.EscapeHTML,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ec)
		}
	}
	return ec
}

// FromJSON creates a container from a JSON document whose top level is an
// array or object.
func FromJSON(data []byte, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts)
	v, err := decodeJSON(data, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*internal.Map)
	if !ok {
		return nil, newOperationError("from_json", "top-level JSON value is not an array or object", ErrInvalidArgument)
	}
	return newContainer(m, cfg), nil
}

// ToJSON encodes the tree as JSON, keeping key order. List-like levels
// become arrays and every other level an object.
func (c *Container) ToJSON(opts ...EncodeOption) (string, error) {
	raw, err := c.encodeJSON(c.encodeConfig(opts))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// MarshalJSON implements json.Marshaler
func (c *Container) MarshalJSON() ([]byte, error) {
	return c.encodeJSON(c.encodeConfig(nil))
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Container) UnmarshalJSON(data []byte) error {
	if c.config == nil {
		c.config = DefaultConfig()
	}
	v, err := decodeJSON(data, c.config.MaxDepth)
	if err != nil {
		return err
	}
	m, ok := v.(*internal.Map)
	if !ok {
		return newOperationError("unmarshal_json", "top-level JSON value is not an array or object", ErrInvalidArgument)
	}
	c.data = m
	c.touch()
	return nil
}

func (c *Container) encodeJSON(ec *encodeConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, c.data, ec); err != nil {
		return nil, newOperationError("to_json", "encoding failed", err)
	}
	if !ec.pretty {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", ec.indent); err != nil {
		return nil, newOperationError("to_json", "indent failed", err)
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any, ec *encodeConfig) error {
	m, ok := v.(*internal.Map)
	if !ok {
		raw, err := marshalScalar(v, ec.escapeHTML)
		if err != nil {
			return err
		}
		buf.Write(raw)
		return nil
	}

	if m.IsList() && !ec.forceObject {
		buf.WriteByte('[')
		for i := 0; i < m.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			_, child := m.At(i)
			if err := writeJSON(buf, child, ec); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}

	buf.WriteByte('{')
	for i := 0; i < m.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, child := m.At(i)
		key, err := marshalScalar(k.String(), ec.escapeHTML)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeJSON(buf, child, ec); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func marshalScalar(v any, escapeHTML bool) ([]byte, error) {
	if escapeHTML {
		return json.Marshal(v)
	}
	return json.MarshalNoEscape(v)
}

// decodeJSON decodes one JSON value, keeping object key order
func decodeJSON(data []byte, maxDepth int) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, newOperationError("decode_json", "empty or malformed JSON", err)
	}
	v, err := readJSONValue(dec, tok, 0, maxDepth)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, newOperationError("decode_json", "trailing data after JSON value", ErrInvalidArgument)
	}
	return v, nil
}

func readJSONValue(dec *json.Decoder, tok json.Token, depth, maxDepth int) (any, error) {
	if depth > maxDepth {
		return nil, newOperationError("decode_json", fmt.Sprintf("nesting depth exceeds %d", maxDepth), ErrBadArgument)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			m := internal.NewMap(0)
			for {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, newOperationError("decode_json", "malformed object", err)
				}
				if d, ok := keyTok.(json.Delim); ok && d == '}' {
					return m, nil
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, newOperationError("decode_json", "object key is not a string", ErrInvalidArgument)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, newOperationError("decode_json", "malformed object value", err)
				}
				child, err := readJSONValue(dec, valTok, depth+1, maxDepth)
				if err != nil {
					return nil, err
				}
				m.Set(internal.StringKey(key), child)
			}
		case '[':
			m := internal.NewMap(0)
			for {
				itemTok, err := dec.Token()
				if err != nil {
					return nil, newOperationError("decode_json", "malformed array", err)
				}
				if d, ok := itemTok.(json.Delim); ok && d == ']' {
					return m, nil
				}
				child, err := readJSONValue(dec, itemTok, depth+1, maxDepth)
				if err != nil {
					return nil, err
				}
				m.Append(child)
			}
		default:
			return nil, newOperationError("decode_json", fmt.Sprintf("unexpected delimiter %q", rune(v)), ErrInvalidArgument)
		}
	case json.Number:
		return numberValue(string(v)), nil
	case float64:
		return v, nil
	case string, bool, nil:
		return v, nil
	default:
		return nil, newOperationError("decode_json", fmt.Sprintf("unexpected token %T", tok), ErrInvalidArgument)
	}
}

// numberValue returns an int when s is an integer literal that fits, else float64
func numberValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return f
}
