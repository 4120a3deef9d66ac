package container

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/cybergodev/container/internal"
)

// serializedFalse is the one-byte blob of a serialized false value
const serializedFalse = "\xc2"

// IsSerialized reports whether s is a serialized blob: either the serialized
// false marker, or exactly one complete serialized value.
func IsSerialized(s string) bool {
	if s == serializedFalse {
		return true
	}
	if s == "" {
		return false
	}
	r := bytes.NewReader([]byte(s))
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.Reset(r)
	if err := dec.Skip(); err != nil {
		return false
	}
	return r.Len() == 0
}

// Serialize encodes the tree in the serialized blob format, keeping key order
func (c *Container) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)
	enc.Reset(&buf)
	if err := encodeSerialized(enc, c.data); err != nil {
		return nil, newOperationError("serialize", "encoding failed", err)
	}
	return buf.Bytes(), nil
}

// Unserialize creates a container from a serialized blob
func Unserialize(data []byte, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts)
	v, err := decodeSerialized(data, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*internal.Map)
	if !ok {
		return nil, newOperationError("unserialize", "serialized value is not an array", ErrInvalidArgument)
	}
	return newContainer(m, cfg), nil
}

func encodeSerialized(enc *msgpack.Encoder, v any) error {
	switch x := v.(type) {
	case nil:
		return enc.EncodeNil()
	case bool:
		return enc.EncodeBool(x)
	case int:
		return enc.EncodeInt(int64(x))
	case float64:
		return enc.EncodeFloat64(x)
	case string:
		return enc.EncodeString(x)
	case *internal.Map:
		if x.IsList() {
			if err := enc.EncodeArrayLen(x.Len()); err != nil {
				return err
			}
			var err error
			x.Range(func(_ internal.Key, child any) bool {
				err = encodeSerialized(enc, child)
				return err == nil
			})
			return err
		}
		if err := enc.EncodeMapLen(x.Len()); err != nil {
			return err
		}
		var err error
		x.Range(func(k internal.Key, child any) bool {
			if k.IsInt() {
				err = enc.EncodeInt(int64(k.Int()))
			} else {
				err = enc.EncodeString(k.String())
			}
			if err == nil {
				err = encodeSerialized(enc, child)
			}
			return err == nil
		})
		return err
	default:
		return fmt.Errorf("unsupported value of type %T", v)
	}
}

func decodeSerialized(data []byte, maxDepth int) (any, error) {
	r := bytes.NewReader(data)
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.Reset(r)

	v, err := readSerialized(dec, r, 0, maxDepth)
	if err != nil {
		return nil, newOperationError("unserialize", "malformed serialized data", err)
	}
	if r.Len() != 0 {
		return nil, newOperationError("unserialize", "trailing data after serialized value", ErrInvalidArgument)
	}
	return v, nil
}

// readSerialized decodes one value from dec, which reads from r. Each entry
// takes at least one byte, so r bounds the capacity claimed by a header.
func readSerialized(dec *msgpack.Decoder, r *bytes.Reader, depth, maxDepth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("nesting depth exceeds %d", maxDepth)
	}

	code, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		m := internal.NewMap(min(n, r.Len()/2))
		for i := 0; i < n; i++ {
			rawKey, err := dec.DecodeInterfaceLoose()
			if err != nil {
				return nil, err
			}
			k, ok := internal.NormalizeKey(scalarValue(rawKey))
			if !ok {
				return nil, fmt.Errorf("illegal key type %T", rawKey)
			}
			child, err := readSerialized(dec, r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			m.Set(k, child)
		}
		return m, nil

	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		m := internal.NewMap(min(n, r.Len()))
		for i := 0; i < n; i++ {
			child, err := readSerialized(dec, r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			m.Append(child)
		}
		return m, nil
	}

	raw, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, err
	}
	return scalarValue(raw), nil
}

// scalarValue narrows a loosely decoded scalar to the stored scalar types
func scalarValue(v any) any {
	switch x := v.(type) {
	case int64:
		return int(x)
	case uint64:
		return int(x)
	case float32:
		return float64(x)
	case []byte:
		return string(x)
	default:
		return v
	}
}
