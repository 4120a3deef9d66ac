package internal

import (
	"math"
	"strconv"
)

// Key is a single array key. Integer keys and string keys never collide:
// a string holding a canonical decimal integer is always stored as an integer.
type Key struct {
	str   string
	num   int
	isInt bool
}

// IntKey creates an integer key
func IntKey(n int) Key {
	return Key{num: n, isInt: true}
}

// StringKey creates a key from a string, converting canonical integers
func StringKey(s string) Key {
	if n, ok := ParseCanonicalInt(s); ok {
		return IntKey(n)
	}
	return Key{str: s}
}

// IsInt reports whether the key is an integer key
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer value of an integer key, 0 otherwise
func (k Key) Int() int { return k.num }

// String returns the key as it would appear in a dot path
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.num)
	}
	return k.str
}

// Value returns the key as int or string
func (k Key) Value() any {
	if k.isInt {
		return k.num
	}
	return k.str
}

// Less orders integer keys before string keys, integers numerically
// and strings bytewise.
func (k Key) Less(other Key) bool {
	if k.isInt != other.isInt {
		return k.isInt
	}
	if k.isInt {
		return k.num < other.num
	}
	return k.str < other.str
}

// NormalizeKey converts an arbitrary scalar to a Key.
// Floats are truncated, bools become 0/1 and nil becomes the empty string.
func NormalizeKey(v any) (Key, bool) {
	switch k := v.(type) {
	case Key:
		return k, true
	case string:
		return StringKey(k), true
	case int:
		return IntKey(k), true
	case int8:
		return IntKey(int(k)), true
	case int16:
		return IntKey(int(k)), true
	case int32:
		return IntKey(int(k)), true
	case int64:
		return IntKey(int(k)), true
	case uint:
		return IntKey(int(k)), true
	case uint8:
		return IntKey(int(k)), true
	case uint16:
		return IntKey(int(k)), true
	case uint32:
		return IntKey(int(k)), true
	case uint64:
		return IntKey(int(k)), true
	case float32:
		return floatKey(float64(k))
	case float64:
		return floatKey(k)
	case bool:
		if k {
			return IntKey(1), true
		}
		return IntKey(0), true
	case nil:
		return Key{}, true
	default:
		return Key{}, false
	}
}

func floatKey(f float64) (Key, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Key{}, false
	}
	return IntKey(int(f)), true
}

// ParseCanonicalInt parses s only when it is the canonical decimal form of
// an int: no sign on zero, no leading zeros, no '+', no whitespace.
func ParseCanonicalInt(s string) (int, bool) {
	n := len(s)
	if n == 0 || n > 20 {
		return 0, false
	}

	// Fast path for single digit
	if n == 1 {
		if s[0] >= '0' && s[0] <= '9' {
			return int(s[0] - '0'), true
		}
		return 0, false
	}

	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if len(digits) == 0 || digits[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
