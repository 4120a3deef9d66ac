package internal

import (
	"math"
	"strconv"
	"strings"
)

// IsNumericString reports whether s reads as a decimal number, allowing
// surrounding whitespace, a sign, a fraction and an exponent.
func IsNumericString(s string) bool {
	_, ok := parseNumeric(s)
	return ok
}

func parseNumeric(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}
	digits := false
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return 0, false
		}
	}
	if !digits {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToNumber converts numbers, bools, nil and numeric strings to float64
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case nil:
		return 0, true
	case string:
		return parseNumeric(n)
	default:
		return 0, false
	}
}

// ToBool reports truthiness: false, 0, 0.0, "", "0", nil
// and the empty array are false.
func ToBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case int:
		return b != 0
	case float64:
		return b != 0
	case string:
		return b != "" && b != "0"
	case *Map:
		return b.Len() > 0
	default:
		return true
	}
}

// ScalarString converts a scalar to its string form: true is "1",
// false and nil are "", integral floats print without a fraction.
func ScalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case float64:
		return FormatFloat(s)
	case bool:
		if s {
			return "1"
		}
		return ""
	case nil:
		return ""
	case *Map:
		return "Array"
	default:
		return ""
	}
}

// FormatFloat formats f the way it appears when converted to a string
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'G', -1, 64)
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, float64:
		return true
	}
	return false
}

// LooseEqual compares two values loosely
func LooseEqual(a, b any) bool {
	am, aIsMap := a.(*Map)
	bm, bIsMap := b.(*Map)
	switch {
	case aIsMap && bIsMap:
		if am.Len() != bm.Len() {
			return false
		}
		equal := true
		am.Range(func(k Key, v any) bool {
			other, ok := bm.Get(k)
			if !ok || !LooseEqual(v, other) {
				equal = false
			}
			return equal
		})
		return equal
	case aIsMap || bIsMap:
		switch b.(type) {
		case nil, bool:
			return ToBool(a) == ToBool(b)
		}
		switch a.(type) {
		case nil, bool:
			return ToBool(a) == ToBool(b)
		}
		return false
	}

	switch av := a.(type) {
	case nil:
		if bs, ok := b.(string); ok {
			return bs == ""
		}
		return !ToBool(b)
	case bool:
		return av == ToBool(b)
	case string:
		switch bv := b.(type) {
		case nil:
			return av == ""
		case bool:
			return ToBool(av) == bv
		case string:
			if an, ok := parseNumeric(av); ok {
				if bn, ok := parseNumeric(bv); ok {
					return an == bn
				}
			}
			return av == bv
		case int, float64:
			return numberEqualsString(bv, av)
		}
	case int, float64:
		switch bv := b.(type) {
		case nil, bool:
			return ToBool(av) == ToBool(bv)
		case string:
			return numberEqualsString(av, bv)
		case int, float64:
			return numbersEqual(av, bv)
		}
	}
	return false
}

func numberEqualsString(n any, s string) bool {
	if sn, ok := parseNumeric(s); ok {
		f, _ := ToNumber(n)
		return f == sn
	}
	return ScalarString(n) == s
}

func numbersEqual(a, b any) bool {
	ai, aInt := a.(int)
	bi, bInt := b.(int)
	if aInt && bInt {
		return ai == bi
	}
	af, _ := ToNumber(a)
	bf, _ := ToNumber(b)
	return af == bf
}

// StrictEqual compares type and value; arrays must match key order too
func StrictEqual(a, b any) bool {
	am, aIsMap := a.(*Map)
	bm, bIsMap := b.(*Map)
	if aIsMap || bIsMap {
		if !aIsMap || !bIsMap || am.Len() != bm.Len() {
			return false
		}
		for i := 0; i < am.Len(); i++ {
			ak, av := am.At(i)
			bk, bv := bm.At(i)
			if ak != bk || !StrictEqual(av, bv) {
				return false
			}
		}
		return true
	}
	return a == b
}

// Compare orders two values: numbers and numeric strings numerically,
// other strings bytewise, arrays by length. It returns -1, 0 or 1.
func Compare(a, b any) int {
	if isNumber(a) || isNumber(b) || isNumericPair(a, b) {
		af, aok := ToNumber(a)
		bf, bok := ToNumber(b)
		if aok && bok {
			return cmpFloat(af, bf)
		}
	}
	am, aIsMap := a.(*Map)
	bm, bIsMap := b.(*Map)
	switch {
	case aIsMap && bIsMap:
		return cmpFloat(float64(am.Len()), float64(bm.Len()))
	case aIsMap:
		return 1
	case bIsMap:
		return -1
	}
	if _, ok := a.(bool); ok {
		return cmpBool(ToBool(a), ToBool(b))
	}
	if _, ok := b.(bool); ok {
		return cmpBool(ToBool(a), ToBool(b))
	}
	return strings.Compare(ScalarString(a), ScalarString(b))
}

func isNumericPair(a, b any) bool {
	as, aok := a.(string)
	bs, bok := b.(string)
	return aok && bok && IsNumericString(as) && IsNumericString(bs)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
