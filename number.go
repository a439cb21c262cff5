package safecalc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Number is a calculator value: either an integer or a floating-point
// quantity, mirroring how the literal that produced it was written.
// Arithmetic between integers yields an integer, except division, which
// always yields a floating-point quotient. Integer results that overflow
// int64 promote to floating point instead of wrapping.
type Number struct {
	f     float64
	i     int64
	isInt bool
}

// Int returns the integer Number v.
func Int(v int64) Number {
	return Number{i: v, isInt: true}
}

// Float returns the floating-point Number v.
func Float(v float64) Number {
	return Number{f: v}
}

// IsInt reports whether the number is an integer quantity.
func (n Number) IsInt() bool {
	return n.isInt
}

// Int64 returns the value of an integer Number. It is meaningful only when
// IsInt reports true.
func (n Number) Int64() int64 {
	return n.i
}

// Float64 returns the value as a float64, converting integers.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// String formats the number the way the display shows results. The form
// re-parses to an equal value.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

func (n Number) zero() bool {
	if n.isInt {
		return n.i == 0
	}
	return n.f == 0
}

func (n Number) negative() bool {
	if n.isInt {
		return n.i < 0
	}
	return n.f < 0
}

// parseNumber converts a literal's text to its value. The lexer has already
// validated the shape, so the only parse failure left is overflow.
func parseNumber(s string) Number {
	if !strings.ContainsAny(s, ".eE") {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(v)
		}
		// Too large for int64; fall through to the float form.
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("safecalc: invalid number: " + s + " (" + err.Error() + ")")
	}
	// On ErrRange, ParseFloat already returned the nearest representable
	// value, i.e. ±Inf for huge literals.
	return Float(v)
}

func add(a, b Number) Number {
	if a.isInt && b.isInt {
		if s, ok := addInt(a.i, b.i); ok {
			return Int(s)
		}
	}
	return Float(a.Float64() + b.Float64())
}

func sub(a, b Number) Number {
	if a.isInt && b.isInt {
		if d, ok := subInt(a.i, b.i); ok {
			return Int(d)
		}
	}
	return Float(a.Float64() - b.Float64())
}

func mul(a, b Number) Number {
	if a.isInt && b.isInt {
		if p, ok := mulInt(a.i, b.i); ok {
			return Int(p)
		}
	}
	return Float(a.Float64() * b.Float64())
}

// div is true division: the quotient is floating point regardless of the
// operand types. A zero divisor is the calculator's one special-cased error.
func div(a, b Number) (Number, error) {
	if b.zero() {
		return Number{}, &DivisionError{Op: "/"}
	}
	return Float(a.Float64() / b.Float64()), nil
}

// mod takes the sign of the dividend, as Go's % and math.Mod both do.
func mod(a, b Number) (Number, error) {
	if b.zero() {
		return Number{}, &DivisionError{Op: "%"}
	}
	if a.isInt && b.isInt {
		return Int(a.i % b.i), nil
	}
	return Float(math.Mod(a.Float64(), b.Float64())), nil
}

// pow rejects operations with no real result: a negative base with a
// fractional exponent is a DomainError, and a zero base with a negative
// exponent is division by zero.
func pow(a, b Number) (Number, error) {
	if a.zero() && b.negative() {
		return Number{}, &DivisionError{Op: "**"}
	}
	if a.isInt && b.isInt && b.i >= 0 {
		if r, ok := ipow(a.i, b.i); ok {
			return Int(r), nil
		}
	}
	r := math.Pow(a.Float64(), b.Float64())
	if math.IsNaN(r) {
		return Number{}, &DomainError{Op: "**"}
	}
	return Float(r), nil
}

func neg(n Number) Number {
	if n.isInt {
		if n.i == math.MinInt64 {
			return Float(-n.Float64())
		}
		return Int(-n.i)
	}
	return Float(-n.f)
}

func addInt(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func subInt(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}
	return d, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		// MinInt64 times anything but 1 overflows, and the p/b recovery
		// check below is unreliable at this extreme.
		if a == 1 {
			return b, true
		}
		if b == 1 {
			return a, true
		}
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// ipow is binary exponentiation with exp >= 0, failing on int64 overflow so
// the caller can retry in floating point.
func ipow(base, exp int64) (int64, bool) {
	r := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			var ok bool
			if r, ok = mulInt(r, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		var ok bool
		if base, ok = mulInt(base, base); !ok {
			return 0, false
		}
	}
	return r, true
}
