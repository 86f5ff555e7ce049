package bignum

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errInvalidNumber = errors.New("invalid number")
	errExponentRange = errors.New("exponent out of range")
)

// maxParseDigits is the number of significant decimal digits kept during
// parsing; a float64 mantissa cannot distinguish more.
const maxParseDigits = 19

// Parse converts a string to a (possibly rounded) big number.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//	1.5e10
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Parse also accepts the fixed renderings of the non-finite variants, in the
// case-insensitive forms recognized by [strconv.ParseFloat]: "NaN", and "Inf"
// or "Infinity" with an optional sign.
//
// Parse returns an error:
//   - if the string does not represent a valid number;
//   - if the exponent does not fit the int64 range.
//
// A malformed string is a caller-input error, never a NaN result.
func Parse(s string) (Big, error) {
	if x, ok := parseToken(s); ok {
		return x, nil
	}

	var (
		pos     int
		width   int
		neg     bool
		digits  []byte // significant digits, leading zeros stripped
		decExp  int64  // exponent of the leading significant digit
		sig     bool
		hascoef bool
		eneg    bool
		exp     int64
		hasexp  bool
		hase    bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		switch {
		case !sig:
			if s[pos] != '0' {
				sig = true
				digits = append(digits, s[pos])
			}
		default:
			decExp++
			if len(digits) < maxParseDigits {
				digits = append(digits, s[pos])
			}
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			switch {
			case !sig:
				decExp--
				if s[pos] != '0' {
					sig = true
					digits = append(digits, s[pos])
				}
			case len(digits) < maxParseDigits:
				digits = append(digits, s[pos])
			}
			pos++
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hase = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			d := int64(s[pos] - '0')
			switch {
			case eneg:
				if exp < (math.MinInt64+d)/10 {
					return Big{}, fmt.Errorf("parsing %q: %w", s, errExponentRange)
				}
				exp = exp*10 - d
			default:
				if exp > (math.MaxInt64-d)/10 {
					return Big{}, fmt.Errorf("parsing %q: %w", s, errExponentRange)
				}
				exp = exp*10 + d
			}
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return Big{}, fmt.Errorf("invalid character %q: %w", s[pos], errInvalidNumber)
	}
	if !hascoef {
		return Big{}, fmt.Errorf("no digits: %w", errInvalidNumber)
	}
	if hase && !hasexp {
		return Big{}, fmt.Errorf("no exponent digits: %w", errInvalidNumber)
	}
	if !sig {
		// All digits are zeros; the sign and the exponent are irrelevant.
		return Big{}, nil
	}

	e, ok := addExp(exp, decExp)
	if !ok {
		return Big{}, fmt.Errorf("parsing %q: %w", s, errExponentRange)
	}

	// The significant digits in scientific position form a plain float64
	// literal, so the mantissa conversion is correctly rounded in one step.
	ms := string(digits[:1])
	if len(digits) > 1 {
		ms += "." + string(digits[1:])
	}
	m, err := strconv.ParseFloat(ms, 64)
	if err != nil {
		return Big{}, fmt.Errorf("parsing %q: %w", s, errInvalidNumber)
	}
	if neg {
		m = -m
	}
	return New(m, e), nil
}

// parseToken recognizes the fixed renderings of the non-finite variants.
func parseToken(s string) (Big, bool) {
	if strings.EqualFold(s, "nan") {
		return NaN(), true
	}
	t := s
	sign := 1
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		if t[0] == '-' {
			sign = -1
		}
		t = t[1:]
	}
	if strings.EqualFold(t, "inf") || strings.EqualFold(t, "infinity") {
		return Inf(sign), true
	}
	return Big{}, false
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding big numbers.
func MustParse(s string) Big {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Big) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}
