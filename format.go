package bignum

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String method implements the [fmt.Stringer] interface and returns a string
// representation of a big number.
//
// The non-finite variants render as the fixed tokens "0", "NaN", "+Inf",
// and "-Inf".
// A finite value renders as a conventional decimal string while its exponent
// stays within a human-readable range, and as the mantissa followed by an
// "e" exponent suffix outside it:
//
//	1234.5
//	0.001
//	1.2345e123
//	-1.5e-9000
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Big) String() string {
	switch x.k {
	case kindZero:
		return "0"
	case kindNaN:
		return "NaN"
	case kindPosInf:
		return "+Inf"
	case kindNegInf:
		return "-Inf"
	}
	if -6 <= x.e && x.e <= 20 {
		return x.plain()
	}
	return strconv.FormatFloat(x.m, 'f', -1, 64) + "e" + strconv.FormatInt(x.e, 10)
}

// mantDigits returns the decimal digits of the mantissa without the decimal
// point. The mantissa is normalized, so exactly one digit precedes the point.
func (x Big) mantDigits() string {
	s := strconv.FormatFloat(math.Abs(x.m), 'f', -1, 64)
	if len(s) > 1 {
		return s[:1] + s[2:]
	}
	return s
}

// plain renders a finite value as a conventional decimal string.
func (x Big) plain() string {
	var b []byte
	if x.m < 0 {
		b = append(b, '-')
	}
	digits := x.mantDigits()
	e := int(x.e)
	switch {
	case e < 0:
		b = append(b, '0', '.')
		for i := 0; i < -e-1; i++ {
			b = append(b, '0')
		}
		b = append(b, digits...)
	case e+1 >= len(digits):
		b = append(b, digits...)
		for i := len(digits); i <= e; i++ {
			b = append(b, '0')
		}
	default:
		b = append(b, digits[:e+1]...)
		b = append(b, '.')
		b = append(b, digits[e+1:]...)
	}
	return string(b)
}

func fixedZero(places int) string {
	if places <= 0 {
		return "0"
	}
	return "0." + strings.Repeat("0", places)
}

// StringFixed renders x as a plain decimal string with exactly the given
// number of digits after the decimal point.
//
// Caution: the integer part is never truncated, so it grows with the
// exponent. For very large values use [Big.StringExponential] instead.
// The non-finite variants render as their fixed tokens regardless of places.
func (x Big) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	switch x.k {
	case kindZero:
		return fixedZero(places)
	case kindNaN:
		return "NaN"
	case kindPosInf:
		return "+Inf"
	case kindNegInf:
		return "-Inf"
	}
	if x.e >= sigDigits {
		digits := x.mantDigits()
		if x.e >= int64(len(digits))-1 {
			// Every digit below the float64 significand is a zero.
			var b []byte
			if x.m < 0 {
				b = append(b, '-')
			}
			b = append(b, digits...)
			for i := int64(len(digits)); i <= x.e; i++ {
				b = append(b, '0')
			}
			if places > 0 {
				b = append(b, '.')
				b = append(b, strings.Repeat("0", places)...)
			}
			return string(b)
		}
		// A 16- or 17-digit mantissa still carries fractional digits here;
		// the scaled float64 below is well within range for those exponents.
	}
	return strconv.FormatFloat(x.m*math.Pow(10, float64(x.e)), 'f', places, 64)
}

// StringExponential renders x as its mantissa followed by an "e" exponent
// suffix, with the given number of digits after the decimal point in the
// mantissa:
//
//	1.23e3
//	-6.79e-1234
//
// A mantissa that rounds to 10 at the requested precision carries into the
// next exponent, so 9.99 at one place renders as "1.0e1" rather than "10.0e0".
// The non-finite variants render as their fixed tokens regardless of places.
func (x Big) StringExponential(places int) string {
	if places < 0 {
		places = 0
	}
	switch x.k {
	case kindZero:
		return fixedZero(places)
	case kindNaN:
		return "NaN"
	case kindPosInf:
		return "+Inf"
	case kindNegInf:
		return "-Inf"
	}
	s := strconv.FormatFloat(x.m, 'f', places, 64)
	e := x.e
	// Rounding at the requested precision can carry the mantissa to 10,
	// which belongs to the next decade.
	if strings.HasPrefix(s, "10") || strings.HasPrefix(s, "-10") {
		if e2, ok := addExp(e, 1); ok {
			s = strconv.FormatFloat(x.m/10, 'f', places, 64)
			e = e2
		}
	}
	return s + "e" + strconv.FormatInt(e, 10)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Big.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Big) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 1234.5 or 1.2345e123
//	%q:     "1234.5"
//	%f:     1234.500000 (see [Big.StringFixed])
//	%e:     1.234500e3  (see [Big.StringExponential])
//
// The '+' and ' ' flags print a sign for non-negative values.
// The '-' flag pads with trailing spaces, and the '0' flag pads with leading
// zeros after the sign.
// Precision is supported for the %f and %e verbs and defaults to 6.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Big) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		s = x.String()
	case 'f', 'F':
		prec := 6
		if p, ok := state.Precision(); ok {
			prec = p
		}
		s = x.StringFixed(prec)
	case 'e', 'E':
		prec := 6
		if p, ok := state.Precision(); ok {
			prec = p
		}
		s = x.StringExponential(prec)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(bignum.Big="))
		state.Write([]byte(x.String()))
		state.Write([]byte(")"))
		return
	}

	// Arithmetic sign
	if (state.Flag('+') || state.Flag(' ')) && x.k != kindNaN && s[0] != '-' && s[0] != '+' {
		if state.Flag('+') {
			s = "+" + s
		} else {
			s = " " + s
		}
	}

	// Quotes
	if verb == 'q' || verb == 'Q' {
		s = `"` + s + `"`
	}

	// Padding
	var lspaces, lzeroes, tspaces int
	if w, ok := state.Width(); ok && w > len(s) {
		switch {
		case state.Flag('-'):
			tspaces = w - len(s)
		case state.Flag('0') && verb != 'q' && verb != 'Q':
			lzeroes = w - len(s)
		default:
			lspaces = w - len(s)
		}
	}

	// Writing buffer
	buf := make([]byte, 0, len(s)+lspaces+lzeroes+tspaces)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lzeroes > 0 {
		if s[0] == '-' || s[0] == '+' || s[0] == ' ' {
			buf = append(buf, s[0])
			s = s[1:]
		}
		for i := 0; i < lzeroes; i++ {
			buf = append(buf, '0')
		}
	}
	buf = append(buf, s...)
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}
	state.Write(buf)
}
