package bignum

import "math"

// kind discriminates the variants of a [Big].
type kind uint8

const (
	kindZero kind = iota
	kindFinite
	kindPosInf
	kindNegInf
	kindNaN
)

// Big type is a representation of an extended-range decimal floating-point number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines, as long
// as each goroutine mutates only values it owns.
//
// A big number is one of five variants:
//
//   - Zero: the exact additive identity.
//   - Finite: a value of the form mantissa * 10^exponent, where the mantissa is
//     a float64 with 1.0 <= |mantissa| < 10.0 and the exponent is an int64.
//   - Positive and negative infinity: signed overflow sentinels.
//   - NaN: the undefined-result sentinel.
//
// The representable finite range therefore spans magnitudes from roughly
// 10^math.MinInt64 up to just under 10^math.MaxInt64, in both signs, with the
// precision of a float64 significand.
// Exceeding the exponent range during an operation collapses the result to the
// correctly signed infinity, and falling below it collapses the result to Zero.
//
// The mantissa range invariant is maintained by every operation except the
// Raw-suffixed fast paths, which leave it to the caller to restore via
// [Big.Normalize].
//
// Note that the Go == operator compares representations, not numeric values:
// under this type's comparison semantics NaN is unequal to NaN and same-signed
// infinities are unequal, so use [Big.Equal] and [Big.Cmp] instead.
type Big struct {
	m float64 // the mantissa; meaningful only for the finite variant
	e int64   // the base-10 exponent; meaningful only for the finite variant
	k kind    // the variant tag
}

// New returns a big number equal to mantissa * 10^exponent.
// The result is normalized: a NaN mantissa yields NaN, an infinite mantissa
// yields the correspondingly signed infinity, a zero mantissa yields Zero,
// and any other mantissa is shifted into [1, 10) with the exponent adjusted
// by the same power of ten.
func New(mantissa float64, exponent int64) Big {
	x := NewRaw(mantissa, exponent)
	x.Normalize()
	return x
}

// NewRaw returns a finite big number with the given raw mantissa and exponent,
// skipping normalization.
//
// Caution: the result violates the mantissa range invariant until
// [Big.Normalize] is called, and comparisons, formatting, and further
// arithmetic on it are undefined until then.
// Use [New] unless a chain of raw operations is being deliberately deferred.
func NewRaw(mantissa float64, exponent int64) Big {
	return Big{m: mantissa, e: exponent, k: kindFinite}
}

// NaN returns the not-a-number sentinel.
// NaN is unequal to every value, including another NaN, so test for it with
// [Big.IsNaN] rather than with [Big.Equal].
func NaN() Big {
	return Big{k: kindNaN}
}

// Inf returns positive infinity if sign >= 0 and negative infinity if sign < 0.
func Inf(sign int) Big {
	if sign >= 0 {
		return Big{k: kindPosInf}
	}
	return Big{k: kindNegInf}
}

// NewFromFloat64 converts a float64 to a (possibly rounded) big number.
// A NaN input yields NaN, infinite inputs yield the signed infinities,
// and zero yields Zero.
func NewFromFloat64(f float64) Big {
	return New(f, 0)
}

// NewFromFloat32 converts a float32 to a (possibly rounded) big number.
// Also see function [NewFromFloat64].
func NewFromFloat32(f float32) Big {
	return New(float64(f), 0)
}

// NewFromInt64 converts an int64 to a (possibly rounded) big number.
// Values above 2^53 in magnitude lose precision to the float64 mantissa.
func NewFromInt64(i int64) Big {
	return New(float64(i), 0)
}

// NewFromInt32 converts an int32 to a big number exactly.
func NewFromInt32(i int32) Big {
	return New(float64(i), 0)
}

// NewFromInt converts an int to a (possibly rounded) big number.
// Also see function [NewFromInt64].
func NewFromInt(i int) Big {
	return New(float64(i), 0)
}

// NewFromUint64 converts a uint64 to a (possibly rounded) big number.
// Also see function [NewFromInt64].
func NewFromUint64(u uint64) Big {
	return New(float64(u), 0)
}

// Normalize restores the representation invariant after raw-path operations.
//
// A finite value with a NaN, infinite, or zero mantissa collapses to the
// corresponding variant.
// Any other mantissa is shifted into [1, 10) in magnitude, adjusting the
// exponent by the same power of ten; if the adjusted exponent overflows the
// int64 range the value collapses to the correctly signed infinity, and if it
// underflows the value collapses to Zero.
//
// The shift distance is derived from the base-10 logarithm of the mantissa
// rather than by repeated division, so the cost is constant regardless of how
// far the mantissa has drifted.
//
// Values produced by non-raw operations are already normalized, and
// normalizing them again is a no-op.
func (x *Big) Normalize() {
	if x.k != kindFinite {
		return
	}
	switch {
	case x.m == 0:
		*x = Big{}
		return
	case math.IsNaN(x.m):
		*x = NaN()
		return
	case math.IsInf(x.m, 1):
		*x = Inf(1)
		return
	case math.IsInf(x.m, -1):
		*x = Inf(-1)
		return
	case 1 <= x.m && x.m < 10, -10 < x.m && x.m <= -1:
		return
	}

	shift := int64(math.Floor(math.Log10(math.Abs(x.m))))
	e, ok := addExp(x.e, shift)
	if !ok {
		if shift > 0 {
			*x = Inf(fsign(x.m))
		} else {
			*x = Big{}
		}
		return
	}
	switch {
	case shift >= -307:
		x.m /= pow10f(shift)
	default:
		// Subnormal mantissa: 10^shift would underflow to zero, so scale in
		// two steps.
		x.m *= 1e300
		x.m /= pow10f(shift + 300)
	}
	x.e = e

	// The shifted mantissa can round to exactly +-10, or land one ulp
	// below +-1 when the input sits one ulp under a power of ten.
	switch {
	case x.m >= 10 || x.m <= -10:
		e, ok := addExp(x.e, 1)
		if !ok {
			*x = Inf(fsign(x.m))
			return
		}
		x.m /= 10
		x.e = e
	case -1 < x.m && x.m < 1:
		e, ok := addExp(x.e, -1)
		if !ok {
			*x = Big{}
			return
		}
		x.m *= 10
		x.e = e
	}
}

// IsNaN reports whether x is NaN.
// Use this method because NaN is unequal to NaN.
func (x Big) IsNaN() bool {
	return x.k == kindNaN
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
// Use this method because an infinity is unequal to itself.
func (x Big) IsInf(sign int) bool {
	return (sign >= 0 && x.k == kindPosInf) || (sign <= 0 && x.k == kindNegInf)
}

// IsZero reports whether x is the Zero variant.
func (x Big) IsZero() bool {
	return x.k == kindZero
}

// IsFinite reports whether x is a finite nonzero value.
func (x Big) IsFinite() bool {
	return x.k == kindFinite
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0 or x is NaN
//	+1 if x > 0
func (x Big) Sign() int {
	switch x.k {
	case kindPosInf:
		return 1
	case kindNegInf:
		return -1
	case kindFinite:
		return fsign(x.m)
	}
	return 0
}

// Mantissa returns the raw mantissa field of x.
// For the non-finite variants it returns the float64 counterpart of the
// variant: 0 for Zero, the signed infinities, or float64 NaN.
// Also see method [Big.Exponent].
func (x Big) Mantissa() float64 {
	switch x.k {
	case kindNaN:
		return math.NaN()
	case kindPosInf:
		return math.Inf(1)
	case kindNegInf:
		return math.Inf(-1)
	}
	return x.m
}

// Exponent returns the raw exponent field of x.
// It is 0 for the non-finite variants.
// Also see method [Big.Mantissa].
func (x Big) Exponent() int64 {
	return x.e
}

// NegMut inverts the sign of x in place.
// Zero and NaN are unchanged.
func (x *Big) NegMut() {
	switch x.k {
	case kindPosInf:
		x.k = kindNegInf
	case kindNegInf:
		x.k = kindPosInf
	case kindFinite:
		x.m = -x.m
	}
}

// Neg returns x with the opposite sign.
// Also see method [Big.NegMut].
func (x Big) Neg() Big {
	x.NegMut()
	return x
}

// AbsMut replaces x with its absolute value in place.
func (x *Big) AbsMut() {
	switch x.k {
	case kindNegInf:
		x.k = kindPosInf
	case kindFinite:
		x.m = math.Abs(x.m)
	}
}

// Abs returns the absolute value of x.
// Also see method [Big.AbsMut].
func (x Big) Abs() Big {
	x.AbsMut()
	return x
}

// Float64 returns the nearest float64 to x.
// Values whose exponent is beyond the float64 range saturate to the signed
// float64 infinities or collapse to zero; NaN converts to float64 NaN.
// The conversion is lossy for exponents above the cached power-of-ten range.
func (x Big) Float64() float64 {
	switch x.k {
	case kindZero:
		return 0
	case kindNaN:
		return math.NaN()
	case kindPosInf:
		return math.Inf(1)
	case kindNegInf:
		return math.Inf(-1)
	}
	return x.m * math.Pow(10, float64(x.e))
}
