package bignum

import "math"

// sigDigits is the decimal digit span of a float64 significand.
// When the exponent gap between two finite operands reaches it, the smaller
// operand is beyond the precision of the larger and contributes nothing.
const sigDigits = 15

const (
	maxExpFloat = float64(math.MaxInt64)
	minExpFloat = float64(math.MinInt64)
)

// AddRaw adds y to x in place without normalizing the result.
//
// Caution: the finite result may violate the mantissa range invariant until
// [Big.Normalize] is called.
// Use [Big.AddMut] or [Big.Add] unless a chain of raw operations is being
// deliberately deferred.
func (x *Big) AddRaw(y Big) {
	switch {
	case x.k == kindNaN || y.k == kindNaN:
		*x = NaN()
	case x.IsInf(0):
		// Opposite-signed infinities cancel into indeterminacy.
		if y.IsInf(0) && x.k != y.k {
			*x = NaN()
		}
	case y.IsInf(0):
		*x = y
	case y.k == kindZero:
		// x unchanged
	case x.k == kindZero:
		*x = y
	default:
		switch {
		case y.e > x.e:
			if gap := expGap(y.e, x.e); gap < sigDigits {
				x.m += y.m * pow10[gap]
			} else {
				*x = y
			}
		case y.e < x.e:
			if gap := expGap(x.e, y.e); gap < sigDigits {
				x.m += y.m / pow10[gap]
			}
		default:
			x.m += y.m
		}
	}
}

// AddMut adds y to x in place and normalizes the result.
func (x *Big) AddMut(y Big) {
	x.AddRaw(y)
	x.Normalize()
}

// Add returns the (possibly rounded) sum of x and y.
//
// The variant rules are:
//
//   - NaN + anything is NaN.
//   - Same-signed infinities keep their sign; opposite-signed infinities
//     yield NaN.
//   - An infinity plus a finite value or Zero is that infinity.
//   - Zero is the additive identity.
//
// A finite pair is added by aligning exponents; when the exponent gap exceeds
// the float64 digit span the smaller operand contributes nothing.
func (x Big) Add(y Big) Big {
	x.AddMut(y)
	return x
}

// SubRaw subtracts y from x in place without normalizing the result.
//
// Caution: the finite result may violate the mantissa range invariant until
// [Big.Normalize] is called.
// Use [Big.SubMut] or [Big.Sub] unless a chain of raw operations is being
// deliberately deferred.
func (x *Big) SubRaw(y Big) {
	y.NegMut()
	x.AddRaw(y)
}

// SubMut subtracts y from x in place and normalizes the result.
func (x *Big) SubMut(y Big) {
	x.SubRaw(y)
	x.Normalize()
}

// Sub returns the (possibly rounded) difference of x and y.
// Subtraction is addition of the negation, so x - y follows the [Big.Add]
// variant rules with y's sign inverted: same-signed infinities yield NaN,
// while opposite-signed infinities keep the sign of x.
func (x Big) Sub(y Big) Big {
	x.SubMut(y)
	return x
}

// MulRaw multiplies x by y in place without normalizing the result.
//
// Caution: the finite result may violate the mantissa range invariant until
// [Big.Normalize] is called.
// Use [Big.MulMut] or [Big.Mul] unless a chain of raw operations is being
// deliberately deferred.
func (x *Big) MulRaw(y Big) {
	switch {
	case x.k == kindNaN || y.k == kindNaN:
		*x = NaN()
	case x.IsInf(0) || y.IsInf(0):
		// An infinity stretched by nothing is indeterminate.
		if x.k == kindZero || y.k == kindZero {
			*x = NaN()
			return
		}
		*x = Inf(x.Sign() * y.Sign())
	case x.k == kindZero:
		// x unchanged
	case y.k == kindZero:
		*x = Big{}
	default:
		x.m *= y.m
		e, ok := addExp(x.e, y.e)
		if !ok {
			if y.e > 0 {
				*x = Inf(fsign(x.m))
			} else {
				*x = Big{}
			}
			return
		}
		x.e = e
	}
}

// MulMut multiplies x by y in place and normalizes the result.
func (x *Big) MulMut(y Big) {
	x.MulRaw(y)
	x.Normalize()
}

// Mul returns the (possibly rounded) product of x and y.
//
// The variant rules are:
//
//   - NaN * anything is NaN.
//   - An infinity times any nonzero value is the infinity whose sign is the
//     product of the operand signs.
//   - An infinity times Zero is NaN (indeterminate form).
//   - Zero times any finite value is Zero.
//
// A finite pair multiplies mantissas and adds exponents; exponent overflow
// collapses to the correctly signed infinity and underflow collapses to Zero.
func (x Big) Mul(y Big) Big {
	x.MulMut(y)
	return x
}

// QuoRaw divides x by y in place without normalizing the result.
//
// Caution: the finite result may violate the mantissa range invariant until
// [Big.Normalize] is called.
// Use [Big.QuoMut] or [Big.Quo] unless a chain of raw operations is being
// deliberately deferred.
func (x *Big) QuoRaw(y Big) {
	switch {
	case x.k == kindNaN || y.k == kindNaN:
		*x = NaN()
	case x.IsInf(0):
		switch {
		case y.IsInf(0):
			*x = NaN()
		case y.k == kindZero:
			// dividend-signed infinity, x unchanged
		default:
			*x = Inf(x.Sign() * y.Sign())
		}
	case y.IsInf(0):
		*x = Big{}
	case y.k == kindZero:
		if x.k == kindZero {
			*x = NaN()
		} else {
			*x = Inf(fsign(x.m))
		}
	case x.k == kindZero:
		// x unchanged
	default:
		x.m /= y.m
		e, ok := subExp(x.e, y.e)
		if !ok {
			if y.e < 0 {
				*x = Inf(fsign(x.m))
			} else {
				*x = Big{}
			}
			return
		}
		x.e = e
	}
}

// QuoMut divides x by y in place and normalizes the result.
func (x *Big) QuoMut(y Big) {
	x.QuoRaw(y)
	x.Normalize()
}

// Quo returns the (possibly rounded) quotient of x and y.
//
// The variant rules are:
//
//   - NaN / anything is NaN.
//   - Infinity / Infinity and Zero / Zero are NaN (indeterminate forms).
//   - A finite value or Zero divided by an infinity is Zero.
//   - An infinity divided by a finite value is the sign-adjusted infinity.
//   - Any nonzero value divided by Zero is the dividend-signed infinity.
//
// A finite pair divides mantissas and subtracts exponents; exponent overflow
// collapses to the correctly signed infinity and underflow collapses to Zero.
func (x Big) Quo(y Big) Big {
	x.QuoMut(y)
	return x
}

// RemRaw replaces x with the remainder of x / y in place without normalizing
// the result.
//
// Caution: the finite result may violate the mantissa range invariant until
// [Big.Normalize] is called.
// Use [Big.RemMut] or [Big.Rem] unless a chain of raw operations is being
// deliberately deferred.
func (x *Big) RemRaw(y Big) {
	switch {
	case x.k == kindNaN || y.k == kindNaN:
		*x = NaN()
	case y.k == kindZero:
		*x = NaN()
	case x.IsInf(0):
		*x = NaN()
	case x.k == kindZero:
		// x unchanged
	case y.IsInf(0):
		// a finite value modulo an infinity is the value itself
	default:
		// Scale the divisor mantissa to the dividend's exponent.
		// The exponent gap is taken in float64 space, where it cannot
		// overflow: a gap beyond the float64 range means the divisor either
		// dwarfs the dividend (remainder is the dividend) or vanishes
		// against it (remainder is zero).
		scaled := y.m * math.Pow(10, float64(y.e)-float64(x.e))
		switch {
		case math.IsInf(scaled, 0):
			// x unchanged
		case scaled == 0:
			x.m = 0
		default:
			x.m = math.Mod(x.m, scaled)
		}
	}
}

// RemMut replaces x with the remainder of x / y in place and normalizes
// the result.
func (x *Big) RemMut(y Big) {
	x.RemRaw(y)
	x.Normalize()
}

// Rem returns the remainder of x / y.
// The result has the sign of x, matching [math.Mod].
//
// The variant rules are:
//
//   - NaN % anything and anything % NaN are NaN.
//   - Anything % Zero is NaN, as is an infinity % anything.
//   - Zero % any nonzero value is Zero.
//   - A finite value % an infinity is the value itself.
func (x Big) Rem(y Big) Big {
	x.RemMut(y)
	return x
}

// PowMut raises x to the given real power in place.
// See [Big.Pow] for the variant rules.
func (x *Big) PowMut(power float64) {
	switch x.k {
	case kindNaN:
		return
	case kindZero:
		switch {
		case math.IsNaN(power) || power == 0:
			*x = NaN()
		case power < 0:
			*x = Inf(1)
		}
		// Positive powers of Zero, including +Inf, stay Zero.
		return
	}
	if math.IsNaN(power) {
		*x = NaN()
		return
	}

	// A negative base has a real power only for integer exponents;
	// odd ones carry the sign through to the result.
	neg := false
	if x.Sign() < 0 {
		if power != math.Trunc(power) {
			*x = NaN()
			return
		}
		neg = math.Mod(power, 2) != 0
	}

	lg := x.Abs().log10f() * power
	switch {
	case math.IsNaN(lg):
		*x = NaN()
	case math.IsInf(lg, -1), lg < minExpFloat:
		*x = Big{}
	case math.IsInf(lg, 1), lg >= maxExpFloat:
		*x = Inf(1)
	default:
		flr := math.Floor(lg)
		x.m = math.Pow(10, lg-flr)
		x.e = int64(flr)
		x.Normalize()
	}
	if neg {
		x.NegMut()
	}
}

// Pow returns (possibly rounded) x raised to the given real power.
// The magnitude is computed in logarithmic space, so the cost is constant
// regardless of the power.
//
// The variant rules are:
//
//   - NaN to any power, and any value to a NaN power, is NaN.
//   - Zero to a positive power is Zero, to a negative power is positive
//     infinity, and to the zeroth power is NaN.
//   - A negative base raised to a non-integer power is NaN; integer powers
//     follow the algebraic sign rule.
//   - A result whose exponent overflows the int64 range collapses to the
//     signed infinity; one that underflows collapses to Zero.
//
// Also see method [Big.PowInt] for integer exponents.
func (x Big) Pow(power float64) Big {
	x.PowMut(power)
	return x
}

// PowIntMut raises x to the given integer exponent in place.
// See [Big.PowInt] for the variant rules.
func (x *Big) PowIntMut(n int) {
	*x = x.PowInt(n)
}

// PowInt returns (possibly rounded) x raised to the integer exponent n,
// computed by square-and-multiply over the [Big.Mul] and [Big.Quo] tables.
//
// The variant rules match [Big.Pow]: NaN to any power is NaN, the zeroth
// power of Zero and of the infinities is NaN, a positive power of Zero is
// Zero, and a negative power of Zero is positive infinity.
// Negative exponents are computed via the reciprocal.
func (x Big) PowInt(n int) Big {
	switch x.k {
	case kindNaN:
		return NaN()
	case kindZero:
		switch {
		case n > 0:
			return Big{}
		case n < 0:
			return Inf(1)
		}
		return NaN()
	}
	if n == 0 {
		if x.IsInf(0) {
			return NaN()
		}
		return New(1, 0)
	}
	return x.powInt(n)
}

func (x Big) powInt(n int) Big {
	// Special case
	if n == 0 {
		return New(1, 0)
	}
	// General case
	f := x.powInt(n / 2)
	f = f.Mul(f)
	if n%2 == 0 {
		return f
	}
	if n > 0 {
		return f.Mul(x)
	}
	return f.Quo(x)
}

// log10f returns the base-10 logarithm of x as a float64.
// It is NaN for NaN, Zero, negative values, and negative infinity, and
// positive float64 infinity for positive infinity.
func (x Big) log10f() float64 {
	switch x.k {
	case kindFinite:
		if x.m < 0 {
			return math.NaN()
		}
		return math.Log10(x.m) + float64(x.e)
	case kindPosInf:
		return math.Inf(1)
	}
	return math.NaN()
}

// lnf returns the natural logarithm of x as a float64.
func (x Big) lnf() float64 {
	lg := x.log10f()
	if isNormalFloat(lg) {
		return lg / math.Log10E
	}
	return lg
}

// logf returns the logarithm of x in the given base as a float64.
func (x Big) logf(base float64) float64 {
	if !isNormalFloat(base) {
		return math.NaN()
	}
	return x.lnf() / math.Log(base)
}

// Log10 returns the base-10 logarithm of x.
//
// The result is NaN for NaN, Zero, negative values, and negative infinity,
// and positive infinity for positive infinity.
// The logarithm of any representable value fits a float64, so the result is
// exact up to float64 precision.
func (x Big) Log10() Big {
	return NewFromFloat64(x.log10f())
}

// Log10Mut replaces x with its base-10 logarithm in place.
// Also see method [Big.Log10].
func (x *Big) Log10Mut() {
	*x = x.Log10()
}

// Ln returns the natural logarithm of x.
// The variant rules match [Big.Log10].
func (x Big) Ln() Big {
	return NewFromFloat64(x.lnf())
}

// LnMut replaces x with its natural logarithm in place.
// Also see method [Big.Ln].
func (x *Big) LnMut() {
	*x = x.Ln()
}

// Log returns the logarithm of x in the given base.
// The result is NaN if the base is not a normal positive float64.
// The variant rules otherwise match [Big.Log10].
func (x Big) Log(base float64) Big {
	return NewFromFloat64(x.logf(base))
}

// LogMut replaces x with its logarithm in the given base in place.
// Also see method [Big.Log].
func (x *Big) LogMut(base float64) {
	*x = x.Log(base)
}
