package bignum

import "math"

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
// All cached powers are exactly representable as a float64.
var pow10 = [...]float64{
	1,     // 10^0
	1e1,   // 10^1
	1e2,   // 10^2
	1e3,   // 10^3
	1e4,   // 10^4
	1e5,   // 10^5
	1e6,   // 10^6
	1e7,   // 10^7
	1e8,   // 10^8
	1e9,   // 10^9
	1e10,  // 10^10
	1e11,  // 10^11
	1e12,  // 10^12
	1e13,  // 10^13
	1e14,  // 10^14
	1e15,  // 10^15
	1e16,  // 10^16
	1e17,  // 10^17
	1e18,  // 10^18
	1e19,  // 10^19
	1e20,  // 10^20
	1e21,  // 10^21
	1e22,  // 10^22
}

// pow10f calculates 10^n as a float64.
// Powers above the cache are inexact in the last few bits.
func pow10f(n int64) float64 {
	if 0 <= n && n < int64(len(pow10)) {
		return pow10[n]
	}
	return math.Pow(10, float64(n))
}

// addExp calculates x + y and checks overflow.
func addExp(x, y int64) (z int64, ok bool) {
	z = x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

// subExp calculates x - y and checks overflow.
func subExp(x, y int64) (z int64, ok bool) {
	z = x - y
	if (y > 0 && z > x) || (y < 0 && z < x) {
		return 0, false
	}
	return z, true
}

// expGap calculates a - b for a >= b.
// The raw int64 subtraction can overflow, so it is carried out in uint64,
// where the true difference always fits.
func expGap(a, b int64) uint64 {
	return uint64(a) - uint64(b)
}

// minNormalFloat64 is the smallest positive normal float64.
const minNormalFloat64 = 0x1p-1022

// isNormalFloat reports whether f is a normal floating-point number:
// finite, nonzero, and not subnormal.
func isNormalFloat(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) >= minNormalFloat64
}

// fsign returns +1 if the mantissa m is positive and -1 if it is negative.
func fsign(m float64) int {
	if m < 0 {
		return -1
	}
	return 1
}
