package bignum

// Order is the result of comparing two big numbers.
//
// The comparison defined by [Big.Cmp] is a partial order: pairs involving NaN
// and pairs of same-signed infinities are [Unordered], and callers must handle
// that outcome explicitly rather than folding it into "not less".
type Order int8

const (
	Less      Order = -1
	Equal     Order = 0
	Greater   Order = 1
	Unordered Order = 2
)

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Order) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Unordered:
		return "unordered"
	}
	return "invalid"
}

// Cmp compares x and y numerically and returns:
//
//	Less      if x < y
//	Equal     if x == y
//	Greater   if x > y
//	Unordered if x and y are incomparable
//
// NaN is incomparable with every value, including another NaN.
// Infinities model unbounded magnitudes rather than a single canonical point,
// so a pair of same-signed infinities is incomparable too; an infinity is
// still ordered against every finite value, Zero, and the opposite infinity.
func (x Big) Cmp(y Big) Order {
	// Special case: NaN
	if x.k == kindNaN || y.k == kindNaN {
		return Unordered
	}

	// Special case: infinities
	switch {
	case x.k == kindPosInf:
		if y.k == kindPosInf {
			return Unordered
		}
		return Greater
	case x.k == kindNegInf:
		if y.k == kindNegInf {
			return Unordered
		}
		return Less
	case y.k == kindPosInf:
		return Less
	case y.k == kindNegInf:
		return Greater
	}

	// Special case: zeros
	switch {
	case x.k == kindZero && y.k == kindZero:
		return Equal
	case x.k == kindZero:
		if y.m > 0 {
			return Less
		}
		return Greater
	case y.k == kindZero:
		if x.m > 0 {
			return Greater
		}
		return Less
	}

	return cmpFinite(x, y)
}

// cmpFinite orders two normalized finite values: sign first, then exponent,
// then mantissa.
func cmpFinite(x, y Big) Order {
	switch {
	case x.m < 0 && y.m > 0:
		return Less
	case x.m > 0 && y.m < 0:
		return Greater
	}
	if x.e != y.e {
		o := Less
		if x.e > y.e {
			o = Greater
		}
		// For a negative pair a larger exponent means a larger magnitude,
		// hence a smaller value.
		if x.m < 0 {
			o = -o
		}
		return o
	}
	switch {
	case x.m < y.m:
		return Less
	case x.m > y.m:
		return Greater
	}
	return Equal
}

// Equal reports whether x and y are numerically equal.
//
// NaN is unequal to every value, including another NaN, and an infinity is
// unequal to every value, including the same-signed infinity.
// Zero equals only Zero, and two finite values are equal exactly when their
// normalized mantissas and exponents coincide.
// Use this method rather than the Go == operator, which compares
// representations and would make the sentinels self-equal.
func (x Big) Equal(y Big) bool {
	return x.Cmp(y) == Equal
}
