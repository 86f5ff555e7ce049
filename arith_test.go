package bignum

import (
	"math"
	"testing"
)

// closeTo reports whether got and want are the same variant and, when finite,
// agree to within a relative tolerance in the last float64 digits.
func closeTo(got, want Big) bool {
	if got == want {
		return true
	}
	if !got.IsFinite() || !want.IsFinite() || got.Sign() != want.Sign() {
		return false
	}
	gm, wm := got.Mantissa(), want.Mantissa()
	switch got.Exponent() - want.Exponent() {
	case 0:
	case 1:
		gm *= 10
	case -1:
		wm *= 10
	default:
		return false
	}
	return math.Abs(gm-wm) <= 1e-12*math.Abs(wm)
}

func TestBig_Add(t *testing.T) {
	tests := []struct {
		x, y, want Big
	}{
		{NewFromInt(1), NewFromInt(1), NewFromInt(2)},
		{NewFromInt(4), NewFromInt(-15), NewFromInt(-11)},
		{NewFromInt(-4), NewFromInt(15), NewFromInt(11)},
		{New(1.5, 10), New(2.5, 10), New(4, 10)},
		{Big{}, NewFromInt(7), NewFromInt(7)},
		{NewFromInt(7), Big{}, NewFromInt(7)},
		{Big{}, Big{}, Big{}},
		{NewFromInt(1), Inf(1), Inf(1)},
		{Inf(1), NewFromInt(1), Inf(1)},
		{Inf(1), Inf(1), Inf(1)},
		{Inf(-1), Inf(-1), Inf(-1)},
		{Inf(1), Inf(-1), NaN()},
		{Inf(-1), Inf(1), NaN()},
		{NewFromInt(1), NaN(), NaN()},
		{NaN(), NewFromInt(1), NaN()},
		{NaN(), NaN(), NaN()},
		// Exponent gaps beyond the float64 digit span.
		{New(1, 20), New(1, 0), New(1, 20)},
		{New(1, 0), New(1, 20), New(1, 20)},
		// Exponent overflow during renormalization.
		{New(9, math.MaxInt64), New(9, math.MaxInt64), Inf(1)},
		{New(-9, math.MaxInt64), New(-9, math.MaxInt64), Inf(-1)},
	}
	for _, tt := range tests {
		got := tt.x.Add(tt.y)
		if got != tt.want {
			t.Errorf("%v.Add(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBig_Sub(t *testing.T) {
	tests := []struct {
		x, y, want Big
	}{
		{NewFromInt(4), NewFromInt(-15), NewFromInt(19)},
		{NewFromInt(4), NewFromInt(15), NewFromInt(-11)},
		{NewFromInt(1), Inf(1), Inf(-1)},
		{NewFromInt(1), Inf(-1), Inf(1)},
		{Inf(1), NewFromInt(1), Inf(1)},
		{Inf(1), Inf(-1), Inf(1)},
		{Inf(-1), Inf(1), Inf(-1)},
		{Inf(1), Inf(1), NaN()},
		{Inf(-1), Inf(-1), NaN()},
		{NewFromInt(1), NaN(), NaN()},
		{NaN(), NewFromInt(1), NaN()},
		{NewFromInt(7), Big{}, NewFromInt(7)},
		{Big{}, NewFromInt(7), NewFromInt(-7)},
		{NewFromInt(7), NewFromInt(7), Big{}},
		{New(-9, math.MaxInt64), New(9, math.MaxInt64), Inf(-1)},
	}
	for _, tt := range tests {
		got := tt.x.Sub(tt.y)
		if got != tt.want {
			t.Errorf("%v.Sub(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBig_Mul(t *testing.T) {
	tests := []struct {
		x, y, want Big
	}{
		{NewFromInt(2), NewFromInt(2), NewFromInt(4)},
		{NewFromInt(7), NewFromInt(6), NewFromInt(42)},
		{NewFromInt(7), NewFromInt(-6), NewFromInt(-42)},
		{NewFromInt(-7), NewFromInt(-6), NewFromInt(42)},
		{New(2, 30), New(3, 40), New(6, 70)},
		{Big{}, NewFromInt(5), Big{}},
		{NewFromInt(5), Big{}, Big{}},
		{Inf(1), NewFromInt(2), Inf(1)},
		{Inf(1), NewFromInt(-2), Inf(-1)},
		{Inf(-1), NewFromInt(-2), Inf(1)},
		{Inf(1), Inf(1), Inf(1)},
		{Inf(1), Inf(-1), Inf(-1)},
		{Inf(-1), Inf(-1), Inf(1)},
		{Inf(1), Big{}, NaN()},
		{Big{}, Inf(1), NaN()},
		{Big{}, Inf(-1), NaN()},
		{NaN(), NewFromInt(2), NaN()},
		{NewFromInt(2), NaN(), NaN()},
		// Exponent overflow and underflow.
		{New(9.9999, math.MaxInt64), New(2, 0), Inf(1)},
		{New(-9.9999, math.MaxInt64), New(2, 0), Inf(-1)},
		{New(1, math.MaxInt64), New(1, 10), Inf(1)},
		{New(1, math.MinInt64), New(1, -10), Big{}},
	}
	for _, tt := range tests {
		got := tt.x.Mul(tt.y)
		if got != tt.want {
			t.Errorf("%v.Mul(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBig_Quo(t *testing.T) {
	tests := []struct {
		x, y, want Big
	}{
		{NewFromInt(4), NewFromInt(2), NewFromInt(2)},
		{NewFromInt(42), NewFromInt(6), NewFromInt(7)},
		{NewFromInt(42), NewFromInt(-6), NewFromInt(-7)},
		{New(1, 50), New(1, 20), New(1, 30)},
		{Big{}, NewFromInt(5), Big{}},
		{NewFromInt(5), Inf(1), Big{}},
		{NewFromInt(-5), Inf(-1), Big{}},
		{Big{}, Inf(1), Big{}},
		{Inf(1), NewFromInt(2), Inf(1)},
		{Inf(1), NewFromInt(-2), Inf(-1)},
		{Inf(-1), NewFromInt(2), Inf(-1)},
		{Inf(1), Inf(1), NaN()},
		{Inf(1), Inf(-1), NaN()},
		{Big{}, Big{}, NaN()},
		{NaN(), NewFromInt(1), NaN()},
		{NewFromInt(1), NaN(), NaN()},
		// Division by Zero keeps the dividend's sign on the infinity.
		{New(5, 3), Big{}, Inf(1)},
		{New(-5, 3), Big{}, Inf(-1)},
		{Inf(1), Big{}, Inf(1)},
		{Inf(-1), Big{}, Inf(-1)},
		// Exponent overflow and underflow.
		{New(1, math.MaxInt64), New(1, -10), Inf(1)},
		{New(1, math.MinInt64), New(1, 10), Big{}},
		{New(1, math.MinInt64), NewFromInt(10), Big{}},
	}
	for _, tt := range tests {
		got := tt.x.Quo(tt.y)
		if got != tt.want {
			t.Errorf("%v.Quo(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBig_Rem(t *testing.T) {
	tests := []struct {
		x, y, want Big
	}{
		{NewFromInt(8), NewFromInt(3), NewFromInt(2)},
		{NewFromInt(-8), NewFromInt(3), NewFromInt(-2)},
		{NewFromInt(8), NewFromInt(-3), NewFromInt(2)},
		{NewFromInt(9), NewFromInt(3), Big{}},
		// The divisor vanishes against the dividend's magnitude.
		{New(1.2345, 1234), NewFromInt(5), Big{}},
		// The divisor dwarfs the dividend.
		{NewFromInt(5), New(1.2345, 1234), NewFromInt(5)},
		{NewFromInt(5), Inf(1), NewFromInt(5)},
		{NewFromInt(-5), Inf(-1), NewFromInt(-5)},
		{Big{}, NewFromInt(5), Big{}},
		{Inf(1), NewFromInt(5), NaN()},
		{Inf(-1), Inf(1), NaN()},
		{NewFromInt(42), Big{}, NaN()},
		{Big{}, Big{}, NaN()},
		{NaN(), NewFromInt(5), NaN()},
		{NewFromInt(5), NaN(), NaN()},
	}
	for _, tt := range tests {
		got := tt.x.Rem(tt.y)
		if got != tt.want {
			t.Errorf("%v.Rem(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBig_Pow(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		tests := []struct {
			x     Big
			power float64
			want  Big
		}{
			{NewFromInt(16), 0.5, NewFromInt(4)},
			{NewFromInt(-4), 2, NewFromInt(16)},
			{NewFromInt(-2), 3, NewFromInt(-8)},
			{NewFromFloat64(0.25), -1, NewFromInt(4)},
			{NewFromInt(3454), 0, NewFromInt(1)},
			{NewFromInt(10), 100, New(1, 100)},
			{New(1, 1000), 2, New(1, 2000)},
		}
		for _, tt := range tests {
			got := tt.x.Pow(tt.power)
			if !closeTo(got, tt.want) {
				t.Errorf("%v.Pow(%v) = %v, want %v", tt.x, tt.power, got, tt.want)
			}
		}
	})

	t.Run("variants", func(t *testing.T) {
		tests := []struct {
			x     Big
			power float64
			want  Big
		}{
			{Big{}, 1, Big{}},
			{Big{}, 2.5, Big{}},
			{Big{}, math.Inf(1), Big{}},
			{Big{}, 0, NaN()},
			{Big{}, -1, Inf(1)},
			{Big{}, math.NaN(), NaN()},
			{NaN(), 2, NaN()},
			{NewFromInt(2), math.NaN(), NaN()},
			{NewFromInt(-2), 2.5, NaN()},
			{Inf(1), 2, Inf(1)},
			{Inf(1), -1, Big{}},
			{Inf(1), 0, NaN()},
			{Inf(-1), 3, Inf(-1)},
			{Inf(-1), 2, Inf(1)},
			{Inf(-1), 0.5, NaN()},
			// Exponent overflow and underflow.
			{New(1, math.MaxInt64 - 1), 2, Inf(1)},
			{New(1, math.MaxInt64 - 1), -2, Big{}},
		}
		for _, tt := range tests {
			got := tt.x.Pow(tt.power)
			if got != tt.want {
				t.Errorf("%v.Pow(%v) = %v, want %v", tt.x, tt.power, got, tt.want)
			}
		}
	})
}

func TestBig_PowInt(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		tests := []struct {
			x    Big
			n    int
			want Big
		}{
			{NewFromInt(2), 10, NewFromInt(1024)},
			{NewFromInt(-2), 3, NewFromInt(-8)},
			{NewFromInt(-2), 4, NewFromInt(16)},
			{NewFromInt(4), -1, NewFromFloat64(0.25)},
			{NewFromInt(10), 5, New(1, 5)},
			{New(1, 1000), 3, New(1, 3000)},
		}
		for _, tt := range tests {
			got := tt.x.PowInt(tt.n)
			if !closeTo(got, tt.want) {
				t.Errorf("%v.PowInt(%v) = %v, want %v", tt.x, tt.n, got, tt.want)
			}
		}
	})

	t.Run("variants", func(t *testing.T) {
		tests := []struct {
			x    Big
			n    int
			want Big
		}{
			{NewFromInt(5), 0, NewFromInt(1)},
			{Big{}, 3, Big{}},
			{Big{}, -2, Inf(1)},
			{Big{}, 0, NaN()},
			{Inf(1), 0, NaN()},
			{Inf(1), 2, Inf(1)},
			{Inf(-1), 3, Inf(-1)},
			{Inf(-1), 4, Inf(1)},
			{Inf(1), -1, Big{}},
			{NaN(), 3, NaN()},
		}
		for _, tt := range tests {
			got := tt.x.PowInt(tt.n)
			if got != tt.want {
				t.Errorf("%v.PowInt(%v) = %v, want %v", tt.x, tt.n, got, tt.want)
			}
		}
	})
}

func TestBig_Log10(t *testing.T) {
	tests := []struct {
		x    Big
		want Big
	}{
		{NewFromInt(100), NewFromInt(2)},
		{NewFromInt(10), NewFromInt(1)},
		{NewFromInt(1), Big{}},
		{New(1, 50), NewFromInt(50)},
		{Inf(1), Inf(1)},
	}
	for _, tt := range tests {
		got := tt.x.Log10()
		if !closeTo(got, tt.want) {
			t.Errorf("%v.Log10() = %v, want %v", tt.x, got, tt.want)
		}
	}

	for _, x := range []Big{Big{}, NewFromInt(-10), Inf(-1), NaN()} {
		if got := x.Log10(); !got.IsNaN() {
			t.Errorf("%v.Log10() = %v, want NaN", x, got)
		}
	}
}

func TestBig_Ln(t *testing.T) {
	tests := []struct {
		x    Big
		want Big
	}{
		{NewFromFloat64(math.E), NewFromInt(1)},
		{NewFromInt(1), Big{}},
		{NewFromFloat64(math.E * math.E), NewFromInt(2)},
		{Inf(1), Inf(1)},
	}
	for _, tt := range tests {
		got := tt.x.Ln()
		if !closeTo(got, tt.want) {
			t.Errorf("%v.Ln() = %v, want %v", tt.x, got, tt.want)
		}
	}

	for _, x := range []Big{Big{}, NewFromInt(-1), Inf(-1), NaN()} {
		if got := x.Ln(); !got.IsNaN() {
			t.Errorf("%v.Ln() = %v, want NaN", x, got)
		}
	}
}

func TestBig_Log(t *testing.T) {
	tests := []struct {
		x    Big
		base float64
		want Big
	}{
		{NewFromInt(256), 16, NewFromInt(2)},
		{NewFromInt(8), 2, NewFromInt(3)},
		{New(1, 100), 10, NewFromInt(100)},
	}
	for _, tt := range tests {
		got := tt.x.Log(tt.base)
		if !closeTo(got, tt.want) {
			t.Errorf("%v.Log(%v) = %v, want %v", tt.x, tt.base, got, tt.want)
		}
	}

	if got := NewFromInt(100).Log(0); !got.IsNaN() {
		t.Errorf("Log(0) = %v, want NaN", got)
	}
	if got := NewFromInt(100).Log(-2); !got.IsNaN() {
		t.Errorf("Log(-2) = %v, want NaN", got)
	}
	if got := NewFromInt(100).Log(math.NaN()); !got.IsNaN() {
		t.Errorf("Log(NaN) = %v, want NaN", got)
	}
}
