package bignum

import (
	"math"
	"testing"
)

func TestOrder_String(t *testing.T) {
	tests := []struct {
		o    Order
		want string
	}{
		{Less, "less"},
		{Equal, "equal"},
		{Greater, "greater"},
		{Unordered, "unordered"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Order(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestBig_Cmp(t *testing.T) {
	tests := []struct {
		x, y Big
		want Order
	}{
		// Finite pairs.
		{NewFromInt(11), NewFromInt(9), Greater},
		{NewFromInt(9), NewFromInt(11), Less},
		{NewFromInt(-5), NewFromInt(4), Less},
		{NewFromInt(4), NewFromInt(-5), Greater},
		{NewFromInt(7), NewFromInt(7), Equal},
		{NewFromInt(-7), NewFromInt(-7), Equal},
		{New(1.2, 5), New(1.3, 5), Less},
		{New(-1.2, 5), New(-1.3, 5), Greater},
		// Larger exponents win for positive pairs and lose for negative ones.
		{New(1, 5), New(1, 2), Greater},
		{New(-1, 5), New(-1, 2), Less},
		{New(9.9, 4), New(1.1, 5), Less},
		// Zero against finite values.
		{Big{}, Big{}, Equal},
		{Big{}, NewFromInt(5), Less},
		{Big{}, NewFromInt(-5), Greater},
		{NewFromInt(5), Big{}, Greater},
		{NewFromInt(-5), Big{}, Less},
		// Infinities dominate every finite value.
		{Inf(1), New(9.9, math.MaxInt64), Greater},
		{New(9.9, math.MaxInt64), Inf(1), Less},
		{Inf(-1), New(-9.9, math.MaxInt64), Less},
		{Inf(1), Big{}, Greater},
		{Inf(-1), Big{}, Less},
		{Inf(-1), Inf(1), Less},
		{Inf(1), Inf(-1), Greater},
		// Same-signed infinities do not order.
		{Inf(1), Inf(1), Unordered},
		{Inf(-1), Inf(-1), Unordered},
		// NaN does not order with anything.
		{NaN(), NaN(), Unordered},
		{NaN(), NewFromInt(1), Unordered},
		{NewFromInt(1), NaN(), Unordered},
		{NaN(), Inf(1), Unordered},
		{Inf(1), NaN(), Unordered},
		{NaN(), Big{}, Unordered},
	}
	for _, tt := range tests {
		if got := tt.x.Cmp(tt.y); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBig_Equal(t *testing.T) {
	tests := []struct {
		x, y Big
		want bool
	}{
		{NewFromInt(7), NewFromInt(7), true},
		{NewFromInt(7), NewFromInt(8), false},
		{Big{}, Big{}, true},
		{Big{}, NewFromInt(1), false},
		// NaN is unequal to everything, including itself.
		{NaN(), NaN(), false},
		{NaN(), NewFromInt(1), false},
		// So are same-signed infinities.
		{Inf(1), Inf(1), false},
		{Inf(-1), Inf(-1), false},
		{Inf(1), Inf(-1), false},
	}
	for _, tt := range tests {
		if got := tt.x.Equal(tt.y); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
