package vector

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
)

func TestCoeff_ZeroValue(t *testing.T) {
	got := Coeff{}
	if !got.IsZero() {
		t.Errorf("Coeff{}.IsZero() = false, want true")
	}
	if got.Kind() != KindInt {
		t.Errorf("Coeff{}.Kind() = %v, want %v", got.Kind(), KindInt)
	}
}

func TestCoeff_Interfaces(t *testing.T) {
	var i any = Coeff{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	_, ok = i.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", i)
	}
}

func TestCoeff_Add(t *testing.T) {
	tests := []struct {
		c, o     Coeff
		want     Coeff
		wantKind Kind
	}{
		// Integers
		{Int64(2), Int64(3), Int64(5), KindInt},
		{Int64(-2), Int64(2), Int64(0), KindInt},
		// Rationals
		{Int64(1), Rat(1, 2), Rat(3, 2), KindRat},
		{Rat(1, 2), Rat(1, 3), Rat(5, 6), KindRat},
		// Rational results with denominator 1 demote to integers
		{Rat(1, 3), Rat(2, 3), Int64(1), KindInt},
		// Floats dominate
		{Int64(1), Float64(0.5), Float64(1.5), KindFloat},
		{Rat(1, 2), Float64(0.25), Float64(0.75), KindFloat},
		{Dec(decimal.MustNew(25, 1)), Float64(0.5), Float64(3), KindFloat},
		// Decimals are preserved over integers and rationals
		{Dec(decimal.MustNew(25, 1)), Int64(1), Dec(decimal.MustNew(35, 1)), KindDec},
		{Dec(decimal.MustNew(25, 1)), Rat(1, 2), Dec(decimal.MustNew(3, 0)), KindDec},
	}
	for _, tt := range tests {
		got, err := tt.c.Add(tt.o)
		if err != nil {
			t.Errorf("%v.Add(%v) failed: %v", tt.c, tt.o, err)
			continue
		}
		if !got.Equal(tt.want) || got.Kind() != tt.wantKind {
			t.Errorf("%v.Add(%v) = %v (%v), want %v (%v)", tt.c, tt.o, got, got.Kind(), tt.want, tt.wantKind)
		}
	}
}

func TestCoeff_Add_overflow(t *testing.T) {
	got, err := Int64(math.MaxInt64).Add(Int64(1))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got.Kind() != KindRat {
		t.Errorf("overflowing sum has kind %v, want %v", got.Kind(), KindRat)
	}
	if got.String() != "9223372036854775808" {
		t.Errorf("overflowing sum = %q, want %q", got, "9223372036854775808")
	}
}

func TestCoeff_Neg(t *testing.T) {
	tests := []struct {
		c, want Coeff
	}{
		{Int64(2), Int64(-2)},
		{Rat(1, 3), Rat(-1, 3)},
		{Float64(0.5), Float64(-0.5)},
		{Dec(decimal.MustNew(25, 1)), Dec(decimal.MustNew(-25, 1))},
	}
	for _, tt := range tests {
		got := tt.c.Neg()
		if !got.Eql(tt.want) {
			t.Errorf("%v.Neg() = %v, want %v", tt.c, got, tt.want)
		}
	}

	t.Run("min int64", func(t *testing.T) {
		got := Int64(math.MinInt64).Neg()
		if got.String() != "9223372036854775808" {
			t.Errorf("Int64(MinInt64).Neg() = %q, want %q", got, "9223372036854775808")
		}
	})
}

func TestCoeff_Mul(t *testing.T) {
	tests := []struct {
		c, o     Coeff
		want     Coeff
		wantKind Kind
	}{
		{Int64(2), Int64(3), Int64(6), KindInt},
		{Rat(1, 3), Int64(3), Int64(1), KindInt},
		{Rat(1, 2), Rat(1, 3), Rat(1, 6), KindRat},
		{Int64(3), Float64(0.5), Float64(1.5), KindFloat},
		{Dec(decimal.MustNew(25, 1)), Int64(2), Dec(decimal.MustNew(5, 0)), KindDec},
		{Int64(0), Float64(2), Float64(0), KindFloat},
	}
	for _, tt := range tests {
		got, err := tt.c.Mul(tt.o)
		if err != nil {
			t.Errorf("%v.Mul(%v) failed: %v", tt.c, tt.o, err)
			continue
		}
		if !got.Equal(tt.want) || got.Kind() != tt.wantKind {
			t.Errorf("%v.Mul(%v) = %v (%v), want %v (%v)", tt.c, tt.o, got, got.Kind(), tt.want, tt.wantKind)
		}
	}

	t.Run("overflow", func(t *testing.T) {
		got, err := Int64(math.MaxInt64).Mul(Int64(2))
		if err != nil {
			t.Fatalf("Mul failed: %v", err)
		}
		if got.Kind() != KindRat {
			t.Errorf("overflowing product has kind %v, want %v", got.Kind(), KindRat)
		}
		if got.String() != "18446744073709551614" {
			t.Errorf("overflowing product = %q, want %q", got, "18446744073709551614")
		}
	})
}

func TestCoeff_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			c, o     Coeff
			want     Coeff
			wantKind Kind
		}{
			// Integer division never truncates
			{Int64(1), Int64(3), Rat(1, 3), KindRat},
			{Int64(7), Int64(2), Rat(7, 2), KindRat},
			{Int64(6), Int64(3), Int64(2), KindInt},
			{Rat(1, 2), Rat(1, 4), Int64(2), KindInt},
			{Float64(1), Int64(2), Float64(0.5), KindFloat},
			{Dec(decimal.MustNew(1, 0)), Int64(8), Dec(decimal.MustNew(125, 3)), KindDec},
		}
		for _, tt := range tests {
			got, err := tt.c.Quo(tt.o)
			if err != nil {
				t.Errorf("%v.Quo(%v) failed: %v", tt.c, tt.o, err)
				continue
			}
			if !got.Equal(tt.want) || got.Kind() != tt.wantKind {
				t.Errorf("%v.Quo(%v) = %v (%v), want %v (%v)", tt.c, tt.o, got, got.Kind(), tt.want, tt.wantKind)
			}
		}
	})

	t.Run("zero divisor", func(t *testing.T) {
		_, err := Int64(1).Quo(Int64(0))
		if err == nil {
			t.Errorf("Int64(1).Quo(Int64(0)) did not fail")
		}
	})
}

func TestCoeff_Fdiv(t *testing.T) {
	got, err := Int64(1).Fdiv(Int64(3))
	if err != nil {
		t.Fatalf("Fdiv failed: %v", err)
	}
	want := Float64(1.0 / 3.0)
	if !got.Eql(want) {
		t.Errorf("Int64(1).Fdiv(Int64(3)) = %v, want %v", got, want)
	}
}

func TestCoeff_DivModRem(t *testing.T) {
	tests := []struct {
		c, o          Coeff
		div, mod, rem Coeff
	}{
		{Int64(7), Int64(2), Int64(3), Int64(1), Int64(1)},
		{Int64(-7), Int64(2), Int64(-4), Int64(1), Int64(-1)},
		{Int64(7), Int64(-2), Int64(-4), Int64(-1), Int64(1)},
		{Int64(-7), Int64(-2), Int64(3), Int64(-1), Int64(-1)},
		{Float64(7.5), Int64(2), Int64(3), Float64(1.5), Float64(1.5)},
		{Rat(7, 2), Int64(2), Int64(1), Rat(3, 2), Rat(3, 2)},
	}
	for _, tt := range tests {
		div, err := tt.c.Div(tt.o)
		if err != nil {
			t.Errorf("%v.Div(%v) failed: %v", tt.c, tt.o, err)
			continue
		}
		if !div.Equal(tt.div) {
			t.Errorf("%v.Div(%v) = %v, want %v", tt.c, tt.o, div, tt.div)
		}
		mod, err := tt.c.Mod(tt.o)
		if err != nil {
			t.Errorf("%v.Mod(%v) failed: %v", tt.c, tt.o, err)
			continue
		}
		if !mod.Equal(tt.mod) {
			t.Errorf("%v.Mod(%v) = %v, want %v", tt.c, tt.o, mod, tt.mod)
		}
		rem, err := tt.c.Rem(tt.o)
		if err != nil {
			t.Errorf("%v.Rem(%v) failed: %v", tt.c, tt.o, err)
			continue
		}
		if !rem.Equal(tt.rem) {
			t.Errorf("%v.Rem(%v) = %v, want %v", tt.c, tt.o, rem, tt.rem)
		}
		q, m, err := tt.c.DivMod(tt.o)
		if err != nil {
			t.Errorf("%v.DivMod(%v) failed: %v", tt.c, tt.o, err)
			continue
		}
		if !q.Equal(tt.div) || !m.Equal(tt.mod) {
			t.Errorf("%v.DivMod(%v) = %v, %v, want %v, %v", tt.c, tt.o, q, m, tt.div, tt.mod)
		}
	}

	t.Run("non-finite quotient", func(t *testing.T) {
		_, err := Float64(math.Inf(1)).Div(Int64(2))
		if err == nil {
			t.Errorf("Float64(+Inf).Div(Int64(2)) did not fail")
		}
	})
}

func TestCoeff_Rounding(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			c      Coeff
			digits int
			ceil   Coeff
			floor  Coeff
			trunc  Coeff
			round  Coeff
		}{
			{Int64(7), 0, Int64(7), Int64(7), Int64(7), Int64(7)},
			{Rat(5, 4), 1, Rat(13, 10), Rat(6, 5), Rat(6, 5), Rat(13, 10)},
			{Rat(-5, 4), 1, Rat(-6, 5), Rat(-13, 10), Rat(-6, 5), Rat(-13, 10)},
			{Rat(5, 4), 0, Int64(2), Int64(1), Int64(1), Int64(1)},
			{Float64(2.5), 0, Float64(3), Float64(2), Float64(2), Float64(3)},
			{Float64(-2.5), 0, Float64(-2), Float64(-3), Float64(-2), Float64(-3)},
			// Decimal rounding ties half to even
			{Dec(decimal.MustNew(25, 1)), 0, Dec(decimal.MustNew(3, 0)), Dec(decimal.MustNew(2, 0)), Dec(decimal.MustNew(2, 0)), Dec(decimal.MustNew(2, 0))},
		}
		for _, tt := range tests {
			check := func(op string, got Coeff, err error, want Coeff) {
				if err != nil {
					t.Errorf("%v.%s(%v) failed: %v", tt.c, op, tt.digits, err)
					return
				}
				if !got.Eql(want) {
					t.Errorf("%v.%s(%v) = %v (%v), want %v (%v)", tt.c, op, tt.digits, got, got.Kind(), want, want.Kind())
				}
			}
			got, err := tt.c.Ceil(tt.digits)
			check("Ceil", got, err, tt.ceil)
			got, err = tt.c.Floor(tt.digits)
			check("Floor", got, err, tt.floor)
			got, err = tt.c.Trunc(tt.digits)
			check("Trunc", got, err, tt.trunc)
			got, err = tt.c.Round(tt.digits)
			check("Round", got, err, tt.round)
		}
	})

	t.Run("negative digits", func(t *testing.T) {
		_, err := Float64(1.5).Round(-1)
		if err == nil {
			t.Errorf("Float64(1.5).Round(-1) did not fail")
		}
	})

	t.Run("digits beyond float64 range", func(t *testing.T) {
		got, err := Float64(1.5).Round(400)
		if err != nil {
			t.Fatalf("Round failed: %v", err)
		}
		if !got.Eql(Float64(1.5)) {
			t.Errorf("Float64(1.5).Round(400) = %v, want 1.5", got)
		}
	})
}

func TestCoeff_Cmp(t *testing.T) {
	tests := []struct {
		c, o Coeff
		want int
	}{
		{Int64(1), Int64(2), -1},
		{Int64(2), Int64(2), 0},
		{Int64(3), Int64(2), 1},
		// Cross-kind comparisons are exact
		{Int64(1), Float64(1), 0},
		{Rat(1, 2), Float64(0.5), 0},
		{Dec(decimal.MustNew(25, 1)), Rat(5, 2), 0},
		{Rat(1, 3), Float64(1.0 / 3.0), 1}, // the nearest float is below 1/3
		{Float64(math.Inf(1)), Int64(math.MaxInt64), 1},
		{Float64(math.Inf(-1)), Float64(math.Inf(1)), -1},
		{Float64(math.Inf(1)), Float64(math.Inf(1)), 0},
	}
	for _, tt := range tests {
		got, ok := tt.c.Cmp(tt.o)
		if !ok {
			t.Errorf("%v.Cmp(%v) not comparable", tt.c, tt.o)
			continue
		}
		if got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", tt.c, tt.o, got, tt.want)
		}
	}

	t.Run("nan", func(t *testing.T) {
		if _, ok := Float64(math.NaN()).Cmp(Int64(0)); ok {
			t.Errorf("Float64(NaN).Cmp(Int64(0)) = comparable, want not comparable")
		}
	})
}

func TestCoeff_EqualEql(t *testing.T) {
	tests := []struct {
		c, o       Coeff
		equal, eql bool
	}{
		{Int64(2), Int64(2), true, true},
		{Int64(2), Float64(2), true, false},
		{Rat(1, 2), Float64(0.5), true, false},
		{Int64(2), RatBig(big.NewRat(2, 1)), true, true}, // integral rationals demote
		{Dec(decimal.MustNew(2, 0)), Int64(2), true, false},
		{Int64(2), Int64(3), false, false},
		{Float64(math.NaN()), Float64(math.NaN()), false, false},
	}
	for _, tt := range tests {
		if got := tt.c.Equal(tt.o); got != tt.equal {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.c, tt.o, got, tt.equal)
		}
		if got := tt.c.Eql(tt.o); got != tt.eql {
			t.Errorf("%v.Eql(%v) = %v, want %v", tt.c, tt.o, got, tt.eql)
		}
	}
}

func TestCoeff_IsFinite(t *testing.T) {
	tests := []struct {
		c    Coeff
		want bool
	}{
		{Int64(math.MaxInt64), true},
		{Rat(1, 3), true},
		{Dec(decimal.MustNew(25, 1)), true},
		{Float64(1.5), true},
		{Float64(math.Inf(1)), false},
		{Float64(math.Inf(-1)), false},
		{Float64(math.NaN()), false},
	}
	for _, tt := range tests {
		if got := tt.c.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestCoeff_String(t *testing.T) {
	tests := []struct {
		c    Coeff
		want string
	}{
		{Int64(17), "17"},
		{Int64(-17), "-17"},
		{Rat(1, 3), "1/3"},
		{Float64(0.5), "0.5"},
		{Dec(decimal.MustNew(250, 2)), "2.50"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func Test_coeffOf(t *testing.T) {
	t.Run("recognized", func(t *testing.T) {
		tests := []struct {
			v    any
			want Coeff
		}{
			{int(4), Int64(4)},
			{int8(-4), Int64(-4)},
			{int32(4), Int64(4)},
			{int64(4), Int64(4)},
			{uint8(4), Int64(4)},
			{uint64(4), Int64(4)},
			{uint64(math.MaxUint64), RatBig(new(big.Rat).SetUint64(math.MaxUint64))},
			{float32(0.5), Float64(0.5)},
			{float64(0.5), Float64(0.5)},
			{big.NewRat(1, 3), Rat(1, 3)},
			{*big.NewRat(1, 3), Rat(1, 3)},
			{big.NewInt(42), Int64(42)},
			{decimal.MustNew(25, 1), Dec(decimal.MustNew(25, 1))},
			{Rat(1, 3), Rat(1, 3)},
		}
		for _, tt := range tests {
			got, ok := coeffOf(tt.v)
			if !ok {
				t.Errorf("coeffOf(%v) not recognized", tt.v)
				continue
			}
			if !got.Eql(tt.want) {
				t.Errorf("coeffOf(%v) = %v (%v), want %v (%v)", tt.v, got, got.Kind(), tt.want, tt.want.Kind())
			}
		}
	})

	t.Run("unrecognized", func(t *testing.T) {
		for _, v := range []any{"4", nil, complex(1, 2), []int{4}, struct{}{}} {
			if _, ok := coeffOf(v); ok {
				t.Errorf("coeffOf(%v) recognized, want unrecognized", v)
			}
		}
	})
}
