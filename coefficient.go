package vector

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

// Kind identifies the representation of a coefficient.
// Kinds are ordered by widening priority: when two coefficients of
// different kinds are combined, both are promoted to the wider kind.
type Kind uint8

const (
	KindInt   Kind = iota // int64
	KindRat               // big.Rat
	KindDec               // decimal.Decimal
	KindFloat             // float64
)

// String implements the [fmt.Stringer] interface and returns
// a string representation of the Kind value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindRat:
		return "rat"
	case KindDec:
		return "dec"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// Coeff type represents the magnitude of a single vector term.
// It is a closed union over four real scalar representations: a fixed
// 64-bit integer, an arbitrary-precision rational, an arbitrary-precision
// decimal, and a binary floating point number.
// A coefficient is never complex.
// The zero value of Coeff is the exact integer 0.
// Coeff is designed to be safe for concurrent use by multiple goroutines.
type Coeff struct {
	kind Kind
	i    int64
	f    float64
	r    *big.Rat // never mutated once stored
	d    decimal.Decimal
}

// Int64 returns a coefficient holding the exact integer i.
func Int64(i int64) Coeff {
	return Coeff{kind: KindInt, i: i}
}

// Float64 returns a coefficient holding the float f.
// Special values (NaN, Inf) are representable; see method [Coeff.IsFinite].
func Float64(f float64) Coeff {
	return Coeff{kind: KindFloat, f: f}
}

// Rat returns a coefficient holding the exact fraction num/den.
// Like [big.NewRat], it panics if den is 0.
// A fraction with denominator 1 is normalized to the integer kind.
func Rat(num, den int64) Coeff {
	return ratCoeff(big.NewRat(num, den))
}

// RatBig returns a coefficient holding a copy of the rational r.
// A rational with denominator 1 that fits in an int64 is normalized to
// the integer kind.
func RatBig(r *big.Rat) Coeff {
	return ratCoeff(new(big.Rat).Set(r))
}

// Dec returns a coefficient holding the decimal d.
func Dec(d decimal.Decimal) Coeff {
	return Coeff{kind: KindDec, d: d}
}

// ratCoeff wraps r without copying, demoting integral rationals to the
// integer kind.
// The caller must own r and never mutate it afterwards.
func ratCoeff(r *big.Rat) Coeff {
	if r.IsInt() && r.Num().IsInt64() {
		return Int64(r.Num().Int64())
	}
	return Coeff{kind: KindRat, r: r}
}

// coeffOf converts a recognized real scalar to a coefficient.
// Complex values are not recognized here; they are split into parts by
// the construction fold.
func coeffOf(v any) (Coeff, bool) {
	switch x := v.(type) {
	case Coeff:
		return x, true
	case int:
		return Int64(int64(x)), true
	case int8:
		return Int64(int64(x)), true
	case int16:
		return Int64(int64(x)), true
	case int32:
		return Int64(int64(x)), true
	case int64:
		return Int64(x), true
	case uint:
		return coeffOfUint64(uint64(x)), true
	case uint8:
		return Int64(int64(x)), true
	case uint16:
		return Int64(int64(x)), true
	case uint32:
		return Int64(int64(x)), true
	case uint64:
		return coeffOfUint64(x), true
	case float32:
		return Float64(float64(x)), true
	case float64:
		return Float64(x), true
	case *big.Rat:
		return RatBig(x), true
	case big.Rat:
		return RatBig(&x), true
	case *big.Int:
		return ratCoeff(new(big.Rat).SetInt(x)), true
	case big.Int:
		return ratCoeff(new(big.Rat).SetInt(&x)), true
	case decimal.Decimal:
		return Dec(x), true
	}
	return Coeff{}, false
}

func coeffOfUint64(u uint64) Coeff {
	if u <= math.MaxInt64 {
		return Int64(int64(u))
	}
	return ratCoeff(new(big.Rat).SetUint64(u))
}

// Kind returns the representation of the coefficient.
func (c Coeff) Kind() Kind {
	return c.kind
}

// IsZero returns:
//
//	true  if c = 0
//	false otherwise
func (c Coeff) IsZero() bool {
	switch c.kind {
	case KindInt:
		return c.i == 0
	case KindRat:
		return c.r.Sign() == 0
	case KindDec:
		return c.d.IsZero()
	default:
		return c.f == 0
	}
}

// Sign returns:
//
//	-1 if c < 0
//	 0 if c = 0 or c is NaN
//	+1 if c > 0
func (c Coeff) Sign() int {
	switch c.kind {
	case KindInt:
		switch {
		case c.i < 0:
			return -1
		case c.i > 0:
			return 1
		}
		return 0
	case KindRat:
		return c.r.Sign()
	case KindDec:
		return c.d.Sign()
	default:
		switch {
		case c.f < 0:
			return -1
		case c.f > 0:
			return 1
		}
		return 0
	}
}

// IsFinite returns false if the coefficient is a floating point NaN or
// infinity, and true otherwise.
// Integer, rational, and decimal coefficients are always finite.
func (c Coeff) IsFinite() bool {
	if c.kind != KindFloat {
		return true
	}
	return !math.IsNaN(c.f) && !math.IsInf(c.f, 0)
}

// Float64 returns the nearest binary floating-point number.
// This conversion may lose data for integer, rational, and decimal kinds.
func (c Coeff) Float64() float64 {
	switch c.kind {
	case KindInt:
		return float64(c.i)
	case KindRat:
		f, _ := c.r.Float64()
		return f
	case KindDec:
		f, _ := c.d.Float64()
		return f
	default:
		return c.f
	}
}

// exactRat returns the exact rational value of the coefficient.
// The caller must not mutate the result.
// Floating point special values have no rational form; callers exclude
// them beforehand.
func (c Coeff) exactRat() *big.Rat {
	switch c.kind {
	case KindInt:
		return big.NewRat(c.i, 1)
	case KindRat:
		return c.r
	case KindDec:
		num := new(big.Int).SetUint64(c.d.Coef())
		if c.d.IsNeg() {
			num.Neg(num)
		}
		return new(big.Rat).SetFrac(num, pow10(c.d.Scale()))
	default:
		return new(big.Rat).SetFloat64(c.f)
	}
}

// dec converts the coefficient to a decimal.
// Rationals are divided with decimal precision and may be rounded.
func (c Coeff) dec() (decimal.Decimal, error) {
	switch c.kind {
	case KindDec:
		return c.d, nil
	case KindInt:
		return decimal.New(c.i, 0)
	case KindRat:
		num, err := decimal.Parse(c.r.Num().String())
		if err != nil {
			return decimal.Decimal{}, err
		}
		den, err := decimal.Parse(c.r.Denom().String())
		if err != nil {
			return decimal.Decimal{}, err
		}
		return num.Quo(den)
	default:
		return decimal.NewFromFloat64(c.f)
	}
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func widerKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

// Neg returns a coefficient with the opposite sign.
func (c Coeff) Neg() Coeff {
	switch c.kind {
	case KindInt:
		if c.i == math.MinInt64 {
			return ratCoeff(new(big.Rat).Neg(big.NewRat(c.i, 1)))
		}
		return Int64(-c.i)
	case KindRat:
		return Coeff{kind: KindRat, r: new(big.Rat).Neg(c.r)}
	case KindDec:
		return Dec(c.d.Neg())
	default:
		return Float64(-c.f)
	}
}

// Abs returns the absolute value of the coefficient.
func (c Coeff) Abs() Coeff {
	if c.Sign() < 0 {
		return c.Neg()
	}
	return c
}

// Add returns the sum of coefficients c and o, promoted to the wider of
// the two kinds.
// Integer sums that overflow int64 are promoted to the rational kind.
//
// Add returns an error if a decimal operation overflows decimal precision.
func (c Coeff) Add(o Coeff) (Coeff, error) {
	switch widerKind(c.kind, o.kind) {
	case KindFloat:
		return Float64(c.Float64() + o.Float64()), nil
	case KindDec:
		d, err := c.dec()
		if err != nil {
			return Coeff{}, err
		}
		e, err := o.dec()
		if err != nil {
			return Coeff{}, err
		}
		d, err = d.Add(e)
		if err != nil {
			return Coeff{}, err
		}
		return Dec(d), nil
	case KindRat:
		return ratCoeff(new(big.Rat).Add(c.exactRat(), o.exactRat())), nil
	default:
		if (c.i > 0 && o.i > math.MaxInt64-c.i) || (c.i < 0 && o.i < math.MinInt64-c.i) {
			return ratCoeff(new(big.Rat).Add(c.exactRat(), o.exactRat())), nil
		}
		return Int64(c.i + o.i), nil
	}
}

// Sub returns the difference between coefficients c and o.
// See also method [Coeff.Add].
func (c Coeff) Sub(o Coeff) (Coeff, error) {
	return c.Add(o.Neg())
}

// Mul returns the product of coefficients c and o, promoted to the wider
// of the two kinds.
// Integer products that overflow int64 are promoted to the rational kind.
//
// Mul returns an error if a decimal operation overflows decimal precision.
func (c Coeff) Mul(o Coeff) (Coeff, error) {
	switch widerKind(c.kind, o.kind) {
	case KindFloat:
		return Float64(c.Float64() * o.Float64()), nil
	case KindDec:
		d, err := c.dec()
		if err != nil {
			return Coeff{}, err
		}
		e, err := o.dec()
		if err != nil {
			return Coeff{}, err
		}
		d, err = d.Mul(e)
		if err != nil {
			return Coeff{}, err
		}
		return Dec(d), nil
	case KindRat:
		return ratCoeff(new(big.Rat).Mul(c.exactRat(), o.exactRat())), nil
	default:
		if (c.i == -1 && o.i == math.MinInt64) || (o.i == -1 && c.i == math.MinInt64) {
			return ratCoeff(new(big.Rat).Mul(c.exactRat(), o.exactRat())), nil
		}
		p := c.i * o.i
		if c.i != 0 && p/c.i != o.i {
			return ratCoeff(new(big.Rat).Mul(c.exactRat(), o.exactRat())), nil
		}
		return Int64(p), nil
	}
}

// Quo returns the exact quotient of coefficient c and divisor o.
// An integer dividend with an integer divisor is promoted to the rational
// kind before dividing, so Quo never truncates.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - a decimal operation overflows decimal precision.
func (c Coeff) Quo(o Coeff) (Coeff, error) {
	if o.IsZero() {
		return Coeff{}, ErrDivisionByZero
	}
	switch widerKind(c.kind, o.kind) {
	case KindFloat:
		return Float64(c.Float64() / o.Float64()), nil
	case KindDec:
		d, err := c.dec()
		if err != nil {
			return Coeff{}, err
		}
		e, err := o.dec()
		if err != nil {
			return Coeff{}, err
		}
		d, err = d.Quo(e)
		if err != nil {
			return Coeff{}, err
		}
		return Dec(d), nil
	default:
		return ratCoeff(new(big.Rat).Quo(c.exactRat(), o.exactRat())), nil
	}
}

// Fdiv returns the floating point quotient of coefficient c and divisor o.
// The result is always of the float kind.
//
// Fdiv returns an error if the divisor is 0.
func (c Coeff) Fdiv(o Coeff) (Coeff, error) {
	if o.IsZero() {
		return Coeff{}, ErrDivisionByZero
	}
	return Float64(c.Float64() / o.Float64()), nil
}

// Div returns the floored integer quotient of coefficient c and divisor o.
// The result is always integral and rounded toward negative infinity,
// so that c.Div(o) and c.Mod(o) satisfy c = o*q + m.
//
// Div returns an error if:
//   - the divisor is 0;
//   - the quotient is not finite.
func (c Coeff) Div(o Coeff) (Coeff, error) {
	if o.IsZero() {
		return Coeff{}, ErrDivisionByZero
	}
	if widerKind(c.kind, o.kind) == KindFloat {
		q := math.Floor(c.Float64() / o.Float64())
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return Coeff{}, errNotFinite
		}
		return ratCoeff(new(big.Rat).SetFloat64(q)), nil
	}
	q := new(big.Rat).Quo(c.exactRat(), o.exactRat())
	return ratCoeff(new(big.Rat).SetInt(floorBig(q))), nil
}

// Mod returns the floored remainder of coefficient c and divisor o.
// The result has the same sign as the divisor and the same kind as the
// wider of the two operands.
//
// Mod returns an error if:
//   - the divisor is 0;
//   - the quotient is not finite;
//   - a decimal operation overflows decimal precision.
func (c Coeff) Mod(o Coeff) (Coeff, error) {
	q, err := c.Div(o)
	if err != nil {
		return Coeff{}, err
	}
	p, err := q.Mul(o)
	if err != nil {
		return Coeff{}, err
	}
	return c.Sub(p)
}

// DivMod returns the floored quotient and remainder of coefficient c and
// divisor o.
// See also methods [Coeff.Div] and [Coeff.Mod].
func (c Coeff) DivMod(o Coeff) (q, m Coeff, err error) {
	q, err = c.Div(o)
	if err != nil {
		return Coeff{}, Coeff{}, err
	}
	p, err := q.Mul(o)
	if err != nil {
		return Coeff{}, Coeff{}, err
	}
	m, err = c.Sub(p)
	if err != nil {
		return Coeff{}, Coeff{}, err
	}
	return q, m, nil
}

// Rem returns the truncated remainder of coefficient c and divisor o.
// The result has the same sign as the dividend.
//
// Rem returns an error if:
//   - the divisor is 0;
//   - the quotient is not finite;
//   - a decimal operation overflows decimal precision.
func (c Coeff) Rem(o Coeff) (Coeff, error) {
	if o.IsZero() {
		return Coeff{}, ErrDivisionByZero
	}
	var q Coeff
	if widerKind(c.kind, o.kind) == KindFloat {
		t := math.Trunc(c.Float64() / o.Float64())
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return Coeff{}, errNotFinite
		}
		q = ratCoeff(new(big.Rat).SetFloat64(t))
	} else {
		t := new(big.Rat).Quo(c.exactRat(), o.exactRat())
		q = ratCoeff(new(big.Rat).SetInt(truncBig(t)))
	}
	p, err := q.Mul(o)
	if err != nil {
		return Coeff{}, err
	}
	return c.Sub(p)
}

// floorBig returns the largest integer not greater than r.
func floorBig(r *big.Rat) *big.Int {
	q, m := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// ceilBig returns the smallest integer not less than r.
func ceilBig(r *big.Rat) *big.Int {
	q, m := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// truncBig returns r rounded toward zero.
func truncBig(r *big.Rat) *big.Int {
	return new(big.Int).Quo(r.Num(), r.Denom())
}

// roundBig returns r rounded to the nearest integer, with ties rounded
// away from zero.
func roundBig(r *big.Rat) *big.Int {
	q, m := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	m.Abs(m).Lsh(m, 1)
	if m.Cmp(r.Denom()) >= 0 {
		if r.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// roundingMode selects the per-kind rounding applied by roundTo.
type roundingMode uint8

const (
	roundCeil roundingMode = iota
	roundFloor
	roundTrunc
	roundHalf
)

// roundTo rounds the coefficient to the given number of digits after the
// decimal point.
// Integer coefficients are returned unchanged; non-finite floats pass
// through untouched.
func (c Coeff) roundTo(digits int, mode roundingMode) (Coeff, error) {
	if digits < 0 {
		return Coeff{}, ErrInvalidDigits
	}
	switch c.kind {
	case KindInt:
		return c, nil
	case KindDec:
		switch mode {
		case roundCeil:
			return Dec(c.d.Ceil(digits)), nil
		case roundFloor:
			return Dec(c.d.Floor(digits)), nil
		case roundTrunc:
			return Dec(c.d.Trunc(digits)), nil
		default:
			return Dec(c.d.Round(digits)), nil
		}
	case KindFloat:
		if !c.IsFinite() {
			return c, nil
		}
		p := math.Pow10(digits)
		if math.IsInf(p, 0) {
			// Scaling beyond the float64 range cannot change c.
			return c, nil
		}
		switch mode {
		case roundCeil:
			return Float64(math.Ceil(c.f*p) / p), nil
		case roundFloor:
			return Float64(math.Floor(c.f*p) / p), nil
		case roundTrunc:
			return Float64(math.Trunc(c.f*p) / p), nil
		default:
			return Float64(math.Round(c.f*p) / p), nil
		}
	default:
		p := pow10(digits)
		s := new(big.Rat).Mul(c.r, new(big.Rat).SetInt(p))
		var n *big.Int
		switch mode {
		case roundCeil:
			n = ceilBig(s)
		case roundFloor:
			n = floorBig(s)
		case roundTrunc:
			n = truncBig(s)
		default:
			n = roundBig(s)
		}
		return ratCoeff(new(big.Rat).SetFrac(n, p)), nil
	}
}

// Ceil returns the coefficient rounded up to the specified number of
// digits after the decimal point using rounding toward positive infinity.
//
// Ceil returns an error if digits is negative.
func (c Coeff) Ceil(digits int) (Coeff, error) {
	return c.roundTo(digits, roundCeil)
}

// Floor returns the coefficient rounded down to the specified number of
// digits after the decimal point using rounding toward negative infinity.
//
// Floor returns an error if digits is negative.
func (c Coeff) Floor(digits int) (Coeff, error) {
	return c.roundTo(digits, roundFloor)
}

// Trunc returns the coefficient truncated to the specified number of
// digits after the decimal point using rounding toward zero.
//
// Trunc returns an error if digits is negative.
func (c Coeff) Trunc(digits int) (Coeff, error) {
	return c.roundTo(digits, roundTrunc)
}

// Round returns the coefficient rounded to the specified number of digits
// after the decimal point.
// Ties are rounded away from zero for the integer, rational, and float
// kinds, and half to even for the decimal kind.
//
// Round returns an error if digits is negative.
func (c Coeff) Round(digits int) (Coeff, error) {
	return c.roundTo(digits, roundHalf)
}

// infSign returns -1 for negative infinity, +1 for positive infinity,
// and 0 for any finite coefficient.
func (c Coeff) infSign() int {
	if c.kind != KindFloat {
		return 0
	}
	if math.IsInf(c.f, 1) {
		return 1
	}
	if math.IsInf(c.f, -1) {
		return -1
	}
	return 0
}

func (c Coeff) isNaN() bool {
	return c.kind == KindFloat && math.IsNaN(c.f)
}

// Cmp compares coefficients exactly, across kinds, and returns:
//
//	-1 if c < o
//	 0 if c = o
//	+1 if c > o
//
// The comparison is not defined when either operand is NaN, in which case
// ok is false.
func (c Coeff) Cmp(o Coeff) (n int, ok bool) {
	if c.isNaN() || o.isNaN() {
		return 0, false
	}
	ci, oi := c.infSign(), o.infSign()
	if ci != 0 || oi != 0 {
		switch {
		case ci < oi:
			return -1, true
		case ci > oi:
			return 1, true
		}
		return 0, true
	}
	return c.exactRat().Cmp(o.exactRat()), true
}

// Equal reports whether coefficients c and o hold the same numeric value,
// regardless of kind.
// NaN is not equal to anything, including itself.
func (c Coeff) Equal(o Coeff) bool {
	n, ok := c.Cmp(o)
	return ok && n == 0
}

// Eql reports whether coefficients c and o hold the same numeric value in
// the same representation.
// See also method [Coeff.Equal].
func (c Coeff) Eql(o Coeff) bool {
	return c.kind == o.kind && c.Equal(o)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the coefficient.
// Rationals are rendered as "num/den" fractions.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Coeff) String() string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindRat:
		return c.r.RatString()
	case KindDec:
		return c.d.String()
	default:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	}
}

// Format implements the [fmt.Formatter] interface.
// The following format verbs are available: %s, %v, %q.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Coeff) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, c.String())
	case 'q', 'Q':
		writePadded(state, strconv.Quote(c.String()))
	default:
		fmt.Fprintf(state, "%%!%c(vector.Coeff=%s)", verb, c.String())
	}
}
