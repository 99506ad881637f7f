package vector

import "fmt"

// scalarOperand extracts the real scalar value of an operand: either a
// recognized real number or a real-numeric vector (dimension at most 1).
func scalarOperand(x any) (Coeff, bool) {
	if c, ok := coeffOf(x); ok {
		return c, true
	}
	switch w := x.(type) {
	case Vector:
		if w.IsReal() {
			return w.Real(), true
		}
	case *Vector:
		if w != nil && w.IsReal() {
			return w.Real(), true
		}
	}
	return Coeff{}, false
}

// divisor extracts a non-zero real scalar divisor from an operand.
func divisor(x any) (Coeff, error) {
	s, ok := scalarOperand(x)
	if !ok {
		return Coeff{}, ErrNotReal
	}
	if s.IsZero() {
		return Coeff{}, ErrDivisionByZero
	}
	return s, nil
}

// Neg returns a vector with every coefficient negated.
// The unit set and term order are preserved.
func (v Vector) Neg() Vector {
	terms := make([]term, len(v.terms))
	index := make(map[Unit]int, len(v.terms))
	for i, t := range v.terms {
		terms[i] = term{unit: t.unit, coef: t.coef.Neg()}
		index[t.unit] = i
	}
	return Vector{terms: terms, index: index, opts: v.opts}
}

// Abs returns a vector with the absolute value of every coefficient.
// The unit set and term order are preserved.
func (v Vector) Abs() Vector {
	terms := make([]term, len(v.terms))
	index := make(map[Unit]int, len(v.terms))
	for i, t := range v.terms {
		terms[i] = term{unit: t.unit, coef: t.coef.Abs()}
		index[t.unit] = i
	}
	return Vector{terms: terms, index: index, opts: v.opts}
}

// Add returns the sum of the vector and an arbitrary operand.
// The operand is promoted through the construction fold, so any value can
// be added: numbers accumulate on the [Real] unit, vectors merge
// additively, and anything else contributes 1 to its own unit.
// The result keeps the receiver's options.
//
// Add returns an error if:
//   - the operand is neither a vector nor a number and is not comparable;
//   - merging coefficients overflows decimal precision.
func (v Vector) Add(other any) (Vector, error) {
	w, err := v.add(other)
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v + %v]: %w", v, other, err)
	}
	return w, nil
}

func (v Vector) add(other any) (Vector, error) {
	b := newBuilder()
	if err := b.fold(v); err != nil {
		return Vector{}, err
	}
	if err := b.fold(other); err != nil {
		return Vector{}, err
	}
	return b.finish(v.opts), nil
}

// Sub returns the difference between the vector and an arbitrary operand.
// It is equivalent to adding the negation of the promoted operand.
// See also method [Vector.Add].
func (v Vector) Sub(other any) (Vector, error) {
	o, err := promote(other)
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v - %v]: %w", v, other, err)
	}
	w, err := v.add(o.Neg())
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v - %v]: %w", v, other, err)
	}
	return w, nil
}

// Mul returns the vector scaled by a factor.
// The factor must be a real scalar or a real-numeric vector; every
// coefficient is multiplied by the factor's real value.
// If the receiver is real-numeric and the factor is a vector that is not,
// the operation commutes: the factor is scaled by the receiver instead,
// keeping the factor's options.
//
// Mul returns an error if:
//   - neither operand is a real scalar;
//   - a decimal operation overflows decimal precision.
func (v Vector) Mul(factor any) (Vector, error) {
	w, err := v.mul(factor)
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v * %v]: %w", v, factor, err)
	}
	return w, nil
}

func (v Vector) mul(factor any) (Vector, error) {
	if s, ok := scalarOperand(factor); ok {
		return v.derive(func(c Coeff) (Coeff, error) { return c.Mul(s) })
	}
	if !v.IsReal() {
		return Vector{}, ErrNotReal
	}
	f, err := promote(factor)
	if err != nil {
		return Vector{}, err
	}
	s := v.Real()
	return f.derive(func(c Coeff) (Coeff, error) { return c.Mul(s) })
}

// Quo returns the exact quotient of the vector and a divisor.
// Integer coefficients with an integer divisor are promoted to the
// rational kind before dividing, so Quo never truncates.
// See also methods [Vector.Fdiv], [Vector.Div], [Vector.Mod].
//
// Quo returns an error if:
//   - the divisor is not a real scalar or real-numeric vector;
//   - the divisor is 0;
//   - a decimal operation overflows decimal precision.
func (v Vector) Quo(d any) (Vector, error) {
	s, err := divisor(d)
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v / %v]: %w", v, d, err)
	}
	w, err := v.derive(func(c Coeff) (Coeff, error) { return c.Quo(s) })
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v / %v]: %w", v, d, err)
	}
	return w, nil
}

// Fdiv returns the quotient of the vector and a divisor with every
// coefficient converted to the float kind.
// See also method [Vector.Quo].
//
// Fdiv returns an error if:
//   - the divisor is not a real scalar or real-numeric vector;
//   - the divisor is 0.
func (v Vector) Fdiv(d any) (Vector, error) {
	s, err := divisor(d)
	if err != nil {
		return Vector{}, fmt.Errorf("computing [fdiv(%v, %v)]: %w", v, d, err)
	}
	w, err := v.derive(func(c Coeff) (Coeff, error) { return c.Fdiv(s) })
	if err != nil {
		return Vector{}, fmt.Errorf("computing [fdiv(%v, %v)]: %w", v, d, err)
	}
	return w, nil
}

// Div returns the floored integer quotient of the vector and a divisor,
// applied per coefficient.
// See also methods [Vector.Mod], [Vector.DivMod].
//
// Div returns an error if:
//   - the divisor is not a real scalar or real-numeric vector;
//   - the divisor is 0;
//   - a per-coefficient quotient is not finite.
func (v Vector) Div(d any) (Vector, error) {
	s, err := divisor(d)
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v div %v]: %w", v, d, err)
	}
	w, err := v.derive(func(c Coeff) (Coeff, error) { return c.Div(s) })
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v div %v]: %w", v, d, err)
	}
	return w, nil
}

// Mod returns the floored remainder of the vector and a divisor, applied
// per coefficient.
// Every resulting coefficient has the same sign as the divisor.
// See also methods [Vector.Div], [Vector.Rem].
//
// Mod returns an error under the same conditions as [Vector.Div].
func (v Vector) Mod(d any) (Vector, error) {
	s, err := divisor(d)
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v mod %v]: %w", v, d, err)
	}
	w, err := v.derive(func(c Coeff) (Coeff, error) { return c.Mod(s) })
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%v mod %v]: %w", v, d, err)
	}
	return w, nil
}

// DivMod returns the floored quotient and remainder of the vector and a
// divisor, applied per coefficient.
// See also methods [Vector.Div], [Vector.Mod].
//
// DivMod returns an error under the same conditions as [Vector.Div].
func (v Vector) DivMod(d any) (q, m Vector, err error) {
	s, err := divisor(d)
	if err != nil {
		return Vector{}, Vector{}, fmt.Errorf("computing [%v divmod %v]: %w", v, d, err)
	}
	q, err = v.derive(func(c Coeff) (Coeff, error) { return c.Div(s) })
	if err != nil {
		return Vector{}, Vector{}, fmt.Errorf("computing [%v divmod %v]: %w", v, d, err)
	}
	m, err = v.derive(func(c Coeff) (Coeff, error) { return c.Mod(s) })
	if err != nil {
		return Vector{}, Vector{}, fmt.Errorf("computing [%v divmod %v]: %w", v, d, err)
	}
	return q, m, nil
}

// Rem returns the truncated remainder of the vector and a divisor,
// applied per coefficient.
// Every resulting coefficient has the same sign as its dividend.
// See also method [Vector.Mod].
//
// Rem returns an error under the same conditions as [Vector.Div].
func (v Vector) Rem(d any) (Vector, error) {
	s, err := divisor(d)
	if err != nil {
		return Vector{}, fmt.Errorf("computing [rem(%v, %v)]: %w", v, d, err)
	}
	w, err := v.derive(func(c Coeff) (Coeff, error) { return c.Rem(s) })
	if err != nil {
		return Vector{}, fmt.Errorf("computing [rem(%v, %v)]: %w", v, d, err)
	}
	return w, nil
}

func (v Vector) roundAll(digits int, mode roundingMode, op string) (Vector, error) {
	if digits < 0 {
		return Vector{}, fmt.Errorf("rounding %v to %v digits: %w", v, digits, ErrInvalidDigits)
	}
	w, err := v.derive(func(c Coeff) (Coeff, error) { return c.roundTo(digits, mode) })
	if err != nil {
		return Vector{}, fmt.Errorf("computing [%s(%v, %v)]: %w", op, v, digits, err)
	}
	return w, nil
}

// Ceil returns a vector with every coefficient rounded up to the
// specified number of digits after the decimal point using rounding
// toward positive infinity.
// Coefficients rounded to zero are removed from the result.
//
// Ceil returns an error if digits is negative.
func (v Vector) Ceil(digits int) (Vector, error) {
	return v.roundAll(digits, roundCeil, "ceil")
}

// Floor returns a vector with every coefficient rounded down to the
// specified number of digits after the decimal point using rounding
// toward negative infinity.
// Coefficients rounded to zero are removed from the result.
//
// Floor returns an error if digits is negative.
func (v Vector) Floor(digits int) (Vector, error) {
	return v.roundAll(digits, roundFloor, "floor")
}

// Trunc returns a vector with every coefficient truncated to the
// specified number of digits after the decimal point using rounding
// toward zero.
// Coefficients rounded to zero are removed from the result.
//
// Trunc returns an error if digits is negative.
func (v Vector) Trunc(digits int) (Vector, error) {
	return v.roundAll(digits, roundTrunc, "trunc")
}

// Round returns a vector with every coefficient rounded to the specified
// number of digits after the decimal point.
// See [Coeff.Round] for the tie-breaking rules.
// Coefficients rounded to zero are removed from the result.
//
// Round returns an error if digits is negative.
func (v Vector) Round(digits int) (Vector, error) {
	return v.roundAll(digits, roundHalf, "round")
}

// IsZero returns:
//
//	true  if the vector has no terms
//	false otherwise
func (v Vector) IsZero() bool {
	return len(v.terms) == 0
}

// IsNumeric reports whether the vector behaves like a plain number of at
// most the given dimension: every stored unit is among the first dims
// reserved units ([Real], then [Imag]) and the term count does not exceed
// dims.
// The zero vector is numeric at any dimension.
//
// IsNumeric returns an error if dims is negative.
func (v Vector) IsNumeric(dims int) (bool, error) {
	if dims < 0 {
		return false, fmt.Errorf("classifying %v: %w", v, ErrInvalidDimension)
	}
	if len(v.terms) > dims {
		return false, nil
	}
	for _, t := range v.terms {
		u, ok := t.unit.(baseUnit)
		if !ok || int(u) > dims {
			return false, nil
		}
	}
	return true, nil
}

// IsReal reports whether the vector behaves like a plain real number:
// it is numeric with dimension at most 1.
func (v Vector) IsReal() bool {
	ok, _ := v.IsNumeric(1)
	return ok
}

// IsComplex reports whether the vector behaves like a plain real or
// complex number: it is numeric with dimension at most 2.
func (v Vector) IsComplex() bool {
	ok, _ := v.IsNumeric(2)
	return ok
}

// IsPos returns true if the vector is non-zero and every coefficient is
// strictly positive.
// A mixed-sign or zero vector is not positive.
func (v Vector) IsPos() bool {
	if len(v.terms) == 0 {
		return false
	}
	for _, t := range v.terms {
		if t.coef.Sign() <= 0 {
			return false
		}
	}
	return true
}

// IsNeg returns true if the vector is non-zero and every coefficient is
// strictly negative.
// A mixed-sign or zero vector is not negative.
func (v Vector) IsNeg() bool {
	if len(v.terms) == 0 {
		return false
	}
	for _, t := range v.terms {
		if t.coef.Sign() >= 0 {
			return false
		}
	}
	return true
}

// IsFinite returns true if every coefficient is finite.
func (v Vector) IsFinite() bool {
	for _, t := range v.terms {
		if !t.coef.IsFinite() {
			return false
		}
	}
	return true
}

// IsInf returns true if any coefficient is a floating point infinity or
// NaN.
func (v Vector) IsInf() bool {
	return !v.IsFinite()
}

// Equal reports value equality between the vector and an arbitrary
// operand:
//   - two vectors are equal if they have the same size and the same term
//     map under value equality of coefficients, regardless of kind;
//   - a vector equals a real number if it is real-numeric and its real
//     part matches;
//   - a vector equals a complex number if it is numeric with dimension at
//     most 2 and its real and imaginary parts match;
//   - anything else is unequal.
//
// See also method [Vector.Eql].
func (v Vector) Equal(other any) bool {
	switch x := other.(type) {
	case Vector:
		return v.equal(x)
	case *Vector:
		if x == nil {
			return false
		}
		return v.equal(*x)
	case complex64:
		return v.equalComplex(complex128(x))
	case complex128:
		return v.equalComplex(x)
	}
	if c, ok := coeffOf(other); ok {
		return v.IsReal() && v.Real().Equal(c)
	}
	return false
}

func (v Vector) equal(o Vector) bool {
	if len(v.terms) != len(o.terms) {
		return false
	}
	for _, t := range v.terms {
		if !t.coef.Equal(o.Coef(t.unit)) {
			return false
		}
	}
	return true
}

func (v Vector) equalComplex(x complex128) bool {
	if !v.IsComplex() {
		return false
	}
	return v.Real().Equal(Float64(real(x))) && v.Imag().Equal(Float64(imag(x)))
}

// Eql reports strict equality between two vectors: the same size and the
// same term map with kind-exact coefficient equality.
// Unlike [Vector.Equal], no scalar coercion is performed and a rational 2
// is not Eql to an integer 2.
func (v Vector) Eql(o Vector) bool {
	if len(v.terms) != len(o.terms) {
		return false
	}
	for _, t := range v.terms {
		i, ok := o.index[t.unit]
		if !ok || !t.coef.Eql(o.terms[i].coef) {
			return false
		}
	}
	return true
}

// Cmp compares the vector with an arbitrary operand and returns:
//
//	-1 if v < other
//	 0 if v = other
//	+1 if v > other
//
// Ordering is defined only between real-numeric operands.
//
// Cmp returns an error if either operand is not real-numeric, or if the
// comparison involves NaN.
func (v Vector) Cmp(other any) (int, error) {
	if !v.IsReal() {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", v, other, ErrIncomparable)
	}
	s, ok := scalarOperand(other)
	if !ok {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", v, other, ErrIncomparable)
	}
	n, ok := v.Real().Cmp(s)
	if !ok {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", v, other, ErrIncomparable)
	}
	return n, nil
}

// Min returns the smaller of the vector and a real-numeric operand.
//
// Min returns an error under the same conditions as [Vector.Cmp].
func (v Vector) Min(other any) (Vector, error) {
	n, err := v.Cmp(other)
	if err != nil {
		return Vector{}, err
	}
	if n <= 0 {
		return v, nil
	}
	return promote(other)
}

// Max returns the larger of the vector and a real-numeric operand.
//
// Max returns an error under the same conditions as [Vector.Cmp].
func (v Vector) Max(other any) (Vector, error) {
	n, err := v.Cmp(other)
	if err != nil {
		return Vector{}, err
	}
	if n >= 0 {
		return v, nil
	}
	return promote(other)
}
