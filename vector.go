package vector

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrInvalidUnit indicates a value that cannot serve as a unit because
	// it is not comparable in the Go sense.
	ErrInvalidUnit = errors.New("unit is not comparable")
	// ErrNotReal indicates a coefficient, factor, or divisor that is not a
	// real number.
	ErrNotReal = errors.New("value is not a real number")
	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidDimension indicates a negative dimension argument.
	ErrInvalidDimension = errors.New("negative dimension")
	// ErrInvalidDigits indicates a negative number of digits.
	ErrInvalidDigits = errors.New("negative number of digits")
	// ErrIncomparable indicates operands with no defined ordering.
	ErrIncomparable = errors.New("values are not comparable")

	errNotFinite = errors.New("quotient is not finite")
)

// term is a single unit with its non-zero coefficient.
type term struct {
	unit Unit
	coef Coeff
}

// Vector type represents a sparse vector number: a finite sum of
// "coefficient times unit" terms with pairwise distinct units and
// non-zero coefficients.
// Its zero value is the zero vector.
// Once constructed, a Vector is completely immutable; every operation
// that appears to modify one in fact returns a new instance.
// Vector is designed to be safe for concurrent use by multiple goroutines.
type Vector struct {
	terms []term       // non-zero terms in first-insertion order
	index map[Unit]int // unit to position in terms
	opts  Options
}

// builder accumulates terms during construction.
// It is the only place where a term map is ever mutated; finish seals the
// accumulated state into an immutable Vector.
type builder struct {
	terms   []term
	index   map[Unit]int
	opts    Options
	hasOpts bool
}

func newBuilder() *builder {
	return &builder{index: make(map[Unit]int)}
}

// add merges coefficient c into the accumulator entry for unit u.
// The unit must already be known to be comparable.
func (b *builder) add(u Unit, c Coeff) error {
	if i, ok := b.index[u]; ok {
		s, err := b.terms[i].coef.Add(c)
		if err != nil {
			return err
		}
		b.terms[i].coef = s
		return nil
	}
	b.index[u] = len(b.terms)
	b.terms = append(b.terms, term{unit: u, coef: c})
	return nil
}

// fold merges a single input value into the accumulator:
//   - a vector merges its terms additively;
//   - a real scalar accumulates on the [Real] unit;
//   - a complex value splits into real and imaginary parts;
//   - any other value becomes its own unit with coefficient 1.
//
// The options of the first vector encountered are captured for the
// constructed instance.
func (b *builder) fold(v any) error {
	switch x := v.(type) {
	case Vector:
		if !b.hasOpts {
			b.opts, b.hasOpts = x.opts, true
		}
		for _, t := range x.terms {
			if err := b.add(t.unit, t.coef); err != nil {
				return err
			}
		}
		return nil
	case *Vector:
		// A nil *Vector is not a vector value; it is comparable and
		// folds as an opaque unit below.
		if x != nil {
			return b.fold(*x)
		}
	case complex64:
		return b.foldComplex(complex128(x))
	case complex128:
		return b.foldComplex(x)
	}
	if c, ok := coeffOf(v); ok {
		return b.add(Real, c)
	}
	if !validUnit(v) {
		return fmt.Errorf("folding %v: %w", v, ErrInvalidUnit)
	}
	return b.add(v, Int64(1))
}

func (b *builder) foldComplex(x complex128) error {
	if err := b.add(Real, Float64(real(x))); err != nil {
		return err
	}
	return b.add(Imag, Float64(imag(x)))
}

// finish compacts zero coefficients, merges options, and seals the
// accumulated state into a Vector.
func (b *builder) finish(explicit Options) Vector {
	var terms []term
	var index map[Unit]int
	for _, t := range b.terms {
		if t.coef.IsZero() {
			continue
		}
		if index == nil {
			index = make(map[Unit]int, len(b.terms))
		}
		index[t.unit] = len(terms)
		terms = append(terms, t)
	}
	return Vector{terms: terms, index: index, opts: mergeOptions(b.opts, explicit)}
}

// New returns a vector constructed by folding the values in order.
// Duplicate units accumulate by addition, and units whose coefficients
// sum to zero are removed from the result.
// With no arguments, New returns the zero vector.
// If any value is itself a Vector, the options of the first one are
// propagated to the result.
//
// New returns an error if:
//   - a value that is neither a vector nor a number is not comparable;
//   - merging coefficients overflows decimal precision.
func New(values ...any) (Vector, error) {
	b := newBuilder()
	for _, v := range values {
		if err := b.fold(v); err != nil {
			return Vector{}, fmt.Errorf("constructing vector: %w", err)
		}
	}
	return b.finish(nil), nil
}

// MustNew is like [New] but panics if the vector cannot be constructed.
// It simplifies safe initialization of global variables holding vectors.
func MustNew(values ...any) Vector {
	v, err := New(values...)
	if err != nil {
		panic(fmt.Sprintf("New(%v) failed: %v", values, err))
	}
	return v
}

// NewFromMap returns a vector constructed from a ready-made unit to
// coefficient mapping.
// Every value must be a recognized real scalar; in particular, complex
// values are rejected even when their imaginary part is zero.
// Zero coefficients are dropped.
// See also method [Vector.ToMap].
//
// NewFromMap returns an error if a value is not a real number.
func NewFromMap(terms map[Unit]any) (Vector, error) {
	b := newBuilder()
	for u, v := range terms {
		c, ok := coeffOf(v)
		if !ok {
			return Vector{}, fmt.Errorf("constructing vector: coefficient of %v: %w", u, ErrNotReal)
		}
		if err := b.add(u, c); err != nil {
			return Vector{}, fmt.Errorf("constructing vector: %w", err)
		}
	}
	return b.finish(nil), nil
}

// promote converts an arbitrary operand to a vector via the construction
// fold, so binary operations are defined for any operand.
func promote(v any) (Vector, error) {
	if x, ok := v.(Vector); ok {
		return x, nil
	}
	b := newBuilder()
	if err := b.fold(v); err != nil {
		return Vector{}, err
	}
	return b.finish(nil), nil
}

// derive rebuilds the vector with fn applied to every coefficient,
// keeping the receiver's options and compacting any zeros fn produces.
func (v Vector) derive(fn func(Coeff) (Coeff, error)) (Vector, error) {
	b := newBuilder()
	for _, t := range v.terms {
		c, err := fn(t.coef)
		if err != nil {
			return Vector{}, err
		}
		if err := b.add(t.unit, c); err != nil {
			return Vector{}, err
		}
	}
	return b.finish(v.opts), nil
}

// Map returns a vector with fn applied to every coefficient.
// The resulting coefficients are re-normalized: units whose transformed
// coefficients are zero are removed.
// Map fails atomically: if fn returns an error for any coefficient, no
// vector is produced.
func (v Vector) Map(fn func(Coeff) (Coeff, error)) (Vector, error) {
	w, err := v.derive(func(c Coeff) (Coeff, error) {
		t, err := fn(c)
		if err != nil {
			return Coeff{}, fmt.Errorf("transforming coefficient %v: %w", c, err)
		}
		return t, nil
	})
	if err != nil {
		return Vector{}, fmt.Errorf("transforming vector: %w", err)
	}
	return w, nil
}

// WithOptions returns a vector with the same terms and the explicit
// options merged over the receiver's options.
// Explicit keys win; unknown keys are dropped silently.
func (v Vector) WithOptions(opts Options) Vector {
	w := v
	w.opts = mergeOptions(v.opts, opts)
	return w
}

// Size returns the number of stored terms.
// All stored terms have non-zero coefficients.
func (v Vector) Size() int {
	return len(v.terms)
}

// Coef returns the coefficient stored for the given unit, or the exact
// integer 0 if the unit is absent.
// Coef never fails; looking up a non-comparable unit yields 0.
func (v Vector) Coef(u Unit) Coeff {
	if !validUnit(u) {
		return Coeff{}
	}
	if i, ok := v.index[u]; ok {
		return v.terms[i].coef
	}
	return Coeff{}
}

// Contains returns true if a non-zero coefficient is stored for the
// given unit.
func (v Vector) Contains(u Unit) bool {
	if !validUnit(u) {
		return false
	}
	_, ok := v.index[u]
	return ok
}

// Real returns the coefficient of the reserved [Real] unit.
func (v Vector) Real() Coeff {
	return v.Coef(Real)
}

// Imag returns the coefficient of the reserved [Imag] unit.
func (v Vector) Imag() Coeff {
	return v.Coef(Imag)
}

// Units returns the stored units in iteration order.
// The returned slice is a copy.
func (v Vector) Units() []Unit {
	units := make([]Unit, len(v.terms))
	for i, t := range v.terms {
		units[i] = t.unit
	}
	return units
}

// Terms returns an iterator over (unit, coefficient) pairs.
// The order is unspecified but stable for a given instance: re-iterating
// yields the same pairs in the same order.
func (v Vector) Terms() iter.Seq2[Unit, Coeff] {
	return func(yield func(Unit, Coeff) bool) {
		for _, t := range v.terms {
			if !yield(t.unit, t.coef) {
				return
			}
		}
	}
}

// ToMap returns the terms as a plain unit to coefficient mapping.
// The returned map is a defensive copy; modifying it does not affect the
// vector.
// See also constructor [NewFromMap].
func (v Vector) ToMap() map[Unit]Coeff {
	m := make(map[Unit]Coeff, len(v.terms))
	for _, t := range v.terms {
		m[t.unit] = t.coef
	}
	return m
}

// Options returns a copy of the vector's options.
func (v Vector) Options() Options {
	return mergeOptions(v.opts, nil)
}

// option returns a single option value, falling back to the default for
// the zero-value vector.
func (v Vector) option(k OptionKey) string {
	if s, ok := v.opts[k]; ok {
		return s
	}
	return DefaultOptions()[k]
}

// Coerce returns the operand promoted to a vector, paired with the
// receiver, enabling symmetric binary dispatch by callers implementing
// their own numeric interop.
//
// Coerce returns an error if the operand cannot be promoted.
func (v Vector) Coerce(other any) (promoted, self Vector, err error) {
	p, err := promote(other)
	if err != nil {
		return Vector{}, Vector{}, fmt.Errorf("coercing %v: %w", other, err)
	}
	return p, v, nil
}
