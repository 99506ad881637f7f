/*
Package vector implements sparse vector numbers with heterogeneous units.
A vector number generalizes real and complex numbers to a sum of
"coefficient times unit" terms, where a unit may be any comparable value
and coefficients are exact-preferring real scalars.

# Features

  - Immutable vector values, ensuring safe usage across multiple goroutines
  - Arbitrary comparable values as units, with reserved units for the real
    and imaginary parts
  - Exact coefficient arithmetic over integers, rationals, and decimals,
    with deterministic widening to floats
  - Arithmetic and comparison operations between vectors, scalars, and
    arbitrary values
  - Per-instance display options propagated through derived vectors

# Representation

A Vector owns a compacted term map from [Unit] to [Coeff].
Every stored coefficient is non-zero; terms whose coefficients sum to zero
are removed during construction.
The two reserved units, [Real] and [Imag], carry the real and imaginary
parts of the embedded complex value, so any plain number is a vector with
at most two terms.
A Coeff is a closed union over four representations: int64, big.Rat,
decimal.Decimal, and float64.

# Construction

Every vector is produced by a single normalization path.
[New] folds an argument list value by value: vectors merge additively,
real scalars accumulate on the [Real] unit, complex values split into real
and imaginary parts, and any other value becomes its own unit with an
implicit coefficient of 1.
[NewFromMap] validates and adopts a ready-made term mapping.

# Operations

The package provides negation, addition, subtraction, scalar
multiplication, and a division family (exact, floating, floored, modulo,
remainder), together with classification predicates and value, strict, and
ordering comparisons.
Binary operations accept arbitrary operands and promote them through the
construction path, so anything can be added to a vector.

# Errors

Operations return errors for non-real coefficients, non-comparable units,
zero divisors, and out-of-domain arguments.
A failed operation never produces a partially constructed vector.
*/
package vector
