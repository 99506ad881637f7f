package vector

import "reflect"

// Unit is an opaque dimension key in a vector's term map, analogous to a
// basis vector label.
// Any value may serve as a unit as long as it is comparable in the Go
// sense, i.e. usable as a map key; nil is a valid unit.
// Callers must supply units with consistent equality semantics, as units
// are compared by Go equality.
type Unit = any

// baseUnit is the type of the reserved numeric units.
// Being unexported, it can never collide with a caller-supplied key.
type baseUnit uint8

const (
	// Real is the reserved unit carrying the real part of a vector.
	Real baseUnit = 1 + iota
	// Imag is the reserved unit carrying the imaginary part of a vector.
	Imag
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u baseUnit) String() string {
	switch u {
	case Real:
		return "real"
	case Imag:
		return "imag"
	}
	return "unknown"
}

// validUnit reports whether u can be stored as a term map key.
func validUnit(u Unit) bool {
	if u == nil {
		return true
	}
	return reflect.TypeOf(u).Comparable()
}
