package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// String implements the [fmt.Stringer] interface and returns a string
// representation of the vector, e.g. "17 + 2⋅"death" - 1i".
// The real part is printed bare, the imaginary part with an "i" suffix,
// and every other term as its coefficient joined to the unit by the
// [OptMult] option.
// Terms appear in storage order; the zero vector prints as "0".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Vector) String() string {
	if len(v.terms) == 0 {
		return "0"
	}
	mult := v.option(OptMult)
	var sb strings.Builder
	for i, t := range v.terms {
		c := t.coef
		switch {
		case i == 0 && c.Sign() < 0:
			sb.WriteByte('-')
			c = c.Neg()
		case i > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
			c = c.Neg()
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(c.String())
		switch u := t.unit.(type) {
		case baseUnit:
			if u == Imag {
				sb.WriteByte('i')
			}
		case string:
			sb.WriteString(mult)
			sb.WriteString(strconv.Quote(u))
		default:
			sb.WriteString(mult)
			fmt.Fprintf(&sb, "%v", u)
		}
	}
	return sb.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example           | Description   |
//	| ------ | ----------------- | ------------- |
//	| %s, %v | 4.5 + 1⋅"string"  | Vector        |
//	| %q     | "4.5 + 1⋅\"string\"" | Quoted vector |
//
// Width and the '-' format flag are supported for all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (v Vector) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, v.String())
	case 'q', 'Q':
		writePadded(state, strconv.Quote(v.String()))
	default:
		fmt.Fprintf(state, "%%!%c(vector.Vector=%s)", verb, v.String())
	}
}

// writePadded writes s to state honoring width and the '-' flag.
//
//nolint:errcheck
func writePadded(state fmt.State, s string) {
	w, ok := state.Width()
	if !ok || w <= len(s) {
		state.Write([]byte(s))
		return
	}
	pad := strings.Repeat(" ", w-len(s))
	if state.Flag('-') {
		state.Write([]byte(s))
		state.Write([]byte(pad))
		return
	}
	state.Write([]byte(pad))
	state.Write([]byte(s))
}
