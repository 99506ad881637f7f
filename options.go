package vector

// OptionKey identifies a per-vector display option.
// The key set is closed; unknown keys are dropped silently when options
// are merged into a new vector.
type OptionKey uint8

const (
	// OptMult selects the operator printed between a coefficient and its
	// unit, e.g. the "⋅" in "2⋅'dust'".
	OptMult OptionKey = 1 + iota
)

// Options type represents the per-vector configuration propagated through
// derived vectors.
type Options map[OptionKey]string

const defaultMult = "⋅"

// DefaultOptions returns the library-wide default options.
func DefaultOptions() Options {
	return Options{OptMult: defaultMult}
}

var knownOptions = map[OptionKey]bool{
	OptMult: true,
}

// mergeOptions layers explicit options over inherited ones, starting from
// the defaults and filtering both to the known key set.
// Explicit keys win over inherited keys.
func mergeOptions(inherited, explicit Options) Options {
	opts := DefaultOptions()
	for k, v := range inherited {
		if knownOptions[k] {
			opts[k] = v
		}
	}
	for k, v := range explicit {
		if knownOptions[k] {
			opts[k] = v
		}
	}
	return opts
}
