package cbor

// DefaultMaxDepth is the nesting-depth bound DefaultOptions sets, and so
// the one Decode applies when called with nil Options. An explicit Options
// whose MaxDepth is 0 is used as given and allows no nesting at all.
const DefaultMaxDepth = 1024

// Options configures a Decode call.
type Options struct {
	// MaxDepth bounds recursive descent into arrays, map keys/values,
	// tagged inner values, and embedded-CBOR interpretation. Decoding an
	// input nested deeper than this fails with ErrMaxDepthReached.
	MaxDepth uint32

	// TagInterpreters maps a tag number to the function that turns its
	// decoded inner value into a semantic Value. A tag with no entry
	// decodes to a Tagged fallback value. Callers who want the default
	// set plus their own entries must merge DefaultTagInterpreters()
	// with their additions themselves; assigning this field replaces the
	// registry wholesale.
	TagInterpreters map[uint64]TagInterpreter
}

// DefaultOptions returns the Options used when Decode is called without
// an explicit one: MaxDepth 1024, and the default tag-interpreter
// registry (see DefaultTagInterpreters).
func DefaultOptions() Options {
	return Options{
		MaxDepth:        DefaultMaxDepth,
		TagInterpreters: DefaultTagInterpreters(),
	}
}
