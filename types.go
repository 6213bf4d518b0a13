package jarkup

// UnknownPolicy controls how keys not declared by a kind are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Ignore undeclared keys.
	UnknownStrict                      // Reject undeclared keys with an error.
)

// Severity expresses the severity level for duplicate keys.
type Severity int

const (
	Error  Severity = iota
	Ignore          // Last value wins.
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Error (default) or Ignore.
}

// Default budgets applied when the corresponding DecodeOpt field is zero.
const (
	DefaultMaxDepth = 256
	DefaultMaxNodes = 1 << 20
)

// DecodeOpt bundles decoding options. When several are passed to a decode
// function the last one wins.
type DecodeOpt struct {
	Strictness Strictness
	// MaxDepth bounds component nesting (a root component has depth 1).
	// Zero means DefaultMaxDepth, negative disables the check.
	MaxDepth int
	// MaxNodes bounds the total number of components in one decode.
	// Zero means DefaultMaxNodes, negative disables the check.
	MaxNodes int
	// MaxBytes caps the consumed input when decoding from bytes or a Source.
	MaxBytes    int64
	UnknownKeys UnknownPolicy
	FailFast    bool
	// Parallelism > 1 decodes document roots concurrently.
	Parallelism int
}

func pickOpt(opts []DecodeOpt) DecodeOpt {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth == 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	if opt.MaxNodes == 0 {
		opt.MaxNodes = DefaultMaxNodes
	}
	return opt
}

// tokenDepth converts a component nesting budget into a JSON nesting budget.
// Each component level costs three containers (node object, slots object,
// slot array) and props objects add one more at the leaves.
func (o DecodeOpt) tokenDepth() int {
	if o.MaxDepth < 0 {
		return 0
	}
	return o.MaxDepth*3 + 4
}
