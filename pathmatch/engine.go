package pathmatch

// Template is the matching contract of a parsed path template. *Pattern
// implements it, and alternative engines can provide their own
// implementation.
type Template interface {

	// String returns the template source.
	String() string

	// Matches tells if the template matches the whole path.
	Matches(path string) bool

	// Match matches the whole path and returns the captured variables.
	Match(path string) (*Result, bool)

	// MatchStart matches the start of the path on segment boundaries.
	MatchStart(path string) (*PrefixResult, bool)
}

// Engine parses path templates. Predicates bind to an engine when they are
// constructed, and the binding is fixed afterwards.
type Engine interface {
	Parse(template string) (Template, error)
}

type defaultEngine struct{}

func (defaultEngine) Parse(template string) (Template, error) {
	return Parse(template)
}

// Default is the engine implementing the template syntax of this package.
var Default Engine = defaultEngine{}
