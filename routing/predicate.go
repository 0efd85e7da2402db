package routing

// Predicate is a pure boolean test over a request, used to gate handler
// eligibility. Implementations must write request attributes only on a
// true result, so that a failed test leaves no trace.
//
// Predicates are immutable once constructed and safe for concurrent use.
type Predicate interface {
	Test(req Request) bool
}

// PredicateFunc adapts an ordinary function to a custom predicate. Custom
// predicates are reported to visitors as unknown.
type PredicateFunc func(req Request) bool

func (f PredicateFunc) Test(req Request) bool { return f(req) }

// Nester is implemented by predicates that can consume a prefix of the
// request path for nested routing. On success, the returned request is a
// view with a narrowed path and extended context path.
type Nester interface {
	Nest(req Request) (Request, bool)
}

// Visitable is implemented by predicates that can report their structure
// to a visitor without being evaluated against a request.
type Visitable interface {
	Accept(v Visitor)
}

// NestRequest applies a predicate to a request for nested routing. For
// predicates that do not implement Nester, a passing test forwards the
// request unchanged.
func NestRequest(p Predicate, req Request) (Request, bool) {
	if n, ok := p.(Nester); ok {
		return n.Nest(req)
	}

	if p.Test(req) {
		return req, true
	}

	return nil, false
}

// AcceptPredicate forwards a predicate to a visitor. Predicates without
// visitor support are reported as unknown.
func AcceptPredicate(p Predicate, v Visitor) {
	if vp, ok := p.(Visitable); ok {
		vp.Accept(v)
		return
	}

	v.Unknown(p)
}
