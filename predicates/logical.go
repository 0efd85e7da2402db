package predicates

import "github.com/zalando/rudder/routing"

// The logical combinators guarantee that a compound predicate which
// ultimately evaluates to false leaves the request attributes exactly as
// they were before the evaluation. Before a branch whose failure must not
// leak state, the attributes are copied into a snapshot, and on failure
// the attributes are replaced with the snapshot as a whole.

type andPredicate struct {
	left, right routing.Predicate
}

// And creates the conjunction of two predicates, evaluated left to right
// with short-circuiting. If the conjunction fails, also when the left
// operand succeeded first, the attributes are restored to their state
// before the left operand was attempted.
//
// Nil operands are a programmer error and panic at construction time.
func And(left, right routing.Predicate) routing.Predicate {
	if left == nil || right == nil {
		panic("predicates: And requires non-nil operands")
	}

	return &andPredicate{left: left, right: right}
}

func (p *andPredicate) Test(req routing.Request) bool {
	attrs := req.Attributes()
	snapshot := attrs.Snapshot()
	if p.left.Test(req) && p.right.Test(req) {
		return true
	}

	attrs.Restore(snapshot)
	return false
}

func (p *andPredicate) Nest(req routing.Request) (routing.Request, bool) {
	attrs := req.Attributes()
	snapshot := attrs.Snapshot()
	if left, ok := routing.NestRequest(p.left, req); ok {
		if right, ok := routing.NestRequest(p.right, left); ok {
			return right, true
		}
	}

	attrs.Restore(snapshot)
	return nil, false
}

func (p *andPredicate) Accept(v routing.Visitor) {
	v.StartAnd()
	routing.AcceptPredicate(p.left, v)
	v.And()
	routing.AcceptPredicate(p.right, v)
	v.EndAnd()
}

type orPredicate struct {
	left, right routing.Predicate
}

// Or creates the disjunction of two predicates. The right operand is only
// evaluated when the left one fails, and it never sees attribute writes
// of the failed left attempt.
//
// Nil operands are a programmer error and panic at construction time.
func Or(left, right routing.Predicate) routing.Predicate {
	if left == nil || right == nil {
		panic("predicates: Or requires non-nil operands")
	}

	return &orPredicate{left: left, right: right}
}

func (p *orPredicate) Test(req routing.Request) bool {
	attrs := req.Attributes()
	snapshot := attrs.Snapshot()
	if p.left.Test(req) {
		return true
	}

	attrs.Restore(snapshot)
	if p.right.Test(req) {
		return true
	}

	attrs.Restore(snapshot)
	return false
}

func (p *orPredicate) Nest(req routing.Request) (routing.Request, bool) {
	attrs := req.Attributes()
	snapshot := attrs.Snapshot()
	if left, ok := routing.NestRequest(p.left, req); ok {
		return left, true
	}

	attrs.Restore(snapshot)
	if right, ok := routing.NestRequest(p.right, req); ok {
		return right, true
	}

	attrs.Restore(snapshot)
	return nil, false
}

func (p *orPredicate) Accept(v routing.Visitor) {
	v.StartOr()
	routing.AcceptPredicate(p.left, v)
	v.Or()
	routing.AcceptPredicate(p.right, v)
	v.EndOr()
}

type notPredicate struct {
	inner routing.Predicate
}

// Not creates the negation of a predicate. When the inner predicate
// holds, so the negation fails, the attribute writes of the inner
// evaluation are rolled back, because the compound answer is a non-match.
//
// A nil operand is a programmer error and panics at construction time.
func Not(inner routing.Predicate) routing.Predicate {
	if inner == nil {
		panic("predicates: Not requires a non-nil operand")
	}

	return &notPredicate{inner: inner}
}

func (p *notPredicate) Test(req routing.Request) bool {
	attrs := req.Attributes()
	snapshot := attrs.Snapshot()
	if p.inner.Test(req) {
		attrs.Restore(snapshot)
		return false
	}

	return true
}

func (p *notPredicate) Accept(v routing.Visitor) {
	v.StartNegate()
	routing.AcceptPredicate(p.inner, v)
	v.EndNegate()
}
