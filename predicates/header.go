package predicates

import (
	"net/http"

	"github.com/zalando/rudder/routing"
)

type headerPredicate struct {
	name  string
	value string
	match func(string) bool
}

// Header creates a predicate testing that the named request header is
// present with the exact value among its values.
//
// Header predicates hold unconditionally for CORS preflight requests,
// because browsers omit the custom headers on the preflight itself.
func Header(name, value string) (routing.Predicate, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &headerPredicate{name: http.CanonicalHeaderKey(name), value: value}, nil
}

// HeaderMatch creates a predicate testing the values of the named request
// header with a custom function. It holds when any value passes.
func HeaderMatch(name string, match func(string) bool) (routing.Predicate, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if match == nil {
		return nil, ErrNilMatch
	}

	return &headerPredicate{name: http.CanonicalHeaderKey(name), match: match}, nil
}

func (p *headerPredicate) Test(req routing.Request) bool {
	if isPreflight(req) {
		return true
	}

	for _, v := range req.Header()[p.name] {
		if p.match != nil {
			if p.match(v) {
				return true
			}
		} else if v == p.value {
			return true
		}
	}

	return false
}

func (p *headerPredicate) Accept(v routing.Visitor) {
	if p.match != nil {
		v.HeaderMatch(p.name)
		return
	}

	v.Header(p.name, p.value)
}
