package predicates

import (
	"github.com/zalando/rudder/routing"
)

type queryParamPredicate struct {
	name   string
	value  string
	match  func(string) bool
	exists bool
}

// QueryParam creates a predicate testing that the named query parameter
// is present with exactly the given value.
func QueryParam(name, value string) (routing.Predicate, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &queryParamPredicate{name: name, value: value}, nil
}

// QueryParamMatch creates a predicate testing the value of the named
// query parameter with a custom function.
func QueryParamMatch(name string, match func(string) bool) (routing.Predicate, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if match == nil {
		return nil, ErrNilMatch
	}

	return &queryParamPredicate{name: name, match: match}, nil
}

// QueryParamExists creates a predicate testing only the presence of the
// named query parameter.
func QueryParamExists(name string) (routing.Predicate, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &queryParamPredicate{name: name, exists: true}, nil
}

func (p *queryParamPredicate) Test(req routing.Request) bool {
	value, ok := req.QueryParam(p.name)
	if !ok {
		return false
	}

	switch {
	case p.exists:
		return true
	case p.match != nil:
		return p.match(value)
	default:
		return value == p.value
	}
}

func (p *queryParamPredicate) Accept(v routing.Visitor) {
	if p.exists || p.match != nil {
		v.QueryParamPresent(p.name)
		return
	}

	v.QueryParam(p.name, p.value)
}
