package predicates

import (
	"fmt"

	"github.com/zalando/rudder/routing"
)

const defaultContentType = "application/octet-stream"

func parseMediaTypeSet(types []string) ([]mediaType, []string, error) {
	if len(types) == 0 {
		return nil, nil, ErrNoMediaTypes
	}

	parsed := make([]mediaType, 0, len(types))
	names := make([]string, 0, len(types))
	for _, t := range types {
		m, ok := parseMediaType(t)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrInvalidMediaType, t)
		}

		parsed = append(parsed, m)
		names = append(names, m.String())
	}

	return parsed, names, nil
}

type contentTypePredicate struct {
	names []string
	types []mediaType
}

// ContentType creates a predicate testing that the content type of the
// request is included in the given set. The configured types may contain
// wildcards, like "text/*". A request without a content type is treated
// as application/octet-stream.
//
// The predicate holds unconditionally for CORS preflight requests.
func ContentType(types ...string) (routing.Predicate, error) {
	parsed, names, err := parseMediaTypeSet(types)
	if err != nil {
		return nil, err
	}

	return &contentTypePredicate{names: names, types: parsed}, nil
}

func (p *contentTypePredicate) Test(req routing.Request) bool {
	if isPreflight(req) {
		return true
	}

	ct := req.Header().Get("Content-Type")
	if ct == "" {
		ct = defaultContentType
	}

	m, ok := parseMediaType(ct)
	if !ok {
		return false
	}

	for _, t := range p.types {
		if t.includes(m) {
			return true
		}
	}

	return false
}

func (p *contentTypePredicate) Accept(v routing.Visitor) {
	v.ContentType(p.names)
}

type acceptPredicate struct {
	names []string
	types []mediaType
}

// Accept creates a predicate testing that the request accepts a response
// in one of the given media types. The acceptable types of the request
// are ordered by specificity and quality; a request without an Accept
// header accepts anything.
//
// The predicate holds unconditionally for CORS preflight requests.
func Accept(types ...string) (routing.Predicate, error) {
	parsed, names, err := parseMediaTypeSet(types)
	if err != nil {
		return nil, err
	}

	return &acceptPredicate{names: names, types: parsed}, nil
}

func (p *acceptPredicate) Test(req routing.Request) bool {
	if isPreflight(req) {
		return true
	}

	accepted := parseAccept(req.Header().Values("Accept"))
	for _, a := range accepted {
		if a.quality == 0 {
			continue
		}

		for _, t := range p.types {
			if a.compatible(t) {
				return true
			}
		}
	}

	return false
}

func (p *acceptPredicate) Accept(v routing.Visitor) {
	v.Accept(p.names)
}
