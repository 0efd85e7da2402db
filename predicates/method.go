package predicates

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/zalando/rudder/routing"
)

var allowedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodConnect: true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

type methodPredicate struct {
	names   []string
	methods map[string]bool
}

// Method creates a predicate testing the request method for membership in
// the given set. Method names are case insensitive on input.
//
// For a CORS preflight request, the method declared in the
// Access-Control-Request-Method header is tested instead of the literal
// OPTIONS, so the predicate that will match the real request also matches
// its preflight.
func Method(methods ...string) (routing.Predicate, error) {
	if len(methods) == 0 {
		return nil, ErrNoMethods
	}

	p := &methodPredicate{methods: make(map[string]bool)}
	for _, m := range methods {
		m = strings.ToUpper(m)
		if !allowedMethods[m] {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, m)
		}

		if !p.methods[m] {
			p.methods[m] = true
			p.names = append(p.names, m)
		}
	}

	return p, nil
}

func (p *methodPredicate) Test(req routing.Request) bool {
	method := req.Method()
	if isPreflight(req) {
		method = req.Header().Get(accessControlRequestMethod)
	}

	return p.methods[strings.ToUpper(method)]
}

func (p *methodPredicate) Accept(v routing.Visitor) {
	v.Method(p.names)
}
