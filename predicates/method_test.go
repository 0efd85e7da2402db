package predicates

import (
	"errors"
	"net/http"
	"testing"
)

func TestMethodArgs(t *testing.T) {
	for _, ti := range []struct {
		msg     string
		methods []string
		err     error
	}{{
		"no methods",
		nil,
		ErrNoMethods,
	}, {
		"unknown method",
		[]string{"GET", "TEAPOT"},
		ErrInvalidMethod,
	}, {
		"case insensitive input",
		[]string{"get", "Post"},
		nil,
	}} {
		t.Run(ti.msg, func(t *testing.T) {
			_, err := Method(ti.methods...)
			if !errors.Is(err, ti.err) {
				t.Errorf("expected error %v, got %v", ti.err, err)
			}
		})
	}
}

func TestMethodMatch(t *testing.T) {
	p := mustPredicate(t)(Method("GET", "post"))
	for _, ti := range []struct {
		method string
		match  bool
	}{
		{"GET", true},
		{"POST", true},
		{"DELETE", false},
		{"OPTIONS", false},
	} {
		if m := p.Test(testRequest(t, ti.method, "/")); m != ti.match {
			t.Errorf("%s: expected %v, got %v", ti.method, ti.match, m)
		}
	}
}

func TestMethodPreflight(t *testing.T) {
	p := mustPredicate(t)(Method("DELETE"))

	// the preflight of a DELETE request matches the predicate of the
	// real request
	preflight := testRequest(t, http.MethodOptions, "/", "Access-Control-Request-Method", "DELETE")
	if !p.Test(preflight) {
		t.Error("expected the preflight to match")
	}

	preflightOther := testRequest(t, http.MethodOptions, "/", "Access-Control-Request-Method", "PUT")
	if p.Test(preflightOther) {
		t.Error("expected the preflight of a different method not to match")
	}

	// a plain OPTIONS request is still matched literally
	options := mustPredicate(t)(Method("OPTIONS"))
	if !options.Test(testRequest(t, http.MethodOptions, "/")) {
		t.Error("expected plain OPTIONS to match")
	}
}
