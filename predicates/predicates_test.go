package predicates

import (
	"net/http/httptest"
	"testing"

	"github.com/zalando/rudder/routing"
)

func testRequest(t *testing.T, method, target string, headers ...string) routing.Request {
	t.Helper()
	if len(headers)%2 != 0 {
		t.Fatal("header names and values must be paired")
	}

	req := httptest.NewRequest(method, target, nil)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Add(headers[i], headers[i+1])
	}

	return routing.NewRequest(req)
}

func attributeState(a *routing.Attributes) map[string]any {
	state := make(map[string]any)
	a.Range(func(k string, v any) bool {
		state[k] = v
		return true
	})

	return state
}

func mustPredicate(t *testing.T) func(routing.Predicate, error) routing.Predicate {
	t.Helper()
	return func(p routing.Predicate, err error) routing.Predicate {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}

		return p
	}
}
