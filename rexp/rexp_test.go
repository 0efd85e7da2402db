package rexp

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/zalando/rudder/pathmatch"
	"github.com/zalando/rudder/predicates"
	"github.com/zalando/rudder/routing"
)

func testRequest(t *testing.T, method, target string) routing.Request {
	t.Helper()
	return routing.NewRequest(httptest.NewRequest(method, target, nil))
}

func TestParsePredicate(t *testing.T) {
	for _, ti := range []struct {
		msg    string
		code   string
		method string
		target string
		match  bool
	}{{
		"single call",
		`Method("GET")`,
		"GET", "/", true,
	}, {
		"conjunction",
		`Method("GET") && Path("/users/{id}")`,
		"GET", "/users/42", true,
	}, {
		"conjunction non-match",
		`Method("GET") && Path("/users/{id}")`,
		"POST", "/users/42", false,
	}, {
		"disjunction",
		`Path("/a") || Path("/b")`,
		"GET", "/b", true,
	}, {
		"negation",
		`!Extension("json")`,
		"GET", "/report.xml", true,
	}, {
		"parentheses",
		`(Path("/a") || Path("/b")) && Method("GET")`,
		"GET", "/b", true,
	}, {
		"precedence: and binds stronger",
		`Method("POST") && Path("/a") || Path("/b")`,
		"GET", "/b", true,
	}, {
		"query param presence",
		`QueryParam("debug")`,
		"GET", "/?debug", true,
	}, {
		"query param value",
		`QueryParam("format", "json")`,
		"GET", "/?format=json", true,
	}, {
		"constants",
		`True() && !False()`,
		"GET", "/", true,
	}, {
		"escaped string",
		`Header("X-Quote", "say \"hi\"")`,
		"GET", "/", false,
	}} {
		t.Run(ti.msg, func(t *testing.T) {
			p, err := ParsePredicate(ti.code)
			if err != nil {
				t.Fatal(err)
			}

			if m := p.Test(testRequest(t, ti.method, ti.target)); m != ti.match {
				t.Errorf("expected %v, got %v", ti.match, m)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, ti := range []struct {
		msg  string
		code string
	}{
		{"empty", ``},
		{"unterminated string", `Method("GET`},
		{"missing parenthesis", `Method("GET"`},
		{"dangling operator", `Method("GET") &&`},
		{"trailing garbage", `Method("GET") Method("POST")`},
		{"non-string argument", `Method(GET)`},
		{"invalid character", `Method("GET") # Path("/a")`},
	} {
		t.Run(ti.msg, func(t *testing.T) {
			if _, err := ParsePredicate(ti.code); err == nil {
				t.Error("expected a parse error")
			}
		})
	}

	if _, err := ParsePredicate(`Unheard("of")`); !errors.Is(err, ErrUnknownPredicate) {
		t.Errorf("expected unknown predicate error, got %v", err)
	}

	// configuration errors of the constructed predicates surface
	if _, err := ParsePredicate(`Method("TEAPOT")`); !errors.Is(err, predicates.ErrInvalidMethod) {
		t.Errorf("expected invalid method error, got %v", err)
	}

	if _, err := ParsePredicate(`Path("/users/{id")`); !errors.Is(err, pathmatch.ErrInvalidTemplate) {
		t.Errorf("expected invalid template error, got %v", err)
	}
}

func TestParseDocument(t *testing.T) {
	doc := `
		// user lookup
		users: Method("GET") && Path("/users/{id}") -> <userHandler>;

		assets: Path("/assets/{*path}") -> <assetHandler>;
		True() -> <fallback>
	`

	routes, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}

	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}

	if routes[0].ID != "users" || routes[0].HandlerRef != "userHandler" {
		t.Errorf("unexpected first route: %+v", routes[0])
	}

	if routes[2].ID != "" || routes[2].HandlerRef != "fallback" {
		t.Errorf("unexpected last route: %+v", routes[2])
	}
}

func TestRouterComposition(t *testing.T) {
	routes, err := Parse(`
		users: Method("GET") && Path("/users/{id}") -> <users>;
		fallback: True() -> <fallback>;
	`)
	if err != nil {
		t.Fatal(err)
	}

	handler := func(result string) routing.Handler {
		return func(routing.Request) (any, error) { return result, nil }
	}

	r, err := Router(routes, map[string]routing.Handler{
		"users":    handler("users"),
		"fallback": handler("fallback"),
	})
	if err != nil {
		t.Fatal(err)
	}

	req := testRequest(t, "GET", "/users/42")
	h, ok := r.Route(req)
	if !ok {
		t.Fatal("expected a match")
	}

	if result, _ := h(req); result != "users" {
		t.Errorf("unexpected handler result: %v", result)
	}

	if vars := routing.PathVariables(req.Attributes()); vars["id"] != "42" {
		t.Errorf("unexpected variables: %v", vars)
	}

	req = testRequest(t, "DELETE", "/somewhere/else")
	h, ok = r.Route(req)
	if !ok {
		t.Fatal("expected the fallback to match")
	}

	if result, _ := h(req); result != "fallback" {
		t.Errorf("unexpected handler result: %v", result)
	}

	if _, err := Router(routes, nil); !errors.Is(err, ErrUnknownHandler) {
		t.Errorf("expected unknown handler error, got %v", err)
	}
}

// The textual rendering of a parsed predicate parses back to the same
// rendering.
func TestRoundTrip(t *testing.T) {
	for _, code := range []string{
		`Method("GET")`,
		`(Method("GET") && Path("/users/{id}"))`,
		`((Method("GET") && Path("/a")) || (Method("POST") && Path("/b")))`,
		`!(Extension("json"))`,
		`(ContentType("application/json") && Accept("text/html"))`,
		`(QueryParam("debug") || QueryParam("format", "json"))`,
	} {
		p, err := ParsePredicate(code)
		if err != nil {
			t.Fatal(err)
		}

		printed := routing.PredicateString(p)
		reparsed, err := ParsePredicate(printed)
		if err != nil {
			t.Fatalf("%s: reparse failed: %v", printed, err)
		}

		if reprinted := routing.PredicateString(reparsed); reprinted != printed {
			t.Errorf("round trip mismatch: %s != %s", printed, reprinted)
		}
	}
}
