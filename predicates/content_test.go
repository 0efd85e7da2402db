package predicates

import (
	"errors"
	"testing"
)

func TestMediaTypeParse(t *testing.T) {
	for _, ti := range []struct {
		msg     string
		input   string
		ok      bool
		main    string
		sub     string
		quality float64
		params  int
	}{{
		msg: "no subtype", input: "text", ok: false,
	}, {
		msg: "empty subtype", input: "text/", ok: false,
	}, {
		msg: "wildcard type with concrete subtype", input: "*/json", ok: false,
	}, {
		msg: "invalid quality", input: "text/html;q=wat", ok: false,
	}, {
		msg: "quality out of range", input: "text/html;q=2", ok: false,
	}, {
		msg: "simple", input: "application/json", ok: true,
		main: "application", sub: "json", quality: 1,
	}, {
		msg: "case folded", input: "Text/HTML", ok: true,
		main: "text", sub: "html", quality: 1,
	}, {
		msg: "bare star", input: "*", ok: true,
		main: "*", sub: "*", quality: 1,
	}, {
		msg: "quality and params", input: "text/html; q=0.8; level=1", ok: true,
		main: "text", sub: "html", quality: 0.8, params: 1,
	}} {
		t.Run(ti.msg, func(t *testing.T) {
			m, ok := parseMediaType(ti.input)
			if ok != ti.ok {
				t.Fatalf("expected ok=%v, got %v", ti.ok, ok)
			}

			if !ok {
				return
			}

			if m.mainType != ti.main || m.subType != ti.sub ||
				m.quality != ti.quality || m.paramCount != ti.params {
				t.Errorf("unexpected result: %+v", m)
			}
		})
	}
}

func TestAcceptSorting(t *testing.T) {
	types := parseAccept([]string{"*/*, text/*;q=0.9, text/html;q=0.8, application/json"})
	expected := []string{"application/json", "text/html", "text/*", "*/*"}
	if len(types) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(types))
	}

	for i, e := range expected {
		if types[i].String() != e {
			t.Errorf("position %d: expected %s, got %s", i, e, types[i])
		}
	}
}

func TestContentTypeArgs(t *testing.T) {
	if _, err := ContentType(); !errors.Is(err, ErrNoMediaTypes) {
		t.Errorf("expected empty set error, got %v", err)
	}

	if _, err := ContentType("application/json", "nonsense"); !errors.Is(err, ErrInvalidMediaType) {
		t.Errorf("expected invalid media type error, got %v", err)
	}
}

func TestContentTypeMatch(t *testing.T) {
	p := mustPredicate(t)(ContentType("application/json", "text/*"))
	for _, ti := range []struct {
		msg         string
		contentType string
		match       bool
	}{
		{"exact", "application/json", true},
		{"with charset", "application/json; charset=utf-8", true},
		{"wildcard subtype", "text/plain", true},
		{"no match", "image/png", false},
		{"malformed", "wat", false},
	} {
		t.Run(ti.msg, func(t *testing.T) {
			req := testRequest(t, "POST", "/", "Content-Type", ti.contentType)
			if m := p.Test(req); m != ti.match {
				t.Errorf("expected %v, got %v", ti.match, m)
			}
		})
	}
}

func TestContentTypeDefaultsToOctetStream(t *testing.T) {
	req := testRequest(t, "POST", "/")
	if !mustPredicate(t)(ContentType("application/octet-stream")).Test(req) {
		t.Error("expected an absent content type to default to application/octet-stream")
	}

	if mustPredicate(t)(ContentType("application/json")).Test(req) {
		t.Error("expected no match for an absent content type")
	}
}

func TestAcceptMatch(t *testing.T) {
	p := mustPredicate(t)(Accept("application/json"))
	for _, ti := range []struct {
		msg    string
		accept string
		match  bool
	}{
		{"exact", "application/json", true},
		{"among others", "text/html, application/json;q=0.8", true},
		{"wildcard", "*/*", true},
		{"type wildcard", "application/*", true},
		{"absent accepts anything", "", true},
		{"no overlap", "text/html, image/png", false},
		{"zero quality excludes", "application/json;q=0", false},
	} {
		t.Run(ti.msg, func(t *testing.T) {
			var req = testRequest(t, "GET", "/")
			if ti.accept != "" {
				req = testRequest(t, "GET", "/", "Accept", ti.accept)
			}

			if m := p.Test(req); m != ti.match {
				t.Errorf("expected %v, got %v", ti.match, m)
			}
		})
	}
}

func TestContentPreflight(t *testing.T) {
	preflight := testRequest(t, "OPTIONS", "/", "Access-Control-Request-Method", "POST")
	if !mustPredicate(t)(ContentType("application/json")).Test(preflight) {
		t.Error("expected the content type predicate to hold for a preflight")
	}

	if !mustPredicate(t)(Accept("application/json")).Test(preflight) {
		t.Error("expected the accept predicate to hold for a preflight")
	}

	header := mustPredicate(t)(Header("X-Custom", "value"))
	if !header.Test(preflight) {
		t.Error("expected the header predicate to hold for a preflight")
	}
}
