/*
Package pathmatch implements matching of path templates against request
paths.

A template consists of literal segments and wildcards:

  - literal segments: /users/list
  - named single segment captures: /users/{id}
  - anonymous single segment wildcards: /users/noSTAR/roles is invalid, but
    /users/STAR/roles with STAR spelled as * matches any single segment
  - trailing anonymous multi segment wildcards: /assets/STARSTAR
  - trailing named multi segment captures: /assets/{*path}, where the
    captured value contains the leading slash

Templates are parsed once, at configuration time, and the resulting
Pattern is immutable and safe for concurrent use.
*/
package pathmatch

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dimfeld/httppath"
)

var (
	// ErrInvalidTemplate is wrapped by all template syntax errors.
	ErrInvalidTemplate = errors.New("invalid path template")
)

type segmentKind int

const (
	literalSegment segmentKind = iota
	captureSegment
	wildcardSegment
	multiSegment
	captureMultiSegment
)

type segment struct {
	kind segmentKind

	// literal text or capture name, depending on the kind
	value string
}

// Pattern is a parsed path template.
type Pattern struct {
	source   string
	segments []segment
}

// Result contains the outcome of a successful full match.
type Result struct {

	// the matched template, as it was passed to Parse
	Pattern string

	// values of the named captures in the template, may be empty
	Variables map[string]string
}

// PrefixResult contains the outcome of a successful match of the start of
// a path.
type PrefixResult struct {
	Result

	// the not yet matched rest of the path. Either empty or starts
	// with a slash.
	Remaining string
}

func syntaxError(template, detail string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidTemplate, detail, template)
}

func validCaptureName(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		ok := c >= 'a' && c <= 'z' ||
			c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' ||
			c == '_'
		if !ok {
			return false
		}
	}

	return true
}

func parseSegment(template, token string, last bool) (segment, error) {
	switch {
	case token == "*":
		return segment{kind: wildcardSegment}, nil
	case token == "**":
		if !last {
			return segment{}, syntaxError(template, "multi segment wildcard must be the last segment")
		}

		return segment{kind: multiSegment}, nil
	case strings.HasPrefix(token, "{*"):
		if !strings.HasSuffix(token, "}") {
			return segment{}, syntaxError(template, "unclosed capture")
		}

		if !last {
			return segment{}, syntaxError(template, "multi segment capture must be the last segment")
		}

		name := token[2 : len(token)-1]
		if !validCaptureName(name) {
			return segment{}, syntaxError(template, "invalid capture name")
		}

		return segment{kind: captureMultiSegment, value: name}, nil
	case strings.HasPrefix(token, "{"):
		if !strings.HasSuffix(token, "}") {
			return segment{}, syntaxError(template, "unclosed capture")
		}

		name := token[1 : len(token)-1]
		if !validCaptureName(name) {
			return segment{}, syntaxError(template, "invalid capture name")
		}

		return segment{kind: captureSegment, value: name}, nil
	default:
		if strings.ContainsAny(token, "{}*") {
			return segment{}, syntaxError(template, "wildcard or capture in the middle of a segment")
		}

		return segment{kind: literalSegment, value: token}, nil
	}
}

// Parse parses a path template. Invalid syntax is reported immediately,
// wrapping ErrInvalidTemplate.
func Parse(template string) (*Pattern, error) {
	if template == "" || template[0] != '/' {
		return nil, syntaxError(template, "must start with a slash")
	}

	cleaned := httppath.Clean(template)
	p := &Pattern{source: template}
	if cleaned == "/" {
		return p, nil
	}

	tokens := strings.Split(cleaned[1:], "/")
	names := make(map[string]bool)
	for i, token := range tokens {
		s, err := parseSegment(template, token, i == len(tokens)-1)
		if err != nil {
			return nil, err
		}

		if s.kind == captureSegment || s.kind == captureMultiSegment {
			if names[s.value] {
				return nil, syntaxError(template, "duplicate capture name")
			}

			names[s.value] = true
		}

		p.segments = append(p.segments, s)
	}

	return p, nil
}

// MustParse parses a path template and panics on invalid syntax. Intended
// for templates defined as constants in code.
func MustParse(template string) *Pattern {
	p, err := Parse(template)
	if err != nil {
		panic(err)
	}

	return p
}

// String returns the original template.
func (p *Pattern) String() string { return p.source }

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return u
}

func splitPath(path string) []string {
	path = httppath.Clean(path)
	if path == "/" {
		return nil
	}

	return strings.Split(path[1:], "/")
}

// hasMulti tells if the last segment consumes an arbitrary number of path
// segments.
func (p *Pattern) hasMulti() bool {
	if len(p.segments) == 0 {
		return false
	}

	k := p.segments[len(p.segments)-1].kind
	return k == multiSegment || k == captureMultiSegment
}

// match consumes path segments according to the pattern. When prefix is
// false, the whole path must be consumed. It returns the captured
// variables and the number of consumed path segments.
func (p *Pattern) match(parts []string, prefix bool) (map[string]string, int, bool) {
	vars := make(map[string]string)
	for i, s := range p.segments {
		switch s.kind {
		case multiSegment:
			return vars, len(parts), true
		case captureMultiSegment:
			rest := ""
			if i < len(parts) {
				rest = "/" + strings.Join(parts[i:], "/")
			}

			vars[s.value] = unescape(rest)
			return vars, len(parts), true
		}

		if i >= len(parts) {
			return nil, 0, false
		}

		switch s.kind {
		case literalSegment:
			if parts[i] != s.value {
				return nil, 0, false
			}
		case captureSegment:
			if parts[i] == "" {
				return nil, 0, false
			}

			vars[s.value] = unescape(parts[i])
		case wildcardSegment:
			if parts[i] == "" {
				return nil, 0, false
			}
		}
	}

	if !prefix && len(parts) > len(p.segments) {
		return nil, 0, false
	}

	return vars, len(p.segments), true
}

// Matches tells if the pattern matches the whole path.
func (p *Pattern) Matches(path string) bool {
	_, ok := p.Match(path)
	return ok
}

// Match matches the pattern against the whole path, returning the captured
// variables on success.
func (p *Pattern) Match(path string) (*Result, bool) {
	vars, _, ok := p.match(splitPath(path), false)
	if !ok {
		return nil, false
	}

	return &Result{Pattern: p.source, Variables: vars}, true
}

// MatchStart matches the pattern against the start of the path, on segment
// boundaries. On success it returns the captured variables and the
// remaining, not yet matched part of the path. A pattern ending in a multi
// segment wildcard consumes the complete path, with an empty remainder.
func (p *Pattern) MatchStart(path string) (*PrefixResult, bool) {
	parts := splitPath(path)
	vars, consumed, ok := p.match(parts, true)
	if !ok {
		return nil, false
	}

	remaining := ""
	if consumed < len(parts) {
		remaining = "/" + strings.Join(parts[consumed:], "/")
	}

	return &PrefixResult{
		Result:    Result{Pattern: p.source, Variables: vars},
		Remaining: remaining,
	}, true
}

// Combine composes two templates into the template describing the full
// path of a nested route, for reporting purposes. It does not validate the
// result.
func Combine(a, b string) string {
	switch {
	case a == "" || a == "/":
		if b == "" {
			return a
		}

		return b
	case b == "" || b == "/":
		return a
	}

	aSlash := strings.HasSuffix(a, "/")
	bSlash := strings.HasPrefix(b, "/")
	switch {
	case aSlash && bSlash:
		return a + b[1:]
	case aSlash || bSlash:
		return a + b
	default:
		return a + "/" + b
	}
}
