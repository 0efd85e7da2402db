/*
Package rexp implements a textual format for route expressions.

A routing document contains routes separated by semicolons. Each route
has an optional identifier, a predicate expression and a handler
reference:

	users: Method("GET") && Path("/users/{id}") -> <userHandler>;

	// comments extend to the end of the line
	assets: Path("/assets/{*path}") || Extension("ico") -> <assetHandler>;

Predicate expressions combine the built-in predicates with &&, || and !,
with explicit parentheses supported. String arguments are double quoted.
The output of routing.Describe for trees built of the built-in
predicates parses back with this package.
*/
package rexp

import (
	"errors"
	"fmt"

	"github.com/zalando/rudder/predicates"
	"github.com/zalando/rudder/routing"
)

var (
	// ErrUnknownPredicate is wrapped by errors about predicate names
	// not defined by this format.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrUnknownHandler is wrapped by errors about unresolved handler
	// references.
	ErrUnknownHandler = errors.New("unknown handler")
)

// Route is a parsed route definition.
type Route struct {

	// ID of the route definition, may be empty.
	// E.g. users: ...
	ID string

	// Predicate gating the route.
	Predicate routing.Predicate

	// HandlerRef is the symbolic handler name of the route.
	// E.g. -> <userHandler>
	HandlerRef string
}

type parser struct {
	lex   *lexer
	tok   token
	ahead *token
}

func newParser(code string) (*parser, error) {
	p := &parser{lex: newLexer(code)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *parser) advance() error {
	if p.ahead != nil {
		p.tok, p.ahead = *p.ahead, nil
		return nil
	}

	t, err := p.lex.next()
	if err != nil {
		return err
	}

	p.tok = t
	return nil
}

func (p *parser) peek() (token, error) {
	if p.ahead == nil {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}

		p.ahead = &t
	}

	return *p.ahead, nil
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	if p.tok.kind != kind {
		return token{}, lexError(p.tok.pos, "expected %s, got %q", what, p.tok.val)
	}

	t := p.tok
	return t, p.advance()
}

func buildPredicate(name string, args []string, pos int) (routing.Predicate, error) {
	argCount := func(n int) error {
		if len(args) != n {
			return lexError(pos, "%s takes %d argument(s), got %d", name, n, len(args))
		}

		return nil
	}

	switch name {
	case "Method":
		return predicates.Method(args...)
	case "Path":
		if err := argCount(1); err != nil {
			return nil, err
		}

		return predicates.Path(args[0])
	case "Header":
		if err := argCount(2); err != nil {
			return nil, err
		}

		return predicates.Header(args[0], args[1])
	case "ContentType":
		return predicates.ContentType(args...)
	case "Accept":
		return predicates.Accept(args...)
	case "QueryParam":
		switch len(args) {
		case 1:
			return predicates.QueryParamExists(args[0])
		case 2:
			return predicates.QueryParam(args[0], args[1])
		default:
			return nil, lexError(pos, "QueryParam takes 1 or 2 arguments, got %d", len(args))
		}
	case "Extension":
		if err := argCount(1); err != nil {
			return nil, err
		}

		return predicates.Extension(args[0])
	case "True":
		if err := argCount(0); err != nil {
			return nil, err
		}

		return predicates.True(), nil
	case "False":
		if err := argCount(0); err != nil {
			return nil, err
		}

		return predicates.False(), nil
	default:
		return nil, fmt.Errorf("position %d: %w: %s", pos, ErrUnknownPredicate, name)
	}
}

func (p *parser) parseArgs() ([]string, error) {
	if _, err := p.expect(tokenOpenParen, "("); err != nil {
		return nil, err
	}

	var args []string
	for p.tok.kind != tokenCloseParen {
		if len(args) > 0 {
			if _, err := p.expect(tokenComma, ","); err != nil {
				return nil, err
			}
		}

		arg, err := p.expect(tokenString, "string argument")
		if err != nil {
			return nil, err
		}

		args = append(args, arg.val)
	}

	return args, p.advance()
}

func (p *parser) parseCall() (routing.Predicate, error) {
	name, err := p.expect(tokenIdent, "predicate name")
	if err != nil {
		return nil, err
	}

	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}

	return buildPredicate(name.val, args, name.pos)
}

func (p *parser) parseUnary() (routing.Predicate, error) {
	switch p.tok.kind {
	case tokenNot:
		if err := p.advance(); err != nil {
			return nil, err
		}

		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return predicates.Not(inner), nil
	case tokenOpenParen:
		if err := p.advance(); err != nil {
			return nil, err
		}

		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokenCloseParen, ")"); err != nil {
			return nil, err
		}

		return inner, nil
	default:
		return p.parseCall()
	}
}

func (p *parser) parseAnd() (routing.Predicate, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.tok.kind == tokenAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = predicates.And(left, right)
	}

	return left, nil
}

func (p *parser) parseOr() (routing.Predicate, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.tok.kind == tokenOr {
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		left = predicates.Or(left, right)
	}

	return left, nil
}

func (p *parser) parseRoute() (*Route, error) {
	r := &Route{}
	if p.tok.kind == tokenIdent {
		ahead, err := p.peek()
		if err != nil {
			return nil, err
		}

		if ahead.kind == tokenColon {
			r.ID = p.tok.val
			if err := p.advance(); err != nil {
				return nil, err
			}

			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	predicate, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	r.Predicate = predicate
	if _, err := p.expect(tokenArrow, "->"); err != nil {
		return nil, err
	}

	ref, err := p.expect(tokenRef, "handler reference")
	if err != nil {
		return nil, err
	}

	r.HandlerRef = ref.val
	return r, nil
}

// ParsePredicate parses a single predicate expression.
func ParsePredicate(code string) (routing.Predicate, error) {
	p, err := newParser(code)
	if err != nil {
		return nil, err
	}

	predicate, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.tok.kind != tokenEOF {
		return nil, lexError(p.tok.pos, "unexpected %q after the expression", p.tok.val)
	}

	return predicate, nil
}

// Parse parses a routing document into route definitions.
func Parse(code string) ([]*Route, error) {
	p, err := newParser(code)
	if err != nil {
		return nil, err
	}

	var routes []*Route
	for p.tok.kind != tokenEOF {
		r, err := p.parseRoute()
		if err != nil {
			return nil, err
		}

		routes = append(routes, r)
		if p.tok.kind == tokenSemicolon {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else if p.tok.kind != tokenEOF {
			return nil, lexError(p.tok.pos, "expected ; between routes, got %q", p.tok.val)
		}
	}

	return routes, nil
}

// Router composes parsed routes into a router, resolving handler
// references from the handlers map. Routes are composed sequentially in
// document order, with the first match winning.
func Router(routes []*Route, handlers map[string]routing.Handler) (routing.Router, error) {
	composed := make([]routing.Router, 0, len(routes))
	for _, r := range routes {
		h, ok := handlers[r.HandlerRef]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownHandler, r.HandlerRef)
		}

		name := r.ID
		if name == "" {
			name = r.HandlerRef
		}

		composed = append(composed, routing.NamedRoute(name, r.Predicate, h))
	}

	return routing.Compose(composed...), nil
}
