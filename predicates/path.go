package predicates

import (
	"errors"
	"strings"

	"github.com/dimfeld/httppath"

	"github.com/zalando/rudder/pathmatch"
	"github.com/zalando/rudder/routing"
)

// ErrNilEngine is returned when a path predicate is constructed with a
// nil template engine.
var ErrNilEngine = errors.New("template engine must not be nil")

type pathPredicate struct {
	template pathmatch.Template
}

// Path creates a predicate matching the request path against a path
// template, using the default template engine of the pathmatch package.
//
// On a match, the captured variables are merged into the path variables
// collected so far, with the innermost capture of a name winning, and the
// matched template, composed with the template consumed by any enclosing
// nested routes, is recorded in the attributes.
//
// The predicate supports nested routing by matching the template against
// the start of the path and narrowing the request to the remainder.
func Path(template string) (routing.Predicate, error) {
	return PathWith(pathmatch.Default, template)
}

// PathWith creates a path predicate bound to an alternative template
// engine. The engine binding is fixed at construction time.
func PathWith(engine pathmatch.Engine, template string) (routing.Predicate, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}

	t, err := engine.Parse(template)
	if err != nil {
		return nil, err
	}

	return &pathPredicate{template: t}, nil
}

func (p *pathPredicate) Test(req routing.Request) bool {
	r, ok := p.template.Match(req.Path())
	if !ok {
		return false
	}

	attrs := req.Attributes()
	routing.MergePathVariables(attrs, r.Variables)
	routing.SetMatchedPattern(attrs, pathmatch.Combine(routing.ContextPattern(attrs), r.Pattern))
	return true
}

func (p *pathPredicate) Nest(req routing.Request) (routing.Request, bool) {
	r, ok := p.template.MatchStart(req.Path())
	if !ok {
		return nil, false
	}

	attrs := req.Attributes()
	routing.MergePathVariables(attrs, r.Variables)
	routing.SetContextPattern(attrs, pathmatch.Combine(routing.ContextPattern(attrs), r.Pattern))

	cleaned := httppath.Clean(req.Path())
	consumed := cleaned
	if r.Remaining != "" {
		consumed = strings.TrimSuffix(cleaned, r.Remaining)
	}

	return routing.Rewrite(req, consumed, r.Remaining), true
}

func (p *pathPredicate) Accept(v routing.Visitor) {
	v.Path(p.template.String())
}
