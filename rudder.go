/*
Package rudder provides a fluent builder over the routing and predicates
packages for declaring route tables in code.

	router, err := rudder.New().
		GET("/users/{id}", userHandler).
		POST("/users", createHandler).
		Nest("/api", func(api *rudder.Builder) {
			api.GET("/orders/{oid}", orderHandler)
		}).
		Build()

The resulting router is immutable and is typically passed to
routing.New for dispatching requests.
*/
package rudder

import (
	"errors"
	"net/http"

	"github.com/zalando/rudder/predicates"
	"github.com/zalando/rudder/routing"
)

// Builder accumulates route declarations. Construction errors are
// collected and reported together by Build, so declarations can be
// chained without intermediate error checks.
type Builder struct {
	routers    []routing.Router
	filters    []routing.Filter
	attributes []attribute
	errs       []error
}

type attribute struct {
	key   string
	value any
}

// New creates an empty route table builder.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) methodRoute(method, template string, h routing.Handler) *Builder {
	m, err := predicates.Method(method)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	p, err := predicates.Path(template)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	return b.Route(predicates.And(m, p), h)
}

// GET declares a route for GET requests matching the path template.
func (b *Builder) GET(template string, h routing.Handler) *Builder {
	return b.methodRoute(http.MethodGet, template, h)
}

// HEAD declares a route for HEAD requests matching the path template.
func (b *Builder) HEAD(template string, h routing.Handler) *Builder {
	return b.methodRoute(http.MethodHead, template, h)
}

// POST declares a route for POST requests matching the path template.
func (b *Builder) POST(template string, h routing.Handler) *Builder {
	return b.methodRoute(http.MethodPost, template, h)
}

// PUT declares a route for PUT requests matching the path template.
func (b *Builder) PUT(template string, h routing.Handler) *Builder {
	return b.methodRoute(http.MethodPut, template, h)
}

// PATCH declares a route for PATCH requests matching the path template.
func (b *Builder) PATCH(template string, h routing.Handler) *Builder {
	return b.methodRoute(http.MethodPatch, template, h)
}

// DELETE declares a route for DELETE requests matching the path template.
func (b *Builder) DELETE(template string, h routing.Handler) *Builder {
	return b.methodRoute(http.MethodDelete, template, h)
}

// OPTIONS declares a route for OPTIONS requests matching the path template.
func (b *Builder) OPTIONS(template string, h routing.Handler) *Builder {
	return b.methodRoute(http.MethodOptions, template, h)
}

// Route declares a route guarded by an arbitrary predicate.
func (b *Builder) Route(p routing.Predicate, h routing.Handler) *Builder {
	b.routers = append(b.routers, routing.Route(p, h))
	return b
}

// Add appends an already composed router to the table.
func (b *Builder) Add(r routing.Router) *Builder {
	b.routers = append(b.routers, r)
	return b
}

// Nest declares a sub-path route table. The routes declared by fn match
// against the path remaining after the template prefix.
func (b *Builder) Nest(template string, fn func(*Builder)) *Builder {
	p, err := predicates.Path(template)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	nested := New()
	fn(nested)
	inner, err := nested.Build()
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	b.routers = append(b.routers, routing.Nest(p, inner))
	return b
}

// Filter wraps every handler of the built route table with the filter.
// Filters added first wrap outermost.
func (b *Builder) Filter(f routing.Filter) *Builder {
	b.filters = append(b.filters, f)
	return b
}

// WithAttribute attaches static metadata to the built route table.
func (b *Builder) WithAttribute(key string, value any) *Builder {
	b.attributes = append(b.attributes, attribute{key: key, value: value})
	return b
}

// Build composes the declared routes sequentially, first match wins, and
// reports all collected construction errors at once.
func (b *Builder) Build() (routing.Router, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	composed := routing.Compose(b.routers...)
	if len(b.filters) > 0 {
		f := b.filters[0]
		for _, g := range b.filters[1:] {
			f = f.AndThen(g)
		}

		composed = routing.WithFilter(composed, f)
	}

	for i := len(b.attributes) - 1; i >= 0; i-- {
		composed = routing.WithAttribute(composed, b.attributes[i].key, b.attributes[i].value)
	}

	return composed, nil
}
