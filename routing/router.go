package routing

// Handler processes a routed request. The result type is opaque to the
// routing core.
type Handler func(req Request) (any, error)

// Filter wraps the handling of a routed request. It receives the request
// and the next handler in the chain, and may process the request before,
// after or instead of calling next.
type Filter func(req Request, next Handler) (any, error)

// AndThen composes two filters. The receiver wraps the outside, the
// argument wraps closer to the handler.
func (f Filter) AndThen(g Filter) Filter {
	return func(req Request, next Handler) (any, error) {
		return f(req, func(req Request) (any, error) {
			return g(req, next)
		})
	}
}

// Apply wraps a handler with the filter.
func (f Filter) Apply(h Handler) Handler {
	return func(req Request) (any, error) {
		return f(req, h)
	}
}

// Router selects a handler for a request. Routers compose sequentially,
// with the first match winning, and are immutable and safe for concurrent
// use once constructed.
type Router interface {

	// Route returns the handler for the request, if any. On a
	// non-match, the request attributes are left exactly as they were
	// before the call.
	Route(req Request) (Handler, bool)

	// Accept reports the router structure to a visitor.
	Accept(v RouterVisitor)
}

// RouterFunc adapts an ordinary function to a router. Such routers are
// reported to visitors as unknown.
type RouterFunc func(req Request) (Handler, bool)

func (f RouterFunc) Route(req Request) (Handler, bool) { return f(req) }
func (f RouterFunc) Accept(v RouterVisitor)            { v.Unknown(f) }

type leafRouter struct {
	name      string
	predicate Predicate
	handler   Handler
}

// Route creates a router of a single predicate guarded handler.
func Route(p Predicate, h Handler) Router {
	return NamedRoute("", p, h)
}

// NamedRoute creates a router of a single predicate guarded handler with
// a name used for introspection only.
func NamedRoute(name string, p Predicate, h Handler) Router {
	if p == nil {
		panic("routing: Route requires a non-nil predicate")
	}

	if h == nil {
		panic("routing: Route requires a non-nil handler")
	}

	return &leafRouter{name: name, predicate: p, handler: h}
}

func (r *leafRouter) Route(req Request) (Handler, bool) {
	attrs := req.Attributes()
	snapshot := attrs.Snapshot()
	if r.predicate.Test(req) {
		return r.handler, true
	}

	attrs.Restore(snapshot)
	return nil, false
}

func (r *leafRouter) Accept(v RouterVisitor) {
	v.Route(r.name, r.predicate, r.handler)
}

type nestedRouter struct {
	predicate Predicate
	inner     Router
}

// Nest creates a router that narrows the request path by the consumed
// prefix of the predicate and dispatches the rewritten request to the
// inner router.
func Nest(p Predicate, inner Router) Router {
	if p == nil {
		panic("routing: Nest requires a non-nil predicate")
	}

	if inner == nil {
		panic("routing: Nest requires a non-nil router")
	}

	return &nestedRouter{predicate: p, inner: inner}
}

func (r *nestedRouter) Route(req Request) (Handler, bool) {
	attrs := req.Attributes()
	snapshot := attrs.Snapshot()
	if nested, ok := NestRequest(r.predicate, req); ok {
		if h, ok := r.inner.Route(nested); ok {
			return h, true
		}
	}

	attrs.Restore(snapshot)
	return nil, false
}

func (r *nestedRouter) Accept(v RouterVisitor) {
	v.StartNested(r.predicate)
	r.inner.Accept(v)
	v.EndNested(r.predicate)
}

type composedRouter struct {
	routers []Router
}

// Compose combines routers sequentially. Each router is evaluated against
// the original, unmodified request, and the first one yielding a handler
// wins.
func Compose(routers ...Router) Router {
	for _, r := range routers {
		if r == nil {
			panic("routing: Compose requires non-nil routers")
		}
	}

	return &composedRouter{routers: routers}
}

func (r *composedRouter) Route(req Request) (Handler, bool) {
	for _, inner := range r.routers {
		if h, ok := inner.Route(req); ok {
			return h, true
		}
	}

	return nil, false
}

func (r *composedRouter) Accept(v RouterVisitor) {
	for _, inner := range r.routers {
		inner.Accept(v)
	}
}

type filteredRouter struct {
	inner  Router
	filter Filter
}

// WithFilter wraps every handler routed by the inner router with the
// filter. Matching itself is unaffected.
func WithFilter(r Router, f Filter) Router {
	if r == nil || f == nil {
		panic("routing: WithFilter requires a non-nil router and filter")
	}

	return &filteredRouter{inner: r, filter: f}
}

func (r *filteredRouter) Route(req Request) (Handler, bool) {
	h, ok := r.inner.Route(req)
	if !ok {
		return nil, false
	}

	return r.filter.Apply(h), true
}

func (r *filteredRouter) Accept(v RouterVisitor) {
	r.inner.Accept(v)
}

type attributedRouter struct {
	inner Router
	key   string
	value any
}

// WithAttribute attaches static metadata to a router. The metadata is
// reported during introspection and never consulted during matching.
func WithAttribute(r Router, key string, value any) Router {
	if r == nil {
		panic("routing: WithAttribute requires a non-nil router")
	}

	return &attributedRouter{inner: r, key: key, value: value}
}

func (r *attributedRouter) Route(req Request) (Handler, bool) {
	return r.inner.Route(req)
}

func (r *attributedRouter) Accept(v RouterVisitor) {
	v.Attribute(r.key, r.value)
	r.inner.Accept(v)
}
