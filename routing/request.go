package routing

import (
	"io"
	"net/http"
)

// Request is the view of an incoming request that predicates and routers
// evaluate. The request is immutable except for its attributes. Nested
// routers receive a rewritten view with a narrowed path; every other
// accessor is unaffected by nesting.
type Request interface {

	// Method returns the HTTP method.
	Method() string

	// Path returns the application relative request path.
	Path() string

	// ContextPath returns the part of the original path consumed by
	// nested routing. Empty for the original request.
	ContextPath() string

	// Header returns the request headers.
	Header() http.Header

	// QueryParam returns the first value of the named query parameter.
	QueryParam(name string) (string, bool)

	// QueryParams returns all values of the named query parameter.
	QueryParams(name string) []string

	// Attributes returns the mutable, request scoped attribute map.
	Attributes() *Attributes

	// Body returns the opaque request body.
	Body() io.ReadCloser

	// Raw returns the underlying http request.
	Raw() *http.Request
}

type httpRequest struct {
	req   *http.Request
	attrs *Attributes
}

// NewRequest adapts a stdlib request for routing. The attribute map is
// created fresh, scoped to the returned request.
func NewRequest(req *http.Request) Request {
	return &httpRequest{req: req, attrs: NewAttributes()}
}

func (r *httpRequest) Method() string      { return r.req.Method }
func (r *httpRequest) Path() string        { return r.req.URL.Path }
func (r *httpRequest) ContextPath() string { return "" }
func (r *httpRequest) Header() http.Header { return r.req.Header }

func (r *httpRequest) QueryParam(name string) (string, bool) {
	values := r.QueryParams(name)
	if len(values) == 0 {
		return "", false
	}

	return values[0], true
}

func (r *httpRequest) QueryParams(name string) []string {
	return r.req.URL.Query()[name]
}

func (r *httpRequest) Attributes() *Attributes { return r.attrs }
func (r *httpRequest) Body() io.ReadCloser     { return r.req.Body }
func (r *httpRequest) Raw() *http.Request      { return r.req }

// rewritten is the request view seen by nested routers. It overrides the
// path derived accessors and forwards everything else to the original
// request.
type rewritten struct {
	Request
	path        string
	contextPath string
}

// Rewrite produces the request view for a nested router: consumed is
// appended to the context path and remaining becomes the path. Attributes
// are shared with the original request.
func Rewrite(req Request, consumed, remaining string) Request {
	return &rewritten{
		Request:     req,
		path:        remaining,
		contextPath: req.ContextPath() + consumed,
	}
}

func (r *rewritten) Path() string        { return r.path }
func (r *rewritten) ContextPath() string { return r.contextPath }
