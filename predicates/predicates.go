/*
Package predicates implements the built-in request predicates and the
logical combinators over them.

Predicates are constructed once, at configuration time, with fail fast
validation of their configuration, and are immutable and safe for
concurrent use afterwards. Invalid configuration is a programmer error
and is never retried at request time.

For CORS preflight requests, method OPTIONS with an
Access-Control-Request-Method header, the method predicate tests the
declared method instead of the literal one, and the header, content type
and accept predicates hold unconditionally, because browsers do not send
the custom headers on the preflight itself.
*/
package predicates

import (
	"errors"
	"net/http"

	"github.com/zalando/rudder/routing"
)

var (
	// ErrNoMethods is returned when a method predicate is constructed
	// without methods.
	ErrNoMethods = errors.New("at least one method must be specified")

	// ErrInvalidMethod is returned for methods outside the set defined
	// by the HTTP specification.
	ErrInvalidMethod = errors.New("invalid method")

	// ErrNoMediaTypes is returned when a content type or accept
	// predicate is constructed without media types.
	ErrNoMediaTypes = errors.New("at least one media type must be specified")

	// ErrInvalidMediaType is returned for malformed media types.
	ErrInvalidMediaType = errors.New("invalid media type")

	// ErrEmptyName is returned for empty header or query parameter
	// names.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrNilMatch is returned when a custom value test is nil.
	ErrNilMatch = errors.New("match function must not be nil")
)

const accessControlRequestMethod = "Access-Control-Request-Method"

// isPreflight tells if the request is a CORS preflight request.
func isPreflight(req routing.Request) bool {
	return req.Method() == http.MethodOptions &&
		req.Header().Get(accessControlRequestMethod) != ""
}
