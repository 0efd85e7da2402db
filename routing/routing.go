package routing

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zalando/rudder/metrics"
)

// Options to initialize request routing.
type Options struct {

	// Router is the composed routing tree to dispatch requests with.
	Router Router

	// Log is used for routing diagnostics. When nil, the logrus
	// standard logger is used.
	Log logrus.FieldLogger

	// Metrics receives measurements about route lookups. When nil,
	// metrics collection is disabled.
	Metrics metrics.Metrics
}

// Routing dispatches requests over an immutable routing tree. It is safe
// for concurrent use.
type Routing struct {
	router  Router
	log     logrus.FieldLogger
	metrics metrics.Metrics
}

// New creates a Routing instance for a composed router. The routing tree
// must be complete at this point; it cannot be changed afterwards.
func New(o Options) *Routing {
	if o.Router == nil {
		panic("routing: New requires a router")
	}

	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}

	if o.Metrics == nil {
		o.Metrics = metrics.Default
	}

	return &Routing{router: o.Router, log: o.Log, metrics: o.Metrics}
}

// Route matches an incoming request against the routing tree. On a match
// it returns the selected handler and the request view it should be
// invoked with, which may be a rewritten view in case of nested routes.
// Invoking the handler is the caller's concern.
func (r *Routing) Route(req *http.Request) (Handler, Request, bool) {
	start := time.Now()
	rreq := NewRequest(req)
	h, ok := r.router.Route(rreq)
	r.metrics.MeasureRouteLookup(start)
	if !ok {
		r.metrics.IncRoutingFailed()
		r.log.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).Debug("no route matched")
		return nil, nil, false
	}

	r.metrics.IncRoutingMatched()
	return h, rreq, true
}
