/*
Package metrics implements collection of route lookup metrics.

The collected metrics include the time spent with looking up routes and
the number of matched and unmatched lookups. Collection is disabled by
default; to enable it, pass a Metrics implementation, typically the
Prometheus one, in the routing options.
*/
package metrics

import "time"

// Metrics receives measurements taken during route lookups.
type Metrics interface {

	// MeasureRouteLookup records the duration since start as the time
	// spent with looking up a route.
	MeasureRouteLookup(start time.Time)

	// IncRoutingMatched counts a lookup that selected a handler.
	IncRoutingMatched()

	// IncRoutingFailed counts a lookup without a matching route.
	IncRoutingFailed()
}

type noop struct{}

func (noop) MeasureRouteLookup(time.Time) {}
func (noop) IncRoutingMatched()           {}
func (noop) IncRoutingFailed()            {}

// Default is a Metrics implementation discarding all measurements.
var Default Metrics = noop{}
