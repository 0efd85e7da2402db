package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	promNamespace        = "rudder"
	promRoutingSubsystem = "routing"
)

// Prometheus implements the collection of route lookup metrics with
// Prometheus.
type Prometheus struct {
	lookupM  prometheus.Histogram
	matchedM prometheus.Counter
	failedM  prometheus.Counter
}

// PrometheusOptions for initializing Prometheus based metrics.
type PrometheusOptions struct {

	// Prefix for the metric names, defaults to "rudder".
	Prefix string

	// Registry to register the collectors with. When nil, the default
	// Prometheus registerer is used.
	Registry prometheus.Registerer
}

// NewPrometheus creates and registers the route lookup collectors.
func NewPrometheus(o PrometheusOptions) *Prometheus {
	namespace := promNamespace
	if o.Prefix != "" {
		namespace = o.Prefix
	}

	p := &Prometheus{
		lookupM: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: promRoutingSubsystem,
			Name:      "lookup_duration_seconds",
			Help:      "Duration of route lookups.",
		}),
		matchedM: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: promRoutingSubsystem,
			Name:      "matched_total",
			Help:      "Number of route lookups that selected a handler.",
		}),
		failedM: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: promRoutingSubsystem,
			Name:      "failed_total",
			Help:      "Number of route lookups without a matching route.",
		}),
	}

	registry := o.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	registry.MustRegister(p.lookupM, p.matchedM, p.failedM)
	return p
}

func (p *Prometheus) MeasureRouteLookup(start time.Time) {
	p.lookupM.Observe(time.Since(start).Seconds())
}

func (p *Prometheus) IncRoutingMatched() { p.matchedM.Inc() }
func (p *Prometheus) IncRoutingFailed()  { p.failedM.Inc() }
