// Package metrics keeps the Prometheus collectors of the fulfillment service
// on a private registry served at /metrics.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fulfillment"

// Registry owns every collector. Build one per process with NewRegistry.
type Registry struct {
	reg              *prometheus.Registry
	orderTransitions *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	markersPurged    prometheus.Counter
	jobRuns          *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		orderTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_transitions_total",
				Help:      "Committed order status changes",
			},
			[]string{"from", "to"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"method", "route", "code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
		markersPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocation_markers_purged_total",
			Help:      "Consumed-pallet markers removed by housekeeping",
		}),
		jobRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "job_runs_total",
				Help:      "Background job runs by outcome",
			},
			[]string{"job", "outcome"},
		),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.orderTransitions,
		r.httpRequests,
		r.httpDuration,
		r.markersPurged,
		r.jobRuns,
	)
	return r
}

// PublishStatusChanges counts committed transitions. It satisfies
// ports.OrderEventPublisher and never fails.
func (r *Registry) PublishStatusChanges(_ context.Context, changes []order.StatusChanged) error {
	for _, c := range changes {
		r.orderTransitions.WithLabelValues(c.From.String(), c.To.String()).Inc()
	}
	return nil
}

func (r *Registry) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Registry) MarkersPurged(n int64) {
	r.markersPurged.Add(float64(n))
}

// JobRun records one run of a background job; outcome is "ok" or "error".
func (r *Registry) JobRun(job string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.jobRuns.WithLabelValues(job, outcome).Inc()
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
