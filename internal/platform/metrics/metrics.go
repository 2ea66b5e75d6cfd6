package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cricket"

// Service holds the Prometheus collectors exported on /metrics.
type Service struct {
	gatherer prometheus.Gatherer

	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	Registrations    *prometheus.CounterVec
	StatusTransition *prometheus.CounterVec
}

// NewService creates and registers the collectors on a private registry.
func NewService() *Service {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewServiceWith(reg, reg)
}

// NewServiceWith registers the collectors on registerer and serves them from gatherer.
func NewServiceWith(registerer prometheus.Registerer, gatherer prometheus.Gatherer) *Service {
	s := &Service{
		gatherer: gatherer,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Player registration attempts by outcome.",
		}, []string{"outcome"}),
		StatusTransition: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_status_transitions_total",
			Help:      "Administrative user status changes by target status.",
		}, []string{"status"}),
	}

	registerer.MustRegister(s.HTTPRequests, s.HTTPDuration, s.Registrations, s.StatusTransition)
	return s
}

func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})
}

func (s *Service) ObserveHTTPRequest(method, route string, code int, elapsed time.Duration) {
	s.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	s.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (s *Service) ObserveRegistration(outcome string) {
	s.Registrations.WithLabelValues(outcome).Inc()
}

func (s *Service) ObserveStatusTransition(status string) {
	s.StatusTransition.WithLabelValues(status).Inc()
}
