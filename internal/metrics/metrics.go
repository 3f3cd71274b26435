package metrics

import "github.com/prometheus/client_golang/prometheus"

// Request outcomes recorded by the App Center client.
const (
	OutcomeSuccess  = "success"
	OutcomeRetry    = "retry"
	OutcomeDegraded = "degraded"
)

type Counter interface {
	Inc(labels ...string)
}

type Gauge interface {
	Set(value float64)
}

type Counters struct {
	// RemoteRequests counts App Center request attempts by outcome.
	RemoteRequests Counter
	// Queries counts dispatched queries by type and status.
	Queries Counter
	// ConnectivityUp is 1 when the last scheduled probe succeeded.
	ConnectivityUp Gauge
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

type PrometheusGauge struct {
	gauge prometheus.Gauge
}

func (p *PrometheusGauge) Set(value float64) {
	p.gauge.Set(value)
}

func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

// NewTestCounters registers on a private registry so tests can build many.
func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}

func newCounters(reg prometheus.Registerer) *Counters {
	remote := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "appcenter_requests_total",
		Help: "App Center request attempts by outcome",
	}, []string{"outcome"})
	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "datasource_queries_total",
		Help: "Data-source queries by type and status",
	}, []string{"type", "status"})
	up := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "appcenter_connectivity_up",
		Help: "Result of the last scheduled App Center connectivity probe",
	})
	reg.MustRegister(remote, queries, up)

	return &Counters{
		RemoteRequests: &PrometheusCounter{counter: remote},
		Queries:        &PrometheusCounter{counter: queries},
		ConnectivityUp: &PrometheusGauge{gauge: up},
	}
}
