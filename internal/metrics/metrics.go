package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry served on /metrics.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Registrations counts registration workflow outcomes by category.
	Registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "agent_registrations_total", Help: "Agent registrations by category and outcome."},
		[]string{"category", "outcome"},
	)
	// EnquiryConversions counts enquiries advanced to converted, by the path that advanced them.
	EnquiryConversions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "enquiry_conversions_total", Help: "Enquiries marked converted, by source."},
		[]string{"source"},
	)
	// CacheLookups counts catalog cache hits and misses.
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "catalog_cache_lookups_total", Help: "Catalog cache lookups by result."},
		[]string{"result"},
	)

	regOnce sync.Once
)

// Registration outcomes.
const (
	OutcomeCreated            = "created"
	OutcomeRejected           = "rejected"
	OutcomeFailed             = "failed"
	OutcomeDocumentsFailed    = "documents_failed"
	OutcomeEnquiryNotAdvanced = "enquiry_not_advanced"
)

// RegisterDefault registers every collector on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Registrations)
		Registry.MustRegister(EnquiryConversions)
		Registry.MustRegister(CacheLookups)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
