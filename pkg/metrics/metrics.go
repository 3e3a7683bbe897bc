package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Results of processing a log entry
const (
	ResultOK        = "ok"
	ResultFailed    = "failed"
	ResultMalformed = "malformed"
	ResultDuplicate = "duplicate"
)

// PipelineEntries counts processed log entries by stream and result
var PipelineEntries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "minicrm",
	Name:      "pipeline_entries_total",
	Help:      "Number of log entries processed by the pipeline consumers",
}, []string{"stream", "result"})

// VendorRequests counts vendor calls by outcome: SENT, FAILED or error
var VendorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "minicrm",
	Name:      "vendor_requests_total",
	Help:      "Number of vendor send calls",
}, []string{"status"})

// VendorLatency ...
var VendorLatency = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "minicrm",
	Name:      "vendor_request_duration_seconds",
	Help:      "Latency of vendor send calls",
	Buckets:   prometheus.DefBuckets,
})

// DispatchFailures counts send events that could not be handed to the delivery pipeline
var DispatchFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "minicrm",
	Name:      "dispatch_failures_total",
	Help:      "Number of delivery log entries left PENDING because dispatch failed",
})

// StatsRefresh counts stats snapshot recomputations by result
var StatsRefresh = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "minicrm",
	Name:      "stats_refresh_total",
	Help:      "Number of stats snapshot recomputations",
}, []string{"result"})

// AddEntries ...
func AddEntries(stream string, result string, n int) {
	if n <= 0 {
		return
	}
	PipelineEntries.WithLabelValues(stream, result).Add(float64(n))
}
