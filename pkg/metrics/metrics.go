package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "abs_wagon"

// Result label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Direction label values
const (
	DirectionUpload   = "upload"
	DirectionDownload = "download"
)

// TransferMetrics records what a wagon run did against the blob store.
// A nil *TransferMetrics is valid and records nothing.
type TransferMetrics struct {
	gatherer prometheus.Gatherer

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	bytesTransferred  *prometheus.CounterVec
	objectsListed     prometheus.Counter
}

// NewTransferMetrics registers the transfer metrics on registry
func NewTransferMetrics(registry *prometheus.Registry) *TransferMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	return &TransferMetrics{
		gatherer: registry,
		operationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "The total number of repository operations by outcome",
			},
			[]string{"operation", "result"},
		),
		operationDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of repository operations in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 15), // From 10ms to ~3m
			},
			[]string{"operation"},
		),
		bytesTransferred: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bytes_transferred_total",
				Help:      "The total number of bytes uploaded or downloaded",
			},
			[]string{"direction"},
		),
		objectsListed: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "objects_listed_total",
				Help:      "The total number of objects returned by prefix listings",
			},
		),
	}
}

// ObserveOperation records the outcome and duration of one operation
func (m *TransferMetrics) ObserveOperation(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}

	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.operationsTotal.WithLabelValues(operation, result).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// AddBytes records n transferred bytes in the given direction
func (m *TransferMetrics) AddBytes(direction string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.bytesTransferred.WithLabelValues(direction).Add(float64(n))
}

// AddListed records n objects returned by a listing
func (m *TransferMetrics) AddListed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.objectsListed.Add(float64(n))
}

// WriteTextfile writes the current metric values to path in the text
// exposition format, for the node exporter textfile collector.
func (m *TransferMetrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.gatherer)
}
