// Package metric exposes conversion statistics as Prometheus metrics.
//
// A batch converter has no scrape endpoint, so the registry is written to a
// node-exporter textfile after each run.
package metric

import (
	"time"

	"github.com/c360studio/semstreams/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/hozo2owl/mapper"
)

// Run results recorded by ObserveRun.
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultFailed  = "failed"
)

// Collector holds conversion metrics. It implements mapper.Observer.
// All methods are safe on a nil Collector.
type Collector struct {
	registry *prometheus.Registry

	statements *prometheus.CounterVec // By kind
	skipped    *prometheus.CounterVec // By reason
	runs       *prometheus.CounterVec // By result
	duration   prometheus.Gauge
	lastRun    prometheus.Gauge
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		statements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hozo2owl",
			Subsystem: "mapper",
			Name:      "statements_total",
			Help:      "Total number of statements written, by kind",
		}, []string{"kind"}),

		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hozo2owl",
			Subsystem: "mapper",
			Name:      "slots_skipped_total",
			Help:      "Total number of slots that produced no restriction, by reason",
		}, []string{"reason"}),

		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hozo2owl",
			Subsystem: "convert",
			Name:      "runs_total",
			Help:      "Total number of conversions, by result",
		}, []string{"result"}), // result: success, invalid, failed

		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hozo2owl",
			Subsystem: "convert",
			Name:      "last_duration_seconds",
			Help:      "Duration of the most recent conversion in seconds",
		}),

		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hozo2owl",
			Subsystem: "convert",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the most recent conversion finished",
		}),
	}

	c.registry.MustRegister(c.statements, c.skipped, c.runs, c.duration, c.lastRun)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// StatementEmitted counts one written statement.
func (c *Collector) StatementEmitted(kind mapper.StatementKind) {
	if c == nil {
		return
	}
	c.statements.WithLabelValues(string(kind)).Inc()
}

// SlotSkipped counts one skipped slot.
func (c *Collector) SlotSkipped(reason mapper.SkipReason) {
	if c == nil {
		return
	}
	c.skipped.WithLabelValues(string(reason)).Inc()
}

// ObserveRun records the outcome of a conversion that took duration.
func (c *Collector) ObserveRun(err error, duration time.Duration) {
	if c == nil {
		return
	}
	c.runs.WithLabelValues(ResultOf(err)).Inc()
	c.duration.Set(duration.Seconds())
	c.lastRun.SetToCurrentTime()
}

// ResultOf classifies a conversion error as a run result label.
func ResultOf(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.IsInvalid(err):
		return ResultInvalid
	default:
		return ResultFailed
	}
}

// WriteTextfile writes the metrics to path in the Prometheus text format.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return errors.WrapFatal(err, "Collector", "WriteTextfile", "write metrics textfile")
	}
	return nil
}
