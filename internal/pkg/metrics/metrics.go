// Package metrics collects and exposes Prometheus metrics for the
// attendance lifecycle.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the counter surface used by the service layer.
type Recorder interface {
	RecordCheckIn()
	RecordCheckOut()
	RecordSickReport()
	RecordBreakStart()
	RecordBreakEnd()
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	checkIns    prometheus.Counter
	checkOuts   prometheus.Counter
	sickReports prometheus.Counter
	breakStarts prometheus.Counter
	breakEnds   prometheus.Counter
}

// NewCollector registers the attendance counters on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		checkIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timeclock_check_ins_total",
			Help: "Total number of successful check-ins",
		}),
		checkOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timeclock_check_outs_total",
			Help: "Total number of successful check-outs",
		}),
		sickReports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timeclock_sick_reports_total",
			Help: "Total number of sick reports",
		}),
		breakStarts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timeclock_break_starts_total",
			Help: "Total number of breaks started",
		}),
		breakEnds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "timeclock_break_ends_total",
			Help: "Total number of breaks ended",
		}),
	}

	reg.MustRegister(
		c.checkIns,
		c.checkOuts,
		c.sickReports,
		c.breakStarts,
		c.breakEnds,
	)

	return c
}

func (c *Collector) RecordCheckIn()    { c.checkIns.Inc() }
func (c *Collector) RecordCheckOut()   { c.checkOuts.Inc() }
func (c *Collector) RecordSickReport() { c.sickReports.Inc() }
func (c *Collector) RecordBreakStart() { c.breakStarts.Inc() }
func (c *Collector) RecordBreakEnd()   { c.breakEnds.Inc() }

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop is a Recorder that discards everything. Used in tests.
type Noop struct{}

func (Noop) RecordCheckIn()    {}
func (Noop) RecordCheckOut()   {}
func (Noop) RecordSickReport() {}
func (Noop) RecordBreakStart() {}
func (Noop) RecordBreakEnd()   {}
