package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"seodash/internal/db"
)

var importRunsDesc = prometheus.NewDesc(
	"seodash_import_runs_total",
	"Total import run count by source and outcome",
	[]string{"source", "outcome"},
	nil,
)

// ImportCollector is a custom Prometheus collector that reads import
// counters from the database on each scrape, so counts survive restarts.
type ImportCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *ImportCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- importRunsDesc
}

// Collect queries the database for all import counters and emits them.
func (c *ImportCollector) Collect(ch chan<- prometheus.Metric) {
	counters, err := c.db.GetAllImportCounters(context.Background())
	if err != nil {
		slog.Error("failed to collect import metrics", "error", err)
		return
	}
	for _, counter := range counters {
		ch <- prometheus.MustNewConstMetric(
			importRunsDesc,
			prometheus.CounterValue,
			float64(counter.Count),
			counter.Source,
			counter.Outcome,
		)
	}
}

// Recorder provides async import outcome recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&ImportCollector{db: database})
	})
}

// RecordImport asynchronously records an import run outcome.
func RecordImport(source, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementImportCounter(context.Background(), source, outcome); err != nil {
			slog.Error("failed to record import outcome", "source", source, "outcome", outcome, "error", err)
		}
	}()
}
