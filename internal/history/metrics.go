package history

import (
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// MetricPrefix is shared by every metric this module registers.
const MetricPrefix = "gridstorm_"

var (
	commitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridstorm_history_commits_total",
		Help: "Total number of logical actions committed to undo history",
	})

	changesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridstorm_history_changes_total",
		Help: "Total number of channel changes recorded in committed actions",
	})

	undoTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridstorm_history_undo_total",
		Help: "Total number of undo operations",
	})

	redoTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridstorm_history_redo_total",
		Help: "Total number of redo operations",
	})
)

// WriteMetrics writes the gridstorm metrics of g in the Prometheus text
// format. A nil gatherer means prometheus.DefaultGatherer.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), MetricPrefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
