package vm

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-pluginaccount/metrics"
)

const subsystem = "vm"

var (
	applied = metrics.NewCounter(
		"applied",
		subsystem,
		"transactions applied by status",
		[]string{"status"},
	)
	applyDuration = metrics.NewHistogramWithBuckets(
		"apply_duration_seconds",
		subsystem,
		"duration of the transaction apply",
		[]string{},
		prometheus.ExponentialBuckets(0.0001, 4, 8),
	).WithLabelValues()
	calls = metrics.NewCounter(
		"calls",
		subsystem,
		"calls routed between contracts",
		[]string{},
	).WithLabelValues()
)
