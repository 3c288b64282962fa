package sql

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-pluginaccount/metrics"
)

const subsystem = "database"

// queryDuration in nanoseconds.
var queryDuration = metrics.NewHistogramWithBuckets(
	"query_duration",
	subsystem,
	"Duration of the query in nanoseconds",
	[]string{"query"},
	prometheus.ExponentialBuckets(100_000, 2, 20),
)
