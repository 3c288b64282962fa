package account

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/metrics"
)

const subsystem = "account"

var (
	validated = metrics.NewCounter(
		"validated",
		subsystem,
		"batches authorized by validation path",
		[]string{"path"},
	)
	rejected = metrics.NewCounter(
		"rejected",
		subsystem,
		"batches rejected before execution",
		[]string{"reason"},
	)
	failed = metrics.NewCounter(
		"failed",
		subsystem,
		"batches aborted by a failed call",
		[]string{},
	).WithLabelValues()
	batchCalls = metrics.NewHistogramWithBuckets(
		"batch_calls",
		subsystem,
		"number of calls executed in a batch",
		[]string{},
		prometheus.ExponentialBuckets(1, 2, 7),
	).WithLabelValues()
	batchDuration = metrics.NewHistogramWithBuckets(
		"batch_duration_seconds",
		subsystem,
		"duration of the batch execution",
		[]string{},
		prometheus.ExponentialBuckets(0.0001, 4, 8),
	).WithLabelValues()
)

var reasons = []struct {
	err   error
	label string
}{
	{core.ErrMalformedBatch, "malformed"},
	{core.ErrNotInitialized, "not_initialized"},
	{core.ErrNonceMismatch, "nonce"},
	{core.ErrInvalidSignature, "signature"},
	{core.ErrUnknownPlugin, "unknown_plugin"},
	{core.ErrInternal, "internal"},
}

func reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "plugin"
}
