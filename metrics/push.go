package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends all metrics from the default registry to the pushgateway at url.
// Command line tools exit right after the work is done, therefore metrics are pushed once.
func Push(url, job string, grouping map[string]string) error {
	pusher := push.New(url, job).Gatherer(prometheus.DefaultGatherer)
	for name, value := range grouping {
		pusher = pusher.Grouping(name, value)
	}
	if err := pusher.Push(); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
