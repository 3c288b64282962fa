package signing

import "github.com/spacemeshos/go-pluginaccount/metrics"

const (
	subsystem = "signing"

	hit  = "hit"
	miss = "miss"
)

var verifyCache = metrics.NewCounter(
	"verify_cache",
	subsystem,
	"signature verification cache lookups",
	[]string{"result"},
)
