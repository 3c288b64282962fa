package presets

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-pluginaccount/config"
)

func init() {
	register("standalone", standalone())
}

func standalone() config.Config {
	conf := config.DefaultConfig()
	conf.Preset = "standalone"
	conf.DataDir = filepath.Join(os.TempDir(), "pluginaccount")
	conf.ChainID = "standalone"
	conf.NetworkHRP = "stest"
	conf.VerifierCacheSize = 0
	conf.LOGGING.SetLevel(zapcore.DebugLevel.String())
	return conf
}
