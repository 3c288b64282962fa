package presets

import (
	"github.com/spacemeshos/go-pluginaccount/config"
)

func init() {
	register("testnet", testnet())
}

func testnet() config.Config {
	conf := config.DefaultConfig()
	conf.Preset = "testnet"
	conf.ChainID = "testnet"
	conf.NetworkHRP = "stest"
	conf.Limits.MaxCalls = 16
	conf.Limits.MaxBuffer = 1024
	conf.DatabaseLatency = true
	return conf
}
