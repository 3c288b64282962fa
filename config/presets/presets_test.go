package presets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	require.Equal(t, []string{"standalone", "testnet"}, Options())
	for _, name := range Options() {
		t.Run(name, func(t *testing.T) {
			conf, err := Get(name)
			require.NoError(t, err)
			require.Equal(t, name, conf.Preset)
			require.NoError(t, conf.Validate())
		})
	}
	_, err := Get("mainnet")
	require.ErrorContains(t, err, "not registered")
}

func TestGetCopiesPlugins(t *testing.T) {
	conf, err := Get("testnet")
	require.NoError(t, err)
	conf.Plugins[0] = "changed"
	again, err := Get("testnet")
	require.NoError(t, err)
	require.Equal(t, []string{"sessionkey"}, again.Plugins)
}
