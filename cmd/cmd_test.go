package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/account/plugins/sessionkey"
)

type cli struct {
	tb  testing.TB
	dir string
}

func (c *cli) run(args ...string) (string, error) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--data-dir", filepath.Join(c.dir, "state"), "--log-level", "error"))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (c *cli) must(args ...string) string {
	out, err := c.run(args...)
	require.NoError(c.tb, err, out)
	return out
}

func (c *cli) path(name string) string {
	return filepath.Join(c.dir, name)
}

func field(tb testing.TB, out, name string) string {
	for _, line := range strings.Split(out, "\n") {
		if value, found := strings.CutPrefix(line, name+": "); found {
			return value
		}
	}
	require.FailNow(tb, "field not found", "%s in %s", name, out)
	return ""
}

func TestAccountLifecycle(t *testing.T) {
	c := &cli{tb: t, dir: t.TempDir()}
	out := c.must("keygen", "--out", c.path("owner.key"))
	address := field(t, out, "address")
	c.must("keygen", "--out", c.path("next.key"))

	_, err := c.run("keygen", "--out", c.path("owner.key"))
	require.ErrorIs(t, err, os.ErrExist)

	out = c.must("spawn", "--key", c.path("owner.key"))
	require.Equal(t, address, field(t, out, "address"))
	require.Contains(t, out, "account created: "+address)

	_, err = c.run("spawn", "--key", c.path("owner.key"))
	require.ErrorIs(t, err, core.ErrAlreadyInitialized)

	out = c.must("add-plugin", "--key", c.path("owner.key"), "--plugin", "sessionkey")
	require.Contains(t, out, "applied: ")
	require.Contains(t, out, "transaction executed: "+address)

	out = c.must("info", "--address", address)
	require.Equal(t, "1", field(t, out, "nonce"))
	require.Equal(t, "0.2.0", field(t, out, "version"))
	require.Equal(t, "sessionkey", field(t, out, "plugin"))

	out = c.must("rotate-key", "--key", c.path("owner.key"), "--new-key", c.path("next.key"))
	require.Contains(t, out, "signer changed: "+address)

	_, err = c.run("remove-plugin", "--key", c.path("owner.key"), "--plugin", "sessionkey")
	require.ErrorIs(t, err, core.ErrInvalidSignature)

	c.must("revoke-session", "--key", c.path("next.key"), "--address", address,
		"--session-key", "0x1234")
	c.must("remove-plugin", "--key", c.path("next.key"), "--address", address,
		"--plugin", sessionkey.ID.String())

	out = c.must("info", "--address", address)
	require.Equal(t, "4", field(t, out, "nonce"))
	require.NotContains(t, out, "plugin:")
}

func TestUnknownPlugin(t *testing.T) {
	c := &cli{tb: t, dir: t.TempDir()}
	c.must("keygen", "--out", c.path("owner.key"))
	c.must("spawn", "--key", c.path("owner.key"))

	_, err := c.run("add-plugin", "--key", c.path("owner.key"), "--plugin", "unknown")
	require.ErrorContains(t, err, "neither built-in nor a hex id")

	_, err = c.run("spawn", "--key", c.path("owner.key"), "--plugins", "unknown")
	require.ErrorContains(t, err, "unknown built-in plugin")
}

func TestChainID(t *testing.T) {
	c := &cli{tb: t, dir: t.TempDir()}
	c.must("keygen", "--out", c.path("owner.key"))
	c.must("spawn", "--key", c.path("owner.key"), "--chain-id", "one")
	c.must("add-plugin", "--key", c.path("owner.key"), "--plugin", "sessionkey", "--chain-id", "one")

	_, err := c.run("remove-plugin", "--key", c.path("owner.key"), "--plugin", "sessionkey", "--chain-id", "two")
	require.ErrorIs(t, err, core.ErrInvalidSignature)
}

func TestConfigFile(t *testing.T) {
	c := &cli{tb: t, dir: t.TempDir()}
	path := c.path("config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[main]
chain-id = "from-file"
plugins = ""

[limits]
max-calls = 0
`), 0o600))
	c.must("keygen", "--out", c.path("owner.key"))
	_, err := c.run("spawn", "--key", c.path("owner.key"), "--config", path)
	require.ErrorContains(t, err, "max-calls")

	c.must("spawn", "--key", c.path("owner.key"), "--config", path, "--max-calls", "4")
	_, err = c.run("add-plugin", "--key", c.path("owner.key"), "--plugin", "sessionkey",
		"--config", path, "--max-calls", "4")
	require.NoError(t, err)

	_, err = c.run("spawn", "--key", c.path("owner.key"), "--preset", "unknown")
	require.ErrorContains(t, err, "not registered")
}
