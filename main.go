// pluginaccount manages programmable accounts with pluggable authentication.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spacemeshos/go-pluginaccount/cmd"
)

var (
	version string
	commit  string
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return cmd.NewRootCmd().ExecuteContext(ctx)
}
