// Package cmd contains the command line interface of the plugin account tools.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/config"
	"github.com/spacemeshos/go-pluginaccount/config/presets"
	"github.com/spacemeshos/go-pluginaccount/metrics"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// NewRootCmd returns command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	conf := config.DefaultConfig()
	root := &cobra.Command{
		Use:           "pluginaccount",
		Short:         "manage plugin accounts stored in the local state",
		Version:       fmt.Sprintf("%s+%s", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd, &conf)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if conf.MetricsPush == "" {
				return nil
			}
			return metrics.Push(conf.MetricsPush, "pluginaccount", map[string]string{"command": cmd.Name()})
		},
	}
	AddFlags(root.PersistentFlags(), &conf)
	root.AddCommand(
		keygenCmd(&conf),
		spawnCmd(&conf),
		infoCmd(&conf),
		rotateKeyCmd(&conf),
		addPluginCmd(&conf),
		removePluginCmd(&conf),
		revokeSessionCmd(&conf),
	)
	return root
}

// AddFlags binds flags to the config fields.
func AddFlags(flagSet *pflag.FlagSet, conf *config.Config) {
	flagSet.StringP("preset", "p", "",
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))
	flagSet.StringVarP(&conf.ConfigFile, "config", "c",
		conf.ConfigFile, "load configuration from file")
	flagSet.StringVarP(&conf.DataDir, "data-dir", "d",
		conf.DataDir, "directory with the state database")
	flagSet.StringVar(&conf.ChainID, "chain-id",
		conf.ChainID, "prefix of the signed messages")
	flagSet.StringVar(&conf.NetworkHRP, "network-hrp",
		conf.NetworkHRP, "human readable part of the addresses")
	flagSet.StringSliceVar(&conf.Plugins, "plugins",
		conf.Plugins, "built-in plugins that accounts can enable")
	flagSet.StringVar(&conf.LOGGING.Encoder, "log-encoder",
		conf.LOGGING.Encoder, "log as json or console")
	flagSet.String("log-level", "", "overwrites log level of every module")
	flagSet.StringVar(&conf.MetricsPush, "metrics-push",
		conf.MetricsPush, "push metrics to the url after the command completes")
	flagSet.IntVar(&conf.Limits.MaxCalls, "max-calls",
		conf.Limits.MaxCalls, "max number of calls in a batch")
	flagSet.IntVar(&conf.Limits.MaxBuffer, "max-buffer",
		conf.Limits.MaxBuffer, "max number of felts in the calldata buffer of a batch")
}

// loadConfig applies preset, then config file, then flags that were set explicitly.
func loadConfig(cmd *cobra.Command, conf *config.Config) error {
	flags := cmd.Flags()
	var changed []func() error
	flags.Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			values := sv.GetSlice()
			changed = append(changed, func() error { return sv.Replace(values) })
			return
		}
		value := f.Value.String()
		changed = append(changed, func() error {
			if err := f.Value.Set(value); err != nil {
				return fmt.Errorf("apply flag %s: %w", f.Name, err)
			}
			return nil
		})
	})

	vip := viper.New()
	if err := config.LoadConfig(conf.ConfigFile, vip); err != nil {
		return err
	}
	preset, _ := flags.GetString("preset")
	if preset == "" && vip.IsSet("main.preset") {
		preset = vip.GetString("main.preset")
	}
	if preset != "" {
		p, err := presets.Get(preset)
		if err != nil {
			return err
		}
		*conf = p
	}
	if err := config.Unmarshal(vip, conf); err != nil {
		return err
	}
	for _, apply := range changed {
		if err := apply(); err != nil {
			return err
		}
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		conf.LOGGING.SetLevel(level)
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	types.SetNetworkHRP(conf.NetworkHRP)
	return nil
}

