package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/account/sdk"
	sksdk "github.com/spacemeshos/go-pluginaccount/account/sdk/sessionkey"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/config"
	"github.com/spacemeshos/go-pluginaccount/log"
	"github.com/spacemeshos/go-pluginaccount/signing"
)

func keygenCmd(conf *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "generate signer key and write it to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signer, err := signing.NewEdSigner(signing.ToFile(out), signing.WithPrefix([]byte(conf.ChainID)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "public key: %s\naddress: %s\n",
				signer.PublicKey(), types.GenerateAddress(signer.PublicKey().Bytes()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "file for the hex encoded private key")
	cmd.MarkFlagRequired("out")
	return cmd
}

func spawnCmd(conf *config.Config) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "spawn",
		Short: "create account for the signer key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, conf, func(a *app) error {
				signer, err := a.signer(key)
				if err != nil {
					return err
				}
				address, err := a.vm.Spawn(cmd.Context(), signer.PublicKey())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "address: %s\n", address)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "file with the signer key")
	cmd.MarkFlagRequired("key")
	return cmd
}

func infoCmd(conf *config.Config) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "print state of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, conf, func(a *app) error {
				addr, err := types.StringToAddress(address)
				if err != nil {
					return err
				}
				state, err := a.vm.Account(addr)
				if err != nil {
					return err
				}
				ids, err := a.vm.Plugins(addr)
				if err != nil {
					return err
				}
				version, err := a.vm.Query(cmd.Context(), addr, core.SelectorGetVersion, nil)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "address: %s\n", state.Address)
				fmt.Fprintf(w, "public key: %s\n", state.PublicKey)
				fmt.Fprintf(w, "nonce: %d\n", state.Nonce)
				fmt.Fprintf(w, "created: %d\n", state.Created)
				fmt.Fprintf(w, "version: %s\n", bytes.TrimLeft(version, "\x00"))
				for _, id := range ids {
					fmt.Fprintf(w, "plugin: %s\n", pluginName(id))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&address, "address", "a", "", "bech32 address of the account")
	cmd.MarkFlagRequired("address")
	return cmd
}

func rotateKeyCmd(conf *config.Config) *cobra.Command {
	var (
		key, next, address string
	)
	cmd := &cobra.Command{
		Use:   "rotate-key",
		Short: "replace signer key of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, conf, func(a *app) error {
				nextSigner, err := a.signer(next)
				if err != nil {
					return err
				}
				return a.submit(cmd, key, address, func(account types.Address) []core.Call {
					return []core.Call{sdk.SetPublicKey(account, nextSigner.PublicKey())}
				})
			})
		},
	}
	addSignerFlags(cmd, &key, &address)
	cmd.Flags().StringVar(&next, "new-key", "", "file with the new signer key")
	cmd.MarkFlagRequired("new-key")
	return cmd
}

func addPluginCmd(conf *config.Config) *cobra.Command {
	return pluginCmd(conf, "add-plugin", "enable plugin for the account", sdk.AddPlugin)
}

func removePluginCmd(conf *config.Config) *cobra.Command {
	return pluginCmd(conf, "remove-plugin", "disable plugin for the account", sdk.RemovePlugin)
}

func pluginCmd(
	conf *config.Config,
	use, short string,
	call func(types.Address, types.Felt) core.Call,
) *cobra.Command {
	var key, address, plugin string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := pluginID(plugin)
			if err != nil {
				return err
			}
			return withApp(cmd, conf, func(a *app) error {
				return a.submit(cmd, key, address, func(account types.Address) []core.Call {
					return []core.Call{call(account, id)}
				})
			})
		},
	}
	addSignerFlags(cmd, &key, &address)
	cmd.Flags().StringVar(&plugin, "plugin", "", "name of the built-in plugin or hex id")
	cmd.MarkFlagRequired("plugin")
	return cmd
}

func revokeSessionCmd(conf *config.Config) *cobra.Command {
	var key, address, session string
	cmd := &cobra.Command{
		Use:   "revoke-session",
		Short: "revoke session key granted to the sessionkey plugin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessionKey, err := types.HexToFelt(session)
			if err != nil {
				return err
			}
			return withApp(cmd, conf, func(a *app) error {
				return a.submit(cmd, key, address, func(account types.Address) []core.Call {
					return []core.Call{sksdk.Revoke(account, sessionKey)}
				})
			})
		},
	}
	addSignerFlags(cmd, &key, &address)
	cmd.Flags().StringVar(&session, "session-key", "", "hex encoded public key of the session")
	cmd.MarkFlagRequired("session-key")
	return cmd
}

func addSignerFlags(cmd *cobra.Command, key, address *string) {
	cmd.Flags().StringVarP(key, "key", "k", "", "file with the signer key")
	cmd.Flags().StringVarP(address, "address", "a", "",
		"bech32 address of the account. derived from the key if empty")
	cmd.MarkFlagRequired("key")
}

func withApp(cmd *cobra.Command, conf *config.Config, fn func(*app) error) error {
	a, err := newApp(conf)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := fn(a); err != nil {
		return err
	}
	a.drain(cmd.OutOrStdout())
	return nil
}

// submit signs calls with the current nonce of the account and applies them.
func (a *app) submit(cmd *cobra.Command, key, address string, calls func(types.Address) []core.Call) error {
	signer, err := a.signer(key)
	if err != nil {
		return err
	}
	account, err := a.address(address, signer)
	if err != nil {
		return err
	}
	nonce, err := a.vm.Nonce(account)
	if err != nil {
		return fmt.Errorf("account %s: %w", account, err)
	}
	rst, err := a.vm.Apply(cmd.Context(), sdk.Batch(signer, account, nonce, calls(account)...))
	if err != nil {
		return err
	}
	a.logger.Info("transaction applied",
		log.Address("account", rst.Account),
		log.Felt("hash", rst.Hash),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "applied: %s\n", rst.Hash)
	return nil
}

func pluginName(id types.Felt) string {
	for name, b := range builtins {
		if b.id == id {
			return name
		}
	}
	return id.String()
}
