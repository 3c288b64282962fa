package cmd

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-pluginaccount/account"
	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/account/plugins/sessionkey"
	"github.com/spacemeshos/go-pluginaccount/account/registry"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/config"
	"github.com/spacemeshos/go-pluginaccount/events"
	"github.com/spacemeshos/go-pluginaccount/filesystem"
	"github.com/spacemeshos/go-pluginaccount/signing"
	"github.com/spacemeshos/go-pluginaccount/sql"
	"github.com/spacemeshos/go-pluginaccount/vm"
)

type builtin struct {
	id     types.Felt
	plugin core.Plugin
}

var builtins = map[string]builtin{
	"sessionkey": {id: sessionkey.ID, plugin: sessionkey.SessionKey{}},
}

// pluginID resolves name of the built-in plugin or a hex encoded id.
func pluginID(name string) (types.Felt, error) {
	if b, exist := builtins[name]; exist {
		return b.id, nil
	}
	id, err := types.HexToFelt(name)
	if err != nil {
		return types.Felt{}, fmt.Errorf("plugin %q is neither built-in nor a hex id: %w", name, err)
	}
	return id, nil
}

// app owns resources shared by the commands that touch the state.
type app struct {
	conf     *config.Config
	logger   *zap.Logger
	db       *sql.Database
	reporter *events.Reporter
	vm       *vm.VM
	subs     []events.Subscription
}

func newApp(conf *config.Config) (*app, error) {
	loggers, err := conf.LOGGING.Build()
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	for _, name := range conf.Plugins {
		b, exist := builtins[name]
		if !exist {
			return nil, fmt.Errorf("unknown built-in plugin %q", name)
		}
		reg.Register(b.id, b.plugin)
	}
	verifier, err := signing.NewEdVerifier(
		signing.WithVerifierPrefix([]byte(conf.ChainID)),
		signing.WithCacheSize(conf.VerifierCacheSize),
	)
	if err != nil {
		return nil, err
	}
	if err := filesystem.ExistOrCreate(conf.StateDir()); err != nil {
		return nil, err
	}
	db, err := sql.Open("file:"+conf.StatePath(),
		sql.WithLogger(loggers.Database),
		sql.WithConnections(conf.DatabaseConnections),
		sql.WithLatencyMetering(conf.DatabaseLatency),
	)
	if err != nil {
		return nil, err
	}
	reporter, err := events.NewReporter(events.WithLogger(loggers.Events))
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	a := &app{
		conf:     conf,
		logger:   loggers.App,
		db:       db,
		reporter: reporter,
	}
	for _, ev := range []any{new(events.AccountCreated), new(events.SignerChanged), new(events.TransactionExecuted)} {
		sub, err := reporter.Subscribe(ev, 16)
		if err != nil {
			return nil, errors.Join(err, a.Close())
		}
		a.subs = append(a.subs, sub)
	}
	a.vm = vm.New(db,
		account.New(reg, verifier, account.WithLogger(loggers.Account), account.WithLimits(conf.Limits)),
		vm.WithLogger(loggers.VM),
		vm.WithReporter(reporter),
		vm.WithMaxDepth(conf.MaxCallDepth),
	)
	return a, nil
}

// signer loads key from file with the configured chain id.
func (a *app) signer(path string) (*signing.EdSigner, error) {
	return signing.NewEdSigner(signing.FromFile(path), signing.WithPrefix([]byte(a.conf.ChainID)))
}

// address returns explicit address if set, otherwise the one derived from the signer key.
func (a *app) address(explicit string, signer *signing.EdSigner) (types.Address, error) {
	if explicit == "" {
		return types.GenerateAddress(signer.PublicKey().Bytes()), nil
	}
	return types.StringToAddress(explicit)
}

// drain writes events published by the completed command.
func (a *app) drain(w io.Writer) {
	for _, sub := range a.subs {
		for drained := false; !drained; {
			select {
			case ev := <-sub.Out():
				fmt.Fprintln(w, describe(ev))
			default:
				drained = true
			}
		}
	}
}

func describe(ev any) string {
	switch ev := ev.(type) {
	case events.AccountCreated:
		return fmt.Sprintf("account created: %s key %s", ev.Account, ev.PublicKey.ShortString())
	case events.SignerChanged:
		return fmt.Sprintf("signer changed: %s key %s", ev.Account, ev.PublicKey.ShortString())
	case events.TransactionExecuted:
		return fmt.Sprintf("transaction executed: %s hash %s response %x", ev.Account, ev.Hash.ShortString(), ev.Response)
	}
	return fmt.Sprintf("%v", ev)
}

func (a *app) Close() error {
	var errs []error
	for _, sub := range a.subs {
		errs = append(errs, sub.Close())
	}
	return errors.Join(append(errs, a.reporter.Close(), a.db.Close())...)
}
