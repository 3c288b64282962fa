package account

import (
	"fmt"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/log"
	"github.com/spacemeshos/go-pluginaccount/sql"
	"github.com/spacemeshos/go-pluginaccount/sql/plugins"
	"github.com/spacemeshos/go-pluginaccount/sql/storage"
)

// AddPlugin enables plugin for the account. Self only.
func (a *Account) AddPlugin(ctx *core.Context, id core.Felt) error {
	if err := requireSelf(ctx); err != nil {
		return err
	}
	if id.IsZero() {
		return core.ErrNullPlugin
	}
	if err := plugins.Add(ctx.DB, ctx.Self, id); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	a.logger.Debug("plugin added", log.Address("account", ctx.Self), log.Felt("plugin", id))
	return nil
}

// RemovePlugin disables plugin for the account. Self only.
func (a *Account) RemovePlugin(ctx *core.Context, id core.Felt) error {
	if err := requireSelf(ctx); err != nil {
		return err
	}
	if err := plugins.Remove(ctx.DB, ctx.Self, id); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	a.logger.Debug("plugin removed", log.Address("account", ctx.Self), log.Felt("plugin", id))
	return nil
}

// ExecuteOnPlugin invokes plugin selector with the account storage. Self only.
func (a *Account) ExecuteOnPlugin(ctx *core.Context, id, selector core.Felt, args []core.Felt) ([]byte, error) {
	if err := requireSelf(ctx); err != nil {
		return nil, err
	}
	plugin, err := a.plugin(ctx, id)
	if err != nil {
		return nil, err
	}
	state, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	rst, err := plugin.Execute(a.pluginContext(ctx, &state, id, false), selector, args)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", id.ShortString(), err)
	}
	return rst, nil
}

func (a *Account) pluginContext(ctx *core.Context, state *core.Account, id core.Felt, readonly bool) *core.PluginContext {
	return &core.PluginContext{
		Account:   ctx.Self,
		PublicKey: state.PublicKey,
		Plugin:    id,
		Tx:        ctx.Tx,
		Timestamp: ctx.Host.Timestamp(),
		Storage: &pluginStorage{
			db:        ctx.DB,
			owner:     ctx.Self,
			namespace: id,
			readonly:  readonly,
		},
		Verifier: a.verifier,
		Logger:   a.logger.Named("plugin").With(log.Felt("plugin", id)),
	}
}

// pluginStorage is the part of the account storage owned by a plugin.
type pluginStorage struct {
	db        sql.Executor
	owner     core.Address
	namespace core.Felt
	readonly  bool
}

func (s *pluginStorage) Get(slot core.Felt) (core.Felt, error) {
	value, err := storage.Get(s.db, s.owner, s.namespace, slot)
	if err != nil {
		return core.Felt{}, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	return value, nil
}

func (s *pluginStorage) Set(slot, value core.Felt) error {
	if s.readonly {
		return core.ErrReadOnlyStorage
	}
	if err := storage.Set(s.db, s.owner, s.namespace, slot, value); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	return nil
}
