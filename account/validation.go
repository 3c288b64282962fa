package account

import (
	"fmt"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/log"
	"github.com/spacemeshos/go-pluginaccount/signing"
	"github.com/spacemeshos/go-pluginaccount/sql/accounts"
	"github.com/spacemeshos/go-pluginaccount/sql/plugins"
)

type validationPath uint8

const (
	signaturePath validationPath = iota
	pluginPath
)

func (p validationPath) String() string {
	if p == pluginPath {
		return "plugin"
	}
	return "signature"
}

// usesPlugin is true if the first entry is a call to self with the plugin sentinel.
func usesPlugin(self core.Address, entries []core.CallArrayEntry) bool {
	return len(entries) > 0 &&
		entries[0].To == self &&
		entries[0].Selector == core.SelectorUsePlugin
}

// validate checks that the account may execute the batch and consumes the nonce.
// Nonce is consumed before authorization, failure of the authorization
// discards it together with the rest of the transaction.
func (a *Account) validate(ctx *core.Context, batch *core.Batch) (validationPath, error) {
	state, err := a.load(ctx)
	if err != nil {
		return 0, err
	}
	if !state.Initialized() {
		return 0, core.ErrNotInitialized
	}
	if batch.Nonce != state.Nonce {
		return 0, fmt.Errorf("%w: expected %d, got %d", core.ErrNonceMismatch, state.Nonce, batch.Nonce)
	}
	if err := accounts.SetNonce(ctx.DB, ctx.Self, state.Nonce+1); err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	if usesPlugin(ctx.Self, batch.Entries) {
		return pluginPath, a.validateWithPlugin(ctx, &state, batch)
	}
	return signaturePath, a.validateSignature(ctx, &state)
}

func (a *Account) validateSignature(ctx *core.Context, state *core.Account) error {
	if !a.verifier.Verify(signing.TX, state.PublicKey, ctx.Tx.Hash.Bytes(), ctx.Tx.Signature.Ed()) {
		return core.ErrInvalidSignature
	}
	return nil
}

func (a *Account) validateWithPlugin(ctx *core.Context, state *core.Account, batch *core.Batch) error {
	sentinel := batch.Entries[0]
	block, err := sentinel.Range(batch.Buffer)
	if err != nil {
		return err
	}
	if len(block) == 0 {
		return fmt.Errorf("%w: plugin id is missing", core.ErrMalformedBatch)
	}
	id := block[0]
	plugin, err := a.plugin(ctx, id)
	if err != nil {
		return err
	}
	rest := sentinel.DataOffset + sentinel.DataLen
	pctx := a.pluginContext(ctx, state, id, true)
	pctx.BufferOffset = rest
	if err := plugin.Validate(pctx, block[1:], batch.Entries[1:], batch.Buffer[rest:]); err != nil {
		a.logger.Debug("plugin rejected batch",
			log.Address("account", ctx.Self),
			log.Felt("plugin", id),
		)
		return fmt.Errorf("plugin %s: %w", id.ShortString(), err)
	}
	return nil
}

// plugin returns code of the plugin enabled for the account.
func (a *Account) plugin(ctx *core.Context, id core.Felt) (core.Plugin, error) {
	enabled, err := plugins.Has(ctx.DB, ctx.Self, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	if !enabled {
		return nil, fmt.Errorf("%w: %s is not enabled", core.ErrUnknownPlugin, id)
	}
	plugin := a.registry.Get(id)
	if plugin == nil {
		return nil, fmt.Errorf("%w: %s is not registered", core.ErrUnknownPlugin, id)
	}
	return plugin, nil
}
