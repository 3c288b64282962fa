package account

import (
	"fmt"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/signing"
	"github.com/spacemeshos/go-pluginaccount/sql/plugins"
)

// IsPlugin returns true if plugin is enabled for the account.
func (a *Account) IsPlugin(ctx *core.Context, id core.Felt) (bool, error) {
	enabled, err := plugins.Has(ctx.DB, ctx.Self, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	return enabled, nil
}

// VerifySignature checks that sig is a signature of hash by the signer key.
func (a *Account) VerifySignature(ctx *core.Context, hash core.Felt, sig core.Signature) (bool, error) {
	state, err := a.load(ctx)
	if err != nil {
		return false, err
	}
	if !state.Initialized() {
		return false, nil
	}
	return a.verifier.Verify(signing.TX, state.PublicKey, hash.Bytes(), sig.Ed()), nil
}

// GetNonce returns the nonce expected in the next batch.
func (a *Account) GetNonce(ctx *core.Context) (uint64, error) {
	state, err := a.load(ctx)
	if err != nil {
		return 0, err
	}
	return state.Nonce, nil
}

// GetPublicKey returns the signer key.
func (a *Account) GetPublicKey(ctx *core.Context) (core.Felt, error) {
	state, err := a.load(ctx)
	if err != nil {
		return core.Felt{}, err
	}
	return state.PublicKey, nil
}

// GetVersion returns version of the account code.
func (a *Account) GetVersion() string {
	return Version
}
