// Package sdk builds calls and signed transactions for plugin accounts.
package sdk

import (
	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/codec"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/signing"
)

// SelfCall creates call from the account to itself.
func SelfCall(account types.Address, selector types.Felt, args ...types.Felt) core.Call {
	if args == nil {
		args = []types.Felt{}
	}
	return core.Call{To: account, Selector: selector, Arguments: args}
}

// SetPublicKey creates call that rotates the signer key.
func SetPublicKey(account types.Address, key types.Felt) core.Call {
	return SelfCall(account, core.SelectorSetPublicKey, key)
}

// AddPlugin creates call that enables plugin.
func AddPlugin(account types.Address, id types.Felt) core.Call {
	return SelfCall(account, core.SelectorAddPlugin, id)
}

// RemovePlugin creates call that disables plugin.
func RemovePlugin(account types.Address, id types.Felt) core.Call {
	return SelfCall(account, core.SelectorRemovePlugin, id)
}

// ExecuteOnPlugin creates call that invokes plugin selector with account storage.
func ExecuteOnPlugin(account types.Address, id, selector types.Felt, args ...types.Felt) core.Call {
	return SelfCall(account, core.SelectorExecuteOnPlugin, append([]types.Felt{id, selector}, args...)...)
}

// UsePlugin creates the first call of the batch that delegates validation to the plugin.
func UsePlugin(account types.Address, id types.Felt, payload ...types.Felt) core.Call {
	return SelfCall(account, core.SelectorUsePlugin, append([]types.Felt{id}, payload...)...)
}

// Sign batch for the account with the signer key.
func Sign(signer *signing.EdSigner, account types.Address, batch *core.Batch) *core.Transaction {
	tx := &core.Transaction{Account: account, Batch: *batch}
	hash := tx.Hash()
	tx.Signature = core.NewSignature(signer.Sign(signing.TX, hash.Bytes()))
	return tx
}

// Batch signs calls with the nonce and returns encoded transaction.
func Batch(signer *signing.EdSigner, account types.Address, nonce uint64, calls ...core.Call) []byte {
	return codec.MustEncode(Sign(signer, account, core.NewBatch(nonce, calls...)))
}
