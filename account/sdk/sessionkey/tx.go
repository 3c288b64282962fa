// Package sessionkey builds transactions authorized by a session key.
package sessionkey

import (
	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/account/plugins/sessionkey"
	"github.com/spacemeshos/go-pluginaccount/account/sdk"
	"github.com/spacemeshos/go-pluginaccount/codec"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/signing"
)

// Grant signs payload that allows session key to act for the account until expires.
func Grant(owner *signing.EdSigner, account types.Address, key types.Felt, expires uint64) *sessionkey.Payload {
	token := sessionkey.TokenHash(account, key, expires)
	return &sessionkey.Payload{
		Key:     key,
		Expires: expires,
		Token:   core.NewSignature(owner.Sign(signing.SESSION, token.Bytes())),
	}
}

// Batch creates transaction with calls signed by the session key.
func Batch(
	session *signing.EdSigner,
	account types.Address,
	grant *sessionkey.Payload,
	nonce uint64,
	calls ...core.Call,
) []byte {
	all := append([]core.Call{sdk.UsePlugin(account, sessionkey.ID, grant.Felts()...)}, calls...)
	return codec.MustEncode(sdk.Sign(session, account, core.NewBatch(nonce, all...)))
}

// Revoke creates call that revokes session key.
func Revoke(account types.Address, key types.Felt) core.Call {
	return sdk.ExecuteOnPlugin(account, sessionkey.ID, sessionkey.SelectorRevoke, key)
}
