// Package sessionkey implements plugin that authorizes batches signed by
// a temporary key. The key is granted by the account owner with a token
// that limits its lifetime.
package sessionkey

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/hash"
	"github.com/spacemeshos/go-pluginaccount/signing"
)

var (
	// ID of the plugin.
	ID = core.SelectorFromName("plugin.sessionkey")

	// SelectorRevoke revokes session key. Arguments: [key].
	SelectorRevoke = core.SelectorFromName("revoke_session_key")
	// SelectorIsRevoked returns 1 if session key is revoked. Arguments: [key].
	SelectorIsRevoked = core.SelectorFromName("is_revoked")
)

var (
	// ErrInvalidPayload raised if payload is not [key, expires, token_r, token_s].
	ErrInvalidPayload = errors.New("sessionkey: invalid payload")
	// ErrRevoked raised if session key was revoked.
	ErrRevoked = errors.New("sessionkey: revoked")
	// ErrExpired raised if session key is used after expiration.
	ErrExpired = errors.New("sessionkey: expired")
	// ErrInvalidToken raised if the token is not signed by the account signer.
	ErrInvalidToken = errors.New("sessionkey: invalid token")
	// ErrSelfCall raised if the batch calls the account itself.
	ErrSelfCall = errors.New("sessionkey: calls to account are not allowed")
)

// Payload of the plugin selection entry.
type Payload struct {
	Key     types.Felt
	Expires uint64
	Token   core.Signature
}

// Felts encodes payload as it is expected after the plugin id.
func (p *Payload) Felts() []types.Felt {
	return []types.Felt{p.Key, types.NewFelt(p.Expires), p.Token.R, p.Token.S}
}

func parsePayload(payload []types.Felt) (*Payload, error) {
	if len(payload) != 4 {
		return nil, fmt.Errorf("%w: expected 4 felts, got %d", ErrInvalidPayload, len(payload))
	}
	expires, err := payload[1].Uint64()
	if err != nil {
		return nil, fmt.Errorf("%w: expires %w", ErrInvalidPayload, err)
	}
	return &Payload{
		Key:     payload[0],
		Expires: expires,
		Token:   core.Signature{R: payload[2], S: payload[3]},
	}, nil
}

// TokenHash is the message signed by the owner to grant a session key.
func TokenHash(account types.Address, key types.Felt, expires uint64) types.Felt {
	expiresFelt := types.NewFelt(expires)
	return types.Hash32(hash.Sum(account.Bytes(), key.Bytes(), expiresFelt.Bytes())).Felt()
}

// SessionKey is the plugin code. It is stateless, state lives in the account storage.
type SessionKey struct{}

var _ core.Plugin = SessionKey{}

// Validate that batch is signed by a session key granted by the owner.
func (SessionKey) Validate(pctx *core.PluginContext, payload []types.Felt, entries []core.CallArrayEntry, _ []types.Felt) error {
	p, err := parsePayload(payload)
	if err != nil {
		return err
	}
	revoked, err := pctx.Storage.Get(p.Key)
	if err != nil {
		return err
	}
	if !revoked.IsZero() {
		return fmt.Errorf("%w: %s", ErrRevoked, p.Key.ShortString())
	}
	if p.Expires <= uint64(pctx.Timestamp) {
		return fmt.Errorf("%w: at %d", ErrExpired, p.Expires)
	}
	token := TokenHash(pctx.Account, p.Key, p.Expires)
	if !pctx.Verifier.Verify(signing.SESSION, pctx.PublicKey, token.Bytes(), p.Token.Ed()) {
		return ErrInvalidToken
	}
	if !pctx.Verifier.Verify(signing.TX, p.Key, pctx.Tx.Hash.Bytes(), pctx.Tx.Signature.Ed()) {
		return core.ErrInvalidSignature
	}
	for i := range entries {
		if entries[i].To == pctx.Account {
			return fmt.Errorf("%w: entry %d", ErrSelfCall, i+1)
		}
	}
	return nil
}

// Execute revocation selectors.
func (SessionKey) Execute(pctx *core.PluginContext, selector types.Felt, args []types.Felt) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: expected session key", core.ErrArguments)
	}
	switch selector {
	case SelectorRevoke:
		if err := pctx.Storage.Set(args[0], types.NewFelt(1)); err != nil {
			return nil, err
		}
		pctx.Logger.Debug("session key revoked")
		return nil, nil
	case SelectorIsRevoked:
		revoked, err := pctx.Storage.Get(args[0])
		if err != nil {
			return nil, err
		}
		return types.FeltsToBytes(revoked), nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrUnknownSelector, selector)
}
