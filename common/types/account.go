package types

import (
	"go.uber.org/zap/zapcore"
)

// Account is the persisted state of a plugin account.
// Zero PublicKey means the account was never initialized.
type Account struct {
	Address   Address
	PublicKey Felt
	Nonce     uint64
	// Created is the unix timestamp (seconds) of initialization.
	Created int64
}

// Initialized is true once a non-zero signer key was set.
func (a *Account) Initialized() bool {
	return !a.PublicKey.IsZero()
}

// MarshalLogObject implements encoding for the account state.
func (a *Account) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("address", a.Address.String())
	encoder.AddString("public_key", a.PublicKey.String())
	encoder.AddUint64("nonce", a.Nonce)
	encoder.AddInt64("created", a.Created)
	return nil
}
