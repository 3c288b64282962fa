package events

import (
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-pluginaccount/common/types"
)

// SignerChanged is emitted when the account replaces its signer key.
type SignerChanged struct {
	Account   types.Address
	PublicKey types.Felt
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *SignerChanged) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("account", e.Account.String())
	encoder.AddString("public_key", e.PublicKey.String())
	return nil
}

// AccountCreated is emitted when the account is initialized.
type AccountCreated struct {
	Account   types.Address
	PublicKey types.Felt
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *AccountCreated) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("account", e.Account.String())
	encoder.AddString("public_key", e.PublicKey.String())
	return nil
}

// TransactionExecuted is emitted when the batch was executed and committed.
type TransactionExecuted struct {
	Account  types.Address
	Hash     types.Felt
	Response []byte
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e *TransactionExecuted) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("account", e.Account.String())
	encoder.AddString("hash", e.Hash.String())
	encoder.AddInt("response", len(e.Response))
	return nil
}
