package core

import (
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/signing"
)

type (
	// Felt is an alias to types.Felt.
	Felt = types.Felt
	// Address is an alias to types.Address.
	Address = types.Address
	// Account is an alias to types.Account.
	Account = types.Account
)

// Call is a decoded sub-call of the batch. Arguments are owned by the call.
type Call struct {
	To        Address
	Selector  Felt
	Arguments []Felt
}

//go:generate scalegen -types CallArrayEntry,Batch,Signature,Transaction

// CallArrayEntry references arguments of one call in the buffer shared
// by the whole batch.
type CallArrayEntry struct {
	To         Address
	Selector   Felt
	DataOffset uint32
	DataLen    uint32
}

// Batch is a set of calls validated and executed together.
type Batch struct {
	Entries []CallArrayEntry
	Buffer  []Felt
	Nonce   uint64
}

// Signature is an ed25519 signature split into two felts.
type Signature struct {
	R, S Felt
}

// NewSignature splits ed25519 signature into felts.
func NewSignature(sig signing.Signature) Signature {
	r, s := sig.Felts()
	return Signature{R: r, S: s}
}

// Ed returns signature in the form accepted by the verifier.
func (s Signature) Ed() signing.Signature {
	return signing.JoinSignature(s.R, s.S)
}

// Origin describes how the current call was reached.
type Origin uint8

const (
	// External call arrived directly from outside of the ledger.
	External Origin = iota
	// Internal call was issued by another contract during execution.
	Internal
)

func (o Origin) String() string {
	switch o {
	case External:
		return "external"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}
