package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/spacemeshos/go-pluginaccount/common/types"
)

// PrivateKey is an alias to ed25519.PrivateKey.
type PrivateKey = ed25519.PrivateKey

const (
	// PrivateKeySize size of the private key in bytes.
	PrivateKeySize = ed25519.PrivateKeySize
	// SignatureSize size of the signature in bytes.
	SignatureSize = ed25519.SignatureSize
)

// Signature is an ed25519 signature. On the wire it is carried as a pair
// of felts (r, s), see SplitSignature.
type Signature [SignatureSize]byte

// Felts returns r and s halves of the signature.
func (s Signature) Felts() (r, sv types.Felt) {
	copy(r[:], s[:types.FeltLength])
	copy(sv[:], s[types.FeltLength:])
	return r, sv
}

// JoinSignature builds signature from r and s felts.
func JoinSignature(r, s types.Felt) Signature {
	var sig Signature
	copy(sig[:types.FeltLength], r[:])
	copy(sig[types.FeltLength:], s[:])
	return sig
}

// PublicKeyFelt converts ed25519 public key into a felt.
func PublicKeyFelt(pub ed25519.PublicKey) types.Felt {
	var f types.Felt
	copy(f[:], pub)
	return f
}
