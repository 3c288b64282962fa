package types

import (
	"encoding/hex"

	"github.com/spacemeshos/go-scale"
)

// Hash32Length is 32, the expected length of the hash.
const Hash32Length = 32

// Hash32 represents the 32-byte blake3 hash of arbitrary data.
type Hash32 [Hash32Length]byte

// EmptyHash32 is a zeroed hash.
var EmptyHash32 Hash32

// Bytes gets the byte representation of the underlying hash.
func (h Hash32) Bytes() []byte { return h[:] }

// Hex converts a hash to a hex string.
func (h Hash32) Hex() string { return hex.EncodeToString(h[:]) }

// String implements the stringer interface.
func (h Hash32) String() string {
	return h.Hex()
}

// ShortString returns the first 5 characters of the hash, for logging purposes.
func (h Hash32) ShortString() string {
	return h.Hex()[:5]
}

// Felt converts hash to a felt, clearing top 6 bits so that value is in the field range.
func (h Hash32) Felt() Felt {
	f := Felt(h)
	f[0] &= 0x03
	return f
}

// EncodeScale implements scale codec interface.
func (h *Hash32) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, h[:])
}

// DecodeScale implements scale codec interface.
func (h *Hash32) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, h[:])
}

// TransactionID is a 32-byte hash used as a transaction identifier.
type TransactionID Hash32

// String returns a hexadecimal representation of the TransactionID.
func (id TransactionID) String() string {
	return Hash32(id).Hex()
}

// ShortString returns the first 5 characters of the ID, for logging purposes.
func (id TransactionID) ShortString() string {
	return Hash32(id).ShortString()
}
