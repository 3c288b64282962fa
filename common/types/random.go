package types

import (
	"crypto/rand"
)

// RandomBytes returns size random bytes or nil if randomness is not available.
func RandomBytes(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil
	}
	return b
}

// RandomFelt generates a random felt that fits into 250 bits.
func RandomFelt() Felt {
	var f Felt
	if _, err := rand.Read(f[:]); err != nil {
		panic("failed to generate random felt: " + err.Error())
	}
	f[0] &= 0x03
	return f
}

// RandomAddress generates address from a random key.
func RandomAddress() Address {
	return GenerateAddress(RandomBytes(32))
}
