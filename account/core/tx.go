package core

import (
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/hash"
)

const (
	maxEncodedCalls  = 1 << 10
	maxEncodedBuffer = 1 << 16
)

// Transaction is the envelope submitted to the account from outside.
type Transaction struct {
	Account   Address
	Batch     Batch
	Signature Signature
}

// AuthHash computes the hash that authorizes the batch for the account.
// It commits to the account address, every call and the nonce.
func AuthHash(account Address, batch *Batch) Felt {
	hh := hash.GetHasher()
	defer hash.PutHasher(hh)
	hh.Write(account.Bytes())
	for _, f := range batch.Calldata() {
		hh.Write(f[:])
	}
	var rst types.Hash32
	hh.Sum(rst[:0])
	return rst.Felt()
}

// Hash of the transaction. See AuthHash.
func (t *Transaction) Hash() Felt {
	return AuthHash(t.Account, &t.Batch)
}
