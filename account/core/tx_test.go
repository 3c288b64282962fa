package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-pluginaccount/codec"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/signing"
)

func TestTransactionCodec(t *testing.T) {
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)
	tx := Transaction{
		Account: types.RandomAddress(),
		Batch: *NewBatch(3,
			Call{To: types.RandomAddress(), Selector: types.NewFelt(1), Arguments: felts(5, 6)},
		),
	}
	tx.Signature = NewSignature(signer.Sign(signing.TX, tx.Hash().Bytes()))

	raw, err := codec.Encode(&tx)
	require.NoError(t, err)
	var decoded Transaction
	require.NoError(t, codec.Decode(raw, &decoded))
	require.Equal(t, tx, decoded)
	require.Equal(t, tx.Hash(), decoded.Hash())
	require.Equal(t, signer.Sign(signing.TX, tx.Hash().Bytes()), decoded.Signature.Ed())
}

func TestAuthHashCommitsToBatch(t *testing.T) {
	account := types.RandomAddress()
	call := Call{To: types.RandomAddress(), Selector: types.NewFelt(1), Arguments: felts(5)}
	base := AuthHash(account, NewBatch(0, call))
	require.Equal(t, base, AuthHash(account, NewBatch(0, call)))

	require.NotEqual(t, base, AuthHash(account, NewBatch(1, call)), "nonce")
	require.NotEqual(t, base, AuthHash(types.RandomAddress(), NewBatch(0, call)), "account")
	call.Arguments = felts(6)
	require.NotEqual(t, base, AuthHash(account, NewBatch(0, call)), "arguments")
	require.Zero(t, base[0]&^0x03, "hash must fit into 250 bits")
}

func TestSelectors(t *testing.T) {
	require.Equal(t, SelectorFromName("use_plugin"), SelectorUsePlugin)
	require.NotEqual(t, SelectorUsePlugin, SelectorExecuteBatch)
	for _, sel := range []Felt{SelectorUsePlugin, SelectorExecuteBatch, SelectorGetVersion} {
		require.Zero(t, sel[0]&^0x03)
	}
}
