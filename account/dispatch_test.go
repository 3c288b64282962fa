package account

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/signing"
)

func TestInvokeQueries(t *testing.T) {
	tt := newTester(t)
	ctx := tt.ctx()
	_, err := tt.account.Invoke(ctx, core.SelectorInitialize, []types.Felt{tt.signer.PublicKey()})
	require.NoError(t, err)

	rst, err := tt.account.Invoke(ctx, core.SelectorGetNonce, nil)
	require.NoError(t, err)
	require.Equal(t, types.FeltsToBytes(types.NewFelt(0)), rst)

	rst, err = tt.account.Invoke(ctx, core.SelectorGetPublicKey, nil)
	require.NoError(t, err)
	require.Equal(t, tt.signer.PublicKey().Bytes(), rst)

	rst, err = tt.account.Invoke(ctx, core.SelectorGetVersion, nil)
	require.NoError(t, err)
	require.Equal(t, ShortString("0.2.0").Bytes(), rst)
	require.Equal(t, "0.2.0", string(rst[len(rst)-5:]))

	rst, err = tt.account.Invoke(ctx, core.SelectorIsPlugin, []types.Felt{types.NewFelt(1)})
	require.NoError(t, err)
	require.Equal(t, types.FeltsToBytes(types.Felt{}), rst)

	hash := types.RandomFelt()
	sig := core.NewSignature(tt.signer.Sign(signing.TX, hash.Bytes()))
	rst, err = tt.account.Invoke(ctx, core.SelectorVerifySignature, []types.Felt{hash, sig.R, sig.S})
	require.NoError(t, err)
	require.Equal(t, types.FeltsToBytes(types.NewFelt(1)), rst)
}

func TestInvokeErrors(t *testing.T) {
	tt := newTester(t).initialize()
	ctx := tt.ctx()

	_, err := tt.account.Invoke(ctx, types.NewFelt(12345), nil)
	require.ErrorIs(t, err, core.ErrUnknownSelector)

	_, err = tt.account.Invoke(ctx, core.SelectorSetPublicKey, nil)
	require.ErrorIs(t, err, core.ErrArguments)
	_, err = tt.account.Invoke(ctx, core.SelectorExecuteOnPlugin, []types.Felt{types.NewFelt(1)})
	require.ErrorIs(t, err, core.ErrArguments)
	_, err = tt.account.Invoke(ctx, core.SelectorVerifySignature, []types.Felt{types.NewFelt(1)})
	require.ErrorIs(t, err, core.ErrArguments)

	_, err = tt.account.Invoke(ctx, core.SelectorAddPlugin, []types.Felt{types.NewFelt(1)})
	require.ErrorIs(t, err, core.ErrNotSelf)

	_, err = tt.account.Invoke(ctx, core.SelectorExecuteBatch, []types.Felt{types.NewFelt(5)})
	require.ErrorIs(t, err, core.ErrMalformedBatch)
}

func TestInvokeExecuteBatchReentry(t *testing.T) {
	tt := newTester(t).initialize()
	batch := core.NewBatch(0)
	ctx := tt.signed(batch)

	_, err := tt.account.Invoke(ctx.Nested(tt.self), core.SelectorExecuteBatch, batch.Calldata())
	require.ErrorIs(t, err, core.ErrReentrantCall)
	require.Zero(t, tt.nonce())

	_, err = tt.account.Invoke(ctx, core.SelectorExecuteBatch, batch.Calldata())
	require.NoError(t, err)
	require.EqualValues(t, 1, tt.nonce())
}

func TestShortString(t *testing.T) {
	require.Equal(t, types.NewFelt(0x61), ShortString("a"))
	require.Panics(t, func() { ShortString("0123456789012345678901234567890123") })
}
