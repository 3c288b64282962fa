package account

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/account/core/mocks"
	"github.com/spacemeshos/go-pluginaccount/account/registry"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/events"
	"github.com/spacemeshos/go-pluginaccount/log/logtest"
	"github.com/spacemeshos/go-pluginaccount/signing"
	"github.com/spacemeshos/go-pluginaccount/sql"
	"github.com/spacemeshos/go-pluginaccount/sql/accounts"
)

const timestamp = 1700000000

type tester struct {
	tb       testing.TB
	db       *sql.Database
	host     *mocks.MockHost
	registry *registry.Registry
	account  *Account
	signer   *signing.EdSigner
	self     types.Address
}

func newTester(tb testing.TB) *tester {
	ctrl := gomock.NewController(tb)
	signer, err := signing.NewEdSigner()
	require.NoError(tb, err)
	verifier, err := signing.NewEdVerifier()
	require.NoError(tb, err)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().Timestamp().Return(int64(timestamp)).AnyTimes()
	reg := registry.New()
	return &tester{
		tb:       tb,
		db:       sql.InMemory(),
		host:     host,
		registry: reg,
		account:  New(reg, verifier, WithLogger(logtest.New(tb))),
		signer:   signer,
		self:     types.GenerateAddress(signer.PublicKey().Bytes()),
	}
}

func (tt *tester) ctx() *core.Context {
	return core.NewContext(tt.db, tt.host, tt.self, core.TxInfo{})
}

// selfCtx is a context of the call issued by the account to itself.
func (tt *tester) selfCtx() *core.Context {
	return tt.ctx().Nested(tt.self)
}

func (tt *tester) initialize() *tester {
	require.NoError(tt.tb, tt.account.Initialize(tt.ctx(), tt.signer.PublicKey()))
	return tt
}

func (tt *tester) signed(batch *core.Batch) *core.Context {
	hash := core.AuthHash(tt.self, batch)
	return core.NewContext(tt.db, tt.host, tt.self, core.TxInfo{
		Hash:      hash,
		Signature: core.NewSignature(tt.signer.Sign(signing.TX, hash.Bytes())),
	})
}

func (tt *tester) nonce() uint64 {
	state, err := accounts.Get(tt.db, tt.self)
	require.NoError(tt.tb, err)
	return state.Nonce
}

func TestInitialize(t *testing.T) {
	tt := newTester(t)
	ctx := tt.ctx()
	require.ErrorIs(t, tt.account.Initialize(ctx, types.Felt{}), core.ErrNullSigner)
	require.NoError(t, tt.account.Initialize(ctx, tt.signer.PublicKey()))
	require.Equal(t, []any{events.AccountCreated{Account: tt.self, PublicKey: tt.signer.PublicKey()}}, ctx.Events())

	state, err := accounts.Get(tt.db, tt.self)
	require.NoError(t, err)
	require.Equal(t, tt.signer.PublicKey(), state.PublicKey)
	require.Zero(t, state.Nonce)
	require.EqualValues(t, timestamp, state.Created)

	require.ErrorIs(t, tt.account.Initialize(tt.ctx(), types.NewFelt(1)), core.ErrAlreadyInitialized)
}

func TestExecuteSignaturePath(t *testing.T) {
	tt := newTester(t).initialize()
	target := types.RandomAddress()
	batch := core.NewBatch(0,
		core.Call{To: target, Selector: types.NewFelt(1), Arguments: []types.Felt{types.NewFelt(10)}},
		core.Call{To: target, Selector: types.NewFelt(2)},
	)
	ctx := tt.signed(batch)
	gomock.InOrder(
		tt.host.EXPECT().Call(ctx, target, types.NewFelt(1), []types.Felt{types.NewFelt(10)}).Return([]byte{1, 2}, nil),
		tt.host.EXPECT().Call(ctx, target, types.NewFelt(2), []types.Felt{}).Return([]byte{3}, nil),
	)
	rst, err := tt.account.ExecuteBatch(ctx, batch)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, rst)
	require.EqualValues(t, 1, tt.nonce())
	require.Equal(t, []any{events.TransactionExecuted{
		Account:  tt.self,
		Hash:     ctx.Tx.Hash,
		Response: []byte{1, 2, 3},
	}}, ctx.Events())

	_, err = tt.account.ExecuteBatch(tt.signed(batch), batch)
	require.ErrorIs(t, err, core.ErrNonceMismatch)
}

func TestExecuteValidationFailures(t *testing.T) {
	t.Run("not initialized", func(t *testing.T) {
		tt := newTester(t)
		batch := core.NewBatch(0)
		_, err := tt.account.ExecuteBatch(tt.signed(batch), batch)
		require.ErrorIs(t, err, core.ErrNotInitialized)
	})
	t.Run("nonce mismatch", func(t *testing.T) {
		tt := newTester(t).initialize()
		batch := core.NewBatch(1)
		_, err := tt.account.ExecuteBatch(tt.signed(batch), batch)
		require.ErrorIs(t, err, core.ErrNonceMismatch)
		require.Zero(t, tt.nonce())
	})
	t.Run("invalid signature", func(t *testing.T) {
		tt := newTester(t).initialize()
		batch := core.NewBatch(0, core.Call{To: types.RandomAddress()})
		ctx := tt.signed(batch)
		ctx.Tx.Signature = core.Signature{}
		_, err := tt.account.ExecuteBatch(ctx, batch)
		require.ErrorIs(t, err, core.ErrInvalidSignature)
		// nonce is consumed before authorization, the environment discards it
		require.EqualValues(t, 1, tt.nonce())
	})
	t.Run("malformed", func(t *testing.T) {
		tt := newTester(t).initialize()
		batch := &core.Batch{
			Entries: []core.CallArrayEntry{{To: types.RandomAddress(), DataOffset: 1, DataLen: 1}},
			Buffer:  []types.Felt{types.NewFelt(1)},
		}
		_, err := tt.account.ExecuteBatch(tt.signed(batch), batch)
		require.ErrorIs(t, err, core.ErrMalformedBatch)
		require.Zero(t, tt.nonce())
	})
	t.Run("limits", func(t *testing.T) {
		tt := newTester(t).initialize()
		tt.account.limits = core.Limits{MaxCalls: 1}
		batch := core.NewBatch(0, core.Call{}, core.Call{})
		_, err := tt.account.ExecuteBatch(tt.signed(batch), batch)
		require.ErrorIs(t, err, core.ErrMalformedBatch)
	})
	t.Run("reentrant", func(t *testing.T) {
		tt := newTester(t).initialize()
		batch := core.NewBatch(0)
		_, err := tt.account.ExecuteBatch(tt.signed(batch).Nested(tt.self), batch)
		require.ErrorIs(t, err, core.ErrReentrantCall)
	})
}

func TestExecuteStopsOnFailure(t *testing.T) {
	tt := newTester(t).initialize()
	target := types.RandomAddress()
	batch := core.NewBatch(0,
		core.Call{To: target, Selector: types.NewFelt(1)},
		core.Call{To: target, Selector: types.NewFelt(2)},
		core.Call{To: target, Selector: types.NewFelt(3)},
	)
	ctx := tt.signed(batch)
	expected := errors.New("call failed")
	gomock.InOrder(
		tt.host.EXPECT().Call(ctx, target, types.NewFelt(1), gomock.Any()).Return([]byte{1}, nil),
		tt.host.EXPECT().Call(ctx, target, types.NewFelt(2), gomock.Any()).Return(nil, expected),
	)
	rst, err := tt.account.ExecuteBatch(ctx, batch)
	require.ErrorIs(t, err, expected)
	require.ErrorContains(t, err, "call 1")
	require.Nil(t, rst)
	require.Empty(t, ctx.Events())
}

func TestPluginPath(t *testing.T) {
	tt := newTester(t).initialize()
	ctrl := gomock.NewController(t)
	plugin := mocks.NewMockPlugin(ctrl)
	id := core.SelectorFromName("test_plugin")
	tt.registry.Register(id, plugin)
	require.NoError(t, tt.account.AddPlugin(tt.selfCtx(), id))

	target := types.RandomAddress()
	// [ (self, USE_PLUGIN, 0, 3), (target, 0x1, 3, 2) ] over [id, p1, p2, a1, a2]
	batch := &core.Batch{
		Entries: []core.CallArrayEntry{
			{To: tt.self, Selector: core.SelectorUsePlugin, DataOffset: 0, DataLen: 3},
			{To: target, Selector: types.NewFelt(1), DataOffset: 3, DataLen: 2},
		},
		Buffer: []types.Felt{id, types.NewFelt(11), types.NewFelt(12), types.NewFelt(21), types.NewFelt(22)},
	}
	ctx := tt.ctx()
	plugin.EXPECT().Validate(gomock.Any(),
		[]types.Felt{types.NewFelt(11), types.NewFelt(12)},
		batch.Entries[1:],
		[]types.Felt{types.NewFelt(21), types.NewFelt(22)},
	).DoAndReturn(func(pctx *core.PluginContext, _ []types.Felt, _ []core.CallArrayEntry, _ []types.Felt) error {
		require.Equal(t, tt.self, pctx.Account)
		require.Equal(t, id, pctx.Plugin)
		require.Equal(t, tt.signer.PublicKey(), pctx.PublicKey)
		require.EqualValues(t, 3, pctx.BufferOffset)
		require.EqualValues(t, timestamp, pctx.Timestamp)
		require.ErrorIs(t, pctx.Storage.Set(types.NewFelt(1), types.NewFelt(1)), core.ErrReadOnlyStorage)
		return nil
	})
	tt.host.EXPECT().Call(ctx, target, types.NewFelt(1), []types.Felt{types.NewFelt(21), types.NewFelt(22)}).
		Return([]byte{0xab}, nil)

	rst, err := tt.account.ExecuteBatch(ctx, batch)
	require.NoError(t, err)
	require.Equal(t, []byte{0xab}, rst)
	require.EqualValues(t, 1, tt.nonce())
}

func TestPluginPathFailures(t *testing.T) {
	id := core.SelectorFromName("test_plugin")
	batchFor := func(tt *tester, block ...types.Felt) *core.Batch {
		return core.NewBatch(0, core.Call{To: tt.self, Selector: core.SelectorUsePlugin, Arguments: block})
	}
	t.Run("not enabled", func(t *testing.T) {
		tt := newTester(t).initialize()
		tt.registry.Register(id, mocks.NewMockPlugin(gomock.NewController(t)))
		batch := batchFor(tt, id)
		_, err := tt.account.ExecuteBatch(tt.ctx(), batch)
		require.ErrorIs(t, err, core.ErrUnknownPlugin)
	})
	t.Run("not registered", func(t *testing.T) {
		tt := newTester(t).initialize()
		require.NoError(t, tt.account.AddPlugin(tt.selfCtx(), id))
		batch := batchFor(tt, id)
		_, err := tt.account.ExecuteBatch(tt.ctx(), batch)
		require.ErrorIs(t, err, core.ErrUnknownPlugin)
	})
	t.Run("empty block", func(t *testing.T) {
		tt := newTester(t).initialize()
		batch := batchFor(tt)
		_, err := tt.account.ExecuteBatch(tt.ctx(), batch)
		require.ErrorIs(t, err, core.ErrMalformedBatch)
	})
	t.Run("plugin rejects", func(t *testing.T) {
		tt := newTester(t).initialize()
		plugin := mocks.NewMockPlugin(gomock.NewController(t))
		tt.registry.Register(id, plugin)
		require.NoError(t, tt.account.AddPlugin(tt.selfCtx(), id))
		expected := errors.New("rejected")
		plugin.EXPECT().Validate(gomock.Any(), []types.Felt{}, []core.CallArrayEntry{}, []types.Felt{}).Return(expected)
		_, err := tt.account.ExecuteBatch(tt.ctx(), batchFor(tt, id))
		require.ErrorIs(t, err, expected)
	})
}

func TestSignaturePathForOtherFirstEntries(t *testing.T) {
	for _, tc := range []struct {
		desc     string
		self     bool
		selector types.Felt
	}{
		{"sentinel to other target", false, core.SelectorUsePlugin},
		{"self with other selector", true, core.SelectorGetNonce},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			tt := newTester(t).initialize()
			id := core.SelectorFromName("test_plugin")
			tt.registry.Register(id, mocks.NewMockPlugin(gomock.NewController(t)))
			require.NoError(t, tt.account.AddPlugin(tt.selfCtx(), id))

			to := types.RandomAddress()
			if tc.self {
				to = tt.self
			}
			batch := core.NewBatch(0, core.Call{To: to, Selector: tc.selector, Arguments: []types.Felt{id}})
			// unsigned batch is rejected by signature verification, plugin is never consulted
			_, err := tt.account.ExecuteBatch(tt.ctx(), batch)
			require.ErrorIs(t, err, core.ErrInvalidSignature)
		})
	}
}

func TestPrivilegedRequireSelf(t *testing.T) {
	tt := newTester(t).initialize()
	id := types.NewFelt(5)
	for _, ctx := range []*core.Context{
		tt.ctx(),
		tt.ctx().Nested(types.RandomAddress()).Nested(tt.self),
	} {
		require.ErrorIs(t, tt.account.SetPublicKey(ctx, types.NewFelt(1)), core.ErrNotSelf)
		require.ErrorIs(t, tt.account.AddPlugin(ctx, id), core.ErrNotSelf)
		require.ErrorIs(t, tt.account.RemovePlugin(ctx, id), core.ErrNotSelf)
		_, err := tt.account.ExecuteOnPlugin(ctx, id, types.NewFelt(1), nil)
		require.ErrorIs(t, err, core.ErrNotSelf)
	}
	enabled, err := tt.account.IsPlugin(tt.ctx(), id)
	require.NoError(t, err)
	require.False(t, enabled)
	key, err := tt.account.GetPublicKey(tt.ctx())
	require.NoError(t, err)
	require.Equal(t, tt.signer.PublicKey(), key)
}

func TestPluginRegistryOps(t *testing.T) {
	tt := newTester(t).initialize()
	ctx := tt.selfCtx()
	id := types.NewFelt(5)

	require.ErrorIs(t, tt.account.AddPlugin(ctx, types.Felt{}), core.ErrNullPlugin)
	require.NoError(t, tt.account.AddPlugin(ctx, id))
	enabled, err := tt.account.IsPlugin(ctx, id)
	require.NoError(t, err)
	require.True(t, enabled)

	require.NoError(t, tt.account.RemovePlugin(ctx, id))
	require.NoError(t, tt.account.RemovePlugin(ctx, id))
	enabled, err = tt.account.IsPlugin(ctx, id)
	require.NoError(t, err)
	require.False(t, enabled)
}

func TestExecuteOnPlugin(t *testing.T) {
	tt := newTester(t).initialize()
	plugin := mocks.NewMockPlugin(gomock.NewController(t))
	id := core.SelectorFromName("test_plugin")
	ctx := tt.selfCtx()

	_, err := tt.account.ExecuteOnPlugin(ctx, id, types.NewFelt(1), nil)
	require.ErrorIs(t, err, core.ErrUnknownPlugin)

	tt.registry.Register(id, plugin)
	require.NoError(t, tt.account.AddPlugin(ctx, id))
	plugin.EXPECT().Execute(gomock.Any(), types.NewFelt(1), []types.Felt{types.NewFelt(7)}).DoAndReturn(
		func(pctx *core.PluginContext, _ types.Felt, args []types.Felt) ([]byte, error) {
			return nil, pctx.Storage.Set(types.NewFelt(1), args[0])
		})
	_, err = tt.account.ExecuteOnPlugin(ctx, id, types.NewFelt(1), []types.Felt{types.NewFelt(7)})
	require.NoError(t, err)

	plugin.EXPECT().Execute(gomock.Any(), types.NewFelt(2), nil).DoAndReturn(
		func(pctx *core.PluginContext, _ types.Felt, _ []types.Felt) ([]byte, error) {
			value, err := pctx.Storage.Get(types.NewFelt(1))
			return value.Bytes(), err
		})
	rst, err := tt.account.ExecuteOnPlugin(ctx, id, types.NewFelt(2), nil)
	require.NoError(t, err)
	require.Equal(t, types.NewFelt(7).Bytes(), rst)
}

func TestSetPublicKey(t *testing.T) {
	tt := newTester(t).initialize()
	ctx := tt.selfCtx()
	require.ErrorIs(t, tt.account.SetPublicKey(ctx, types.Felt{}), core.ErrNullSigner)
	key := types.NewFelt(77)
	require.NoError(t, tt.account.SetPublicKey(ctx, key))
	require.Equal(t, []any{events.SignerChanged{Account: tt.self, PublicKey: key}}, ctx.Events())

	got, err := tt.account.GetPublicKey(ctx)
	require.NoError(t, err)
	require.Equal(t, key, got)
}

func TestVerifySignature(t *testing.T) {
	tt := newTester(t)
	hash := types.RandomFelt()
	sig := core.NewSignature(tt.signer.Sign(signing.TX, hash.Bytes()))

	valid, err := tt.account.VerifySignature(tt.ctx(), hash, sig)
	require.NoError(t, err)
	require.False(t, valid, "not initialized")

	tt.initialize()
	valid, err = tt.account.VerifySignature(tt.ctx(), hash, sig)
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = tt.account.VerifySignature(tt.ctx(), types.RandomFelt(), sig)
	require.NoError(t, err)
	require.False(t, valid)
}
