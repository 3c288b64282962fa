package accounts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/sql"
)

func TestCreateGet(t *testing.T) {
	db := sql.InMemory()
	account := types.Account{
		Address:   types.RandomAddress(),
		PublicKey: types.RandomFelt(),
		Created:   1700000000,
	}
	has, err := Has(db, account.Address)
	require.NoError(t, err)
	require.False(t, has)

	_, err = Get(db, account.Address)
	require.ErrorIs(t, err, sql.ErrNotFound)

	require.NoError(t, Create(db, &account))
	has, err = Has(db, account.Address)
	require.NoError(t, err)
	require.True(t, has)

	got, err := Get(db, account.Address)
	require.NoError(t, err)
	require.Equal(t, account, got)
	require.True(t, got.Initialized())

	require.ErrorIs(t, Create(db, &account), sql.ErrObjectExists)
}

func TestUpdates(t *testing.T) {
	db := sql.InMemory()
	account := types.Account{
		Address:   types.RandomAddress(),
		PublicKey: types.NewFelt(1),
	}
	require.NoError(t, Create(db, &account))

	key := types.NewFelt(2)
	require.NoError(t, SetPublicKey(db, account.Address, key))
	require.NoError(t, SetNonce(db, account.Address, 7))

	got, err := Get(db, account.Address)
	require.NoError(t, err)
	require.Equal(t, key, got.PublicKey)
	require.EqualValues(t, 7, got.Nonce)

	other := types.RandomAddress()
	require.ErrorIs(t, SetNonce(db, other, 1), sql.ErrNotFound)
	require.ErrorIs(t, SetPublicKey(db, other, key), sql.ErrNotFound)
}

func TestAll(t *testing.T) {
	db := sql.InMemory()
	all, err := All(db)
	require.NoError(t, err)
	require.Empty(t, all)

	for i := 0; i < 3; i++ {
		require.NoError(t, Create(db, &types.Account{
			Address:   types.RandomAddress(),
			PublicKey: types.NewFelt(uint64(i + 1)),
			Nonce:     uint64(i),
		}))
	}
	all, err = All(db)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		require.Negative(t, bytes.Compare(all[i-1].Address[:], all[i].Address[:]))
	}
}

