package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-pluginaccount/common/types"
)

func TestAddressRoundTrip(t *testing.T) {
	addr := types.GenerateAddress([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20})
	parsed, err := types.StringToAddress(addr.String())
	require.NoError(t, err)
	require.Equal(t, addr, parsed)

	text, err := addr.MarshalText()
	require.NoError(t, err)
	var decoded types.Address
	require.NoError(t, decoded.UnmarshalText(text))
	require.Equal(t, addr, decoded)
}

func TestAddressErrors(t *testing.T) {
	addr := types.GenerateAddress([]byte("0123456789abcdefghij"))
	for _, tc := range []struct {
		desc string
		src  string
		err  error
	}{
		{
			desc: "incorrect charset",
			src:  "sm1iobiobiob",
			err:  types.ErrDecodeBech32,
		},
		{
			desc: "missing hrp",
			src:  addr.String()[2:],
			err:  types.ErrDecodeBech32,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := types.StringToAddress(tc.src)
			require.ErrorContains(t, err, tc.err.Error())
		})
	}
	t.Run("wrong network", func(t *testing.T) {
		encoded := addr.String()
		types.SetNetworkHRP("stest")
		t.Cleanup(func() { types.SetNetworkHRP("sm") })
		_, err := types.StringToAddress(encoded)
		require.ErrorIs(t, err, types.ErrUnsupportedNetwork)
	})
}

func TestGenerateAddressReservedSpace(t *testing.T) {
	addr := types.GenerateAddress(make([]byte, 32))
	require.True(t, addr.IsEmpty())
	addr = types.GenerateAddress([]byte{0xff})
	require.False(t, addr.IsEmpty())
	require.Equal(t, make([]byte, types.AddressReservedSpace), addr[:types.AddressReservedSpace])
}

func TestAddressFelt(t *testing.T) {
	addr := types.GenerateAddress([]byte{0xaa, 0xbb})
	converted, err := types.AddressFromFelt(addr.Felt())
	require.NoError(t, err)
	require.Equal(t, addr, converted)

	var overflow types.Felt
	overflow[0] = 1
	_, err = types.AddressFromFelt(overflow)
	require.ErrorIs(t, err, types.ErrWrongAddressLength)
}
