package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-pluginaccount/account/core/mocks"
	"github.com/spacemeshos/go-pluginaccount/common/types"
)

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := New()
	require.Nil(t, reg.Get(types.NewFelt(1)))

	plugin := mocks.NewMockPlugin(ctrl)
	reg.Register(types.NewFelt(2), plugin)
	reg.Register(types.NewFelt(1), mocks.NewMockPlugin(ctrl))
	require.Equal(t, plugin, reg.Get(types.NewFelt(2)))
	require.Equal(t, []types.Felt{types.NewFelt(1), types.NewFelt(2)}, reg.IDs())

	require.Panics(t, func() { reg.Register(types.NewFelt(2), plugin) })
	require.Panics(t, func() { reg.Register(types.Felt{}, plugin) })
}
