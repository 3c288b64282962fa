package account

import (
	"fmt"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/common/types"
)

func expectArgs(args []core.Felt, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d, got %d", core.ErrArguments, n, len(args))
	}
	return nil
}

func encodeBool(v bool) []byte {
	if v {
		return types.FeltsToBytes(types.NewFelt(1))
	}
	return types.FeltsToBytes(types.Felt{})
}

// ShortString packs ascii string of at most 31 bytes into a felt.
func ShortString(s string) core.Felt {
	f, err := types.FeltFromBytes([]byte(s))
	if err != nil || len(s) >= types.FeltLength {
		panic(fmt.Sprintf("%q doesn't fit into a felt", s))
	}
	return f
}

// Invoke dispatches call to the account by selector.
// Results are returned as concatenated felts.
func (a *Account) Invoke(ctx *core.Context, selector core.Felt, args []core.Felt) ([]byte, error) {
	switch selector {
	case core.SelectorInitialize:
		if err := expectArgs(args, 1); err != nil {
			return nil, err
		}
		return nil, a.Initialize(ctx, args[0])
	case core.SelectorExecuteBatch:
		if err := requireNoReentry(ctx); err != nil {
			return nil, err
		}
		batch, err := core.DecodeCalldata(args)
		if err != nil {
			return nil, err
		}
		return a.ExecuteBatch(ctx, batch)
	case core.SelectorSetPublicKey:
		if err := expectArgs(args, 1); err != nil {
			return nil, err
		}
		return nil, a.SetPublicKey(ctx, args[0])
	case core.SelectorAddPlugin:
		if err := expectArgs(args, 1); err != nil {
			return nil, err
		}
		return nil, a.AddPlugin(ctx, args[0])
	case core.SelectorRemovePlugin:
		if err := expectArgs(args, 1); err != nil {
			return nil, err
		}
		return nil, a.RemovePlugin(ctx, args[0])
	case core.SelectorExecuteOnPlugin:
		if len(args) < 2 {
			return nil, fmt.Errorf("%w: expected plugin and selector", core.ErrArguments)
		}
		return a.ExecuteOnPlugin(ctx, args[0], args[1], args[2:])
	case core.SelectorIsPlugin:
		if err := expectArgs(args, 1); err != nil {
			return nil, err
		}
		enabled, err := a.IsPlugin(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return encodeBool(enabled), nil
	case core.SelectorVerifySignature:
		if err := expectArgs(args, 3); err != nil {
			return nil, err
		}
		valid, err := a.VerifySignature(ctx, args[0], core.Signature{R: args[1], S: args[2]})
		if err != nil {
			return nil, err
		}
		return encodeBool(valid), nil
	case core.SelectorGetNonce:
		nonce, err := a.GetNonce(ctx)
		if err != nil {
			return nil, err
		}
		return types.FeltsToBytes(types.NewFelt(nonce)), nil
	case core.SelectorGetPublicKey:
		key, err := a.GetPublicKey(ctx)
		if err != nil {
			return nil, err
		}
		return types.FeltsToBytes(key), nil
	case core.SelectorGetVersion:
		return types.FeltsToBytes(ShortString(a.GetVersion())), nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrUnknownSelector, selector)
}
