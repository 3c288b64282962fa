package account

import (
	"github.com/spacemeshos/go-pluginaccount/account/core"
)

// requireSelf allows only calls issued by the account to itself.
func requireSelf(ctx *core.Context) error {
	if ctx.Caller != ctx.Self {
		return core.ErrNotSelf
	}
	return nil
}

// requireNoReentry allows only calls that arrived from outside.
func requireNoReentry(ctx *core.Context) error {
	if ctx.Origin != core.External {
		return core.ErrReentrantCall
	}
	return nil
}
