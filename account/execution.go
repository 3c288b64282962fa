package account

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/log"
)

// execute calls in order. The first failure aborts the batch, responses
// of the calls that succeeded before it are dropped.
func (a *Account) execute(ctx *core.Context, calls []core.Call) ([]byte, error) {
	start := time.Now()
	var response []byte
	for i := range calls {
		call := &calls[i]
		rst, err := ctx.Host.Call(ctx, call.To, call.Selector, call.Arguments)
		if err != nil {
			a.logger.Debug("call failed",
				log.Address("account", ctx.Self),
				zap.Int("index", i),
				log.Address("to", call.To),
				log.Felt("selector", call.Selector),
				zap.Error(err),
			)
			return nil, fmt.Errorf("call %d: %w", i, err)
		}
		response = append(response, rst...)
	}
	batchCalls.Observe(float64(len(calls)))
	batchDuration.Observe(time.Since(start).Seconds())
	a.logger.Debug("batch executed",
		log.Address("account", ctx.Self),
		zap.Object("tx", &ctx.Tx),
		zap.Int("calls", len(calls)),
		zap.Int("response", len(response)),
	)
	return response, nil
}
