package vm

import (
	"fmt"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/sql"
	"github.com/spacemeshos/go-pluginaccount/sql/accounts"
)

// host is created for every apply. Timestamp is fixed for the whole apply.
type host struct {
	vm        *VM
	timestamp int64
	depth     int
}

var _ core.Host = (*host)(nil)

func (vm *VM) host() *host {
	return &host{vm: vm, timestamp: vm.clock.Now().Unix()}
}

func (h *host) Timestamp() int64 {
	return h.timestamp
}

// Call routes call to the contract at target. Deployed contracts take precedence
// over accounts.
func (h *host) Call(ctx *core.Context, target types.Address, selector types.Felt, args []types.Felt) ([]byte, error) {
	if h.depth >= h.vm.maxDepth {
		return nil, fmt.Errorf("%w: %d", ErrCallDepth, h.depth)
	}
	contract, err := h.contract(ctx.DB, target)
	if err != nil {
		return nil, err
	}
	h.depth++
	defer func() { h.depth-- }()
	calls.Inc()
	return contract.Invoke(ctx.Nested(target), selector, args)
}

// contract expects vm.mu to be held.
func (h *host) contract(db sql.Executor, target types.Address) (core.Contract, error) {
	if contract, exist := h.vm.contracts[target]; exist {
		return contract, nil
	}
	exist, err := accounts.Has(db, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	if !exist {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownContract, target)
	}
	return h.vm.code, nil
}
