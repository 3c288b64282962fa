// Package vm executes transactions against plugin accounts.
//
// Every apply runs in a single database transaction. Account state, plugin
// sets and contract storage written by the batch and by every nested call
// are committed together, or not at all. Events queued during the apply are
// published only after the commit.
package vm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-pluginaccount/account"
	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/codec"
	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/events"
	"github.com/spacemeshos/go-pluginaccount/log"
	"github.com/spacemeshos/go-pluginaccount/sql"
	"github.com/spacemeshos/go-pluginaccount/sql/accounts"
	"github.com/spacemeshos/go-pluginaccount/sql/plugins"
)

// DefaultMaxDepth of nested calls.
const DefaultMaxDepth = 16

var (
	// ErrCallDepth is returned when nested calls exceed configured depth.
	ErrCallDepth = errors.New("vm: call depth exceeded")
	// ErrContractExists is returned when contract is deployed twice at the same address.
	ErrContractExists = errors.New("vm: contract exists")
)

// Opt is for changing VM during initialization.
type Opt func(*VM)

// WithLogger sets logger for VM.
func WithLogger(logger *zap.Logger) Opt {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// WithClock sets clock that is used as a source of block timestamps.
func WithClock(clock clockwork.Clock) Opt {
	return func(vm *VM) {
		vm.clock = clock
	}
}

// WithReporter sets reporter for events produced by applied transactions.
func WithReporter(reporter *events.Reporter) Opt {
	return func(vm *VM) {
		vm.reporter = reporter
	}
}

// WithMaxDepth limits depth of nested calls.
func WithMaxDepth(depth int) Opt {
	return func(vm *VM) {
		vm.maxDepth = depth
	}
}

// New returns VM instance that executes accounts with the code.
func New(db *sql.Database, code *account.Account, opts ...Opt) *VM {
	vm := &VM{
		logger:    zap.NewNop(),
		clock:     clockwork.NewRealClock(),
		db:        db,
		code:      code,
		maxDepth:  DefaultMaxDepth,
		contracts: map[types.Address]core.Contract{},
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// VM handles modifications to the account state.
type VM struct {
	logger   *zap.Logger
	clock    clockwork.Clock
	reporter *events.Reporter
	db       *sql.Database
	code     *account.Account
	maxDepth int

	// mu serializes applies and guards contracts.
	mu        sync.Mutex
	contracts map[types.Address]core.Contract
}

// Result of the applied transaction.
type Result struct {
	Account  types.Address
	Hash     types.Felt
	Response []byte
}

// Deploy contract at the address.
func (vm *VM) Deploy(address types.Address, contract core.Contract) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if _, exist := vm.contracts[address]; exist {
		return fmt.Errorf("%w: %s", ErrContractExists, address)
	}
	vm.contracts[address] = contract
	return nil
}

// Spawn creates account for the public key. Address of the account is derived from the key.
func (vm *VM) Spawn(ctx context.Context, key types.Felt) (types.Address, error) {
	address := types.GenerateAddress(key.Bytes())
	_, err := vm.exec(ctx, address, core.TxInfo{}, func(cctx *core.Context) ([]byte, error) {
		return nil, vm.code.Initialize(cctx, key)
	})
	if err != nil {
		return types.Address{}, err
	}
	vm.logger.Info("spawned account", log.Address("account", address), log.Felt("public_key", key))
	return address, nil
}

// Apply SCALE encoded transaction.
func (vm *VM) Apply(ctx context.Context, raw []byte) (*Result, error) {
	var tx core.Transaction
	if err := codec.Decode(raw, &tx); err != nil {
		applied.WithLabelValues("malformed").Inc()
		return nil, fmt.Errorf("%w: %w", core.ErrMalformedBatch, err)
	}
	start := time.Now()
	info := core.TxInfo{Hash: tx.Hash(), Signature: tx.Signature}
	response, err := vm.exec(ctx, tx.Account, info, func(cctx *core.Context) ([]byte, error) {
		return vm.code.ExecuteBatch(cctx, &tx.Batch)
	})
	applyDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		applied.WithLabelValues("failed").Inc()
		vm.logger.Debug("transaction failed",
			log.Address("account", tx.Account),
			zap.Object("tx", &info),
			zap.Error(err),
		)
		return nil, err
	}
	applied.WithLabelValues("ok").Inc()
	vm.logger.Debug("transaction applied",
		log.Address("account", tx.Account),
		zap.Object("tx", &info),
		zap.Int("response", len(response)),
	)
	return &Result{Account: tx.Account, Hash: info.Hash, Response: response}, nil
}

// Query invokes selector on the target and discards every change made by the call.
func (vm *VM) Query(ctx context.Context, target types.Address, selector types.Felt, args []types.Felt) ([]byte, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	tx, err := vm.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	defer tx.Release()
	h := vm.host()
	cctx := core.NewContext(tx, h, target, core.TxInfo{})
	cctx.Logger = vm.logger
	contract, err := h.contract(cctx.DB, target)
	if err != nil {
		return nil, err
	}
	return contract.Invoke(cctx, selector, args)
}

// exec runs fn for the target in a new transaction and commits if fn succeeds.
func (vm *VM) exec(
	ctx context.Context,
	target types.Address,
	info core.TxInfo,
	fn func(*core.Context) ([]byte, error),
) ([]byte, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	var (
		response []byte
		queued   []any
	)
	err := vm.db.WithTxImmediate(ctx, func(tx *sql.Tx) error {
		cctx := core.NewContext(tx, vm.host(), target, info)
		cctx.Logger = vm.logger
		rst, err := fn(cctx)
		if err != nil {
			return err
		}
		response = rst
		queued = cctx.Events()
		return nil
	})
	if err != nil {
		if errors.Is(err, core.ErrInternal) {
			vm.logger.Error("internal failure", log.Address("account", target), zap.Error(err))
		}
		return nil, err
	}
	vm.publish(queued)
	return response, nil
}

func (vm *VM) publish(queued []any) {
	if vm.reporter == nil {
		return
	}
	for _, ev := range queued {
		if err := vm.reporter.Publish(ev); err != nil {
			vm.logger.Warn("failed to publish event", zap.Error(err))
		}
	}
}

// Nonce of the account.
func (vm *VM) Nonce(address types.Address) (uint64, error) {
	state, err := accounts.Get(vm.db, address)
	if err != nil {
		return 0, err
	}
	return state.Nonce, nil
}

// PublicKey of the account signer.
func (vm *VM) PublicKey(address types.Address) (types.Felt, error) {
	state, err := accounts.Get(vm.db, address)
	if err != nil {
		return types.Felt{}, err
	}
	return state.PublicKey, nil
}

// Account returns full state of the account.
func (vm *VM) Account(address types.Address) (types.Account, error) {
	return accounts.Get(vm.db, address)
}

// Plugins enabled by the account.
func (vm *VM) Plugins(address types.Address) ([]types.Felt, error) {
	return plugins.All(vm.db, address)
}

// IsPlugin is true if the plugin is enabled by the account.
func (vm *VM) IsPlugin(address types.Address, id types.Felt) (bool, error) {
	return plugins.Has(vm.db, address, id)
}
