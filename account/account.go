// Package account implements the plugin account contract.
//
// Account code is shared by every account address. State of the account
// executing the call is located by core.Context.Self and is read and written
// through core.Context.DB, which is a transaction owned by the environment.
package account

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/account/registry"
	"github.com/spacemeshos/go-pluginaccount/events"
	"github.com/spacemeshos/go-pluginaccount/log"
	"github.com/spacemeshos/go-pluginaccount/sql"
	"github.com/spacemeshos/go-pluginaccount/sql/accounts"
)

// Version of the account code.
const Version = "0.2.0"

// Opt for configuring account.
type Opt func(*Account)

// WithLogger specifies logger for the account.
func WithLogger(logger *zap.Logger) Opt {
	return func(a *Account) {
		a.logger = logger
	}
}

// WithLimits overwrites default batch limits.
func WithLimits(limits core.Limits) Opt {
	return func(a *Account) {
		a.limits = limits
	}
}

// New creates account code that delegates to plugins from the registry.
func New(reg *registry.Registry, verifier core.Verifier, opts ...Opt) *Account {
	a := &Account{
		logger:   zap.NewNop(),
		registry: reg,
		verifier: verifier,
		limits:   core.DefaultLimits(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Account is the plugin account contract.
type Account struct {
	logger   *zap.Logger
	registry *registry.Registry
	verifier core.Verifier
	limits   core.Limits
}

var _ core.Contract = (*Account)(nil)

// load state of the executing account. Missing account reads as zero state.
func (a *Account) load(ctx *core.Context) (core.Account, error) {
	state, err := accounts.Get(ctx.DB, ctx.Self)
	switch {
	case errors.Is(err, sql.ErrNotFound):
		return core.Account{Address: ctx.Self}, nil
	case err != nil:
		return core.Account{}, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	return state, nil
}

// Initialize sets the signer key. Can succeed only once per address.
func (a *Account) Initialize(ctx *core.Context, key core.Felt) error {
	state, err := a.load(ctx)
	if err != nil {
		return err
	}
	if state.Initialized() {
		return core.ErrAlreadyInitialized
	}
	if key.IsZero() {
		return core.ErrNullSigner
	}
	state.PublicKey = key
	state.Created = ctx.Host.Timestamp()
	if err := accounts.Create(ctx.DB, &state); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	ctx.Emit(events.AccountCreated{Account: ctx.Self, PublicKey: key})
	a.logger.Debug("account initialized",
		log.Address("account", ctx.Self),
		log.Felt("public_key", key),
	)
	return nil
}

// ExecuteBatch validates the batch and executes its calls in order.
// Returns responses of all calls concatenated.
func (a *Account) ExecuteBatch(ctx *core.Context, batch *core.Batch) ([]byte, error) {
	if err := requireNoReentry(ctx); err != nil {
		return nil, err
	}
	if err := a.limits.Check(batch); err != nil {
		rejected.WithLabelValues(reason(err)).Inc()
		return nil, err
	}
	calls, err := core.Decode(batch.Entries, batch.Buffer)
	if err != nil {
		rejected.WithLabelValues(reason(err)).Inc()
		return nil, err
	}
	path, err := a.validate(ctx, batch)
	if err != nil {
		rejected.WithLabelValues(reason(err)).Inc()
		a.logger.Debug("batch rejected",
			log.Address("account", ctx.Self),
			zap.Object("tx", &ctx.Tx),
			zap.Error(err),
		)
		return nil, err
	}
	validated.WithLabelValues(path.String()).Inc()
	if path == pluginPath {
		calls = calls[1:]
	}
	response, err := a.execute(ctx, calls)
	if err != nil {
		failed.Inc()
		return nil, err
	}
	ctx.Emit(events.TransactionExecuted{Account: ctx.Self, Hash: ctx.Tx.Hash, Response: response})
	return response, nil
}

// SetPublicKey replaces the signer key. Self only.
func (a *Account) SetPublicKey(ctx *core.Context, key core.Felt) error {
	if err := requireSelf(ctx); err != nil {
		return err
	}
	if key.IsZero() {
		return core.ErrNullSigner
	}
	if err := accounts.SetPublicKey(ctx.DB, ctx.Self, key); err != nil {
		if errors.Is(err, sql.ErrNotFound) {
			return core.ErrNotInitialized
		}
		return fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	ctx.Emit(events.SignerChanged{Account: ctx.Self, PublicKey: key})
	a.logger.Debug("signer changed",
		log.Address("account", ctx.Self),
		log.Felt("public_key", key),
	)
	return nil
}
