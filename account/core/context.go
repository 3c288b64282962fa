package core

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-pluginaccount/signing"
	"github.com/spacemeshos/go-pluginaccount/sql"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go github.com/spacemeshos/go-pluginaccount/account/core Host,Contract,Plugin,Verifier

// Host is the environment that executes contracts.
type Host interface {
	// Call invokes selector on the target. Callee observes ctx.Self as its caller.
	Call(ctx *Context, target Address, selector Felt, args []Felt) ([]byte, error)
	// Timestamp of the block being executed, in unix seconds.
	Timestamp() int64
}

// Contract is a code deployed at an address.
type Contract interface {
	Invoke(ctx *Context, selector Felt, args []Felt) ([]byte, error)
}

// Plugin is a code trusted by the account to validate batches on its behalf
// and to perform privileged actions with the account storage.
type Plugin interface {
	// Validate the batch. Entries and buffer are what remains of the batch after
	// the plugin selection entry; offsets in entries refer to the full buffer,
	// which starts at pctx.BufferOffset relative to the remaining buffer.
	Validate(pctx *PluginContext, payload []Felt, entries []CallArrayEntry, buffer []Felt) error
	// Execute plugin specific selector.
	Execute(pctx *PluginContext, selector Felt, args []Felt) ([]byte, error)
}

// Verifier checks ed25519 signatures.
type Verifier interface {
	Verify(d signing.Domain, pub Felt, msg []byte, sig signing.Signature) bool
}

// Storage is a felt key value storage scoped to a single owner.
type Storage interface {
	Get(slot Felt) (Felt, error)
	Set(slot, value Felt) error
}

// TxInfo describes the transaction that is being executed.
type TxInfo struct {
	Hash      Felt
	Signature Signature
}

// MarshalLogObject implements encoding for the tx info.
func (t *TxInfo) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("hash", t.Hash.String())
	return nil
}

// Context carries state of a single call. Nested calls share the
// database transaction and the event queue of the parent.
type Context struct {
	// DB is the transaction that is committed only if the whole apply succeeds.
	DB   sql.Executor
	Host Host
	// Self is the address of the contract that is executing.
	Self Address
	// Caller is the address that issued the call. Equal to Self for self calls.
	Caller Address
	Origin Origin
	Tx     TxInfo
	Logger *zap.Logger

	events *[]any
}

// NewContext creates context for the call that arrives from outside.
func NewContext(db sql.Executor, host Host, target Address, tx TxInfo) *Context {
	return &Context{
		DB:     db,
		Host:   host,
		Self:   target,
		Origin: External,
		Tx:     tx,
		Logger: zap.NewNop(),
		events: new([]any),
	}
}

// Nested creates context for the call from the current contract to target.
func (c *Context) Nested(target Address) *Context {
	return &Context{
		DB:     c.DB,
		Host:   c.Host,
		Self:   target,
		Caller: c.Self,
		Origin: Internal,
		Tx:     c.Tx,
		Logger: c.Logger,
		events: c.events,
	}
}

// Emit queues event. Events are published only if the apply succeeds.
func (c *Context) Emit(ev any) {
	if c.events == nil {
		c.events = new([]any)
	}
	*c.events = append(*c.events, ev)
}

// Events returns events queued by this call and all nested calls.
func (c *Context) Events() []any {
	if c.events == nil {
		return nil
	}
	return *c.events
}

// PluginContext is the account state borrowed by the plugin for one invocation.
type PluginContext struct {
	// Account that delegates to the plugin.
	Account   Address
	PublicKey Felt
	// Plugin is the id of the plugin and the namespace of its storage.
	Plugin    Felt
	Tx        TxInfo
	Timestamp int64
	// BufferOffset is the position of the remaining buffer in the full batch buffer.
	BufferOffset uint32
	// Storage of the plugin. Read-only during validation.
	Storage  Storage
	Verifier Verifier
	Logger   *zap.Logger
}
