package events

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/libp2p/go-libp2p/core/event"
	"github.com/libp2p/go-libp2p/p2p/host/eventbus"
	"go.uber.org/zap"
)

// Subscription is a subscription to events of a single type.
type Subscription = event.Subscription

// ErrUnknownEvent is returned for values that are not one of the account events.
var ErrUnknownEvent = errors.New("events: unknown event")

// Opt for configuring reporter.
type Opt func(*Reporter)

// WithLogger specifies logger for the reporter.
func WithLogger(logger *zap.Logger) Opt {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// Reporter publishes account events on the in-process bus.
type Reporter struct {
	logger   *zap.Logger
	bus      event.Bus
	emitters map[reflect.Type]event.Emitter
}

// NewReporter creates bus with emitters for every account event.
func NewReporter(opts ...Opt) (*Reporter, error) {
	r := &Reporter{
		logger:   zap.NewNop(),
		bus:      eventbus.NewBus(),
		emitters: map[reflect.Type]event.Emitter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, typ := range []any{new(SignerChanged), new(AccountCreated), new(TransactionExecuted)} {
		emitter, err := r.bus.Emitter(typ)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("emitter for %T: %w", typ, err), r.Close())
		}
		r.emitters[reflect.TypeOf(typ).Elem()] = emitter
	}
	return r, nil
}

// Publish event to subscribers. Blocks if a subscriber buffer is full.
func (r *Reporter) Publish(ev any) error {
	emitter, exist := r.emitters[reflect.TypeOf(ev)]
	if !exist {
		return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
	if err := emitter.Emit(ev); err != nil {
		return fmt.Errorf("emit %T: %w", ev, err)
	}
	r.logger.Debug("published event", zap.String("type", reflect.TypeOf(ev).Name()), zap.Any("event", ev))
	return nil
}

// Subscribe to events of the same type as ev, e.g. new(SignerChanged).
func (r *Reporter) Subscribe(ev any, bufsize int) (Subscription, error) {
	sub, err := r.bus.Subscribe(ev, eventbus.BufSize(bufsize))
	if err != nil {
		return nil, fmt.Errorf("subscribe to %T: %w", ev, err)
	}
	return sub, nil
}

// Close all emitters.
func (r *Reporter) Close() error {
	var errs []error
	for typ, emitter := range r.emitters {
		if err := emitter.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", typ, err))
		}
		delete(r.emitters, typ)
	}
	return errors.Join(errs...)
}
