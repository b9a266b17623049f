package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/helix-onchain/filecoin/core/dispatch"
	"github.com/helix-onchain/filecoin/core/method"
)

// ErrStopped is returned by Send and Call after the actor has shut down.
var ErrStopped = errors.New("actor stopped")

// OnPanic is invoked when a handler panics. The actor survives the panic.
type OnPanic func(recovered any, stack []byte, selector method.Number)

// Reply carries the outcome of one invocation.
type Reply struct {
	Result []byte
	Error  error
}

// Invocation is one mailbox message: a selector, raw parameter bytes, and a
// channel for the outcome.
type Invocation struct {
	Method method.Number
	Params []byte
	Reply  chan Reply
}

type Options struct {
	ID          string
	MailboxSize int
	Context     context.Context
	Logger      *slog.Logger
	OnPanic     OnPanic
	Metrics     dispatch.DispatchMetrics
}

// Actor serves one immutable dispatch table from a single goroutine.
type Actor struct {
	id  string
	ctx context.Context
	log *slog.Logger
	d   *dispatch.Dispatcher

	mailbox chan Invocation

	stop chan struct{}
	done chan struct{}

	mu     sync.Mutex
	closed bool

	onPanic OnPanic
}

// New starts an actor serving tbl.
func New(tbl *dispatch.Table, opt Options) *Actor {
	if opt.ID == "" {
		opt.ID = fmt.Sprintf("actor-%s", gonanoid.Must(6))
	}
	if opt.MailboxSize == 0 {
		opt.MailboxSize = 1024
	}
	if opt.Context == nil {
		opt.Context = context.Background()
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}

	log := opt.Logger.With(slog.String("actor", opt.ID))

	if opt.OnPanic == nil {
		opt.OnPanic = func(recovered any, stack []byte, selector method.Number) {
			log.Error("handler panicked",
				slog.Any("recovered", recovered),
				slog.Uint64("selector", uint64(selector)),
				slog.String("stack", string(stack)),
			)
		}
	}

	a := &Actor{
		id:  opt.ID,
		ctx: opt.Context,
		log: log,
		d: dispatch.NewDispatcher(tbl, dispatch.DispatcherOptions{
			Log:     log,
			Metrics: opt.Metrics,
		}),
		mailbox: make(chan Invocation, opt.MailboxSize),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		onPanic: opt.OnPanic,
	}

	go a.loop()
	return a
}

// ID returns the actor's identifier.
func (a *Actor) ID() string { return a.id }

// Table returns the table this actor serves.
func (a *Actor) Table() *dispatch.Table { return a.d.Table() }

// Done is closed when the actor stops.
func (a *Actor) Done() <-chan struct{} { return a.done }

// Stop requests shutdown and waits for completion. Idempotent.
func (a *Actor) Stop() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.done
		return
	}
	a.closed = true
	a.mu.Unlock()

	close(a.stop)
	<-a.done
}

// Send enqueues an invocation, blocking until enqueued, ctx cancellation, or
// actor shutdown.
func (a *Actor) Send(ctx context.Context, inv Invocation) error {
	if a.isClosed() {
		return ErrStopped
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("send failed: %w", ctx.Err())
	case <-a.stop:
		return ErrStopped
	case a.mailbox <- inv:
		return nil
	}
}

// Call dispatches selector with params through the actor's mailbox and
// waits for the outcome.
func (a *Actor) Call(ctx context.Context, selector method.Number, params []byte) ([]byte, error) {
	reply := make(chan Reply, 1)
	if err := a.Send(ctx, Invocation{Method: selector, Params: params, Reply: reply}); err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-reply:
		return r.Result, r.Error
	}
}

func (a *Actor) isClosed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

func (a *Actor) loop() {
	defer close(a.done)

	for {
		select {
		case <-a.stop:
			return
		case <-a.ctx.Done():
			return
		case inv := <-a.mailbox:
			res, err := a.safeDispatch(inv)
			if inv.Reply != nil {
				inv.Reply <- Reply{Result: res, Error: err}
			}
		}
	}
}

// safeDispatch contains handler panics so one bad invocation cannot take
// the actor down.
func (a *Actor) safeDispatch(inv Invocation) (res []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if a.onPanic != nil {
				a.onPanic(r, debug.Stack(), inv.Method)
			}
			res = nil
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return a.d.Dispatch(a.ctx, inv.Method, inv.Params)
}
