/*
 * MIT License
 *
 * Copyright (c) 2026 Statekit Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package actor implements a single-unit, message-driven stateful
// computation primitive: an owner of mutable state that accepts
// asynchronous messages, processes them strictly one at a time, and
// publishes state changes to observers.
//
// Each Actor is an isolated, in-process unit. There are no addresses, no
// supervision and no routing; composition of multiple instances is the
// caller's responsibility.
package actor

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/atomic"

	gerrors "github.com/statekit/statekit/errors"
	"github.com/statekit/statekit/eventstream"
	"github.com/statekit/statekit/future"
	"github.com/statekit/statekit/log"
	"github.com/statekit/statekit/metric"
)

// Handler computes a response from the current state and a message. It runs
// strictly serialized: a second invocation never begins before the previous
// one has returned.
type Handler[S, M, R any] func(ctx context.Context, state S, msg M) (R, error)

// Reducer folds a handler response into the new state. The prior state must
// be replaced, never mutated in place, so that change detection stays
// meaningful.
type Reducer[S, R any] func(state S, resp R) S

// stateTopic is the single topic state changes are published on.
const stateTopic = "statekit.state"

// processing loop states
const (
	// idle means there is no message processing loop running
	idle int32 = iota
	// busy means the actor is processing messages
	busy
)

// stateChange is the payload published on stateTopic. previous is nil only
// for the immediate emission a new subscriber receives.
type stateChange[S any] struct {
	current  S
	previous *S
}

// Actor owns one state cell of type S, accepts messages of type M and
// produces handler responses of type R. Messages submitted through Send are
// queued in the mailbox and drained one at a time in FIFO order.
//
// The zero value is not usable; create instances with New or NewCell.
type Actor[S, M, R any] struct {
	handler  Handler[S, M, R]
	reducer  Reducer[S, R]
	equality func(a, b S) bool
	onError  func(err error, msg M)

	stateMu sync.RWMutex
	state   S

	// serializes state publication against subscriber registration so the
	// initial emission is always a subscriber's first delivery
	notifyMu sync.Mutex

	mailbox Mailbox[M, R]
	stream  eventstream.Stream

	// atomic flag indicating whether a drain loop is running
	processing *atomic.Int32
	// monotonic: once true, never reverts
	destroyed      *atomic.Bool
	processedCount *atomic.Int64

	logger log.Logger
	metric *metric.ActorMetric
}

// New creates an Actor with the given initial state and handler. The
// handler is not invoked during construction. Without WithReducer, handler
// responses are delivered to senders but the state cell never changes.
func New[S, M, R any](initial S, handler Handler[S, M, R], opts ...Option[S, M, R]) *Actor[S, M, R] {
	x := &Actor[S, M, R]{
		handler:        handler,
		state:          initial,
		equality:       defaultEquality[S],
		logger:         log.DiscardLogger,
		processing:     atomic.NewInt32(idle),
		destroyed:      atomic.NewBool(false),
		processedCount: atomic.NewInt64(0),
	}
	for _, opt := range opts {
		opt(x)
	}
	if x.mailbox == nil {
		x.mailbox = NewDefaultMailbox[M, R]()
	}
	x.stream = eventstream.New(eventstream.WithLogger(x.logger))
	return x
}

// NewCell creates an Actor in simplified mode: the handler response is the
// new state. It is equivalent to New with an identity reducer.
func NewCell[S, M any](initial S, handler Handler[S, M, S], opts ...Option[S, M, S]) *Actor[S, M, S] {
	merged := make([]Option[S, M, S], 0, len(opts)+1)
	merged = append(merged, WithReducer[S, M](func(_ S, resp S) S { return resp }))
	merged = append(merged, opts...)
	return New(initial, handler, merged...)
}

// Send submits a message for processing and returns the future holding the
// handler's eventual response. Messages are processed in the exact order
// Send was called; the future settles exactly once, when the message's turn
// has been processed.
//
// When the actor has been destroyed the returned future is already failed
// with errors.ErrDestroyed and nothing is enqueued.
//
// Send never waits for processing. Calling Send from inside a handler or a
// subscriber callback only enqueues; a handler that awaits its own actor's
// Send would deadlock against the single-drain guarantee and must
// enqueue-and-return instead.
func (x *Actor[S, M, R]) Send(msg M) *future.Future[R] {
	if x.destroyed.Load() {
		x.logger.Debugf("actor: rejecting %T, actor destroyed", msg)
		return future.Failed[R](gerrors.ErrDestroyed)
	}

	comp := future.NewCompletable[R]()
	if err := x.mailbox.Enqueue(NewEnvelope(msg, comp)); err != nil {
		x.logger.Warn(err)
		comp.Failure(err)
		return comp.Future()
	}

	// a destroy may have raced the enqueue; the envelope will never be
	// drained, so fail its future here. Settling is exactly-once, a
	// concurrent drain cannot double-fire it.
	if x.destroyed.Load() {
		comp.Failure(gerrors.ErrDestroyed)
		return comp.Future()
	}

	x.logger.Debugf("actor: message %T enqueued", msg)
	if x.metric != nil {
		x.metric.ReceivedCount().Add(context.Background(), 1)
	}

	x.process()
	return comp.Future()
}

// Ask submits a message and waits for its response. The context bounds only
// this caller's wait, not the processing of the message.
func (x *Actor[S, M, R]) Ask(ctx context.Context, msg M) (R, error) {
	return x.Send(msg).Await(ctx)
}

// Tell submits a message and discards its response. Handler failures for
// the message are still reported through the OnError observer.
func (x *Actor[S, M, R]) Tell(msg M) {
	_ = x.Send(msg)
}

// State returns the current state. It never blocks on message processing
// and keeps working after destruction.
func (x *Actor[S, M, R]) State() S {
	x.stateMu.RLock()
	defer x.stateMu.RUnlock()
	return x.state
}

// Subscribe registers fn for state-change notifications and synchronously
// invokes it once with the current state (previous is nil) before
// returning. Afterwards fn is invoked with (current, previous) every time a
// processed message replaces the state.
//
// A panic in fn is caught and logged; it never reaches the engine and never
// prevents delivery to other subscribers.
//
// The returned function removes exactly this registration. Calling it twice
// or after Shutdown is a no-op.
//
// Subscribe must not be called from inside a subscriber callback; it would
// deadlock on the registration lock. Subscribing from a handler is fine.
func (x *Actor[S, M, R]) Subscribe(fn func(current S, previous *S)) func() {
	x.notifyMu.Lock()
	defer x.notifyMu.Unlock()

	unsubscribe := x.stream.Subscribe(stateTopic, func(payload any) {
		if change, ok := payload.(*stateChange[S]); ok {
			fn(change.current, change.previous)
		}
	})
	x.emitCurrent(fn)
	return unsubscribe
}

// IsDestroyed returns true once Shutdown has been called.
func (x *Actor[S, M, R]) IsDestroyed() bool {
	return x.destroyed.Load()
}

// ProcessedCount returns the number of messages processed successfully.
func (x *Actor[S, M, R]) ProcessedCount() int64 {
	return x.processedCount.Load()
}

// MailboxSize returns the number of messages waiting to be processed.
func (x *Actor[S, M, R]) MailboxSize() int64 {
	return x.mailbox.Len()
}

// Shutdown destroys the actor. It is idempotent and never blocks on message
// processing, so it is safe to call from inside a handler or a subscriber
// callback.
//
// Any message whose handler is currently in flight finishes processing and
// its future settles normally; every envelope still waiting in the mailbox
// has its future failed with errors.ErrDestroyed. When no handler is in
// flight Shutdown performs that flush itself; otherwise the drain goroutine
// performs it right after the in-flight handler returns. All subscriber
// registrations are removed. The state cell keeps its last value and stays
// readable through State.
func (x *Actor[S, M, R]) Shutdown() {
	if !x.destroyed.CompareAndSwap(false, true) {
		return
	}

	// take the consumer role if no drain loop is running; otherwise the
	// running loop observes the destroyed flag on its exit path and
	// flushes the mailbox itself
	if x.processing.CompareAndSwap(idle, busy) {
		x.flush()
	}
	x.stream.UnsubscribeAll()
	x.logger.Infof("actor destroyed, processed=(%d) messages", x.processedCount.Load())
}

// flush fails every pending envelope and releases the mailbox. The caller
// must hold the busy flag; it is never released afterwards, which keeps any
// further drain loop from starting.
func (x *Actor[S, M, R]) flush() {
	for {
		received := x.mailbox.Dequeue()
		if received == nil {
			break
		}
		received.completable.Failure(gerrors.ErrDestroyed)
	}
	x.mailbox.Dispose()
}

// process starts the drain loop when transitioning idle -> busy. If another
// loop is already running, the freshly enqueued message will be picked up
// by it.
func (x *Actor[S, M, R]) process() {
	if !x.processing.CompareAndSwap(idle, busy) {
		return
	}

	go func() {
		for {
			if received := x.mailbox.Dequeue(); received != nil {
				x.handleReceived(received)
			}

			// if no more messages, change busy state to idle
			x.processing.Store(idle)

			// never pick the consumer role back up once destroyed;
			// whoever wins the busy flag back performs the flush
			if x.destroyed.Load() {
				if x.processing.CompareAndSwap(idle, busy) {
					x.flush()
				}
				return
			}

			// check if new messages were added in the meantime and
			// restart processing
			if !x.mailbox.IsEmpty() && x.processing.CompareAndSwap(idle, busy) {
				continue
			}
			return
		}
	}()
}

// handleReceived processes one envelope: handler, then reducer/notify, then
// settle the sender's future, strictly in that order.
func (x *Actor[S, M, R]) handleReceived(received *Envelope[M, R]) {
	ctx := context.Background()
	previous := x.State()

	resp, err := x.invoke(ctx, previous, received.Message())
	if err != nil {
		x.logger.Errorf("actor: handler failed on %T: %v", received.Message(), err)
		if x.metric != nil {
			x.metric.FailuresCount().Add(ctx, 1)
		}
		if x.onError != nil {
			x.onError(err, received.Message())
		}
		received.completable.Failure(err)
		return
	}

	x.applyResponse(ctx, previous, resp)
	x.processedCount.Inc()
	if x.metric != nil {
		x.metric.ProcessedCount().Add(ctx, 1)
	}
	x.logger.Debugf("actor: message %T processed", received.Message())
	received.completable.Success(resp)
}

// invoke runs the handler with panic isolation. A panic value that is not
// an error is coerced into one.
func (x *Actor[S, M, R]) invoke(ctx context.Context, state S, msg M) (resp R, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			default:
				err = fmt.Errorf("%v", v)
			}
		}
	}()
	return x.handler(ctx, state, msg)
}

// applyResponse runs the reducer and, when the result differs from the
// prior state, replaces the state cell and notifies subscribers. Reducer
// outputs equal to the prior state are silent no-ops.
func (x *Actor[S, M, R]) applyResponse(ctx context.Context, previous S, resp R) {
	if x.reducer == nil {
		return
	}

	next := x.reducer(previous, resp)
	if x.equality(previous, next) {
		return
	}

	x.notifyMu.Lock()
	defer x.notifyMu.Unlock()

	x.stateMu.Lock()
	x.state = next
	x.stateMu.Unlock()

	x.logger.Debugf("actor: state changed")
	if x.metric != nil {
		x.metric.StateChangeCount().Add(ctx, 1)
	}
	x.stream.Publish(stateTopic, &stateChange[S]{current: next, previous: &previous})
}

// emitCurrent performs the immediate post-subscribe invocation with the
// same failure isolation the hub applies to later deliveries.
func (x *Actor[S, M, R]) emitCurrent(fn func(current S, previous *S)) {
	defer func() {
		if r := recover(); r != nil {
			x.logger.Errorf("actor: subscriber panicked during initial emission: %v", r)
		}
	}()
	fn(x.State(), nil)
}

// defaultEquality compares comparable dynamic values with ==. That gives
// pointer identity for pointer states and value equality for primitives.
// Non-comparable values (slices, maps, functions) always count as changed.
func defaultEquality[S any](a, b S) bool {
	left, right := any(a), any(b)
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	if !reflect.TypeOf(left).Comparable() || !reflect.TypeOf(right).Comparable() {
		return false
	}
	return left == right
}
