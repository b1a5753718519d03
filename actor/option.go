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

package actor

import (
	"github.com/statekit/statekit/log"
	"github.com/statekit/statekit/metric"
)

// Option configures an Actor at construction time.
type Option[S, M, R any] func(*Actor[S, M, R])

// WithReducer sets the reducer folding a handler response into the new
// state. Without a reducer, handler responses are delivered to senders but
// never touch the state cell.
func WithReducer[S, M, R any](reducer Reducer[S, R]) Option[S, M, R] {
	return func(x *Actor[S, M, R]) {
		x.reducer = reducer
	}
}

// WithOnError sets an observer invoked synchronously with the handler error
// and the offending message, before the sender's future is failed.
func WithOnError[S, M, R any](fn func(err error, msg M)) Option[S, M, R] {
	return func(x *Actor[S, M, R]) {
		x.onError = fn
	}
}

// WithEquality overrides the change detection used to decide whether a
// reduced state replaces the current one. The default compares comparable
// dynamic values with == and treats non-comparable values as always changed.
func WithEquality[S, M, R any](fn func(a, b S) bool) Option[S, M, R] {
	return func(x *Actor[S, M, R]) {
		x.equality = fn
	}
}

// WithLogger sets the diagnostics sink. The logger never affects control
// flow or results. Defaults to log.DiscardLogger.
func WithLogger[S, M, R any](logger log.Logger) Option[S, M, R] {
	return func(x *Actor[S, M, R]) {
		x.logger = logger
	}
}

// WithMailbox swaps the default unbounded MPSC mailbox.
func WithMailbox[S, M, R any](mailbox Mailbox[M, R]) Option[S, M, R] {
	return func(x *Actor[S, M, R]) {
		x.mailbox = mailbox
	}
}

// WithMetric enables OpenTelemetry instruments for the engine.
func WithMetric[S, M, R any](actorMetric *metric.ActorMetric) Option[S, M, R] {
	return func(x *Actor[S, M, R]) {
		x.metric = actorMetric
	}
}
