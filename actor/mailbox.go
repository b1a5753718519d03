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
	"github.com/statekit/statekit/future"
)

// Envelope pairs a pending message with the completable that settles the
// future its sender holds. Envelopes are created by Send and destroyed once
// the handler invocation for the message resolves or fails.
type Envelope[M, R any] struct {
	message     M
	completable future.Completable[R]
}

// NewEnvelope creates an Envelope for the given message.
func NewEnvelope[M, R any](message M, completable future.Completable[R]) *Envelope[M, R] {
	return &Envelope[M, R]{
		message:     message,
		completable: completable,
	}
}

// Message returns the enclosed message.
func (x *Envelope[M, R]) Message() M {
	return x.message
}

// Mailbox defines the actor mailbox: the FIFO queue of not-yet-processed
// envelopes. Any implementation must be safe for multiple concurrent
// producers and exactly one consumer (MPSC).
type Mailbox[M, R any] interface {
	// Enqueue places the given envelope in the mailbox. Returns an error
	// when the mailbox cannot accept it.
	Enqueue(msg *Envelope[M, R]) error
	// Dequeue removes and returns the oldest envelope, or nil when the
	// mailbox is empty. Single consumer only.
	Dequeue() *Envelope[M, R]
	// IsEmpty returns true when the mailbox is empty.
	IsEmpty() bool
	// Len returns the number of pending envelopes.
	Len() int64
	// Dispose releases the mailbox resources. No envelope may be enqueued
	// afterwards.
	Dispose()
}
