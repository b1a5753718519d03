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
	gods "github.com/Workiva/go-datastructures/queue"

	gerrors "github.com/statekit/statekit/errors"
)

// BoundedMailbox is a bounded, blocking MPSC mailbox backed by a ring
// buffer.
//
// Characteristics
//   - Bounded capacity: the queue has a fixed size.
//   - Enqueue blocks when the mailbox is full until space becomes available
//     or the mailbox is disposed.
//   - Safe for multiple producers and a single consumer; FIFO ordering.
//
// Use this mailbox when you want strict, blocking backpressure with bounded
// capacity. Note that a full mailbox makes Send block until the drain loop
// frees a slot.
type BoundedMailbox[M, R any] struct {
	underlying *gods.RingBuffer
}

// enforce compilation error
var _ Mailbox[int, int] = (*BoundedMailbox[int, int])(nil)

// NewBoundedMailbox creates a new bounded, blocking mailbox with the given
// capacity. Capacity must be a positive integer.
func NewBoundedMailbox[M, R any](capacity int) *BoundedMailbox[M, R] {
	return &BoundedMailbox[M, R]{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}
}

// Enqueue inserts an envelope into the mailbox. Blocks when the mailbox is
// full until space is available. Returns ErrMailboxClosed when the mailbox
// has been disposed.
func (mailbox *BoundedMailbox[M, R]) Enqueue(msg *Envelope[M, R]) error {
	if err := mailbox.underlying.Put(msg); err != nil {
		return gerrors.ErrMailboxClosed
	}
	return nil
}

// Dequeue removes and returns the next envelope from the mailbox, or nil
// when the mailbox is empty. Intended for a single consumer.
func (mailbox *BoundedMailbox[M, R]) Dequeue() *Envelope[M, R] {
	if mailbox.underlying.Len() > 0 {
		item, _ := mailbox.underlying.Get()
		if v, ok := item.(*Envelope[M, R]); ok {
			return v
		}
	}
	return nil
}

// IsEmpty reports whether the mailbox currently has no envelopes.
// This check is a snapshot and may change immediately under concurrency.
func (mailbox *BoundedMailbox[M, R]) IsEmpty() bool {
	return mailbox.underlying.Len() == 0
}

// Len returns the current number of envelopes in the mailbox.
func (mailbox *BoundedMailbox[M, R]) Len() int64 {
	return int64(mailbox.underlying.Len())
}

// Dispose releases the underlying ring buffer and unblocks any waiters.
// Do not use the mailbox after calling Dispose.
func (mailbox *BoundedMailbox[M, R]) Dispose() {
	mailbox.underlying.Dispose()
}
