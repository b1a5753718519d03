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
	"sync"
	"sync/atomic"
)

// mpscNode defines a node of the MPSC queue backing DefaultMailbox.
type mpscNode[M, R any] struct {
	next atomic.Pointer[mpscNode[M, R]]
	data *Envelope[M, R]
}

// DefaultMailbox is the default unbounded, lock-free mailbox.
//
// Concurrency model:
//   - Multi-Producer, Single-Consumer (MPSC): many goroutines may call
//     Enqueue concurrently, but exactly one goroutine must call Dequeue.
//
// Characteristics:
//   - FIFO ordering across all producers.
//   - Lock-free operations via atomic pointer primitives.
//   - Nodes are reused through a sync.Pool to avoid per-message allocations.
//   - IsEmpty is O(1). Len performs a snapshot traversal (O(n)) and is
//     intended for diagnostics.
type DefaultMailbox[M, R any] struct {
	// Separate cache lines to avoid false sharing between producers and consumer
	head  atomic.Pointer[mpscNode[M, R]] // consumer only
	_pad1 [64]byte
	tail  atomic.Pointer[mpscNode[M, R]] // producers only
	_pad2 [64]byte
	pool  sync.Pool
}

// enforce compilation error when interface contract changes
var _ Mailbox[int, int] = (*DefaultMailbox[int, int])(nil)

// NewDefaultMailbox creates and initializes a DefaultMailbox instance.
// The mailbox starts with a dummy node so that producers can append by
// swapping tail and linking through the previous node.
func NewDefaultMailbox[M, R any]() *DefaultMailbox[M, R] {
	m := &DefaultMailbox[M, R]{
		pool: sync.Pool{New: func() any { return new(mpscNode[M, R]) }},
	}
	dummy := m.pool.Get().(*mpscNode[M, R])
	dummy.next.Store(nil)
	dummy.data = nil
	m.head.Store(dummy)
	m.tail.Store(dummy)
	return m
}

// Enqueue places the given envelope in the mailbox. Never blocks; always
// returns nil. Safe for concurrent calls by multiple producers.
func (m *DefaultMailbox[M, R]) Enqueue(value *Envelope[M, R]) error {
	n := m.pool.Get().(*mpscNode[M, R])
	n.data = value

	prev := m.tail.Swap(n)
	prev.next.Store(n)
	return nil
}

// Dequeue removes and returns the envelope at the head of the mailbox.
// Returns nil if the mailbox is empty.
// Must be called by a single consumer goroutine.
func (m *DefaultMailbox[M, R]) Dequeue() *Envelope[M, R] {
	head := m.head.Load() // single consumer
	next := head.next.Load()

	if next == nil {
		return nil
	}

	m.head.Store(next)
	value := next.data

	// Return old head to pool for reuse
	head.next.Store(nil)
	head.data = nil
	m.pool.Put(head)
	return value
}

// Len returns a best-effort snapshot of the number of pending envelopes.
// It performs an O(n) traversal from head to tail with atomic loads; the
// value may be approximate under concurrent producers.
func (m *DefaultMailbox[M, R]) Len() int64 {
	h := m.head.Load()
	n := h.next.Load()
	var count int64
	for n != nil {
		count++
		n = n.next.Load()
	}
	return count
}

// IsEmpty returns true when the mailbox is empty.
// This is an O(1) check and safe under concurrent producers.
func (m *DefaultMailbox[M, R]) IsEmpty() bool {
	head := m.head.Load()
	return head.next.Load() == nil
}

// Dispose releases resources if needed. No-op for this mailbox.
func (m *DefaultMailbox[M, R]) Dispose() {}
