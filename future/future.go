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

// Package future provides a single-assignment container for a value which may
// not be available yet. A Future settles exactly once, with either a value or
// an error, and any number of callers can await it.
package future

import (
	"context"
	"sync"
)

// Future represents a value which may or may not currently be available,
// but will be available at some point, or an error if that value could not
// be made available.
//
// A Future is completed at most once through its Completable side. Await can
// be called any number of times, from any goroutine; a canceled context only
// aborts that caller's wait and never consumes or corrupts the result.
type Future[T any] struct {
	completeOnce sync.Once
	settled      chan struct{}
	value        T
	err          error
}

// newFuture returns a pending Future.
func newFuture[T any]() *Future[T] {
	return &Future[T]{
		settled: make(chan struct{}),
	}
}

// New creates a Future that executes the given task in a separate goroutine.
// The Future is completed with the value returned by the task or failed with
// its error.
func New[T any](task func() (T, error)) *Future[T] {
	comp := NewCompletable[T]()
	go func() {
		result, err := task()
		if err == nil {
			comp.Success(result)
		} else {
			comp.Failure(err)
		}
	}()
	return comp.Future()
}

// Completed returns a Future already settled with the given value.
func Completed[T any](value T) *Future[T] {
	comp := NewCompletable[T]()
	comp.Success(value)
	return comp.Future()
}

// Failed returns a Future already failed with the given error.
func Failed[T any](err error) *Future[T] {
	comp := NewCompletable[T]()
	comp.Failure(err)
	return comp.Future()
}

// Await blocks until the Future is completed or the context is canceled and
// returns either a result or an error. When the context is canceled first,
// the context error is returned and the Future stays awaitable.
func (x *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-x.settled:
		return x.value, x.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// HasResult returns true when the Future has been completed.
func (x *Future[T]) HasResult() bool {
	select {
	case <-x.settled:
		return true
	default:
		return false
	}
}

// complete completes the Future with either a value or an error.
// It is used by [Completable] internally.
func (x *Future[T]) complete(value T, err error) {
	x.completeOnce.Do(func() {
		x.value = value
		x.err = err
		close(x.settled)
	})
}

// Completable represents a writable, single-assignment container,
// which completes a Future.
type Completable[T any] interface {
	// Success completes the underlying Future with a value.
	Success(T)

	// Failure fails the underlying Future with an error.
	Failure(error)

	// Future returns the underlying Future.
	Future() *Future[T]
}

// completer implements the Completable interface.
type completer[T any] struct {
	once   sync.Once
	future *Future[T]
}

// Verify completer satisfies the Completable interface.
var _ Completable[int] = (*completer[int])(nil)

// NewCompletable returns a new Completable backed by a pending Future.
func NewCompletable[T any]() Completable[T] {
	return &completer[T]{
		future: newFuture[T](),
	}
}

// Success completes the underlying Future with a given value.
func (p *completer[T]) Success(value T) {
	p.once.Do(func() {
		p.future.complete(value, nil)
	})
}

// Failure fails the underlying Future with a given error.
func (p *completer[T]) Failure(err error) {
	p.once.Do(func() {
		var zero T
		p.future.complete(zero, err)
	})
}

// Future returns the underlying Future.
func (p *completer[T]) Future() *Future[T] {
	return p.future
}
