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

// Package errors defines the sentinel errors shared across statekit packages.
package errors

import "errors"

var (
	// ErrDestroyed is returned when a message is sent to an actor
	// after it has been destroyed.
	ErrDestroyed = errors.New("actor has been destroyed")

	// ErrUnhandled is returned when a message kind has no registered handler.
	ErrUnhandled = errors.New("unhandled message")

	// ErrInvalidMessage indicates that a message is structurally invalid,
	// e.g. it carries no usable discriminator.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrMailboxClosed is returned when a message cannot be enqueued because
	// the mailbox has been disposed.
	ErrMailboxClosed = errors.New("mailbox is closed")
)
