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

// Package message provides the discriminated-message conveniences layered
// on top of the actor engine: a message factory, a validator for untyped
// values, and a mux mapping message kinds onto per-kind handlers. The
// engine itself is unaware of any of this; it sees one opaque handler.
package message

// Message is a discriminated message: a non-empty Kind plus an arbitrary
// payload.
type Message struct {
	// Kind is the discriminator the mux dispatches on.
	Kind string
	// Payload carries the message data. For messages produced by
	// ValidateJSON it holds the raw JSON bytes.
	Payload any
}

// New builds a Message literal.
func New(kind string, payload any) Message {
	return Message{
		Kind:    kind,
		Payload: payload,
	}
}
