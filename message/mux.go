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

package message

import (
	"context"
	"fmt"
	"sync"

	"github.com/statekit/statekit/actor"
	gerrors "github.com/statekit/statekit/errors"
)

// HandlerFunc handles one message kind against the current state.
type HandlerFunc[S, R any] func(ctx context.Context, state S, msg Message) (R, error)

// Mux maps message kinds onto individually registered handlers and exposes
// the whole mapping as the single handler signature the actor engine
// expects.
type Mux[S, R any] struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc[S, R]
}

// NewMux creates an empty Mux.
func NewMux[S, R any]() *Mux[S, R] {
	return &Mux[S, R]{
		handlers: make(map[string]HandlerFunc[S, R]),
	}
}

// HandleFunc registers fn for the given kind, replacing any previous
// registration. It returns the Mux for chaining.
func (m *Mux[S, R]) HandleFunc(kind string, fn HandlerFunc[S, R]) *Mux[S, R] {
	m.mu.Lock()
	m.handlers[kind] = fn
	m.mu.Unlock()
	return m
}

// Kinds returns the registered message kinds.
func (m *Mux[S, R]) Kinds() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	kinds := make([]string, 0, len(m.handlers))
	for kind := range m.handlers {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Handler returns the dispatching handler to construct an actor with.
// A message whose kind has no registration fails with errors.ErrUnhandled.
func (m *Mux[S, R]) Handler() actor.Handler[S, Message, R] {
	return func(ctx context.Context, state S, msg Message) (R, error) {
		m.mu.RLock()
		fn, ok := m.handlers[msg.Kind]
		m.mu.RUnlock()
		if !ok {
			var zero R
			return zero, fmt.Errorf("%w: kind=%s", gerrors.ErrUnhandled, msg.Kind)
		}
		return fn(ctx, state, msg)
	}
}
