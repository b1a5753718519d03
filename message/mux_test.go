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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statekit/statekit/actor"
	gerrors "github.com/statekit/statekit/errors"
)

func TestMuxDispatch(t *testing.T) {
	mux := NewMux[int, int]()
	mux.HandleFunc("INCREMENT", func(_ context.Context, state int, _ Message) (int, error) {
		return state + 1, nil
	})
	mux.HandleFunc("DECREMENT", func(_ context.Context, state int, _ Message) (int, error) {
		return state - 1, nil
	})

	assert.ElementsMatch(t, []string{"INCREMENT", "DECREMENT"}, mux.Kinds())

	handler := mux.Handler()
	state, err := handler(context.Background(), 10, New("INCREMENT", nil))
	require.NoError(t, err)
	assert.Equal(t, 11, state)

	state, err = handler(context.Background(), 10, New("DECREMENT", nil))
	require.NoError(t, err)
	assert.Equal(t, 9, state)
}

func TestMuxUnhandledKind(t *testing.T) {
	mux := NewMux[int, int]()
	handler := mux.Handler()

	_, err := handler(context.Background(), 0, New("UNKNOWN", nil))
	assert.ErrorIs(t, err, gerrors.ErrUnhandled)
	assert.ErrorContains(t, err, "UNKNOWN")
}

func TestMuxReplacesRegistration(t *testing.T) {
	mux := NewMux[int, int]()
	mux.HandleFunc("PING", func(context.Context, int, Message) (int, error) { return 1, nil })
	mux.HandleFunc("PING", func(context.Context, int, Message) (int, error) { return 2, nil })

	resp, err := mux.Handler()(context.Background(), 0, New("PING", nil))
	require.NoError(t, err)
	assert.Equal(t, 2, resp)
	assert.Len(t, mux.Kinds(), 1)
}

func TestMuxDrivesActor(t *testing.T) {
	mux := NewMux[int, int]()
	mux.HandleFunc("ADD", func(_ context.Context, state int, msg Message) (int, error) {
		return state + msg.Payload.(int), nil
	})

	counter := actor.NewCell(0, mux.Handler())
	defer counter.Shutdown()

	value, err := counter.Ask(context.Background(), New("ADD", 5))
	require.NoError(t, err)
	assert.Equal(t, 5, value)

	_, err = counter.Ask(context.Background(), New("NOPE", nil))
	require.ErrorIs(t, err, gerrors.ErrUnhandled)
	assert.Equal(t, 5, counter.State())
}
