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

package eventstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker(t *testing.T) {
	t.Run("With Subscription", func(t *testing.T) {
		broker := New()

		unsubscribe := broker.Subscribe("t1", func(any) {})
		require.NotNil(t, unsubscribe)
		broker.Subscribe("t2", func(any) {})

		require.EqualValues(t, 1, broker.SubscribersCount("t1"))
		require.EqualValues(t, 1, broker.SubscribersCount("t2"))
		assert.Equal(t, []string{"t1", "t2"}, broker.Topics())

		unsubscribe()
		assert.Zero(t, broker.SubscribersCount("t1"))
		require.EqualValues(t, 1, broker.SubscribersCount("t2"))
		assert.Equal(t, []string{"t2"}, broker.Topics())

		// removing twice is a no-op
		unsubscribe()
		assert.Zero(t, broker.SubscribersCount("t1"))
	})
	t.Run("With Publication order", func(t *testing.T) {
		broker := New()

		var order []int
		broker.Subscribe("t1", func(any) { order = append(order, 1) })
		broker.Subscribe("t1", func(any) { order = append(order, 2) })
		broker.Subscribe("t1", func(any) { order = append(order, 3) })

		broker.Publish("t1", "hi")
		assert.Equal(t, []int{1, 2, 3}, order)

		broker.Publish("t2", "nobody")
		assert.Equal(t, []int{1, 2, 3}, order)
	})
	t.Run("With panicking subscriber", func(t *testing.T) {
		broker := New()

		var delivered []string
		broker.Subscribe("t1", func(payload any) { delivered = append(delivered, "first") })
		broker.Subscribe("t1", func(any) { panic("subscriber bug") })
		broker.Subscribe("t1", func(payload any) { delivered = append(delivered, "third") })

		require.NotPanics(t, func() {
			broker.Publish("t1", "hello")
		})
		assert.Equal(t, []string{"first", "third"}, delivered)
	})
	t.Run("With self unsubscription during delivery", func(t *testing.T) {
		broker := New()

		var unsubscribe func()
		var calls int
		unsubscribe = broker.Subscribe("t1", func(any) {
			calls++
			unsubscribe()
		})
		broker.Subscribe("t1", func(any) { calls++ })

		broker.Publish("t1", "first")
		broker.Publish("t1", "second")

		// the self-removed callback fires once, the other one twice
		assert.Equal(t, 3, calls)
		assert.Equal(t, 1, broker.SubscribersCount("t1"))
	})
	t.Run("With same callback registered twice", func(t *testing.T) {
		broker := New()

		var calls int
		fn := func(any) { calls++ }
		first := broker.Subscribe("t1", fn)
		second := broker.Subscribe("t1", fn)
		require.EqualValues(t, 2, broker.SubscribersCount("t1"))

		broker.Publish("t1", nil)
		assert.Equal(t, 2, calls)

		first()
		require.EqualValues(t, 1, broker.SubscribersCount("t1"))
		broker.Publish("t1", nil)
		assert.Equal(t, 3, calls)

		second()
		assert.Zero(t, broker.SubscribersCount("t1"))
	})
	t.Run("With UnsubscribeAll", func(t *testing.T) {
		broker := New()

		var calls int
		unsubscribe := broker.Subscribe("t1", func(any) { calls++ })
		broker.Subscribe("t2", func(any) { calls++ })

		broker.UnsubscribeAll()
		assert.Zero(t, broker.SubscribersCount("t1"))
		assert.Zero(t, broker.SubscribersCount("t2"))
		assert.Empty(t, broker.Topics())

		broker.Publish("t1", nil)
		broker.Publish("t2", nil)
		assert.Zero(t, calls)

		// removers left over from before the clear are no-ops
		assert.NotPanics(t, unsubscribe)
	})
	t.Run("With payload", func(t *testing.T) {
		broker := New()

		var got any
		broker.Subscribe("t1", func(payload any) { got = payload })
		broker.Publish("t1", 42)
		assert.Equal(t, 42, got)
	})
}
