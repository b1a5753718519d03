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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/statekit/statekit/errors"
)

func TestBoundedMailbox(t *testing.T) {
	t.Run("With FIFO ordering", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int, int](16)
		require.True(t, mailbox.IsEmpty())

		for i := 0; i < 10; i++ {
			require.NoError(t, mailbox.Enqueue(newIntEnvelope(i)))
		}
		require.EqualValues(t, 10, mailbox.Len())

		for i := 0; i < 10; i++ {
			received := mailbox.Dequeue()
			require.NotNil(t, received)
			assert.Equal(t, i, received.Message())
		}
		assert.Nil(t, mailbox.Dequeue())
		assert.True(t, mailbox.IsEmpty())
		mailbox.Dispose()
	})
	t.Run("With disposed mailbox", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int, int](4)
		mailbox.Dispose()

		err := mailbox.Enqueue(newIntEnvelope(1))
		assert.ErrorIs(t, err, gerrors.ErrMailboxClosed)
	})
	t.Run("With capacity reached and drained", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int, int](2)
		require.NoError(t, mailbox.Enqueue(newIntEnvelope(1)))
		require.NoError(t, mailbox.Enqueue(newIntEnvelope(2)))
		require.EqualValues(t, 2, mailbox.Len())

		received := mailbox.Dequeue()
		require.NotNil(t, received)
		assert.Equal(t, 1, received.Message())

		require.NoError(t, mailbox.Enqueue(newIntEnvelope(3)))
		assert.Equal(t, 2, mailbox.Dequeue().Message())
		assert.Equal(t, 3, mailbox.Dequeue().Message())
		mailbox.Dispose()
	})
}
