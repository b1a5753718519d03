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
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// subscription is one registration of a callback on one topic. The uuid
// identity makes removal stable even when the same callback is registered
// several times.
type subscription struct {
	id     string
	topic  string
	fn     Callback
	active *atomic.Bool
}

func newSubscription(topic string, fn Callback) *subscription {
	return &subscription{
		id:     uuid.NewString(),
		topic:  topic,
		fn:     fn,
		active: atomic.NewBool(true),
	}
}

// Active returns true while the registration has not been removed.
func (s *subscription) Active() bool {
	return s.active.Load()
}

// deactivate flips the registration to inactive. It returns false when the
// registration was already inactive.
func (s *subscription) deactivate() bool {
	return s.active.CompareAndSwap(true, false)
}
