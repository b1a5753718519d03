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

// Package eventstream provides a minimal, synchronous publish/subscribe
// broker keyed by topic. Callbacks are invoked in registration order and a
// panicking callback never aborts delivery to the remaining callbacks.
package eventstream

import (
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/statekit/statekit/log"
)

// Callback consumes a payload published on a topic the callback is
// subscribed to.
type Callback func(payload any)

// Stream defines the event stream broker.
type Stream interface {
	// Subscribe registers the given callback for a topic and returns its
	// remover. The remover is idempotent. The same callback may be
	// registered multiple times; each registration has its own remover.
	Subscribe(topic string, fn Callback) func()
	// Publish invokes every callback currently registered for the topic, in
	// registration order. A callback panic is recovered, reported to the
	// stream's logger and delivery proceeds to the remaining callbacks.
	Publish(topic string, payload any)
	// SubscribersCount returns the number of live registrations for a topic.
	SubscribersCount(topic string) int
	// Topics returns the topics that currently have registrations.
	Topics() []string
	// UnsubscribeAll removes every registration on every topic.
	UnsubscribeAll()
}

// EventsStream is the default Stream implementation.
type EventsStream struct {
	mu     sync.RWMutex
	topics map[string][]*subscription
	known  mapset.Set[string]
	logger log.Logger
}

var _ Stream = (*EventsStream)(nil)

// Option configures an EventsStream.
type Option func(*EventsStream)

// WithLogger sets the logger callback panics are reported to.
func WithLogger(logger log.Logger) Option {
	return func(stream *EventsStream) {
		stream.logger = logger
	}
}

// New creates an instance of EventsStream.
func New(opts ...Option) *EventsStream {
	stream := &EventsStream{
		topics: make(map[string][]*subscription),
		known:  mapset.NewSet[string](),
		logger: log.DiscardLogger,
	}
	for _, opt := range opts {
		opt(stream)
	}
	return stream
}

func (b *EventsStream) Subscribe(topic string, fn Callback) func() {
	sub := newSubscription(topic, fn)

	b.mu.Lock()
	b.topics[topic] = append(b.topics[topic], sub)
	b.known.Add(topic)
	b.mu.Unlock()

	b.logger.Debugf("eventstream: subscriber=(%s) added to topic=(%s)", sub.id, topic)
	return func() {
		b.unsubscribe(sub)
	}
}

func (b *EventsStream) Publish(topic string, payload any) {
	b.mu.RLock()
	subs := b.topics[topic]
	if len(subs) == 0 {
		b.mu.RUnlock()
		return
	}
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)
	b.mu.RUnlock()

	// deliver on a snapshot so a callback may unsubscribe itself or
	// others while delivery is in flight
	for _, sub := range snapshot {
		if sub.Active() {
			b.deliver(sub, payload)
		}
	}
}

func (b *EventsStream) SubscribersCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

func (b *EventsStream) Topics() []string {
	topics := b.known.ToSlice()
	sort.Strings(topics)
	return topics
}

func (b *EventsStream) UnsubscribeAll() {
	b.mu.Lock()
	for _, subs := range b.topics {
		for _, sub := range subs {
			sub.deactivate()
		}
	}
	b.topics = make(map[string][]*subscription)
	b.known.Clear()
	b.mu.Unlock()
}

// unsubscribe removes exactly the given registration. Calling it twice, or
// after UnsubscribeAll, is a no-op.
func (b *EventsStream) unsubscribe(sub *subscription) {
	if !sub.deactivate() {
		return
	}

	b.mu.Lock()
	subs := b.topics[sub.topic]
	for i, candidate := range subs {
		if candidate.id == sub.id {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(b.topics, sub.topic)
		b.known.Remove(sub.topic)
	} else {
		b.topics[sub.topic] = subs
	}
	b.mu.Unlock()

	b.logger.Debugf("eventstream: subscriber=(%s) removed from topic=(%s)", sub.id, sub.topic)
}

// deliver invokes a single callback, isolating its failure from the
// publisher and from the other callbacks.
func (b *EventsStream) deliver(sub *subscription, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorf("eventstream: subscriber=(%s) panicked on topic=(%s): %v", sub.id, sub.topic, r)
		}
	}()
	sub.fn(payload)
}
