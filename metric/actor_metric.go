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

// Package metric defines the OpenTelemetry instruments the actor engine
// records against when metrics are enabled.
package metric

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// ActorMetric defines the actor engine metrics
type ActorMetric struct {
	receivedCount    metric.Int64Counter
	processedCount   metric.Int64Counter
	failuresCount    metric.Int64Counter
	stateChangeCount metric.Int64Counter
}

// NewActorMetric creates an instance of ActorMetric
func NewActorMetric(meter metric.Meter) (*ActorMetric, error) {
	actorMetric := new(ActorMetric)
	var err error
	if actorMetric.receivedCount, err = meter.Int64Counter(
		"actor_received_count",
		metric.WithDescription("Total number of messages accepted into the mailbox"),
	); err != nil {
		return nil, fmt.Errorf("failed to create receivedCount instrument, %w", err)
	}
	if actorMetric.processedCount, err = meter.Int64Counter(
		"actor_processed_count",
		metric.WithDescription("Total number of messages processed successfully"),
	); err != nil {
		return nil, fmt.Errorf("failed to create processedCount instrument, %w", err)
	}
	if actorMetric.failuresCount, err = meter.Int64Counter(
		"actor_failures_count",
		metric.WithDescription("Total number of handler failures"),
	); err != nil {
		return nil, fmt.Errorf("failed to create failuresCount instrument, %w", err)
	}
	if actorMetric.stateChangeCount, err = meter.Int64Counter(
		"actor_state_change_count",
		metric.WithDescription("Total number of state replacements published to subscribers"),
	); err != nil {
		return nil, fmt.Errorf("failed to create stateChangeCount instrument, %w", err)
	}
	return actorMetric, nil
}

// ReceivedCount returns the received messages counter
func (x *ActorMetric) ReceivedCount() metric.Int64Counter {
	return x.receivedCount
}

// ProcessedCount returns the processed messages counter
func (x *ActorMetric) ProcessedCount() metric.Int64Counter {
	return x.processedCount
}

// FailuresCount returns the handler failures counter
func (x *ActorMetric) FailuresCount() metric.Int64Counter {
	return x.failuresCount
}

// StateChangeCount returns the state replacements counter
func (x *ActorMetric) StateChangeCount() metric.Int64Counter {
	return x.stateChangeCount
}
