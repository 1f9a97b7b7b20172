// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package exectimer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xmidt-org/exectimer/clock"
)

// Action is a synchronous unit of work.  Any error it returns is passed back to the caller of
// Aggregate unchanged.
type Action func() error

// AsyncAction initiates an asynchronous unit of work and returns a channel that yields the outcome.
// The work is complete when the channel produces a value or is closed, where a closed channel means
// success.  A nil channel means the work already completed successfully.
type AsyncAction func(context.Context) <-chan error

// Option is a configuration option for an ExecutionTimer
type Option func(*ExecutionTimer)

// WithClock sets the clock used to measure actions.  A nil clock leaves the system clock in place.
func WithClock(c clock.Interface) Option {
	return func(t *ExecutionTimer) {
		if c != nil {
			t.clock = c
		}
	}
}

// ExecutionTimer measures and aggregates the execution time of one or more actions.
// The zero value is ready to use and measures with the system clock.
type ExecutionTimer struct {
	clock clock.Interface
	total time.Duration
}

// New creates an ExecutionTimer with no aggregated time.
func New(options ...Option) *ExecutionTimer {
	t := new(ExecutionTimer)
	for _, o := range options {
		o(t)
	}

	return t
}

// Total returns the time aggregated across all actions, in seconds.  The result is exact to the
// nanosecond.
func (t *ExecutionTimer) Total() decimal.Decimal {
	return decimal.New(int64(t.total), -9)
}

// Elapsed returns the time aggregated across all actions.
func (t *ExecutionTimer) Elapsed() time.Duration {
	return t.total
}

// Aggregate executes an action and aggregates its run time into the total.  The run time is
// aggregated whether the action returns normally, returns an error, or panics.
func (t *ExecutionTimer) Aggregate(action Action) error {
	if action == nil {
		return &ArgumentNilError{Argument: "action"}
	}

	sw := clock.StartStopwatch(t.clock)
	defer t.add(sw)

	return action()
}

// AggregateAsync initiates an asynchronous action, waits for it to complete, and aggregates the
// elapsed time into the total.  Time spent waiting counts toward the total.
//
// The context is handed to the action as is.  This method never abandons the wait on its own,
// so an action that supports cancellation must still report its outcome on the returned channel.
func (t *ExecutionTimer) AggregateAsync(ctx context.Context, asyncAction AsyncAction) error {
	if asyncAction == nil {
		return &ArgumentNilError{Argument: "asyncAction"}
	}

	sw := clock.StartStopwatch(t.clock)
	defer t.add(sw)

	done := asyncAction(ctx)
	if done == nil {
		return nil
	}

	return <-done
}

// AggregateDuration adds a time span to the total.  The duration is not validated, so a negative
// duration reduces the total.
func (t *ExecutionTimer) AggregateDuration(d time.Duration) {
	t.total += d
}

func (t *ExecutionTimer) add(sw clock.Stopwatch) {
	t.total += sw.Elapsed()
}
