// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Stopwatch measures the time elapsed since it was started.  It is the analog of time.Since
// applied to a fixed starting point.
type Stopwatch interface {
	Elapsed() time.Duration
}

type stopwatch struct {
	c     Interface
	start time.Time
}

func (sw stopwatch) Elapsed() time.Duration {
	return sw.c.Now().Sub(sw.start)
}

// StartStopwatch starts a Stopwatch against the given clock.  A nil clock means System().
//
// Times produced by the system clock carry a monotonic reading, so the elapsed duration is
// unaffected by wall clock adjustments.
func StartStopwatch(c Interface) Stopwatch {
	if c == nil {
		c = System()
	}

	return stopwatch{
		c:     c,
		start: c.Now(),
	}
}
