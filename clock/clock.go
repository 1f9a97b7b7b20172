// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Interface represents a clock with the subset of the stdlib time package needed to measure elapsed time.
// Only Now is used to measure.  Sleep is kept so that github.com/benbjohnson/clock's Clock and Mock,
// along with clocktest.Mock, remain drop-in implementations.
type Interface interface {
	Now() time.Time
	Sleep(time.Duration)
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}
