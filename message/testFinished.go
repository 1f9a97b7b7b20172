// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"github.com/shopspring/decimal"
	"github.com/xmidt-org/exectimer/exectimer"
)

// TestCase is the minimal view of a test case that a finished notification refers to.
type TestCase interface {
	DisplayName() string
	UniqueID() string
}

// TestFinished is the notification sent once a test has finished executing.
type TestFinished struct {
	// DisplayName is the name of the test as it should be shown to users.
	DisplayName string

	// ExecutionTime is the time spent executing the test, in seconds.
	ExecutionTime decimal.Decimal

	// TestCase is the test case the test belongs to.  This field may be nil.
	TestCase TestCase
}

// NewTestFinished creates a TestFinished.  If displayName is empty, the test case's
// display name is used instead.
func NewTestFinished(testCase TestCase, displayName string, executionTime decimal.Decimal) TestFinished {
	if len(displayName) == 0 && testCase != nil {
		displayName = testCase.DisplayName()
	}

	return TestFinished{
		DisplayName:   displayName,
		ExecutionTime: executionTime,
		TestCase:      testCase,
	}
}

// FromTimer creates a TestFinished whose execution time is the timer's total.  A nil timer
// reports no execution time.
func FromTimer(testCase TestCase, displayName string, timer *exectimer.ExecutionTimer) TestFinished {
	executionTime := decimal.Zero
	if timer != nil {
		executionTime = timer.Total()
	}

	return NewTestFinished(testCase, displayName, executionTime)
}
