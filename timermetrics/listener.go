// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timermetrics

import (
	"context"

	"github.com/xmidt-org/exectimer/message"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Listener observes finished tests.
type Listener struct {
	measures *Measures
	logger   *zap.Logger
}

// NewListener creates a Listener.  Either argument may be nil.  Without measures, nothing is
// recorded.  Without a logger, the logger is taken from the context passed to OnTestFinished.
func NewListener(m *Measures, logger *zap.Logger) *Listener {
	return &Listener{
		measures: m,
		logger:   logger,
	}
}

// OnTestFinished records the execution time of a finished test.  A non-nil err marks the
// test as failed.
func (l *Listener) OnTestFinished(ctx context.Context, msg message.TestFinished, err error) {
	outcome := PassedOutcome
	if err != nil {
		outcome = FailedOutcome
	}

	if l.measures != nil {
		l.measures.ExecutionTime.With(OutcomeLabel, outcome).Observe(msg.ExecutionTime.InexactFloat64())
		l.measures.Finished.With(OutcomeLabel, outcome).Add(1.0)
	}

	logger := l.logger
	if logger == nil {
		logger = sallust.Get(ctx)
	}

	fields := []zap.Field{
		zap.String("test", msg.DisplayName),
		zap.String("executionTime", msg.ExecutionTime.String()),
		zap.String(OutcomeLabel, outcome),
	}

	if msg.TestCase != nil {
		fields = append(fields, zap.String("testCase", msg.TestCase.UniqueID()))
	}

	if err != nil {
		logger.Warn("test failed", append(fields, zap.Error(err))...)
	} else {
		logger.Debug("test finished", fields...)
	}
}
