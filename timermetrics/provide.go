// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timermetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	themisXmetrics "github.com/xmidt-org/themis/xmetrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// MeasuresIn is an uber/fx parameter with the raw metric vectors provided by ProvideMetrics.
type MeasuresIn struct {
	fx.In
	ExecutionTime *prometheus.HistogramVec `name:"test_execution_seconds"`
	Finished      *prometheus.CounterVec   `name:"tests_finished"`
}

// ListenerIn is the set of dependencies for a Listener in an uber/fx application.
type ListenerIn struct {
	fx.In
	Measures *Measures
	Logger   *zap.Logger `optional:"true"`
}

// ProvideMetrics provides the metric vectors of this package as uber/fx options.  The vectors are
// created by the themis xmetrics Factory in the enclosing application.
func ProvideMetrics(o Options) fx.Option {
	return fx.Provide(
		themisXmetrics.ProvideHistogramVec(histogramOpts(o), OutcomeLabel),
		themisXmetrics.ProvideCounterVec(counterOpts(o), OutcomeLabel),
	)
}

// NewMeasuresIn builds the measures from the vectors injected by uber/fx.
func NewMeasuresIn(in MeasuresIn) *Measures {
	return newMeasures(in.ExecutionTime, in.Finished)
}

// Provide provides the metric vectors, *Measures, and *Listener as uber/fx components.
func Provide(o Options) fx.Option {
	return fx.Options(
		ProvideMetrics(o),
		fx.Provide(
			NewMeasuresIn,
			func(in ListenerIn) *Listener {
				return NewListener(in.Measures, in.Logger)
			},
		),
	)
}
