// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timermetrics

import (
	"errors"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Names for our metrics
const (
	ExecutionTimeHistogram = "test_execution_seconds"
	FinishedCounter        = "tests_finished"
)

// labels
const (
	OutcomeLabel = "outcome"
)

// outcomes
const (
	PassedOutcome = "passed"
	FailedOutcome = "failed"
)

var errNilRegisterer = errors.New("a prometheus Registerer is required")

// Measures describes the defined metrics that will be used by clients
type Measures struct {
	ExecutionTime metrics.Histogram
	Finished      metrics.Counter

	executionTimeVec *prometheus.HistogramVec
	finishedVec      *prometheus.CounterVec
}

func histogramOpts(o Options) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace: o.namespace(),
		Subsystem: o.subsystem(),
		Name:      ExecutionTimeHistogram,
		Help:      "The aggregated execution time, in seconds, of finished tests",
		Buckets:   o.buckets(),
	}
}

func counterOpts(o Options) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: o.namespace(),
		Subsystem: o.subsystem(),
		Name:      FinishedCounter,
		Help:      "Counter for finished tests by outcome",
	}
}

func newMeasures(executionTimeVec *prometheus.HistogramVec, finishedVec *prometheus.CounterVec) *Measures {
	return &Measures{
		ExecutionTime:    gokitprometheus.NewHistogram(executionTimeVec),
		Finished:         gokitprometheus.NewCounter(finishedVec),
		executionTimeVec: executionTimeVec,
		finishedVec:      finishedVec,
	}
}

// register registers c, returning the collector to use.  An already registered collector of the
// same type is reused, in which case created is false.
func register[C prometheus.Collector](r prometheus.Registerer, c C) (actual C, created bool, err error) {
	if err = r.Register(c); err == nil {
		return c, true, nil
	}

	if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, false, nil
		}
	}

	return actual, false, err
}

// NewMeasures registers this package's metrics with the given Registerer.  Metrics that are
// already registered are reused.  Nothing registered by this call remains registered when
// an error is returned.
//
// Applications using uber/fx should use Provide instead.
func NewMeasures(r prometheus.Registerer, o Options) (*Measures, error) {
	if r == nil {
		return nil, errNilRegisterer
	}

	executionTimeVec, created, err := register(r, prometheus.NewHistogramVec(histogramOpts(o), []string{OutcomeLabel}))
	if err != nil {
		return nil, err
	}

	finishedVec, _, err := register(r, prometheus.NewCounterVec(counterOpts(o), []string{OutcomeLabel}))
	if err != nil {
		if created {
			r.Unregister(executionTimeVec)
		}

		return nil, err
	}

	return newMeasures(executionTimeVec, finishedVec), nil
}
