// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timermetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// histogramSample returns the sample count and sum of a histogram series gathered from a registry.
func histogramSample(t *testing.T, g prometheus.Gatherer, name, outcome string) (uint64, float64) {
	families, err := g.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}

		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == OutcomeLabel && label.GetValue() == outcome {
					return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
				}
			}
		}
	}

	return 0, 0
}

func testNewMeasuresNilRegisterer(t *testing.T) {
	m, err := NewMeasures(nil, Options{})
	assert.Nil(t, m)
	assert.Error(t, err)
}

func testNewMeasuresDefault(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
	)

	m, err := NewMeasures(registry, Options{})
	require.NoError(err)
	require.NotNil(m)

	m.ExecutionTime.With(OutcomeLabel, PassedOutcome).Observe(0.25)
	m.Finished.With(OutcomeLabel, PassedOutcome).Add(1.0)

	count, sum := histogramSample(t, registry, "xmidt_exectimer_test_execution_seconds", PassedOutcome)
	assert.Equal(uint64(1), count)
	assert.Equal(0.25, sum)
	assert.Equal(1.0, testutil.ToFloat64(m.finishedVec.WithLabelValues(PassedOutcome)))

	n, err := testutil.GatherAndCount(registry, "xmidt_exectimer_tests_finished")
	require.NoError(err)
	assert.Equal(1, n)
}

func testNewMeasuresCustom(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
	)

	m, err := NewMeasures(registry, Options{Namespace: "engine", Subsystem: "runner", Buckets: []float64{1, 2}})
	require.NoError(err)

	m.ExecutionTime.With(OutcomeLabel, FailedOutcome).Observe(1.5)
	count, sum := histogramSample(t, registry, "engine_runner_test_execution_seconds", FailedOutcome)
	assert.Equal(uint64(1), count)
	assert.Equal(1.5, sum)
}

func testNewMeasuresAlreadyRegistered(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
	)

	first, err := NewMeasures(registry, Options{})
	require.NoError(err)

	second, err := NewMeasures(registry, Options{})
	require.NoError(err)

	assert.Same(first.executionTimeVec, second.executionTimeVec)
	assert.Same(first.finishedVec, second.finishedVec)
}

func testNewMeasuresConflict(t *testing.T) {
	var (
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
	)

	// same fully qualified name, different label names
	require.NoError(registry.Register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: DefaultNamespace,
		Subsystem: DefaultSubsystem,
		Name:      FinishedCounter,
		Help:      "conflicting counter",
	}, []string{"reason"})))

	m, err := NewMeasures(registry, Options{})
	require.Error(err)
	require.Nil(m)

	// the histogram registered before the failure must have been rolled back
	assert.NoError(t, registry.Register(prometheus.NewHistogramVec(histogramOpts(Options{}), []string{OutcomeLabel})))
}

func testNewMeasuresConflictKeepsExisting(t *testing.T) {
	var (
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
		existing = prometheus.NewHistogramVec(histogramOpts(Options{}), []string{OutcomeLabel})
	)

	require.NoError(registry.Register(existing))
	require.NoError(registry.Register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: DefaultNamespace,
		Subsystem: DefaultSubsystem,
		Name:      FinishedCounter,
		Help:      "conflicting counter",
	}, []string{"reason"})))

	_, err := NewMeasures(registry, Options{})
	require.Error(err)

	// a histogram this call did not register is left alone
	assert.True(t, registry.Unregister(existing))
}

func TestNewMeasures(t *testing.T) {
	t.Run("NilRegisterer", testNewMeasuresNilRegisterer)
	t.Run("Default", testNewMeasuresDefault)
	t.Run("Custom", testNewMeasuresCustom)
	t.Run("AlreadyRegistered", testNewMeasuresAlreadyRegistered)
	t.Run("Conflict", testNewMeasuresConflict)
	t.Run("ConflictKeepsExisting", testNewMeasuresConflictKeepsExisting)
}
