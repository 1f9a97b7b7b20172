// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timermetrics

import "github.com/prometheus/client_golang/prometheus"

const (
	DefaultNamespace = "xmidt"
	DefaultSubsystem = "exectimer"
)

// Options is the configurable options for the execution time metrics
type Options struct {
	// Namespace is the namespace of all metrics in this package.  If not supplied, DefaultNamespace is used.
	Namespace string `mapstructure:"namespace"`

	// Subsystem is the subsystem of all metrics in this package.  If not supplied, DefaultSubsystem is used.
	Subsystem string `mapstructure:"subsystem"`

	// Buckets are the upper inclusive bounds, in seconds, of the execution time histogram.
	// If not supplied, prometheus.DefBuckets is used.
	Buckets []float64 `mapstructure:"buckets"`
}

func (o Options) namespace() string {
	if len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o Options) subsystem() string {
	if len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o Options) buckets() []float64 {
	if len(o.Buckets) > 0 {
		return o.Buckets
	}

	return prometheus.DefBuckets
}
