// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timermetrics

import (
	"github.com/spf13/viper"
)

const (
	// TimerMetricsKey is the Viper subkey under which the metrics options are stored.
	// FromViper *does not* assume this key.
	TimerMetricsKey = "timermetrics"
)

// Sub returns the standard child Viper, using TimerMetricsKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(TimerMetricsKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (Options, error) {
	var o Options
	if v != nil {
		if err := v.Unmarshal(&o); err != nil {
			return Options{}, err
		}
	}

	return o, nil
}
