// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package timermetrics records the execution times of finished tests as Prometheus metrics and logs them.

The more general go-kit metric interfaces are exposed where possible.  Measures can be created directly with
NewMeasures, or supplied to an uber/fx application with Provide.
*/
package timermetrics
