// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package exectimer measures and aggregates the wall-clock execution time of one or more actions.

A test driver typically creates one ExecutionTimer per test, wraps each piece of work in Aggregate or
AggregateAsync (or adds a precomputed duration with AggregateDuration), and finally reads Total to report
the execution time in fractional seconds.

An ExecutionTimer is not safe for concurrent use.  Use one timer per concurrent unit of work, or serialize
access externally.
*/
package exectimer
