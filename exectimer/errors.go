// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package exectimer

import (
	"errors"
	"fmt"
)

// ErrArgumentNil is the sentinel matched by every ArgumentNilError via errors.Is.
var ErrArgumentNil = errors.New("argument cannot be nil")

// ArgumentNilError is returned when a required function argument is nil.  It is a programming
// error, and no time is aggregated when it occurs.
type ArgumentNilError struct {
	Argument string
}

func (e *ArgumentNilError) Error() string {
	return fmt.Sprintf("%s: %s", ErrArgumentNil, e.Argument)
}

func (e *ArgumentNilError) Is(target error) bool {
	return target == ErrArgumentNil
}
