// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package exectimer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentNilError(t *testing.T) {
	var (
		assert     = assert.New(t)
		err    error = &ArgumentNilError{Argument: "action"}
	)

	assert.Equal("argument cannot be nil: action", err.Error())
	assert.True(errors.Is(err, ErrArgumentNil))
	assert.True(errors.Is(fmt.Errorf("wrapped: %w", err), ErrArgumentNil))
	assert.False(errors.Is(err, errors.New("argument cannot be nil")))

	var target *ArgumentNilError
	assert.True(errors.As(err, &target))
	assert.Equal("action", target.Argument)
}
