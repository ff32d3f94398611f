// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every argument validation error.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidSampleRate = fmt.Errorf("%w: unsupported sample rate", ErrInvalidArgument)
	ErrInvalidBitDepth   = fmt.Errorf("%w: bit depth must be 16, 24 or 32", ErrInvalidArgument)
	ErrInvalidDuration   = fmt.Errorf("%w: duration must be a positive number of seconds", ErrInvalidArgument)
)
