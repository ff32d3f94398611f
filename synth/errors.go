// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"

	"github.com/ik5/spirit/audio"
)

var (
	ErrNoFrequencies    = fmt.Errorf("%w: at least one frequency is required", audio.ErrInvalidArgument)
	ErrInvalidSweep     = fmt.Errorf("%w: sweep needs positive, distinct start and end frequencies", audio.ErrInvalidArgument)
	ErrInvalidFrequency = fmt.Errorf("%w: frequency must be a positive number", audio.ErrInvalidArgument)
)
