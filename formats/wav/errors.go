// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/spirit/audio"
)

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrNotPCM               = errors.New("only integer PCM is supported")
	ErrDataSizeMismatch     = errors.New("encoded data size does not match the block")

	ErrUnsupportedBitDepth = fmt.Errorf("%w: unsupported bit depth", audio.ErrInvalidArgument)
	ErrInvalidChannels     = fmt.Errorf("%w: only mono and stereo are supported", audio.ErrInvalidArgument)
)
