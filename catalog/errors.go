// SPDX-License-Identifier: EPL-2.0

package catalog

import (
	"errors"
	"fmt"

	"github.com/ik5/spirit/audio"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")

	ErrUnknownCategory = fmt.Errorf("%w: unknown category", audio.ErrInvalidArgument)
)
