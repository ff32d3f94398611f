// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/spirit/audio"
)

// WriteFile encodes b into path. The file is written under a temporary name
// in the same directory and renamed into place once complete, so path never
// holds a partial file. An existing file at path is replaced.
func WriteFile(path string, sampleRate, bitDepth int, b audio.Block) (err error) {
	spec := Spec{Channels: b.Channels(), SampleRate: sampleRate, BitDepth: bitDepth}
	if err := spec.Validate(); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.part")
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = Encode(f, sampleRate, bitDepth, b); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	if err = os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming %s: %w", path, err)
	}

	return nil
}
