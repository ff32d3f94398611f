// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/spirit/formats/wav"
)

// ReadClip decodes the WAV file at path or fails the test.
func ReadClip(tb testing.TB, path string) *wav.Clip {
	tb.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("reading %s: %v", path, err)
	}

	clip, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		tb.Fatalf("decoding %s: %v", path, err)
	}

	return clip
}

// Files lists every regular file below root as slash separated paths
// relative to root, sorted.
func Files(tb testing.TB, root string) []string {
	tb.Helper()

	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		tb.Fatalf("walking %s: %v", root, err)
	}

	slices.Sort(out)
	return out
}
