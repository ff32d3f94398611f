// SPDX-License-Identifier: EPL-2.0

package spirit_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/spirit"
	"github.com/ik5/spirit/audio"
	"github.com/ik5/spirit/catalog"
	"github.com/ik5/spirit/formats/wav"
	"github.com/ik5/spirit/internal/audiotest"
	"github.com/ik5/spirit/synth"
	"github.com/ik5/spirit/utils"
)

// testRate keeps the renders small.
const testRate = 8000

const testCatalog = `
[[category]]
id = "test_set"
command = "test-set"
dir_name = "tests"
display_name = "Test frequencies"
file_prefix = "t"
cli_description = "Render the test set"

[[category.frequency]]
hz = 7.83
name = "sch"
description = "sub-audible"

[[category.frequency]]
hz = 0.0
name = "none"
description = "never rendered"

[[category.frequency]]
hz = 440.0
name = "a"
description = "concert pitch"

[[category]]
id = "chakras"
command = "chakras"
file_prefix = "chakra"
cli_description = "Render the chakras"

[[category.frequency]]
hz = 396.0
name = "root"
description = "first"

[[category.frequency]]
hz = 963.0
name = "crown"
description = "last"
`

func newGenerator(t *testing.T, duration float64, cat *catalog.Catalog) (*spirit.Generator, string) {
	t.Helper()

	dir := t.TempDir()
	g, err := spirit.New(spirit.Options{
		Audio:     audio.Config{SampleRate: testRate, BitDepth: 16},
		OutputDir: dir,
		Duration:  duration,
		Catalog:   cat,
	}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return g, dir
}

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Load(strings.NewReader(testCatalog))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return c
}

// assertMatches checks that the file at path holds block encoded at 16 bits.
func assertMatches(t *testing.T, path string, block audio.Block) {
	t.Helper()

	clip := audiotest.ReadClip(t, path)
	if clip.Header.Channels != block.Channels() || clip.Frames() != block.Len() {
		t.Fatalf("%s: %d channels x %d frames, want %d x %d",
			filepath.Base(path), clip.Header.Channels, clip.Frames(), block.Channels(), block.Len())
	}

	for i := range block.Len() {
		for ch := range block.Channels() {
			want := int(utils.Float64ToInt16(block.At(i, ch)))
			if got := clip.Samples[i*block.Channels()+ch]; got != want {
				t.Fatalf("%s: sample %d/%d = %d, want %d", filepath.Base(path), i, ch, got, want)
			}
		}
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts spirit.Options
		want error
	}{
		{"bit depth", spirit.Options{Audio: audio.Config{SampleRate: 44100, BitDepth: 8}, Duration: 1}, audio.ErrInvalidBitDepth},
		{"sample rate", spirit.Options{Audio: audio.Config{SampleRate: 0, BitDepth: 16}, Duration: 1}, audio.ErrInvalidSampleRate},
		{"zero duration", spirit.Options{Audio: audio.DefaultConfig(), Duration: 0}, audio.ErrInvalidDuration},
		{"negative duration", spirit.Options{Audio: audio.DefaultConfig(), Duration: -3}, audio.ErrInvalidDuration},
		{"duration too long for a wav file", spirit.Options{Audio: audio.DefaultConfig(), Duration: 1e15}, audio.ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := spirit.New(tt.opts, nil)
			if !errors.Is(err, tt.want) || !errors.Is(err, audio.ErrInvalidArgument) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCategory_Routing(t *testing.T) {
	t.Parallel()

	const d = 0.5
	g, dir := newGenerator(t, d, loadTestCatalog(t))

	if err := g.Category("test-set"); err != nil {
		t.Fatalf("Category() error = %v", err)
	}

	want := []string{"tests/t_a_440.00hz.wav", "tests/t_sch_7.83hz.wav"}
	if got := audiotest.Files(t, dir); !slices.Equal(got, want) {
		t.Fatalf("files = %v, want %v", got, want)
	}

	cfg := audio.Config{SampleRate: testRate, BitDepth: 16}
	assertMatches(t, filepath.Join(dir, "tests", "t_sch_7.83hz.wav"), synth.Isochronic(cfg, spirit.CarrierHz, 7.83, d))
	assertMatches(t, filepath.Join(dir, "tests", "t_a_440.00hz.wav"), synth.Sine(cfg, 440, d))
}

func TestCategory_Unknown(t *testing.T) {
	t.Parallel()

	g, dir := newGenerator(t, 0.1, nil)

	err := g.Category("no-such-category")
	if !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Errorf("Category() error = %v, want ErrUnknownCategory", err)
	}

	if got := audiotest.Files(t, dir); len(got) != 0 {
		t.Errorf("files = %v, want none", got)
	}
}

func TestCategory_StopsOnFailure(t *testing.T) {
	t.Parallel()

	g, dir := newGenerator(t, 0.1, loadTestCatalog(t))

	// A file where the category directory should go.
	if err := os.WriteFile(filepath.Join(dir, "tests"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := g.Category("test-set")
	if err == nil {
		t.Fatal("Category() error = nil, want a filesystem error")
	}

	if errors.Is(err, audio.ErrInvalidArgument) {
		t.Errorf("Category() error = %v, want an io failure", err)
	}
}

func TestTone(t *testing.T) {
	t.Parallel()

	g, _ := newGenerator(t, 1, nil)
	cfg := audio.Config{SampleRate: testRate, BitDepth: 16}

	if got, want := g.Tone(19.99, 0.1), synth.Isochronic(cfg, 200, 19.99, 0.1); !slices.Equal(got, want) {
		t.Error("Tone(19.99) is not isochronic")
	}

	if got, want := g.Tone(20, 0.1), synth.Sine(cfg, 20, 0.1); !slices.Equal(got, want) {
		t.Error("Tone(20) is not a sine")
	}
}

func TestChakraMeditation(t *testing.T) {
	t.Parallel()

	const d = 1.0
	g, dir := newGenerator(t, d, nil)

	if err := g.ChakraMeditation(); err != nil {
		t.Fatalf("ChakraMeditation() error = %v", err)
	}

	want := []string{
		"chakras/chakra_crown_963.00hz.wav",
		"chakras/chakra_full_meditation.wav",
		"chakras/chakra_heart_639.00hz.wav",
		"chakras/chakra_root_396.00hz.wav",
		"chakras/chakra_sacral_417.00hz.wav",
		"chakras/chakra_solar_plexus_528.00hz.wav",
		"chakras/chakra_third_eye_852.00hz.wav",
		"chakras/chakra_throat_741.00hz.wav",
	}
	if got := audiotest.Files(t, dir); !slices.Equal(got, want) {
		t.Fatalf("files = %v, want %v", got, want)
	}

	perBlock := testRate * int(d)
	full := audiotest.ReadClip(t, filepath.Join(dir, "chakras", "chakra_full_meditation.wav"))
	if full.Frames() != 7*perBlock {
		t.Fatalf("Frames() = %d, want %d", full.Frames(), 7*perBlock)
	}

	for j := range 7 {
		if v := full.Samples[j*perBlock]; v != 0 {
			t.Errorf("first sample of block %d = %d, want 0", j, v)
		}
		if v := full.Samples[(j+1)*perBlock-1]; v != 0 {
			t.Errorf("last sample of block %d = %d, want 0", j, v)
		}
	}

	cfg := audio.Config{SampleRate: testRate, BitDepth: 16}
	root := synth.Sine(cfg, 396, d)
	synth.ApplyFade(cfg, root, 2)
	assertMatches(t, filepath.Join(dir, "chakras", "chakra_root_396.00hz.wav"), root)
}

func TestTuningPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		duration float64
		want     int
	}{
		{0.5, 1}, {5, 1}, {10, 1}, {19.9, 1}, {20, 2}, {60, 6}, {305, 30},
	}

	for _, tt := range tests {
		if got := spirit.TuningPairs(tt.duration); got != tt.want {
			t.Errorf("TuningPairs(%v) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestTuning(t *testing.T) {
	t.Parallel()

	const d = 25.0
	g, dir := newGenerator(t, d, nil)

	if err := g.Tuning(); err != nil {
		t.Fatalf("Tuning() error = %v", err)
	}

	frames := map[string]int{
		"tuning/tuning_432_440_comparison.wav": 2 * 2 * 5 * testRate,
		"tuning/tuning_432hz_natural.wav":      int(d) * testRate,
		"tuning/tuning_440hz_standard.wav":     int(d) * testRate,
	}

	got := audiotest.Files(t, dir)
	if len(got) != len(frames) {
		t.Fatalf("files = %v", got)
	}

	for _, name := range got {
		want, ok := frames[name]
		if !ok {
			t.Errorf("unexpected file %s", name)
			continue
		}
		if clip := audiotest.ReadClip(t, filepath.Join(dir, name)); clip.Frames() != want {
			t.Errorf("%s: Frames() = %d, want %d", name, clip.Frames(), want)
		}
	}

	cfg := audio.Config{SampleRate: testRate, BitDepth: 16}
	seg := audio.Concat(synth.Sine(cfg, 432, 5), synth.Sine(cfg, 440, 5))
	assertMatches(t, filepath.Join(dir, "tuning", "tuning_432_440_comparison.wav"), audio.Concat(seg, seg))
}

func TestBinauralSet(t *testing.T) {
	t.Parallel()

	g, dir := newGenerator(t, 0.2, nil)

	if err := g.BinauralSet(200); err != nil {
		t.Fatalf("BinauralSet() error = %v", err)
	}

	want := []string{
		"binaural/binaural_alpha_11.00hz.wav",
		"binaural/binaural_beta_22.00hz.wav",
		"binaural/binaural_delta_2.25hz.wav",
		"binaural/binaural_gamma_65.00hz.wav",
		"binaural/binaural_theta_6.00hz.wav",
	}
	if got := audiotest.Files(t, dir); !slices.Equal(got, want) {
		t.Fatalf("files = %v, want %v", got, want)
	}

	cfg := audio.Config{SampleRate: testRate, BitDepth: 16}
	assertMatches(t, filepath.Join(dir, "binaural", "binaural_theta_6.00hz.wav"), synth.Binaural(cfg, 200, 6, 0.2))

	if err := g.BinauralSet(0); !errors.Is(err, synth.ErrInvalidFrequency) {
		t.Errorf("BinauralSet(0) error = %v, want ErrInvalidFrequency", err)
	}
}

func TestSchumann(t *testing.T) {
	t.Parallel()

	g, dir := newGenerator(t, 0.2, nil)

	if err := g.Schumann(); err != nil {
		t.Fatalf("Schumann() error = %v", err)
	}

	cfg := audio.Config{SampleRate: testRate, BitDepth: 16}
	assertMatches(t, filepath.Join(dir, "schumann", "schumann_7.83hz_isochronic.wav"), synth.Isochronic(cfg, 200, 7.83, 0.2))
	assertMatches(t, filepath.Join(dir, "schumann", "schumann_7.83hz_binaural.wav"), synth.Binaural(cfg, 200, 7.83, 0.2))
}

func TestOmAndNoise(t *testing.T) {
	t.Parallel()

	g, dir := newGenerator(t, 0.2, nil)

	if err := g.Om(); err != nil {
		t.Fatalf("Om() error = %v", err)
	}
	if err := g.Noise(); err != nil {
		t.Fatalf("Noise() error = %v", err)
	}

	want := []string{
		"noise/brown_noise.wav",
		"noise/pink_noise.wav",
		"noise/white_noise.wav",
		"om_136.10hz.wav",
	}
	if got := audiotest.Files(t, dir); !slices.Equal(got, want) {
		t.Fatalf("files = %v, want %v", got, want)
	}

	cfg := audio.Config{SampleRate: testRate, BitDepth: 16}
	assertMatches(t, filepath.Join(dir, "noise", "pink_noise.wav"), synth.PinkNoise(cfg, 0.2))
}

func TestAdhoc(t *testing.T) {
	t.Parallel()

	g, dir := newGenerator(t, 1, nil)

	steps := []struct {
		name string
		run  func() error
	}{
		{"sweep", func() error { return g.Sweep(20, 2000) }},
		{"drone", func() error { return g.Drone([]float64{100, 150.5}) }},
		{"layer", func() error { return g.Layer([]float64{111, 222, 333}) }},
		{"bowl", func() error { return g.Bowl(432) }},
		{"custom sine", func() error { return g.Custom(528, spirit.ModeSine) }},
		{"custom binaural", func() error { return g.Custom(10, spirit.ModeBinaural) }},
		{"custom isochronic", func() error { return g.Custom(10, spirit.ModeIsochronic) }},
	}

	for _, s := range steps {
		if err := s.run(); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
	}

	want := []string{
		"bowl_432.00hz.wav",
		"custom_10.00hz_binaural.wav",
		"custom_10.00hz_isochronic.wav",
		"custom_528.00hz_sine.wav",
		"drone_100.00_150.50hz.wav",
		"layered_111.00_222.00_333.00hz.wav",
		"sweep_20.00hz_to_2000.00hz.wav",
	}
	if got := audiotest.Files(t, dir); !slices.Equal(got, want) {
		t.Fatalf("files = %v, want %v", got, want)
	}

	cfg := audio.Config{SampleRate: testRate, BitDepth: 16}
	assertMatches(t, filepath.Join(dir, "custom_10.00hz_binaural.wav"), synth.Binaural(cfg, 200, 10, 1))
	assertMatches(t, filepath.Join(dir, "custom_10.00hz_isochronic.wav"), synth.Isochronic(cfg, 200, 10, 1))
}

func TestAdhoc_InvalidWritesNothing(t *testing.T) {
	t.Parallel()

	g, dir := newGenerator(t, 1, nil)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"sweep equal", func() error { return g.Sweep(100, 100) }, synth.ErrInvalidSweep},
		{"sweep zero", func() error { return g.Sweep(0, 100) }, synth.ErrInvalidSweep},
		{"drone empty", func() error { return g.Drone(nil) }, synth.ErrNoFrequencies},
		{"drone negative", func() error { return g.Drone([]float64{100, -1}) }, synth.ErrInvalidFrequency},
		{"layer empty", func() error { return g.Layer([]float64{}) }, synth.ErrNoFrequencies},
		{"bowl zero", func() error { return g.Bowl(0) }, synth.ErrInvalidFrequency},
		{"custom mode", func() error { return g.Custom(100, spirit.Mode("square")) }, spirit.ErrInvalidMode},
		{"custom zero", func() error { return g.Custom(0, spirit.ModeSine) }, synth.ErrInvalidFrequency},
	}

	for _, tt := range tests {
		err := tt.run()
		if !errors.Is(err, tt.want) || !errors.Is(err, audio.ErrInvalidArgument) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}

	if got := audiotest.Files(t, dir); len(got) != 0 {
		t.Errorf("files = %v, want none", got)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"sine", "Binaural", "ISOCHRONIC"} {
		if _, err := spirit.ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q) error = %v", s, err)
		}
	}

	if _, err := spirit.ParseMode("square"); !errors.Is(err, spirit.ErrInvalidMode) {
		t.Errorf("ParseMode(square) error = %v, want ErrInvalidMode", err)
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	g, dir := newGenerator(t, 0.1, loadTestCatalog(t))

	if err := g.All(); err != nil {
		t.Fatalf("All() error = %v", err)
	}

	want := []string{
		"binaural/binaural_alpha_11.00hz.wav",
		"binaural/binaural_beta_22.00hz.wav",
		"binaural/binaural_delta_2.25hz.wav",
		"binaural/binaural_gamma_65.00hz.wav",
		"binaural/binaural_theta_6.00hz.wav",
		"chakras/chakra_crown_963.00hz.wav",
		"chakras/chakra_full_meditation.wav",
		"chakras/chakra_root_396.00hz.wav",
		"noise/brown_noise.wav",
		"noise/pink_noise.wav",
		"noise/white_noise.wav",
		"om_136.10hz.wav",
		"schumann/schumann_7.83hz_binaural.wav",
		"schumann/schumann_7.83hz_isochronic.wav",
		"tests/t_a_440.00hz.wav",
		"tests/t_sch_7.83hz.wav",
		"tuning/tuning_432_440_comparison.wav",
		"tuning/tuning_432hz_natural.wav",
		"tuning/tuning_440hz_standard.wav",
	}
	if got := audiotest.Files(t, dir); !slices.Equal(got, want) {
		t.Fatalf("files = %v, want %v", got, want)
	}

	clip := audiotest.ReadClip(t, filepath.Join(dir, "chakras", "chakra_full_meditation.wav"))
	if clip.Frames() != 2*800 {
		t.Errorf("meditation frames = %d, want %d", clip.Frames(), 2*800)
	}
}

func TestGenerator_BitDepths(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{24, 32} {
		dir := t.TempDir()
		g, err := spirit.New(spirit.Options{
			Audio:     audio.Config{SampleRate: testRate, BitDepth: depth},
			OutputDir: dir,
			Duration:  0.1,
		}, nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		if err := g.Om(); err != nil {
			t.Fatalf("Om() error = %v", err)
		}

		f, err := os.Open(filepath.Join(dir, "om_136.10hz.wav"))
		if err != nil {
			t.Fatal(err)
		}
		h, err := wav.ReadHeader(f)
		f.Close()
		if err != nil {
			t.Fatalf("ReadHeader() error = %v", err)
		}

		if h.BitDepth != depth || int(h.DataSize) != 800*depth/8 {
			t.Errorf("depth %d: header = %+v", depth, h)
		}
	}
}
