package preset

import (
	"testing"

	"github.com/sampletools/wav2preset/internal/wave"
)

func TestPlaceholderValuesDefaults(t *testing.T) {
	// A file where nothing could be decoded falls back across the board.
	values := PlaceholderValues("pad.wav", wave.Metadata{})

	want := map[string]string{
		"{{WAV_FILENAME}}":          "pad.wav",
		"{{WAV_BASENAME}}":          "pad",
		"{{ROOT_KEY}}":              "60",
		"{{LOOP_START}}":            "0",
		"{{LOOP_END}}":              "0",
		"{{HAS_LOOP}}":              "false",
		"{{SAMPLE_RATE}}":           "44100",
		"{{SAMPLE_LENGTH_SAMPLES}}": "0",
		"{{SAMPLE_START}}":          "0",
		"{{SAMPLE_END}}":            "0",
	}
	for token, expected := range want {
		if values[token] != expected {
			t.Errorf("%s = %q, want %q", token, values[token], expected)
		}
	}
	if len(values) != len(want) {
		t.Errorf("len(values) = %d, want %d", len(values), len(want))
	}
}

func TestPlaceholderValuesMinimalFile(t *testing.T) {
	// fmt and data present, no smpl: real rate and length, default root key.
	md := wave.Metadata{
		Format:      &wave.FormatInfo{NumChannels: 2, SampleRate: 48000, BitsPerSample: 16},
		Frames:      1200,
		FramesKnown: true,
	}
	values := PlaceholderValues("/samples/kick.wav", md)

	if values["{{WAV_FILENAME}}"] != "kick.wav" {
		t.Errorf("{{WAV_FILENAME}} = %q", values["{{WAV_FILENAME}}"])
	}
	if values["{{SAMPLE_RATE}}"] != "48000" {
		t.Errorf("{{SAMPLE_RATE}} = %q, want 48000", values["{{SAMPLE_RATE}}"])
	}
	if values["{{ROOT_KEY}}"] != "60" {
		t.Errorf("{{ROOT_KEY}} = %q, want default 60", values["{{ROOT_KEY}}"])
	}
	if values["{{HAS_LOOP}}"] != "false" {
		t.Errorf("{{HAS_LOOP}} = %q, want false", values["{{HAS_LOOP}}"])
	}
	if values["{{SAMPLE_LENGTH_SAMPLES}}"] != "1200" {
		t.Errorf("{{SAMPLE_LENGTH_SAMPLES}} = %q, want 1200", values["{{SAMPLE_LENGTH_SAMPLES}}"])
	}
	if values["{{SAMPLE_END}}"] != "1199" {
		t.Errorf("{{SAMPLE_END}} = %q, want 1199", values["{{SAMPLE_END}}"])
	}
}

func TestPlaceholderValuesFirstLoopOnly(t *testing.T) {
	md := wave.Metadata{
		Sampler: &wave.SamplerInfo{
			MIDIUnityNote: 36,
			Loops: []wave.SampleLoop{
				{Start: 500, End: 1500},
				{Start: 9000, End: 9999},
			},
		},
	}
	values := PlaceholderValues("tom.wav", md)

	if values["{{ROOT_KEY}}"] != "36" {
		t.Errorf("{{ROOT_KEY}} = %q, want 36", values["{{ROOT_KEY}}"])
	}
	if values["{{HAS_LOOP}}"] != "true" {
		t.Errorf("{{HAS_LOOP}} = %q, want true", values["{{HAS_LOOP}}"])
	}
	if values["{{LOOP_START}}"] != "500" || values["{{LOOP_END}}"] != "1500" {
		t.Errorf("loop bounds = %q..%q, want first loop 500..1500",
			values["{{LOOP_START}}"], values["{{LOOP_END}}"])
	}
}

func TestPlaceholderValuesNoLoops(t *testing.T) {
	// smpl present but loop count zero: root key real, no loop.
	md := wave.Metadata{
		Sampler: &wave.SamplerInfo{MIDIUnityNote: 72},
	}
	values := PlaceholderValues("bell.wav", md)

	if values["{{ROOT_KEY}}"] != "72" {
		t.Errorf("{{ROOT_KEY}} = %q, want 72", values["{{ROOT_KEY}}"])
	}
	if values["{{HAS_LOOP}}"] != "false" {
		t.Errorf("{{HAS_LOOP}} = %q, want false", values["{{HAS_LOOP}}"])
	}
	if values["{{LOOP_START}}"] != "0" || values["{{LOOP_END}}"] != "0" {
		t.Errorf("loop bounds = %q..%q, want 0..0",
			values["{{LOOP_START}}"], values["{{LOOP_END}}"])
	}
}

func TestPlaceholderValuesSampleEndFloorsAtZero(t *testing.T) {
	md := wave.Metadata{
		Format:      &wave.FormatInfo{NumChannels: 1, SampleRate: 44100, BitsPerSample: 16},
		Frames:      0,
		FramesKnown: true,
	}
	values := PlaceholderValues("empty.wav", md)

	if values["{{SAMPLE_END}}"] != "0" {
		t.Errorf("{{SAMPLE_END}} = %q, want 0 for an empty data chunk", values["{{SAMPLE_END}}"])
	}
}
