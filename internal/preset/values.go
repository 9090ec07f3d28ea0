package preset

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sampletools/wav2preset/internal/wave"
)

// Fallbacks applied when the source chunk is absent.
const (
	DefaultSampleRate = 44100
	DefaultRootKey    = 60 // MIDI middle C
)

// PlaceholderValues maps every template token to its substitution value for
// one WAVE file. It never fails: all defaulting happens here, in one place,
// after the decode attempts. When multiple loops are present only the first
// is surfaced.
func PlaceholderValues(path string, md wave.Metadata) map[string]string {
	filename := filepath.Base(path)
	basename := strings.TrimSuffix(filename, filepath.Ext(filename))

	sampleRate := uint32(DefaultSampleRate)
	if md.Format != nil {
		sampleRate = md.Format.SampleRate
	}

	var length int64
	if md.FramesKnown {
		length = md.Frames
	}
	sampleEnd := length - 1
	if sampleEnd < 0 {
		sampleEnd = 0
	}

	rootKey := uint32(DefaultRootKey)
	var loopStart, loopEnd uint32
	hasLoop := false
	if md.Sampler != nil {
		rootKey = md.Sampler.MIDIUnityNote
		if len(md.Sampler.Loops) > 0 {
			loop := md.Sampler.Loops[0]
			loopStart = loop.Start
			loopEnd = loop.End
			hasLoop = true
		}
	}

	return map[string]string{
		"{{WAV_FILENAME}}":          filename,
		"{{WAV_BASENAME}}":          basename,
		"{{ROOT_KEY}}":              strconv.FormatUint(uint64(rootKey), 10),
		"{{LOOP_START}}":            strconv.FormatUint(uint64(loopStart), 10),
		"{{LOOP_END}}":              strconv.FormatUint(uint64(loopEnd), 10),
		"{{HAS_LOOP}}":              strconv.FormatBool(hasLoop),
		"{{SAMPLE_RATE}}":           strconv.FormatUint(uint64(sampleRate), 10),
		"{{SAMPLE_LENGTH_SAMPLES}}": strconv.FormatInt(length, 10),
		"{{SAMPLE_START}}":          "0",
		"{{SAMPLE_END}}":            strconv.FormatInt(sampleEnd, 10),
	}
}
