// Package wav2preset is the public API of the wav2preset tool: reading
// metadata from WAVE files and turning it into preset text via a placeholder
// template. It proxies the internal packages so that external callers get a
// stable import path.
package wav2preset

import (
	"io"

	"github.com/sampletools/wav2preset/internal/preset"
	"github.com/sampletools/wav2preset/internal/wave"
)

// Types
type FormatInfo = wave.FormatInfo
type SamplerInfo = wave.SamplerInfo
type SampleLoop = wave.SampleLoop
type Metadata = wave.Metadata
type Template = preset.Template
type Options = preset.Options
type Field = preset.Field

// Errors
var (
	ErrNotRIFF       = wave.ErrNotRIFF
	ErrChunkTooSmall = wave.ErrChunkTooSmall
)

// Defaults
const (
	DefaultSampleRate = preset.DefaultSampleRate
	DefaultRootKey    = preset.DefaultRootKey
)

// Functions
func ReadMetadata(r io.ReadSeeker) (Metadata, error) {
	return wave.ReadMetadata(r)
}

func ExtractFile(path string) (Metadata, error) {
	return preset.ExtractFile(path)
}

func PlaceholderValues(path string, md Metadata) map[string]string {
	return preset.PlaceholderValues(path, md)
}

func NewTemplate(text string) Template {
	return preset.NewTemplate(text)
}

func LoadTemplate(path string) (Template, error) {
	return preset.LoadTemplate(path)
}

func ProcessDirectory(wavDir, templatePath, outDir string, opts Options, stdout, stderr io.Writer) (int, error) {
	return preset.ProcessDirectory(wavDir, templatePath, outDir, opts, stdout, stderr)
}

func ListDirectory(wavDir string, stdout, stderr io.Writer) (int, error) {
	return preset.ListDirectory(wavDir, stdout, stderr)
}
