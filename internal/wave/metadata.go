package wave

import "io"

// Metadata is everything preset generation needs from one WAVE file. Format
// and Sampler are nil when the corresponding chunk is absent; FramesKnown is
// false when the frame count could not be derived.
type Metadata struct {
	Format      *FormatInfo
	Sampler     *SamplerInfo
	Frames      int64
	FramesKnown bool
}

// ReadMetadata runs the three chunk decoders over a single handle. Each
// decoder rescans the chunk list from the start, so decode order carries no
// hidden state.
func ReadMetadata(r io.ReadSeeker) (Metadata, error) {
	format, err := ReadFormat(r)
	if err != nil {
		return Metadata{}, err
	}

	sampler, err := ReadSamplerInfo(r)
	if err != nil {
		return Metadata{}, err
	}

	frames, known, err := SampleLength(r, format)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{
		Format:      format,
		Sampler:     sampler,
		Frames:      frames,
		FramesKnown: known,
	}, nil
}
