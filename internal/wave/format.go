package wave

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Minimum "fmt " chunk payload for plain PCM.
const fmtChunkMinSize = 16

// FormatInfo holds the fixed PCM portion of a "fmt " chunk.
type FormatInfo struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// ReadFormat decodes the first "fmt " chunk of the stream. A file without
// one yields (nil, nil); callers fall back to defaults instead of failing.
func ReadFormat(r io.ReadSeeker) (*FormatInfo, error) {
	offset, size, found, err := FindChunk(r, "fmt ")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if size < fmtChunkMinSize {
		return nil, fmt.Errorf("fmt chunk: %w", ErrChunkTooSmall)
	}

	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	data := make([]byte, fmtChunkMinSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("fmt chunk: %w", err)
	}

	return &FormatInfo{
		AudioFormat:   binary.LittleEndian.Uint16(data[0:2]),
		NumChannels:   binary.LittleEndian.Uint16(data[2:4]),
		SampleRate:    binary.LittleEndian.Uint32(data[4:8]),
		ByteRate:      binary.LittleEndian.Uint32(data[8:12]),
		BlockAlign:    binary.LittleEndian.Uint16(data[12:14]),
		BitsPerSample: binary.LittleEndian.Uint16(data[14:16]),
	}, nil
}
