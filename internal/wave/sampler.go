package wave

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	smplHeaderSize = 36 // nine u32 header fields
	smplLoopSize   = 24 // six u32 fields per loop record
)

// SampleLoop is one loop record of a "smpl" chunk.
type SampleLoop struct {
	CuePointID uint32
	Type       uint32
	Start      uint32
	End        uint32
	Fraction   uint32
	PlayCount  uint32
}

// SamplerInfo holds the sampler metadata of a "smpl" chunk. Only the MIDI
// unity note and the loop records matter downstream; the remaining header
// fields are decoded to keep the stream position correct and then dropped.
type SamplerInfo struct {
	MIDIUnityNote uint32
	Loops         []SampleLoop
}

// ReadSamplerInfo decodes the first "smpl" chunk of the stream. Files
// without sampler metadata yield (nil, nil).
//
// The loop count from the chunk header is trusted: exactly that many 24-byte
// records are read, without cross-checking against the declared chunk size.
func ReadSamplerInfo(r io.ReadSeeker) (*SamplerInfo, error) {
	offset, size, found, err := FindChunk(r, "smpl")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if size < smplHeaderSize {
		return nil, fmt.Errorf("smpl chunk: %w", ErrChunkTooSmall)
	}

	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	header := make([]byte, smplHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("smpl chunk: %w", err)
	}

	// Header layout: manufacturer, product, sample period, MIDI unity note,
	// pitch fraction, SMPTE format, SMPTE offset, loop count, sampler data.
	info := &SamplerInfo{
		MIDIUnityNote: binary.LittleEndian.Uint32(header[12:16]),
	}
	numLoops := binary.LittleEndian.Uint32(header[28:32])

	record := make([]byte, smplLoopSize)
	for i := uint32(0); i < numLoops; i++ {
		if _, err := io.ReadFull(r, record); err != nil {
			return nil, fmt.Errorf("smpl loop %d: %w", i, err)
		}
		info.Loops = append(info.Loops, SampleLoop{
			CuePointID: binary.LittleEndian.Uint32(record[0:4]),
			Type:       binary.LittleEndian.Uint32(record[4:8]),
			Start:      binary.LittleEndian.Uint32(record[8:12]),
			End:        binary.LittleEndian.Uint32(record[12:16]),
			Fraction:   binary.LittleEndian.Uint32(record[16:20]),
			PlayCount:  binary.LittleEndian.Uint32(record[20:24]),
		})
	}

	return info, nil
}
