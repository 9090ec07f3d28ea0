// Package wave reads format and sampler metadata from RIFF/WAVE files.
//
// The container is a sequence of sibling chunks, each a 4-byte tag and a
// little-endian u32 size followed by that many data bytes, padded to an even
// boundary. Only the "fmt ", "smpl" and "data" chunks are decoded; everything
// else is skipped over.
package wave

import (
	"encoding/binary"
	"io"
)

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8
)

// FindChunk scans the top-level chunks of a RIFF/WAVE stream for the first
// chunk with the given four-byte identifier, returning the position of its
// data and the declared size. A missing chunk is not an error: found is false
// and err is nil. The declared size is trusted as-is, it is not checked
// against the remaining stream length.
//
// Every call rescans from the start of the stream, so the same handle can be
// handed to several decoders without them depending on each other's read
// position.
func FindChunk(r io.ReadSeeker, id string) (offset int64, size uint32, found bool, err error) {
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return 0, 0, false, err
	}

	header := make([]byte, riffHeaderSize)
	if _, err = io.ReadFull(r, header); err != nil {
		return 0, 0, false, ErrNotRIFF
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return 0, 0, false, ErrNotRIFF
	}

	chunkHeader := make([]byte, chunkHeaderSize)
	for {
		if _, err = io.ReadFull(r, chunkHeader); err != nil {
			// Fewer than 8 bytes left: we ran past the last chunk.
			return 0, 0, false, nil
		}
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		if string(chunkHeader[0:4]) == id {
			pos, err := r.Seek(0, io.SeekCurrent)
			if err != nil {
				return 0, 0, false, err
			}
			return pos, chunkSize, true, nil
		}

		// Chunks are word aligned: odd sizes carry one pad byte.
		skip := int64(chunkSize) + int64(chunkSize&1)
		if _, err = r.Seek(skip, io.SeekCurrent); err != nil {
			return 0, 0, false, err
		}
	}
}
