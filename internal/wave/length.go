package wave

import "io"

// SampleLength computes the total number of sample frames from the declared
// size of the "data" chunk. ok is false when the count cannot be derived:
// no format info, no "data" chunk, or a degenerate frame size of zero bytes.
//
// Trailing bytes short of a full frame are dropped; well-formed files never
// carry fractional frames.
func SampleLength(r io.ReadSeeker, format *FormatInfo) (frames int64, ok bool, err error) {
	if format == nil {
		return 0, false, nil
	}

	_, size, found, err := FindChunk(r, "data")
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, nil
	}

	bytesPerFrame := int64(format.NumChannels) * int64(format.BitsPerSample) / 8
	if bytesPerFrame == 0 {
		return 0, false, nil
	}

	return int64(size) / bytesPerFrame, true, nil
}
