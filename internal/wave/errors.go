package wave

import "errors"

var (
	ErrNotRIFF       = errors.New("not a valid RIFF/WAVE file")
	ErrChunkTooSmall = errors.New("chunk too small")
)
