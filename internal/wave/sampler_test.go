package wave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestReadSamplerInfo(t *testing.T) {
	file := riffFile(
		fmtChunk(1, 44100, 16),
		smplChunk(57, SampleLoop{CuePointID: 1, Start: 1000, End: 9000, PlayCount: 0}),
	)

	info, err := ReadSamplerInfo(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("ReadSamplerInfo() error = %v", err)
	}
	if info == nil {
		t.Fatal("ReadSamplerInfo() returned nil for a file with a smpl chunk")
	}
	if info.MIDIUnityNote != 57 {
		t.Errorf("MIDIUnityNote = %d, want 57", info.MIDIUnityNote)
	}
	if len(info.Loops) != 1 {
		t.Fatalf("len(Loops) = %d, want 1", len(info.Loops))
	}
	if info.Loops[0].Start != 1000 || info.Loops[0].End != 9000 {
		t.Errorf("loop = %+v, want start 1000 end 9000", info.Loops[0])
	}
}

func TestReadSamplerInfoAbsent(t *testing.T) {
	file := riffFile(fmtChunk(1, 44100, 16), chunk("data", make([]byte, 4)))

	info, err := ReadSamplerInfo(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("ReadSamplerInfo() error = %v, absence must not be an error", err)
	}
	if info != nil {
		t.Fatalf("ReadSamplerInfo() = %+v, want nil without smpl chunk", info)
	}
}

func TestReadSamplerInfoNoLoops(t *testing.T) {
	file := riffFile(smplChunk(60))

	info, err := ReadSamplerInfo(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("ReadSamplerInfo() error = %v", err)
	}
	if len(info.Loops) != 0 {
		t.Fatalf("len(Loops) = %d, want 0", len(info.Loops))
	}
}

func TestReadSamplerInfoConsumesAllLoops(t *testing.T) {
	loops := []SampleLoop{
		{CuePointID: 1, Start: 100, End: 200},
		{CuePointID: 2, Start: 300, End: 400},
	}
	file := riffFile(smplChunk(48, loops...))
	r := bytes.NewReader(file)

	info, err := ReadSamplerInfo(r)
	if err != nil {
		t.Fatalf("ReadSamplerInfo() error = %v", err)
	}
	if len(info.Loops) != 2 {
		t.Fatalf("len(Loops) = %d, want 2", len(info.Loops))
	}
	if info.Loops[1].Start != 300 || info.Loops[1].End != 400 {
		t.Errorf("second loop = %+v, want start 300 end 400", info.Loops[1])
	}

	// The decoder must leave the stream at the chunk end, i.e. it consumed
	// every loop record rather than just the first.
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	chunkEnd := int64(12 + 8 + smplHeaderSize + 2*smplLoopSize)
	if pos != chunkEnd {
		t.Fatalf("stream position after decode = %d, want chunk end %d", pos, chunkEnd)
	}
}

func TestReadSamplerInfoTooSmall(t *testing.T) {
	file := riffFile(chunk("smpl", make([]byte, 20)))

	_, err := ReadSamplerInfo(bytes.NewReader(file))
	if !errors.Is(err, ErrChunkTooSmall) {
		t.Fatalf("ReadSamplerInfo() error = %v, want ErrChunkTooSmall", err)
	}
}

func TestReadSamplerInfoTruncatedLoopRecord(t *testing.T) {
	// Header claims two loops but the stream holds only one record.
	data := new(bytes.Buffer)
	for i := 0; i < 7; i++ {
		binary.Write(data, binary.LittleEndian, uint32(0))
	}
	binary.Write(data, binary.LittleEndian, uint32(2)) // loop count
	binary.Write(data, binary.LittleEndian, uint32(0)) // sampler data size
	data.Write(make([]byte, smplLoopSize))             // one record only

	file := riffFile(chunk("smpl", data.Bytes()))

	_, err := ReadSamplerInfo(bytes.NewReader(file))
	if !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamplerInfo() error = %v, want an end-of-stream error", err)
	}
}
