package preset

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/sampletools/wav2preset/internal/wave"
)

// Field is one name/value line of a metadata report.
type Field struct {
	Name  string
	Value string
}

// MetadataFields flattens one file's decoded metadata for the --list report.
// Unlike PlaceholderValues it reflects what the file actually contains:
// absent chunks produce no lines rather than fallback values.
func MetadataFields(path string, md wave.Metadata) []Field {
	fields := []Field{
		{Name: "Complete name", Value: path},
		{Name: "Format", Value: "Wave"},
	}

	if md.Format != nil {
		fields = append(fields,
			Field{Name: "Channel(s)", Value: strconv.FormatUint(uint64(md.Format.NumChannels), 10)},
			Field{Name: "Sampling rate", Value: fmt.Sprintf("%d Hz", md.Format.SampleRate)},
			Field{Name: "Bit depth", Value: fmt.Sprintf("%d bits", md.Format.BitsPerSample)},
		)
	}
	if md.FramesKnown {
		fields = append(fields, Field{Name: "Sample frames", Value: strconv.FormatInt(md.Frames, 10)})
	}
	if md.Sampler != nil {
		fields = append(fields,
			Field{Name: "Root key", Value: strconv.FormatUint(uint64(md.Sampler.MIDIUnityNote), 10)},
			Field{Name: "Loops", Value: strconv.Itoa(len(md.Sampler.Loops))},
		)
		if len(md.Sampler.Loops) > 0 {
			loop := md.Sampler.Loops[0]
			fields = append(fields,
				Field{Name: "Loop start", Value: strconv.FormatUint(uint64(loop.Start), 10)},
				Field{Name: "Loop end", Value: strconv.FormatUint(uint64(loop.End), 10)},
			)
		}
	}

	return fields
}

// RenderReport formats one file's fields as a padded name/value block.
func RenderReport(fields []Field) string {
	var buf bytes.Buffer
	for _, field := range fields {
		buf.WriteString(padRight(field.Name, 24))
		buf.WriteString(": ")
		buf.WriteString(field.Value)
		buf.WriteString("\n")
	}
	return buf.String()
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
