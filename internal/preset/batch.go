package preset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sampletools/wav2preset/internal/wave"
)

const defaultOutExt = ".dspreset"

// Options control a batch run.
type Options struct {
	OutExt string // output file extension, ".dspreset" when empty
	DryRun bool   // parse and report, write nothing
	Quiet  bool   // suppress per-file progress lines
}

// ExtractFile opens one WAVE file and reads its metadata. The handle is
// closed before returning, on every path.
func ExtractFile(path string) (wave.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return wave.Metadata{}, err
	}
	defer f.Close()

	return wave.ReadMetadata(f)
}

// ProcessDirectory converts every .wav file in wavDir using the template at
// templatePath, writing one preset file per input into outDir. Files are
// processed in sorted name order. A file that fails to decode is reported to
// stderr and skipped; the batch keeps going. An output file is only written
// once the file's full metadata mapping succeeded, so a failure never leaves
// a partial preset behind.
func ProcessDirectory(wavDir, templatePath, outDir string, opts Options, stdout, stderr io.Writer) (int, error) {
	tmpl, err := LoadTemplate(templatePath)
	if err != nil {
		return 0, err
	}

	paths, err := listWAVFiles(wavDir)
	if err != nil {
		return 0, err
	}

	if !opts.DryRun {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return 0, err
		}
	}

	ext := opts.OutExt
	if ext == "" {
		ext = defaultOutExt
	}

	converted := 0
	for _, path := range paths {
		md, err := ExtractFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error processing %s: %v\n", path, err)
			continue
		}

		text := tmpl.Render(PlaceholderValues(path, md))

		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outPath := filepath.Join(outDir, base+ext)

		if !opts.DryRun {
			if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
				fmt.Fprintf(stderr, "Error processing %s: %v\n", path, err)
				continue
			}
		}
		if !opts.Quiet {
			fmt.Fprintf(stdout, "Created preset: %s\n", outPath)
		}
		converted++
	}

	return converted, nil
}

// ListDirectory prints a metadata report for every .wav file in wavDir
// instead of writing presets. Like ProcessDirectory, per-file failures are
// reported and skipped.
func ListDirectory(wavDir string, stdout, stderr io.Writer) (int, error) {
	paths, err := listWAVFiles(wavDir)
	if err != nil {
		return 0, err
	}

	listed := 0
	for _, path := range paths {
		md, err := ExtractFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error processing %s: %v\n", path, err)
			continue
		}
		if listed > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprint(stdout, RenderReport(MetadataFields(path, md)))
		listed++
	}

	return listed, nil
}

func listWAVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}
