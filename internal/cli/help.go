package cli

import (
	"fmt"
	"io"
)

func Help(program string, stdout io.Writer) {
	Version(stdout)
	fmt.Fprintf(stdout, "Usage: \"%s [options] <wav_dir> <template> <output_dir>\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Converts every .wav file in <wav_dir> into a preset file by substituting")
	fmt.Fprintln(stdout, "its metadata into the placeholder tokens of <template>.")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Options:")
	fmt.Fprintln(stdout, "--help, -h")
	fmt.Fprintln(stdout, "                    Display this help and exit")
	fmt.Fprintln(stdout, "--version")
	fmt.Fprintln(stdout, "                    Display version information and exit")
	fmt.Fprintln(stdout, "--ext=EXT")
	fmt.Fprintln(stdout, "                    Output file extension (default .dspreset)")
	fmt.Fprintln(stdout, "--list, -l")
	fmt.Fprintln(stdout, "                    Print a metadata report for <wav_dir> instead of converting")
	fmt.Fprintln(stdout, "--dry-run, -n")
	fmt.Fprintln(stdout, "                    Parse and report but write no output files")
	fmt.Fprintln(stdout, "--quiet, -q")
	fmt.Fprintln(stdout, "                    Suppress per-file progress lines")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Template tokens:")
	fmt.Fprintln(stdout, "{{WAV_FILENAME}} {{WAV_BASENAME}} {{ROOT_KEY}} {{LOOP_START}} {{LOOP_END}}")
	fmt.Fprintln(stdout, "{{HAS_LOOP}} {{SAMPLE_RATE}} {{SAMPLE_LENGTH_SAMPLES}} {{SAMPLE_START}} {{SAMPLE_END}}")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Commands:")
	fmt.Fprintln(stdout, "version              Print wav2preset version information")
	fmt.Fprintln(stdout, "update               Update wav2preset to latest version (release builds only)")
}

func HelpNothing(program string, stdout io.Writer) {
	fmt.Fprintf(stdout, "Usage: \"%s [options] <wav_dir> <template> <output_dir>\"\n", program)
	fmt.Fprintf(stdout, "\"%s --help\" for displaying more information\n", program)
}

func Usage(program string, stdout io.Writer) int {
	HelpNothing(program, stdout)
	return exitError
}
