package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sampletools/wav2preset/internal/preset"
)

const (
	exitOK    = 0
	exitError = 1
)

type Options struct {
	OutExt string
	DryRun bool
	List   bool
	Quiet  bool
}

// Run parses the CLI arguments and executes a batch conversion (or a --list
// report). args[0] is the program name. The return value is the process exit
// code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return exitError
	}

	program := programName(args[0])
	opts := Options{}
	positional := make([]string, 0, 3)

	for i := 1; i < len(args); i++ {
		original := args[i]
		normalized := normalizeArg(original)

		switch {
		case normalized == "--help" || normalized == "-h":
			Help(program, stdout)
			return exitOK
		case normalized == "--version":
			Version(stdout)
			return exitOK
		case normalized == "--list" || normalized == "-l":
			opts.List = true
		case normalized == "--dry-run" || normalized == "-n":
			opts.DryRun = true
		case normalized == "--quiet" || normalized == "-q":
			opts.Quiet = true
		case strings.HasPrefix(normalized, "--ext"):
			value, ok := valueAfterEqual(original)
			if !ok || value == "" {
				fmt.Fprintln(stderr, "option --ext requires a value, e.g. --ext=.sfz")
				return exitError
			}
			opts.OutExt = normalizeExt(value)
		case strings.HasPrefix(normalized, "--"):
			if normalized == "--" {
				continue
			}
			fmt.Fprintf(stderr, "unknown option: %s\n", original)
			return exitError
		default:
			positional = append(positional, original)
		}
	}

	if opts.List {
		if len(positional) != 1 {
			return Usage(program, stdout)
		}
		return runList(positional[0], stdout, stderr)
	}

	if len(positional) != 3 {
		return Usage(program, stdout)
	}

	return runBatch(positional[0], positional[1], positional[2], opts, stdout, stderr)
}

func runList(wavDir string, stdout, stderr io.Writer) int {
	if !isDirectory(wavDir) {
		fmt.Fprintf(stderr, "Not a directory: %s\n", wavDir)
		return exitError
	}

	listed, err := preset.ListDirectory(wavDir, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}
	if listed == 0 {
		fmt.Fprintf(stderr, "No .wav files found in %s\n", wavDir)
		return exitError
	}
	return exitOK
}

func runBatch(wavDir, templatePath, outDir string, opts Options, stdout, stderr io.Writer) int {
	if !isDirectory(wavDir) {
		fmt.Fprintf(stderr, "Not a directory: %s\n", wavDir)
		return exitError
	}
	if !isFile(templatePath) {
		fmt.Fprintf(stderr, "Template file not found: %s\n", templatePath)
		return exitError
	}

	batchOpts := preset.Options{
		OutExt: opts.OutExt,
		DryRun: opts.DryRun,
		Quiet:  opts.Quiet,
	}
	converted, err := preset.ProcessDirectory(wavDir, templatePath, outDir, batchOpts, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	if converted > 0 {
		return exitOK
	}
	return exitError
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func programName(arg0 string) string {
	name := filepath.Base(arg0)
	if runtime.GOOS == "windows" {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func normalizeArg(arg string) string {
	eq := strings.IndexByte(arg, '=')
	if eq == -1 {
		eq = len(arg)
	}

	lower := strings.ToLower(arg[:eq])
	return lower + arg[eq:]
}

func valueAfterEqual(arg string) (string, bool) {
	eq := strings.IndexByte(arg, '=')
	if eq == -1 {
		return "", false
	}
	return arg[eq+1:], true
}

func normalizeExt(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
