package cli

import (
	"fmt"
	"io"

	"github.com/sampletools/wav2preset/internal/preset"
)

var appVersion = "dev"

func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "%s, %s\n", preset.AppName, preset.FormatVersion(appVersion))
}
