// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fallback := Default()
	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Data Dir:          %s\n", cfg.DataDirPath())
	fmt.Fprintf(out, "  Results CSV:       %s\n", cfg.CSVPath())
	fmt.Fprintf(out, "  Algorithms:        %s\n", algorithmSummary(cfg.Algorithms))
	fmt.Fprintf(out, "  Files:             %s\n", fileSummary(cfg.Files))
	fmt.Fprintf(out, "  Warmup Iterations: %d\n", cfg.WarmupRuns())
	fmt.Fprintf(out, "  Timed Iterations:  %d\n", cfg.TimedRuns())
	fmt.Fprintf(out, "  Log File:          %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Debug:             %v\n", cfg.Debug)
}

// Dump pretty-prints the raw resolved configuration for debugging.
func Dump(cfg *Config) {
	pp.Println(cfg)
}

func algorithmSummary(algorithms []string) string {
	if len(algorithms) == 0 {
		return "all supported"
	}
	return strings.Join(algorithms, ", ")
}

func fileSummary(files []string) string {
	if len(files) == 0 {
		return "standard payload set"
	}
	return strings.Join(files, ", ")
}
