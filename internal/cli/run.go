// internal/cli/run.go
package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/mwiater/cipherbench/internal/appconfig"
	"github.com/mwiater/cipherbench/internal/bench"
	"github.com/mwiater/cipherbench/internal/ciphersuite"
	"github.com/mwiater/cipherbench/internal/logging"
	"github.com/mwiater/cipherbench/internal/payload"
	"github.com/mwiater/cipherbench/internal/report"
)

// runCmd executes the full benchmark matrix and reports the results.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the CBC cipher benchmark matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return err
		}
		defer logging.Close()

		algs, err := selectedAlgorithms(cfg)
		if err != nil {
			return err
		}

		paths := cfg.Files
		if len(paths) == 0 {
			if err := payload.Generate(cfg.DataDirPath()); err != nil {
				return err
			}
			paths = payload.DefaultPaths(cfg.DataDirPath())
		}
		files, err := payload.Load(paths)
		if err != nil {
			return err
		}

		// One key/IV pair for the whole run, so every record is measured
		// against identical key material.
		log.Println("Generating random key and IV...")
		key, err := ciphersuite.RandomBytes(ciphersuite.KeySize)
		if err != nil {
			return err
		}
		iv, err := ciphersuite.RandomBytes(ciphersuite.BlockSize)
		if err != nil {
			return err
		}

		records, err := bench.Run(bench.Config{
			WarmupIterations: cfg.WarmupRuns(),
			TimedIterations:  cfg.TimedRuns(),
		}, algs, files, key, iv)
		if err != nil {
			return err
		}

		if err := report.WriteCSV(cfg.CSVPath(), records); err != nil {
			return err
		}
		report.PrintSummary(cmd.OutOrStdout(), records)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// selectedAlgorithms maps the configured algorithm names to cipher suites,
// defaulting to every supported suite.
func selectedAlgorithms(cfg *appconfig.Config) ([]ciphersuite.Algorithm, error) {
	if len(cfg.Algorithms) == 0 {
		return ciphersuite.Algorithms, nil
	}
	algs := make([]ciphersuite.Algorithm, 0, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		alg, err := ciphersuite.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}
