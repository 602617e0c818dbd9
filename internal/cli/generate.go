// internal/cli/generate.go
package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/mwiater/cipherbench/internal/payload"
)

// generateCmd creates the standard payload files without running benchmarks.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create the standard benchmark payload files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		log.Printf("Creating test files in %s...", cfg.DataDirPath())
		return payload.Generate(cfg.DataDirPath())
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
