// internal/cli/root.go
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/cipherbench/internal/appconfig"
	"github.com/mwiater/cipherbench/internal/report"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:           "cipherbench",
	Short:         "cipherbench — CBC block-cipher throughput and latency benchmarks",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}

		// Flags override the config file; unset flags keep the file value.
		if cmd.Flags().Changed("debug") {
			cfg.Debug = viper.GetBool("debug")
		}
		if cmd.Flags().Changed("timedIterations") {
			cfg.TimedIterations = viper.GetInt("timedIterations")
		}
		if cmd.Flags().Changed("warmupIterations") {
			cfg.WarmupIterations = viper.GetInt("warmupIterations")
		}
		currentConfig = &cfg

		if cfg.Debug {
			appconfig.Dump(&cfg)
		}
		return nil
	},
}

// Execute runs the root command. Any fatal abort surfaces as one descriptive
// message and a non-zero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report.PrintFailure(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().Int("timedIterations", 5, "timed runs per (cipher, payload) pair")
	rootCmd.PersistentFlags().Int("warmupIterations", 1, "untimed warm-up round trips per pair")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("timedIterations", rootCmd.PersistentFlags().Lookup("timedIterations"))
	_ = viper.BindPFlag("warmupIterations", rootCmd.PersistentFlags().Lookup("warmupIterations"))
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}
