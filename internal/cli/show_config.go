// internal/cli/show_config.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/cipherbench/internal/appconfig"
)

// showConfigCmd prints the resolved configuration.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		file := ""
		if cfg != nil {
			file = cfg.ConfigPath
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), file, cfg)
		return nil
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
