package cli

import (
	"fmt"

	"github.com/open-atmos/nbhooks/internal/config"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Output JSON Schema for .nbhooks.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), string(config.Schema()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
