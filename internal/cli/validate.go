package cli

import (
	"fmt"

	"github.com/open-atmos/nbhooks/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate .nbhooks.yaml and report errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		errs := config.Validate(cfg)
		if len(errs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		}

		for _, e := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}
		return ErrChecksFailed
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
