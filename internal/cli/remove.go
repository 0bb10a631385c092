package cli

import (
	"fmt"

	"github.com/open-atmos/nbhooks/internal/gitignore"
	"github.com/open-atmos/nbhooks/internal/hooks"
	"github.com/open-atmos/nbhooks/internal/state"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the nbhooks git hook, .gitignore entry and cached state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := hooks.Remove("."); err != nil {
			return fmt.Errorf("removing hooks: %w", err)
		}
		if err := gitignore.Remove("."); err != nil {
			return fmt.Errorf("removing gitignore entries: %w", err)
		}
		if err := state.Clear("."); err != nil {
			return fmt.Errorf("removing state: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "nbhooks removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
