package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/open-atmos/nbhooks/internal/config"
	"github.com/open-atmos/nbhooks/internal/gitignore"
	"github.com/open-atmos/nbhooks/internal/hooks"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var writeConfig bool

func init() {
	installCmd.Flags().BoolVar(&writeConfig, "write-config", false, "also write "+config.DefaultPath+" with the defaults if it does not exist")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install [path]",
	Short: "Install the nbhooks pre-commit hook into a repository",
	Long: `Install the nbhooks block into .git/hooks/pre-commit of the target
repository (defaults to current directory) and ignore the .nbhooks/ state
directory in .gitignore.

Existing hook content is preserved. Safe to re-run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		// Verify it's a git repo
		if _, err := os.Stat(filepath.Join(absDir, ".git")); err != nil {
			return fmt.Errorf("%s is not a git repository (no .git directory)", absDir)
		}

		out := cmd.OutOrStdout()
		if err := hooks.Install(absDir); err != nil {
			return fmt.Errorf("installing hook: %w", err)
		}
		fmt.Fprintln(out, "  hook   .git/hooks/"+hooks.Name)

		if err := gitignore.Install(absDir); err != nil {
			return fmt.Errorf("updating .gitignore: %w", err)
		}
		fmt.Fprintln(out, "  ignore .gitignore (/.nbhooks/)")

		if writeConfig {
			written, err := writeDefaultConfig(filepath.Join(absDir, config.DefaultPath))
			if err != nil {
				return err
			}
			if written {
				fmt.Fprintln(out, "  config "+config.DefaultPath)
			} else {
				fmt.Fprintln(out, "  skip   "+config.DefaultPath+" (already present)")
			}
		}

		fmt.Fprintln(out, "\nDone.")
		return nil
	},
}

// writeDefaultConfig writes the default configuration to path unless a file
// is already there.
func writeDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return false, fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("writing config: %w", err)
	}
	return true, nil
}
