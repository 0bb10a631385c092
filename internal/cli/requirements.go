package cli

import (
	"path/filepath"

	"github.com/open-atmos/nbhooks/internal/pyproject"
	"github.com/open-atmos/nbhooks/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkBuildRequirementsCmd = &cobra.Command{
	Use:   "check-build-requirements",
	Short: "Check that paired pyproject.toml files share build requirements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		rep := report.New(cmd.OutOrStdout())
		for _, pair := range s.cfg.BuildRequirements {
			a := filepath.Join(s.id.Root, filepath.FromSlash(pair[0]))
			b := filepath.Join(s.id.Root, filepath.FromSlash(pair[1]))
			m, err := pyproject.CompareFiles(a, b)
			if err != nil {
				rep.Error(pair[0], err)
				continue
			}
			if m != nil {
				rep.Error(pair[0], m)
				continue
			}
			s.log.Debug("build requirements match", zap.Strings("files", pair))
		}
		if rep.Failed() {
			return ErrChecksFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkBuildRequirementsCmd)
}
