package cli

import (
	"github.com/open-atmos/nbhooks/internal/check"
	"github.com/open-atmos/nbhooks/internal/header"
	"github.com/open-atmos/nbhooks/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	badgesFix     bool
	badgesVersion string
	badgesStaged  bool
)

var checkBadgesCmd = &cobra.Command{
	Use:   "check-badges [files...]",
	Short: "Check notebook badges and the setup cell, fixing the setup cell",
	Long: `Check that each notebook starts with the three badge lines, has a
markdown second cell and carries the canonical setup cell at index 2.

With --fix (the default) the setup cell is corrected, moved or inserted
and the notebook rewritten; any rewrite makes the command fail so the
commit can be re-staged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		files, err := s.files(args, badgesStaged, ".ipynb")
		if err != nil {
			return err
		}
		canonical, err := s.cfg.RenderHeader(s.id.Name, badgesVersion)
		if err != nil {
			return err
		}
		env, err := s.checkEnv(canonical)
		if err != nil {
			return err
		}

		fixer := header.Fixer{Canonical: canonical, Markers: s.cfg.Header.Markers}
		checker := &check.Checker{Env: env, Checks: check.Layout(badgesFix), Log: s.log}
		rep := report.New(cmd.OutOrStdout())

		var reformatted, unchanged []string
		for _, f := range files {
			name := s.display(f)
			if badgesFix {
				modified, err := fixer.FixFile(f)
				switch {
				case err != nil:
					rep.Error(name, err)
				case modified:
					s.log.Debug("rewrote setup cell", zap.String("path", f))
					reformatted = append(reformatted, name)
				default:
					unchanged = append(unchanged, name)
				}
			}
			vs, err := checker.CheckFile(f)
			if err != nil {
				rep.Error(name, err)
				continue
			}
			for _, v := range vs {
				rep.Error(name, v)
			}
		}

		rep.Summary(reformatted, unchanged)
		if rep.Failed() || len(reformatted) > 0 {
			return ErrChecksFailed
		}
		return nil
	},
}

func init() {
	checkBadgesCmd.Flags().BoolVar(&badgesFix, "fix", true, "rewrite notebooks whose setup cell is missing, misplaced or outdated")
	checkBadgesCmd.Flags().StringVar(&badgesVersion, "version", "", "pin the examples package version in the setup cell")
	addStagedFlag(checkBadgesCmd, &badgesStaged)
	rootCmd.AddCommand(checkBadgesCmd)
}
