package cli

import (
	"github.com/open-atmos/nbhooks/internal/pycheck"
	"github.com/open-atmos/nbhooks/internal/report"
	"github.com/spf13/cobra"
)

var importsStaged bool

var checkImportsCmd = &cobra.Command{
	Use:   "check-imports [files...]",
	Short: "Check Python files for forbidden imports",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		files, err := s.files(args, importsStaged, ".py")
		if err != nil {
			return err
		}

		checker := &pycheck.Checker{Skip: s.cfg.Python.Skip}
		for _, fi := range s.cfg.Python.ForbiddenImports {
			checker.Rules = append(checker.Rules, pycheck.Rule{Pattern: fi.Pattern, Message: fi.Message})
		}

		rep := report.New(cmd.OutOrStdout())
		for _, f := range files {
			findings, err := checker.CheckFile(f)
			if err != nil {
				rep.Error(s.display(f), err)
				continue
			}
			for _, fd := range findings {
				rep.Error(s.display(f), fd)
			}
		}
		if rep.Failed() {
			return ErrChecksFailed
		}
		return nil
	},
}

func init() {
	addStagedFlag(checkImportsCmd, &importsStaged)
	rootCmd.AddCommand(checkImportsCmd)
}
