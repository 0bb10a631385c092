package cli

import (
	"github.com/open-atmos/nbhooks/internal/check"
	"github.com/open-atmos/nbhooks/internal/report"
	"github.com/spf13/cobra"
)

var notebooksStaged bool

var checkNotebooksCmd = &cobra.Command{
	Use:   "check-notebooks [files...]",
	Short: "Check notebook outputs, execution counts, size and plotting calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		files, err := s.files(args, notebooksStaged, ".ipynb")
		if err != nil {
			return err
		}
		env, err := s.checkEnv("")
		if err != nil {
			return err
		}

		checker := &check.Checker{Env: env, Checks: check.Outputs(), Log: s.log}
		rep := report.New(cmd.OutOrStdout())
		for _, f := range files {
			vs, err := checker.CheckFile(f)
			if err != nil {
				rep.Error(s.display(f), err)
				continue
			}
			for _, v := range vs {
				rep.Error(s.display(f), v)
			}
		}
		if rep.Failed() {
			return ErrChecksFailed
		}
		return nil
	},
}

func init() {
	addStagedFlag(checkNotebooksCmd, &notebooksStaged)
	rootCmd.AddCommand(checkNotebooksCmd)
}
