package cli

import (
	"fmt"
	"os"

	"github.com/open-atmos/nbhooks/internal/report"
	"github.com/open-atmos/nbhooks/internal/state"
	"github.com/open-atmos/nbhooks/internal/todo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var todosStaged bool

var checkTodosCmd = &cobra.Command{
	Use:   "check-todos [files...]",
	Short: "Check that TODO/FIXME comments reference open issues",
	Long: `Check that every TODO and FIXME is written as "TODO #<issue>" and that
the issue exists and is open. When the issue tracker cannot be reached
only the annotation syntax is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		files, err := s.files(args, todosStaged)
		if err != nil {
			return err
		}

		issues := map[int]todo.State{}
		if s.cfg.Issues.Enabled {
			repo := s.repo()
			tracker := &todo.Cached{
				Tracker: todo.NewGitHub(repo.Owner, repo.Name, os.Getenv(s.cfg.Issues.TokenEnv), s.log),
				Path:    state.IssuesPath(s.id.Root),
				Key:     repo.Owner + "/" + repo.Name,
				TTL:     s.cfg.Issues.CacheTTL,
				Log:     s.log,
			}
			fetched, err := tracker.Issues(cmd.Context())
			if err != nil {
				s.log.Warn("issue tracker unavailable; checking annotation syntax only", zap.Error(err))
			} else {
				issues = fetched
			}
		}

		checker := &todo.Checker{Issues: issues, Log: s.log}
		rep := report.New(cmd.OutOrStdout())
		for _, f := range files {
			findings, err := checker.CheckFile(f)
			if err != nil {
				rep.Error(s.display(f), err)
				continue
			}
			for _, fd := range findings {
				rep.Error(fmt.Sprintf("%s:%d", s.display(f), fd.Line), fd)
			}
		}
		if rep.Failed() {
			return ErrChecksFailed
		}
		return nil
	},
}

func init() {
	addStagedFlag(checkTodosCmd, &todosStaged)
	rootCmd.AddCommand(checkTodosCmd)
}
