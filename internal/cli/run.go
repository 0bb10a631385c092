package cli

import (
	"fmt"
	"time"

	"github.com/open-atmos/nbhooks/internal/execute"
	"github.com/open-atmos/nbhooks/internal/report"
	"github.com/spf13/cobra"
)

var (
	runTimeout time.Duration
	runStaged  bool
)

var runNotebooksCmd = &cobra.Command{
	Use:   "run-notebooks [files...]",
	Short: "Execute notebooks with jupyter nbconvert",
	Long: `Execute each notebook from start to finish with the configured engine
(jupyter nbconvert by default). The executed copy is discarded; a failing
cell or a timeout is reported as an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		files, err := s.files(args, runStaged, ".ipynb")
		if err != nil {
			return err
		}

		runner := &execute.Runner{
			Command: s.cfg.Execute.Command,
			Kernel:  s.cfg.Execute.Kernel,
			Timeout: s.cfg.Execute.Timeout,
			Log:     s.log,
		}
		if cmd.Flags().Changed("timeout") {
			runner.Timeout = runTimeout
		}

		out := cmd.OutOrStdout()
		rep := report.New(out)
		for _, f := range files {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			res, err := runner.Run(cmd.Context(), f)
			if err != nil {
				rep.Error(s.display(f), err)
				continue
			}
			fmt.Fprintf(out, "ok %s (%s)\n", s.display(f), res.Duration.Round(time.Millisecond))
		}
		if rep.Failed() {
			return ErrChecksFailed
		}
		return nil
	},
}

func init() {
	runNotebooksCmd.Flags().DurationVar(&runTimeout, "timeout", 15*time.Minute, "per-notebook timeout (overrides execute.timeout)")
	addStagedFlag(runNotebooksCmd, &runStaged)
	rootCmd.AddCommand(runNotebooksCmd)
}
