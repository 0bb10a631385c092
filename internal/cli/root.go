package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/open-atmos/nbhooks/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	repoName   string
	verbose    bool
	Version    = "dev"
)

// ErrChecksFailed is returned when a command reported problems or rewrote
// files. The problems have already been printed.
var ErrChecksFailed = errors.New("checks failed")

var rootCmd = &cobra.Command{
	Use:           "nbhooks",
	Short:         "Pre-commit checks for Jupyter notebooks",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "path", "p", config.DefaultPath, "path to config file")
	rootCmd.PersistentFlags().StringVar(&repoName, "repo-name", "", "repository name used in badges, the header and issue lookups")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

// Execute runs the command tree. Interrupts cancel in-flight work.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
