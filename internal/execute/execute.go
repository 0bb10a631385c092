// Package execute runs notebooks end to end through jupyter nbconvert. The
// executed copy is written to a scratch directory and discarded; only
// success or failure is reported.
package execute

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/open-atmos/nbhooks/internal/env"
	"go.uber.org/zap"
)

// ErrTimeout marks a notebook that did not finish within the timeout.
var ErrTimeout = errors.New("notebook execution timed out")

// tailLines is how much of the engine output is kept in error messages.
const tailLines = 20

// Runner executes notebooks with an external engine.
type Runner struct {
	Command string
	Kernel  string
	Timeout time.Duration
	Log     *zap.Logger
}

// Result describes one finished execution.
type Result struct {
	Path     string
	Duration time.Duration
}

// Args returns the engine arguments for executing path into outDir.
func (r *Runner) Args(path, outDir string) []string {
	return []string{
		"nbconvert",
		"--to", "notebook",
		"--execute",
		"--ExecutePreprocessor.timeout=" + strconv.Itoa(int(r.Timeout.Seconds())),
		"--ExecutePreprocessor.kernel_name=" + r.Kernel,
		"--output-dir", outDir,
		path,
	}
}

// Run executes the notebook at path. The whole engine process group is
// killed once the timeout elapses.
func (r *Runner) Run(ctx context.Context, path string) (*Result, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	outDir, err := os.MkdirTemp("", "nbhooks-run-")
	if err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Command, r.Args(path, outDir)...)
	cmd.Dir = outDir
	cmd.Env = env.With(os.Environ(), map[string]string{"JUPYTER_PLATFORM_DIRS": "1"})
	cmd.WaitDelay = 5 * time.Second
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	setProcGroup(cmd)

	log.Debug("executing notebook", zap.String("path", path), zap.Strings("args", cmd.Args))
	start := time.Now()
	err = cmd.Run()
	res := &Result{Path: path, Duration: time.Since(start)}
	if ctx.Err() == context.DeadlineExceeded {
		return res, fmt.Errorf("%w after %s", ErrTimeout, r.Timeout)
	}
	if err != nil {
		return res, fmt.Errorf("%s nbconvert: %w\n%s", r.Command, err, tail(out.String(), tailLines))
	}
	log.Debug("notebook executed", zap.String("path", path), zap.Duration("took", res.Duration))
	return res, nil
}

func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
