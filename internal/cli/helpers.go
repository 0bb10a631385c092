package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/open-atmos/nbhooks/internal/badge"
	"github.com/open-atmos/nbhooks/internal/check"
	"github.com/open-atmos/nbhooks/internal/config"
	"github.com/open-atmos/nbhooks/internal/fileutil"
	"github.com/open-atmos/nbhooks/internal/git"
	"github.com/open-atmos/nbhooks/internal/ignore"
	"github.com/open-atmos/nbhooks/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Identity names the repository the checks run against.
type Identity struct {
	Root string
	Name string
}

// session is the state shared by the check commands: config, repository
// identity and logger.
type session struct {
	cfg *config.Config
	id  Identity
	cwd string
	log *zap.Logger
}

// resolveRoot finds the repository root: PRE_COMMIT_REPOROOT first, then
// git itself, then the nearest parent holding .git.
func resolveRoot(dir string) (string, error) {
	if root := os.Getenv("PRE_COMMIT_REPOROOT"); root != "" {
		return fileutil.Resolve(root)
	}
	if root, err := git.TopLevel(dir); err == nil {
		return root, nil
	}
	root, err := git.FindRoot(dir)
	if err != nil {
		return "", fmt.Errorf("could not find git repository root: %w", err)
	}
	return root, nil
}

// resolveName picks the repository name: the flag, then the config, then
// the root directory's base name.
func resolveName(flag string, cfg *config.Config, root string) string {
	if flag != "" {
		return flag
	}
	if cfg.Repository.Name != "" {
		return cfg.Repository.Name
	}
	return filepath.Base(root)
}

// loadSession resolves the repository, then loads and validates the config.
// Without -p the config is looked up at the repository root and may be
// absent.
func loadSession(cmd *cobra.Command) (*session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	// git reports the root with symlinks resolved, so the working
	// directory must be too for relative paths to line up.
	if cwd, err = fileutil.Resolve(cwd); err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	root, err := resolveRoot(cwd)
	if err != nil {
		return nil, err
	}

	explicit := cmd.Flags().Changed("path")
	path := configPath
	if !explicit {
		path = filepath.Join(root, config.DefaultPath)
	}
	cfg, err := config.LoadOrDefault(path, !explicit)
	if err != nil {
		return nil, err
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config %s: %s", path, strings.Join(errs, "; "))
	}

	log := logging.New(verbose)
	id := Identity{Root: root, Name: resolveName(repoName, cfg, root)}
	log.Debug("resolved repository", zap.String("root", id.Root), zap.String("name", id.Name), zap.String("config", path))
	return &session{cfg: cfg, id: id, cwd: cwd, log: log}, nil
}

// files returns the absolute paths to check. Explicit arguments win; without
// them files come from the index (staged) or from git ls-files. Either way
// the result is filtered by extension and .nbhooksignore.
func (s *session) files(args []string, staged bool, exts ...string) ([]string, error) {
	var files []string
	var err error
	switch {
	case len(args) > 0:
		for _, a := range args {
			if !git.HasExt(a, exts) {
				continue
			}
			abs, err := fileutil.Resolve(a)
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", a, err)
			}
			files = append(files, abs)
		}
	case staged:
		files, err = git.StagedFiles(s.id.Root, exts...)
	default:
		files, err = git.LsFiles(s.id.Root, exts...)
	}
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	m, err := ignore.Load(s.id.Root)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ignore.File, err)
	}
	kept := m.Filter(files)
	s.log.Debug("selected files", zap.Int("candidates", len(files)), zap.Int("kept", len(kept)))
	return kept, nil
}

// display shortens an absolute path to one relative to the working
// directory when it lies below it.
func (s *session) display(path string) string {
	rel, err := filepath.Rel(s.cwd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func (s *session) repo() badge.Repo {
	return badge.Repo{Owner: s.cfg.Repository.Owner, Name: s.id.Name, Branch: s.cfg.Repository.Branch}
}

// checkEnv builds the validator inputs for canonical header text.
func (s *session) checkEnv(canonical string) (*check.Env, error) {
	size, err := s.cfg.MaxSizeBytes()
	if err != nil {
		return nil, err
	}
	return &check.Env{
		Root:           s.id.Root,
		Repo:           s.repo(),
		Header:         canonical,
		StderrAllow:    s.cfg.Notebooks.StderrAllow,
		MaxSize:        size,
		ForbiddenCalls: s.cfg.Notebooks.ForbiddenCalls,
	}, nil
}

// addStagedFlag registers --staged on a file-discovering command.
func addStagedFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "staged", false, "without file arguments, check staged files instead of all tracked files")
}
