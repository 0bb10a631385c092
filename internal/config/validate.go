package config

import (
	"fmt"

	"github.com/open-atmos/nbhooks/internal/header"
)

// Validate checks a loaded Config for semantic errors beyond what Load catches.
// Returns a list of human/agent-readable error strings, one per issue.
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Repository.Owner == "" {
		errs = append(errs, "repository.owner: required field is empty")
	}
	if cfg.Repository.Branch == "" {
		errs = append(errs, "repository.branch: required field is empty")
	}

	if len(cfg.Header.Markers) == 0 {
		errs = append(errs, "header.markers: at least one marker is required")
	}
	for i, m := range cfg.Header.Markers {
		if m == "" {
			errs = append(errs, fmt.Sprintf("header.markers[%d]: empty marker matches every cell", i))
		}
	}
	if text, err := header.Render(cfg.Header.Template, "example", cfg.Header.Version); err != nil {
		errs = append(errs, fmt.Sprintf("header.template: %s", err))
	} else if len(cfg.Header.Markers) > 0 && !header.IsHeader(text, cfg.Header.Markers) {
		errs = append(errs, "header.template: rendered header does not contain every marker")
	}

	if _, err := cfg.MaxSizeBytes(); err != nil {
		errs = append(errs, err.Error())
	}

	if cfg.Issues.CacheTTL < 0 {
		errs = append(errs, "issues.cache_ttl: must not be negative")
	}

	for i, fi := range cfg.Python.ForbiddenImports {
		if fi.Pattern == "" {
			errs = append(errs, fmt.Sprintf("python.forbidden_imports[%d].pattern: required field is empty", i))
		}
	}

	for i, pair := range cfg.BuildRequirements {
		if len(pair) != 2 {
			errs = append(errs, fmt.Sprintf("build_requirements[%d]: expected 2 files, got %d", i, len(pair)))
		}
	}

	if cfg.Execute.Command == "" {
		errs = append(errs, "execute.command: required field is empty")
	}
	if cfg.Execute.Timeout <= 0 {
		errs = append(errs, "execute.timeout: must be positive")
	}

	return errs
}
