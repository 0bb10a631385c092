package config

import "encoding/json"

func stringList(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"items":       map[string]any{"type": "string"},
	}
}

// Schema returns a JSON Schema describing .nbhooks.yaml as indented JSON.
func Schema() []byte {
	schema := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                ".nbhooks.yaml",
		"description":          "Configuration for nbhooks, pre-commit checks for Jupyter notebooks tracked in a git repository.",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"repository": map[string]any{
				"description":          "Where the badge links point. Defaults: owner open-atmos, branch main, name from the repository root directory.",
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"owner":  map[string]any{"type": "string", "description": "GitHub organisation or user owning the repository."},
					"name":   map[string]any{"type": "string", "description": "Repository name. Overridden by --repo-name."},
					"branch": map[string]any{"type": "string", "description": "Branch the badges link to."},
				},
			},
			"header": map[string]any{
				"description":          "The platform-setup code cell expected at index 2.",
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"template": map[string]any{
						"type":        "string",
						"description": "Go text/template for the canonical header. Fields: .Repo (repository name) and .Version (\"==<version>\" or empty).",
					},
					"markers": stringList("Substrings that must all appear in a code cell for it to be recognized as a (possibly outdated) header."),
					"version": map[string]any{"type": "string", "description": "Optional version pinned in the header. Overridden by --version."},
				},
			},
			"notebooks": map[string]any{
				"description":          "Output cleanliness checks.",
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"max_size":        map[string]any{"type": "string", "description": "Size limit such as \"2 MB\". Empty disables the check."},
					"stderr_allow":    stringList("Prefixes of stderr outputs that are tolerated (e.g. joblib progress)."),
					"forbidden_calls": stringList("Code fragments that must not appear in code cells; show_plot() should be used instead."),
				},
			},
			"issues": map[string]any{
				"description":          "TODO/FIXME annotation checks against GitHub issues.",
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"enabled":   map[string]any{"type": "boolean", "description": "Query the issue tracker. When false only annotation syntax is checked."},
					"token_env": map[string]any{"type": "string", "description": "Environment variable holding a GitHub token."},
					"cache_ttl": map[string]any{"type": "string", "description": "How long fetched issue states are reused, e.g. \"1h\". Zero disables caching."},
				},
			},
			"python": map[string]any{
				"description":          "Checks over tracked .py files.",
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"forbidden_imports": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":                 "object",
							"required":             []string{"pattern"},
							"additionalProperties": false,
							"properties": map[string]any{
								"pattern": map[string]any{"type": "string", "description": "Text that must not appear in the file."},
								"message": map[string]any{"type": "string", "description": "Hint printed with the error."},
							},
						},
					},
					"skip": stringList("File base names exempt from the forbidden-import check."),
				},
			},
			"build_requirements": map[string]any{
				"type":        "array",
				"description": "Pairs of pyproject.toml paths whose build-system.requires must be identical.",
				"items": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
					"maxItems": 2,
				},
			},
			"execute": map[string]any{
				"description":          "Notebook execution through jupyter nbconvert.",
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"command": map[string]any{"type": "string", "description": "Executable providing the nbconvert subcommand."},
					"kernel":  map[string]any{"type": "string", "description": "Kernel name passed to the execute preprocessor."},
					"timeout": map[string]any{"type": "string", "description": "Per-notebook timeout, e.g. \"15m\"."},
				},
			},
		},
	}

	out, _ := json.MarshalIndent(schema, "", "  ")
	return out
}
