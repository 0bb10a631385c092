package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const explainText = `nbhooks - pre-commit checks for Jupyter notebooks

PURPOSE
  nbhooks keeps example notebooks in a git repository uniform: every
  notebook opens with badges linking to GitHub, mybinder.org and Colab, a
  markdown description, and a setup cell that installs the examples
  package when running on Colab. It also keeps notebook outputs clean and
  TODO comments tied to open issues.

COMMANDS
  check-badges      Cell 0 must be markdown holding exactly three lines: the
                    GitHub preview, MyBinder and Colab badges for this
                    notebook's path. Cell 1 must be markdown. With --fix
                    (default) the setup cell is rewritten, moved to index 2
                    or inserted, and the command fails if any file changed.
                    Notebooks with fewer than 3 cells are never rewritten.
                    With --fix=false the setup cell is only checked.
  check-notebooks   No stderr outputs (joblib progress excepted), an
                    execution_count key on every non-empty code cell, file
                    size below notebooks.max_size, and no direct
                    pyplot.show()/plt.show() calls (use show_plot()).
  check-todos       Every TODO/FIXME reads "TODO #<n>" where issue n exists
                    and is open. Issue states are fetched from GitHub and
                    cached under .nbhooks/ for issues.cache_ttl. If GitHub
                    refuses access only the syntax is checked.
  check-imports     Python files must not contain python.forbidden_imports
                    patterns. Files named in python.skip are exempt.
  check-build-requirements
                    Each build_requirements pair of pyproject.toml files
                    must list identical build-system.requires.
  run-notebooks     Execute notebooks with jupyter nbconvert under a
                    per-notebook timeout (default 15m).
  install           Add the nbhooks block to .git/hooks/pre-commit and
                    /.nbhooks/ to .gitignore. Preserves existing content.
                    Safe to re-run.
  remove            Undo install and delete .nbhooks/. Safe to run when
                    nbhooks was never installed.
  schema            Output the JSON Schema of .nbhooks.yaml.
  validate          Validate .nbhooks.yaml and print errors, or "valid".
  explain           Print this reference.

FILES
  Without file arguments the check commands use git ls-files (or the
  index with --staged). Paths matching .nbhooksignore (gitignore syntax)
  are skipped. The repository root is PRE_COMMIT_REPOROOT when set,
  otherwise the git top-level directory. The repository name is
  --repo-name, then repository.name, then the root directory's name.

OUTPUT
  One line per problem: [ERROR] <path>: <message>. check-badges ends
  with a summary when it rewrote files. The exit status is 1 when any
  problem was found or any file rewritten.

CONFIG FORMAT (.nbhooks.yaml)
  Looked up at the repository root; -p/--path selects another file.
  Every key is optional.

  repository: {owner: open-atmos, name: PySDM, branch: main}
  header:
    template: "..."        # Go text/template with .Repo and .Version
    markers: [install open-atmos-jupyter-utils, google.colab, pip_install_on_colab]
    version: ""            # pins <repo>-examples==<version>
  notebooks: {max_size: 2 MB, stderr_allow: ["[Parallel(n_jobs="], forbidden_calls: [pyplot.show(, plt.show(]}
  issues: {enabled: true, token_env: GITHUB_TOKEN, cache_ttl: 1h}
  python:
    forbidden_imports: [{pattern: "from PySDM_examples.utils import notebook_vars", message: "..."}]
    skip: [__init__.py]
  build_requirements: [[pyproject.toml, examples/pyproject.toml]]
  execute: {command: jupyter, kernel: python3, timeout: 15m}`

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print a reference for nbhooks",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), explainText)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
