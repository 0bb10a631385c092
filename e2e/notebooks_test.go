package e2e_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("nbhooks check-notebooks", func() {
	var dir string
	const nb = "demo.ipynb"

	BeforeEach(func() {
		dir = tempRepo()
	})

	It("passes clean notebooks", func() {
		writeValidNotebook(dir, nb)
		Expect(nbhooksOK(dir, "check-notebooks", nb)).To(BeEmpty())
	})

	It("reports stderr output but tolerates joblib progress", func() {
		stderr := func(text string) string {
			return cellJSON("code", "run()", map[string]any{
				"execution_count": 1,
				"outputs":         []any{map[string]any{"output_type": "stream", "name": "stderr", "text": text}},
			})
		}
		writeFile(dir, nb, notebookJSON(stderr("[Parallel(n_jobs=2)]: Done"), stderr("UserWarning: careful\n")))
		out := nbhooksFail(dir, "check-notebooks", nb)
		Expect(out).To(ContainSubstring("[ERROR] demo.ipynb: cell 1 has stderr output: UserWarning: careful"))
		Expect(out).NotTo(ContainSubstring("cell 0"))
	})

	It("reports cells without execution_count", func() {
		writeFile(dir, nb, notebookJSON(cellJSON("code", "x = 1", map[string]any{"outputs": []any{}})))
		out := nbhooksFail(dir, "check-notebooks", nb)
		Expect(out).To(ContainSubstring("cell 0 is missing the execution_count attribute"))
	})

	It("reports direct plt.show() calls", func() {
		writeFile(dir, nb, notebookJSON(codeCell("import matplotlib.pyplot as plt\nplt.show()")))
		out := nbhooksFail(dir, "check-notebooks", nb)
		Expect(out).To(ContainSubstring("calls plt.show( directly; use show_plot()"))
	})

	It("enforces the configured size limit", func() {
		writeConfig(dir, "notebooks:\n  max_size: 1 kB\n")
		writeFile(dir, nb, notebookJSON(codeCell(strings.Repeat("x", 2000))))
		out := nbhooksFail(dir, "check-notebooks", nb)
		Expect(out).To(ContainSubstring("exceeds the limit of 1.0 kB"))
	})

	It("checks staged notebooks with --staged", func() {
		writeFile(dir, nb, notebookJSON(cellJSON("code", "x = 1", map[string]any{"outputs": []any{}})))
		Expect(nbhooksOK(dir, "check-notebooks", "--staged")).To(BeEmpty())

		git(dir, "add", nb)
		out := nbhooksFail(dir, "check-notebooks", "--staged")
		Expect(out).To(ContainSubstring("[ERROR] demo.ipynb:"))
	})
})
