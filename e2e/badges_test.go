package e2e_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("nbhooks check-badges", func() {
	var dir string
	const nb = "examples/demo.ipynb"

	BeforeEach(func() {
		dir = tempRepo()
	})

	It("passes a conforming notebook silently", func() {
		writeValidNotebook(dir, nb)
		out := nbhooksOK(dir, "check-badges", nb)
		Expect(out).To(BeEmpty())
	})

	It("inserts a missing setup cell and fails once", func() {
		writeFile(dir, nb, notebookJSON(badgeCell(dir, nb), mdCell("# Demo"), codeCell("x = 1")))

		out := nbhooksFail(dir, "check-badges", nb)
		Expect(out).To(ContainSubstring("reformatted " + nb))
		Expect(out).To(ContainSubstring("All done! ✨ 🍰 ✨"))
		Expect(out).To(ContainSubstring("1 file reformatted, 0 files left unchanged."))

		sources := cellSources(dir, nb)
		Expect(sources).To(HaveLen(4))
		Expect(sources[2]).To(Equal(headerText(dir)))
		Expect(sources[3]).To(Equal("x = 1"))

		before := readFile(dir, nb)
		Expect(nbhooksOK(dir, "check-badges", nb)).To(BeEmpty())
		Expect(readFile(dir, nb)).To(Equal(before))
	})

	It("moves and corrects an outdated setup cell", func() {
		outdated := "if 'google.colab' in sys.modules:\n    !pip install open-atmos-jupyter-utils\n    pip_install_on_colab('old')"
		writeFile(dir, nb, notebookJSON(badgeCell(dir, nb), mdCell("# Demo"), codeCell("x = 1"), codeCell(outdated)))

		nbhooksFail(dir, "check-badges", nb)
		sources := cellSources(dir, nb)
		Expect(sources).To(HaveLen(4))
		Expect(sources[2]).To(Equal(headerText(dir)))
		Expect(sources[3]).To(Equal("x = 1"))
	})

	It("reports badge problems with the [ERROR] prefix", func() {
		writeFile(dir, nb, notebookJSON(mdCell("no badges"), mdCell("# Demo"), codeCell(headerText(dir))))
		out := nbhooksFail(dir, "check-badges", nb)
		Expect(out).To(ContainSubstring("[ERROR] " + nb + ": first cell does not contain exactly 3 lines (badges), found 1"))
		Expect(out).NotTo(ContainSubstring("reformatted"))
	})

	It("only checks the setup cell with --fix=false", func() {
		content := notebookJSON(badgeCell(dir, nb), mdCell("# Demo"), codeCell("x = 1"))
		writeFile(dir, nb, content)
		out := nbhooksFail(dir, "check-badges", "--fix=false", nb)
		Expect(out).To(ContainSubstring("third cell does not contain the expected Colab header"))
		Expect(readFile(dir, nb)).To(Equal(content))
	})

	It("pins the examples version with --version", func() {
		writeFile(dir, nb, notebookJSON(badgeCell(dir, nb), mdCell("# Demo"), codeCell("x = 1")))
		nbhooksFail(dir, "check-badges", "--version", "2.1", nb)
		Expect(cellSources(dir, nb)[2]).To(ContainSubstring(repoName(dir) + "-examples==2.1"))
	})

	It("uses --repo-name in badges", func() {
		writeValidNotebook(dir, nb)
		out := nbhooksFail(dir, "check-badges", "--repo-name", "PySDM", "--fix=false", nb)
		Expect(out).To(ContainSubstring("first badge does not match GitHub preview badge"))
		Expect(out).To(ContainSubstring("open-atmos/PySDM/blob/main/" + nb))
	})

	It("leaves notebooks with fewer than 3 cells untouched", func() {
		content := notebookJSON(badgeCell(dir, nb), mdCell("# Demo"))
		writeFile(dir, nb, content)
		out := nbhooksFail(dir, "check-badges", nb)
		Expect(out).To(ContainSubstring("notebook should have at least 3 cells, found 2"))
		Expect(readFile(dir, nb)).To(Equal(content))
	})

	It("reports unreadable notebooks and keeps going", func() {
		writeValidNotebook(dir, nb)
		writeFile(dir, "broken.ipynb", "{not json")
		out := nbhooksFail(dir, "check-badges", "broken.ipynb", nb)
		Expect(out).To(ContainSubstring("[ERROR] broken.ipynb:"))
		Expect(out).NotTo(ContainSubstring("[ERROR] " + nb))
	})

	It("discovers tracked notebooks and honours .nbhooksignore", func() {
		writeValidNotebook(dir, nb)
		writeFile(dir, "drafts/wip.ipynb", notebookJSON(mdCell("wip")))
		writeFile(dir, ".nbhooksignore", "drafts/\n")
		git(dir, "add", ".")

		Expect(nbhooksOK(dir, "check-badges")).To(BeEmpty())
	})

	It("reads repository settings from .nbhooks.yaml", func() {
		writeConfig(dir, "repository:\n  owner: someone\n  branch: develop\n")
		writeValidNotebook(dir, nb)
		out := nbhooksFail(dir, "check-badges", "--fix=false", nb)
		Expect(out).To(ContainSubstring("github.com/someone/" + repoName(dir) + "/blob/develop/" + nb))
	})
})
