package e2e_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("nbhooks check-todos", func() {
	var dir string

	BeforeEach(func() {
		dir = tempRepo()
		writeConfig(dir, "issues:\n  enabled: false\n")
	})

	It("requires an issue reference on every TODO and FIXME", func() {
		writeFile(dir, "mod.py", "x = 1  # TODO #12\ny = 2  # FIXME later\n")
		out := nbhooksFail(dir, "check-todos", "mod.py")
		Expect(out).To(ContainSubstring("[ERROR] mod.py:2: TODO/FIXME not annotated with issue id (y = 2  # FIXME later)"))
		Expect(out).NotTo(ContainSubstring("mod.py:1"))
	})

	It("scans tracked files when none are given", func() {
		writeFile(dir, "a.py", "# TODO #3\n")
		writeFile(dir, "untracked.py", "# TODO\n")
		git(dir, "add", "a.py", ".nbhooks.yaml")
		Expect(nbhooksOK(dir, "check-todos")).To(BeEmpty())
	})
})
