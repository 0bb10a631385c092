package e2e_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("nbhooks check-imports", func() {
	var dir string

	BeforeEach(func() {
		dir = tempRepo()
	})

	It("rejects the legacy notebook_vars import outside skipped files", func() {
		src := "from PySDM_examples.utils import notebook_vars\n"
		writeFile(dir, "tests/test_fig.py", src)
		writeFile(dir, "tests/__init__.py", src)
		out := nbhooksFail(dir, "check-imports", "tests/test_fig.py", "tests/__init__.py")
		Expect(out).To(ContainSubstring("[ERROR] tests/test_fig.py: forbidden import"))
		Expect(out).To(ContainSubstring("Please use open-atmos-jupyter-utils package."))
		Expect(out).NotTo(ContainSubstring("__init__.py"))
	})
})

var _ = Describe("nbhooks check-build-requirements", func() {
	var dir string

	BeforeEach(func() {
		dir = tempRepo()
	})

	It("passes when both files list the same requirements", func() {
		writeFile(dir, "pyproject.toml", "[build-system]\nrequires = [\"setuptools\", \"setuptools-scm\"]\n")
		writeFile(dir, "examples/pyproject.toml", "[build-system]\nrequires = [\"setuptools\", \"setuptools-scm\"]\n")
		nbhooksOK(dir, "check-build-requirements")
	})

	It("fails when the requirements differ", func() {
		writeFile(dir, "pyproject.toml", "[build-system]\nrequires = [\"setuptools\"]\n")
		writeFile(dir, "examples/pyproject.toml", "[build-system]\nrequires = [\"setuptools\", \"wheel\"]\n")
		out := nbhooksFail(dir, "check-build-requirements")
		Expect(out).To(ContainSubstring("[ERROR] pyproject.toml: build-system.requires differ"))
		Expect(out).To(ContainSubstring("wheel"))
	})
})
