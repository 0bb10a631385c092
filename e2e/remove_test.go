package e2e_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("nbhooks install and remove", func() {
	var dir string

	BeforeEach(func() {
		dir = tempRepo()
	})

	It("installs the pre-commit hook and ignores the state dir", func() {
		out := nbhooksOK(dir, "install")
		Expect(out).To(ContainSubstring(".git/hooks/pre-commit"))

		preCommit := readFile(dir, ".git/hooks/pre-commit")
		Expect(preCommit).To(HavePrefix("#!/bin/sh"))
		Expect(preCommit).To(ContainSubstring("# >>> nbhooks >>>"))
		Expect(preCommit).To(ContainSubstring("nbhooks check-badges --staged"))
		Expect(readFile(dir, ".gitignore")).To(ContainSubstring("/.nbhooks/"))
	})

	It("is idempotent", func() {
		nbhooksOK(dir, "install")
		first := readFile(dir, ".git/hooks/pre-commit")
		nbhooksOK(dir, "install")
		Expect(readFile(dir, ".git/hooks/pre-commit")).To(Equal(first))
	})

	It("writes a default config only when asked", func() {
		nbhooksOK(dir, "install")
		Expect(fileExists(dir, ".nbhooks.yaml")).To(BeFalse())

		nbhooksOK(dir, "install", "--write-config")
		Expect(fileExists(dir, ".nbhooks.yaml")).To(BeTrue())
		Expect(nbhooksOK(dir, "validate")).To(Equal("valid"))
	})

	It("preserves other hook content when removing", func() {
		hooksDir := filepath.Join(dir, ".git", "hooks")
		Expect(os.MkdirAll(hooksDir, 0o755)).To(Succeed())
		existing := "#!/bin/sh\necho 'my custom hook'\n"
		Expect(os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte(existing), 0o755)).To(Succeed())
		writeFile(dir, ".gitignore", "*.pyc\n")

		nbhooksOK(dir, "install")
		Expect(readFile(dir, ".git/hooks/pre-commit")).To(ContainSubstring("my custom hook"))

		Expect(nbhooksOK(dir, "remove")).To(Equal("nbhooks removed"))
		Expect(readFile(dir, ".git/hooks/pre-commit")).To(Equal(existing))
		Expect(readFile(dir, ".gitignore")).To(Equal("*.pyc\n"))
	})

	It("deletes cached state", func() {
		writeFile(dir, ".nbhooks/issues.json", "{}")
		nbhooksOK(dir, "remove")
		Expect(fileExists(dir, ".nbhooks")).To(BeFalse())
	})

	It("is a no-op when nothing was installed", func() {
		nbhooksOK(dir, "remove")
		Expect(fileExists(dir, ".gitignore")).To(BeFalse())
	})

	It("refuses to install outside a git repository", func() {
		plain := GinkgoT().TempDir()
		out := nbhooksFail(plain, "install")
		Expect(out).To(ContainSubstring("is not a git repository"))
	})
})
