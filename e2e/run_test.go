package e2e_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("nbhooks run-notebooks", func() {
	var dir string

	BeforeEach(func() {
		dir = tempRepo()
		writeValidNotebook(dir, "demo.ipynb")
	})

	// writeEngine installs a stand-in for jupyter and points the config at it.
	writeEngine := func(body string) {
		engine := filepath.Join(dir, "fake-jupyter")
		Expect(os.WriteFile(engine, []byte("#!/bin/sh\n"+body+"\n"), 0o755)).To(Succeed())
		writeConfig(dir, "execute:\n  command: "+engine+"\n  timeout: 1m\n")
	}

	It("reports each executed notebook", func() {
		writeEngine("exit 0")
		out := nbhooksOK(dir, "run-notebooks", "demo.ipynb")
		Expect(out).To(HavePrefix("ok demo.ipynb"))
	})

	It("fails when the engine fails", func() {
		writeEngine(`echo "CellExecutionError" >&2; exit 1`)
		out := nbhooksFail(dir, "run-notebooks", "demo.ipynb")
		Expect(out).To(ContainSubstring("[ERROR] demo.ipynb:"))
		Expect(out).To(ContainSubstring("CellExecutionError"))
	})

	It("enforces --timeout", func() {
		writeEngine("sleep 30")
		out := nbhooksFail(dir, "run-notebooks", "--timeout", "300ms", "demo.ipynb")
		Expect(out).To(ContainSubstring("notebook execution timed out"))
	})
})
