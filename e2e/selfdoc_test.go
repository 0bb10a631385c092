package e2e_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("nbhooks schema", func() {
	It("outputs valid JSON with expected top-level keys", func() {
		dir := tempRepo()
		out := nbhooksOK(dir, "schema")

		var schema map[string]any
		Expect(json.Unmarshal([]byte(out), &schema)).To(Succeed())
		Expect(schema).To(HaveKey("description"))

		props, ok := schema["properties"].(map[string]any)
		Expect(ok).To(BeTrue(), "schema should have properties")
		Expect(props).To(HaveKey("repository"))
		Expect(props).To(HaveKey("header"))
		Expect(props).To(HaveKey("issues"))
		Expect(props["header"].(map[string]any)).To(HaveKey("description"))
	})
})

var _ = Describe("nbhooks validate", func() {
	var dir string

	BeforeEach(func() {
		dir = tempRepo()
	})

	It("prints valid for a correct config", func() {
		writeConfig(dir, "repository:\n  name: PySDM\n")
		Expect(nbhooksOK(dir, "validate")).To(Equal("valid"))
	})

	It("reports each problem", func() {
		writeConfig(dir, "header:\n  markers: []\nexecute:\n  timeout: 0s\n")
		out := nbhooksFail(dir, "validate")
		Expect(out).To(ContainSubstring("header.markers: at least one marker is required"))
		Expect(out).To(ContainSubstring("execute.timeout: must be positive"))
	})

	It("rejects unparsable YAML", func() {
		writeConfig(dir, "repository: [")
		out := nbhooksFail(dir, "validate")
		Expect(out).To(ContainSubstring("parsing config"))
	})

	It("makes check commands fail on an invalid config", func() {
		writeConfig(dir, "notebooks:\n  max_size: lots\n")
		out := nbhooksFail(dir, "check-notebooks")
		Expect(out).To(HavePrefix("Error: invalid config"))
	})
})

var _ = Describe("nbhooks explain and version", func() {
	It("prints the reference", func() {
		out := nbhooksOK(tempRepo(), "explain")
		Expect(out).To(ContainSubstring("check-badges"))
		Expect(out).To(ContainSubstring(".nbhooksignore"))
	})

	It("prints the version", func() {
		Expect(nbhooksOK(tempRepo(), "version")).To(Equal("nbhooks dev"))
	})
})
