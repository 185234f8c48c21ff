package classifier_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"supportpulse.app/pulse/internal/classifier"
)

var _ = Describe("Policy", func() {
	It("logs every source by default", func() {
		p := classifier.DefaultPolicy()
		Expect(p.AgentSourcesOnly).To(BeFalse())
		Expect(p.SystemTags).To(ConsistOf("auto-close", "spam", "ai-draft", "ai-reviewed"))
		Expect(p.AgentSourceTypes).To(ConsistOf("agent", "email"))
	})

	It("overlays only the keys present in the file", func() {
		p, err := classifier.ParsePolicy([]byte("agent_sources_only: true\n"), classifier.DefaultPolicy())
		Expect(err).NotTo(HaveOccurred())
		Expect(p.AgentSourcesOnly).To(BeTrue())
		Expect(p.AgentSourceTypes).To(ConsistOf("agent", "email"))
	})

	It("replaces lists that are present", func() {
		p, err := classifier.ParsePolicy([]byte("system_tags: [spam, vip]\n"), classifier.DefaultPolicy())
		Expect(err).NotTo(HaveOccurred())
		Expect(p.SystemTags).To(Equal([]string{"spam", "vip"}))
	})

	It("rejects an enabled filter with no sources", func() {
		_, err := classifier.ParsePolicy([]byte("agent_sources_only: true\nagent_source_types: []\n"), classifier.DefaultPolicy())
		Expect(err).To(HaveOccurred())
	})

	It("rejects malformed yaml", func() {
		_, err := classifier.ParsePolicy([]byte("system_tags: [unclosed"), classifier.DefaultPolicy())
		Expect(err).To(MatchError(ContainSubstring("parsing classifier policy")))
	})

	It("loads from disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "policy.yaml")
		Expect(os.WriteFile(path, []byte("agent_source_types: [agent]\n"), 0o600)).To(Succeed())

		p, err := classifier.LoadPolicy(path, classifier.DefaultPolicy())
		Expect(err).NotTo(HaveOccurred())
		Expect(p.AgentSourceTypes).To(Equal([]string{"agent"}))
	})

	It("reports a missing file", func() {
		_, err := classifier.LoadPolicy(filepath.Join(GinkgoT().TempDir(), "nope.yaml"), classifier.DefaultPolicy())
		Expect(err).To(MatchError(ContainSubstring("reading classifier policy")))
	})
})
