package report_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/caseweaver/internal/domain"
	"github.com/frherrer/caseweaver/internal/report"
)

var _ = Describe("DefaultEngine", func() {
	sampleReport := func() domain.Report {
		return domain.Report{
			ID:          "4f2c9a10-0000-0000-0000-000000000000",
			GeneratedAt: time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC),
			SourceType:  "Text",
			TestData: []domain.TestCase{
				{
					Section:        "Functional",
					Title:          "TC_FUNC_1_Login",
					Scenario:       "User logs in with valid credentials",
					Steps:          []string{"Open the login page", "Submit valid credentials"},
					ExpectedResult: "User lands on the dashboard",
					Priority:       "High",
				},
				{Section: "Functional", Title: "TC_FUNC_2_Logout"},
			},
			StatusValues: map[string]string{},
		}
	}

	Describe("embedded templates", func() {
		It("should load the default markdown template", func() {
			engine, err := report.NewEngine("")
			Expect(err).ToNot(HaveOccurred())
			Expect(engine.ListTemplates()).To(ContainElement("markdown_report"))
		})
	})

	Describe("Render", func() {
		var engine *report.DefaultEngine

		BeforeEach(func() {
			var err error
			engine, err = report.NewEngine("")
			Expect(err).ToNot(HaveOccurred())
		})

		It("should render the report header and each test case", func() {
			out, err := engine.Render(sampleReport(), "markdown_report")
			Expect(err).ToNot(HaveOccurred())

			Expect(out).To(ContainSubstring("# Test Case Report"))
			Expect(out).To(ContainSubstring("Total test cases: 2"))
			Expect(out).To(ContainSubstring("## 1. TC_FUNC_1_Login"))
			Expect(out).To(ContainSubstring("## 2. TC_FUNC_2_Logout"))
			Expect(out).To(ContainSubstring("- Priority: High"))
			Expect(out).To(ContainSubstring("1. Open the login page\n2. Submit valid credentials"))
			Expect(out).To(ContainSubstring("Expected Result: User lands on the dashboard"))
		})

		It("should omit empty optional fields", func() {
			out, err := engine.Render(sampleReport(), "markdown_report")
			Expect(err).ToNot(HaveOccurred())

			Expect(out).ToNot(ContainSubstring("Actual Result:"))
			Expect(out).ToNot(ContainSubstring("Status:"))
		})

		It("should fail for an unknown template", func() {
			_, err := engine.Render(sampleReport(), "does_not_exist")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not found"))
		})
	})

	Describe("template directory overrides", func() {
		It("should shadow embedded templates with the same name", func() {
			dir := GinkgoT().TempDir()
			custom := []byte("CUSTOM {{ .SourceType }} ({{ len .TestData }} cases)\n")
			Expect(os.WriteFile(filepath.Join(dir, "markdown_report.tmpl"), custom, 0644)).To(Succeed())

			engine, err := report.NewEngine(dir)
			Expect(err).ToNot(HaveOccurred())

			out, err := engine.Render(sampleReport(), "markdown_report")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal("CUSTOM Text (2 cases)\n"))
		})

		It("should register additional templates from the directory", func() {
			dir := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(dir, "summary.tmpl"), []byte("{{ len .TestData }}"), 0644)).To(Succeed())

			engine, err := report.NewEngine(dir)
			Expect(err).ToNot(HaveOccurred())
			Expect(engine.ListTemplates()).To(ContainElements("markdown_report", "summary"))

			out, err := engine.Render(sampleReport(), "summary")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal("2"))
		})

		It("should fail for a missing directory", func() {
			_, err := report.NewEngine(filepath.Join(GinkgoT().TempDir(), "missing"))
			Expect(err).To(HaveOccurred())
		})
	})
})
