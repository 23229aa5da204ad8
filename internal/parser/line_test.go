package parser_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/caseweaver/internal/parser"
)

var _ = Describe("LineStrategy", func() {
	var s *parser.LineStrategy

	BeforeEach(func() {
		s = &parser.LineStrategy{}
	})

	It("should accept any text", func() {
		Expect(s.CanParse("anything")).To(BeTrue())
	})

	It("should return nothing for text without a title marker", func() {
		cases := s.Parse("Just some prose.\nNothing structured here.", "General")
		Expect(cases).To(BeEmpty())
	})

	It("should close the previous record when a new title appears without a blank line", func() {
		text := "Title: First case\nScenario: one\nSteps:\n- do a\n- do b\nExpected Result: ok\nTitle: Second case\nScenario: two"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(2))
		Expect(cases[0].Title).To(Equal("First case"))
		Expect(cases[0].Steps).To(Equal([]string{"do a", "do b"}))
		Expect(cases[0].ExpectedResult).To(Equal("ok"))
		Expect(cases[1].Title).To(Equal("Second case"))
		Expect(cases[1].Scenario).To(Equal("two"))
	})

	It("should flush an open record at end of input, including open steps", func() {
		text := "Title: Tail case\nSteps:\n1. only step"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Steps).To(Equal([]string{"only step"}))
	})

	It("should accept the Steps to reproduce: variant and numeric marker prefixes", func() {
		text := "1. Title: Numbered case\nSteps to reproduce:\n1. go\nExpected Result: fine"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Title).To(Equal("Numbered case"))
		Expect(cases[0].Steps).To(Equal([]string{"go"}))
	})

	It("should strip bold decoration from field markers", func() {
		text := "**Title:** Bold case\n**Scenario:** decorated\n**Priority:** High"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Title).To(Equal("Bold case"))
		Expect(cases[0].Scenario).To(Equal("decorated"))
		Expect(cases[0].Priority).To(Equal("High"))
	})

	It("should update the section from markdown headings for subsequent records", func() {
		text := "Title: Before heading\n### Regression\nTitle: After heading"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(2))
		Expect(cases[0].Section).To(Equal("General"))
		Expect(cases[1].Section).To(Equal("Regression"))
	})

	It("should fall back to the default section for an empty heading", func() {
		text := "###\nTitle: Case"
		cases := s.Parse(text, "Smoke")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Section).To(Equal("Smoke"))
	})

	It("should start the expected result from the line that ends step accumulation", func() {
		text := "Title: Case\nSteps:\n1. one\nExpected Result: all good\nmore detail"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Steps).To(Equal([]string{"one"}))
		Expect(cases[0].ExpectedResult).To(Equal("all good more detail"))
	})

	It("should keep unmarked non-blank lines as standalone steps", func() {
		text := "Title: Case\nSteps:\n1. marked\nunmarked step text\n- also marked\nExpected Result: ok"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Steps).To(Equal([]string{"marked", "unmarked step text", "also marked"}))
	})

	It("should append continuation lines to the priority field", func() {
		text := "Title: Case\nPriority: High\nThis is additional context."
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Priority).To(Equal("High This is additional context."))
	})

	It("should route continuation lines by field priority", func() {
		text := "Title: Case\nScenario: base\nExpected Result: shown\nstray line"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].ExpectedResult).To(Equal("shown stray line"))
		Expect(cases[0].Scenario).To(Equal("base"))
	})

	It("should route continuations to an empty-valued field that was opened by a marker", func() {
		text := "Title: Case\nExpected Result: ok\nActual Result:\nobserved crash"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].ActualResult).To(Equal("observed crash"))
	})

	It("should parse a standalone Status line", func() {
		text := "Title: Case\nStatus: Passed"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Status).To(Equal("Passed"))
	})

	It("should preserve optional fields like preconditions", func() {
		text := "Title: Case\nPreconditions: user exists\nPriority: Low"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Extras).To(HaveKeyWithValue("Preconditions", "user exists"))
	})

	It("should set the scenario even while steps are being accumulated", func() {
		text := "Title: Case\nSteps:\n1. one\nScenario: late scenario\n2. two\nExpected Result: ok"
		cases := s.Parse(text, "General")

		Expect(cases).To(HaveLen(1))
		Expect(cases[0].Scenario).To(Equal("late scenario"))
		Expect(cases[0].Steps).To(Equal([]string{"one", "two"}))
	})
})
