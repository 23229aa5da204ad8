package splitter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/caseweaver/internal/splitter"
)

var _ = Describe("Split", func() {
	It("should return an empty result when no markers exist", func() {
		sections := splitter.Split("Title: TC_1\nSteps to reproduce:\n1. x")
		Expect(sections.Empty()).To(BeTrue())
	})

	It("should return an empty result for empty input", func() {
		Expect(splitter.Split("").Empty()).To(BeTrue())
	})

	It("should extract a single section spanning to end of text", func() {
		text := "TEST TYPE: dashboard_functional\n\nTitle: TC_FUNC_1_Login\nPriority: High"
		sections := splitter.Split(text)

		Expect(sections.Order).To(Equal([]string{"dashboard_functional"}))
		Expect(sections.Content["dashboard_functional"]).To(Equal("Title: TC_FUNC_1_Login\nPriority: High"))
	})

	It("should extract one entry per marker, spanning marker to marker", func() {
		text := "TEST TYPE: functional\ncontent one\nTEST TYPE: security\ncontent two\nTEST TYPE: performance\ncontent three"
		sections := splitter.Split(text)

		Expect(sections.Order).To(HaveLen(3))
		Expect(sections.Content["functional"]).To(Equal("content one"))
		Expect(sections.Content["security"]).To(Equal("content two"))
		Expect(sections.Content["performance"]).To(Equal("content three"))
	})

	It("should trim whitespace from the label", func() {
		sections := splitter.Split("TEST TYPE:    edge cases   \nbody")
		Expect(sections.Order).To(Equal([]string{"edge cases"}))
	})

	It("should recognize a marker mid-line", func() {
		// The marker scan is regex-driven, not line-iteration driven.
		sections := splitter.Split("preamble TEST TYPE: smoke\nbody")
		Expect(sections.Order).To(Equal([]string{"smoke"}))
		Expect(sections.Content["smoke"]).To(Equal("body"))
	})

	It("should let a duplicate label overwrite earlier content but keep its position", func() {
		text := "TEST TYPE: regression\nfirst\nTEST TYPE: smoke\nmiddle\nTEST TYPE: regression\nsecond"
		sections := splitter.Split(text)

		Expect(sections.Order).To(Equal([]string{"regression", "smoke"}))
		Expect(sections.Content["regression"]).To(Equal("second"))
	})

	It("should be deterministic across invocations", func() {
		text := "TEST TYPE: a\none\nTEST TYPE: b\ntwo"
		first := splitter.Split(text)
		second := splitter.Split(text)

		Expect(second.Order).To(Equal(first.Order))
		Expect(second.Content).To(Equal(first.Content))
	})
})
