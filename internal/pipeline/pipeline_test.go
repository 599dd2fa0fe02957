package pipeline_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Prosono/HomeGPT/internal/model"
	"github.com/Prosono/HomeGPT/internal/pipeline"
)

var _ = Describe("Analyzer", func() {
	var analyzer *pipeline.Analyzer

	BeforeEach(func() {
		analyzer = pipeline.New()
	})

	analyze := func(summary string) []model.ScoredSection {
		return analyzer.Analyze(context.Background(), model.AnalysisRecord{ID: 1, Summary: summary})
	}

	It("splits, canonicalizes and scores a two-section report", func() {
		sections := analyze("Security\nFront door left unlocked for 3 hours.\n\nComfort\nLiving room is 1°C below target.")

		Expect(sections).To(HaveLen(2))
		Expect(sections[0].Category).To(Equal(model.CategorySecurity))
		Expect(sections[1].Category).To(Equal(model.CategoryComfort))
		Expect(sections[0].Score).To(BeNumerically(">", sections[1].Score))
	})

	It("maps natural-language headings onto canonical categories", func() {
		sections := analyze("Estimated Presence\nTwo people home.\n\nNext steps:\n- lock the front door")

		Expect(sections).To(HaveLen(2))
		Expect(sections[0].Category).To(Equal(model.CategoryPresence))
		Expect(sections[1].Category).To(Equal(model.CategoryActions))
	})

	It("falls back to one generic section for unlexable input", func() {
		sections := analyze("")

		Expect(sections).To(HaveLen(1))
		Expect(sections[0].Category).To(Equal(model.CategoryGeneric))
		Expect(sections[0].Score).To(BeNumerically(">=", 0))
	})

	It("is deterministic across invocations", func() {
		summary := "Anomalies\n- spike on the mains\n\nSecurity\nGarage door open."
		Expect(analyze(summary)).To(Equal(analyze(summary)))
	})
})
