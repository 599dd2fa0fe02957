// Package pipeline composes the splitter, canonicalizer and scorer
// into the record level transformation every consumer builds on.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/Prosono/HomeGPT/common/logger"
	"github.com/Prosono/HomeGPT/internal/model"
	"github.com/Prosono/HomeGPT/internal/report"
	"github.com/Prosono/HomeGPT/internal/score"
	"github.com/Prosono/HomeGPT/internal/taxonomy"
)

type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

// Analyze decomposes one record's summary into scored, canonically
// categorized sections. Total: any summary, however malformed, yields
// at least one scored section.
func (a *Analyzer) Analyze(ctx context.Context, record model.AnalysisRecord) []model.ScoredSection {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		AnalysisID: logger.Ptr(record.ID),
		Mode:       logger.Ptr(string(record.Mode)),
		Component:  "insights.pipeline",
	})

	sections := report.Split(record.Summary)

	scored := make([]model.ScoredSection, 0, len(sections))
	for _, section := range sections {
		category := taxonomy.Canonicalize(section.Title)
		scored = append(scored, model.ScoredSection{
			Category: category,
			Score:    score.Section(category, section.Content),
			Content:  section.Content,
		})
	}

	slog.DebugContext(ctx, "analyzed record", "section_count", len(scored))

	return scored
}
