// Package heatmap buckets analysis records into a dense, gap-free
// hour-by-category matrix over a sliding lookback window.
package heatmap

import (
	"context"
	"log/slog"
	"time"

	"github.com/Prosono/HomeGPT/common/logger"
	"github.com/Prosono/HomeGPT/internal/model"
	"github.com/Prosono/HomeGPT/internal/pipeline"
)

// DefaultLookbackHours is the window used when the caller does not
// request a specific one.
const DefaultLookbackHours = 24

type Aggregator struct {
	analyzer *pipeline.Analyzer
}

func New(analyzer *pipeline.Analyzer) *Aggregator {
	return &Aggregator{analyzer: analyzer}
}

// Build produces the heatmap matrix for the given records. The bucket
// sequence is generated up front from the hour-aligned end instant, so
// the grid has exactly hoursBack slots with no gaps no matter how
// sparse or irregular the records are. Records outside the window are
// discarded; a record without a usable timestamp counts as "now".
//
// Given the same records and the same now truncated to the hour, the
// output is identical on every invocation.
func (a *Aggregator) Build(ctx context.Context, records []model.AnalysisRecord, hoursBack int, now time.Time) model.HeatmapMatrix {
	if hoursBack < 1 {
		hoursBack = DefaultLookbackHours
	}

	sc := logger.StartSpan(ctx, "heatmap.build")
	defer sc.End()
	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{
		WindowHours: logger.Ptr(hoursBack),
		Component:   "insights.heatmap",
	})

	end := now.UTC().Truncate(time.Hour)
	first := end.Add(-time.Duration(hoursBack-1) * time.Hour)

	buckets := make([]model.TimeBucket, hoursBack)
	for i := range buckets {
		scores := make(map[model.Category]int, len(model.HeatCategories))
		for _, c := range model.HeatCategories {
			scores[c] = 0
		}
		buckets[i] = model.TimeBucket{
			Start:  first.Add(time.Duration(i) * time.Hour),
			Scores: scores,
		}
	}

	dropped := 0
	for _, record := range records {
		ts := record.Time(now).UTC()
		if ts.Before(first) || !ts.Before(end.Add(time.Hour)) {
			dropped++
			continue
		}
		idx := int(ts.Sub(first) / time.Hour)
		bucket := &buckets[idx]
		bucket.Records = append(bucket.Records, record)

		for _, section := range a.analyzer.Analyze(ctx, record) {
			if !section.Category.IsHeat() {
				continue
			}
			bucket.Scores[section.Category] += section.Score
		}
	}

	max := make(map[model.Category]int, len(model.HeatCategories))
	for _, c := range model.HeatCategories {
		max[c] = 1 // floor avoids division by zero in the renderer
		for _, b := range buckets {
			if b.Scores[c] > max[c] {
				max[c] = b.Scores[c]
			}
		}
	}

	if dropped > 0 {
		slog.DebugContext(ctx, "discarded records outside lookback window", "dropped", dropped)
	}

	return model.HeatmapMatrix{Buckets: buckets, Max: max}
}
