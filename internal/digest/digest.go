// Package digest derives the compact card summary of a single report:
// which categories it touches, its first salient points, and a short
// numeric series for a sparkline.
package digest

import (
	"regexp"
	"strconv"

	"github.com/Prosono/HomeGPT/internal/model"
	"github.com/Prosono/HomeGPT/internal/report"
	"github.com/Prosono/HomeGPT/internal/taxonomy"
)

const (
	maxCategories  = 4
	maxLeadPoints  = 2
	minSparkCount  = 4
	maxSparkPoints = 20
	minLeadLength  = 24
)

// The hero section of a report (its "Summary"/"Details" lead-in)
// canonicalizes to generic; listing it as a present category would say
// nothing, so it is excluded from the chip row.
const heroCategory = model.CategoryGeneric

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Build computes the preview digest for one report summary.
func Build(summary string) model.PreviewDigest {
	sections := report.Split(summary)

	return model.PreviewDigest{
		Categories:  categoriesPresent(sections),
		LeadPoints:  leadPoints(sections),
		SparkSeries: sparkSeries(summary),
	}
}

func categoriesPresent(sections []model.Section) []model.Category {
	var present []model.Category
	seen := map[model.Category]bool{}
	for _, section := range sections {
		if section.Title == "" {
			continue
		}
		category := taxonomy.Canonicalize(section.Title)
		if category == heroCategory || seen[category] {
			continue
		}
		seen[category] = true
		present = append(present, category)
		if len(present) == maxCategories {
			break
		}
	}
	return present
}

// leadPoints walks sections in order, preferring list items; a section
// without usable items falls back to its first sufficiently long
// paragraphs. Collection stops at the cap across the whole report.
func leadPoints(sections []model.Section) []string {
	var points []string
	for _, section := range sections {
		fromList := false
		for _, b := range section.Content {
			if b.Kind != model.BlockList {
				continue
			}
			for _, item := range b.Items {
				if item == "" {
					continue
				}
				fromList = true
				points = append(points, item)
				if len(points) == maxLeadPoints {
					return points
				}
			}
		}
		if fromList {
			continue
		}
		for _, b := range section.Content {
			if b.Kind != model.BlockParagraph {
				continue
			}
			text := report.StripInline(b.Text)
			if len(text) <= minLeadLength {
				continue
			}
			points = append(points, text)
			if len(points) == maxLeadPoints {
				return points
			}
		}
	}
	return points
}

// sparkSeries extracts every numeric literal from the summary (code
// spans removed first) in order of appearance. Fewer than four numbers
// is not a series; more than twenty are down-sampled by even striding
// so the renderer cost stays bounded while the shape survives.
func sparkSeries(summary string) []float64 {
	matches := numberPattern.FindAllString(report.StripCodeSpans(summary), -1)
	if len(matches) < minSparkCount {
		return nil
	}

	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if len(values) < minSparkCount {
		return nil
	}
	if len(values) <= maxSparkPoints {
		return values
	}

	step := len(values) / maxSparkPoints
	sampled := make([]float64, 0, maxSparkPoints)
	for i := 0; i < len(values) && len(sampled) < maxSparkPoints; i += step {
		sampled = append(sampled, values[i])
	}
	return sampled
}
