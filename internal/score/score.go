// Package score computes the deterministic salience score of a report
// section within its category. Scores combine structural signals with
// category-specific keyword hits; scales differ per category, so a
// score is only comparable to scores of the same category.
package score

import (
	"strings"

	"github.com/Prosono/HomeGPT/internal/model"
)

// Structural thresholds. A paragraph long enough to carry real detail
// earns a point, a very long one earns a second.
const (
	longParagraph     = 60
	veryLongParagraph = 180
	maxListContrib    = 3
)

// Keyword is one weighted containment pattern.
type Keyword struct {
	Word   string
	Weight int
}

// Keywords holds the per-category keyword tables. The tables are data,
// not branching logic: relative weights encode intended severity
// (anomaly terms outweigh comfort terms), and the exact values are
// tuning constants rather than contracts.
var Keywords = map[model.Category][]Keyword{
	model.CategorySecurity: {
		{"unlocked", 2},
		{"open", 2},
		{"door", 2},
		{"window", 2},
		{"garage", 2},
		{"alarm", 2},
		{"unknown", 1},
		{"not_home", 1},
		{"detected", 1},
	},
	model.CategoryAnomalies: {
		{"anomal", 3},
		{"spike", 3},
		{"unusual", 2},
		{"unexpected", 2},
		{"offline", 2},
		{"unavailable", 2},
		{"error", 2},
		{"failed", 2},
	},
	model.CategoryComfort: {
		{"below target", 2},
		{"above target", 2},
		{"too cold", 2},
		{"too warm", 2},
		{"temperature", 1},
		{"humidity", 1},
		{"thermostat", 1},
		{"draft", 1},
	},
	model.CategoryEnergy: {
		{"consumption", 2},
		{"kwh", 2},
		{"high usage", 2},
		{"standby", 1},
		{"idle", 1},
		{"solar", 1},
	},
	model.CategoryPresence: {
		{"arrived", 1},
		{"left", 1},
		{"away", 1},
	},
	// Actions and generic sections score on structure alone.
	model.CategoryActions: {},
	model.CategoryGeneric: {},
}

// Section scores a section's content for the given category. The
// result is always >= 0, side-effect free, and monotonic: growing the
// content can only add structural or keyword contributions, never
// remove them.
func Section(category model.Category, content []model.Block) int {
	total := 0
	for _, b := range content {
		switch b.Kind {
		case model.BlockList:
			total += min(maxListContrib, len(b.Items))
		case model.BlockParagraph:
			if len(b.Text) > longParagraph {
				total++
			}
			if len(b.Text) > veryLongParagraph {
				total++
			}
		}
	}

	text := strings.ToLower(model.Section{Content: content}.PlainText())
	for _, kw := range Keywords[category] {
		if strings.Contains(text, kw.Word) {
			total += kw.Weight
		}
	}
	return total
}
