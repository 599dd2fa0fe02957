// Package taxonomy maps free-form section headings onto the fixed
// insight category set. The alias table is plain data so the taxonomy
// can grow without touching the matching algorithm.
package taxonomy

import (
	"strings"

	"github.com/Prosono/HomeGPT/internal/model"
)

// Alias maps a heading substring to its canonical category. Aliases are
// checked in order and the first containment match wins, so more
// specific phrasings must come before the generic words they contain.
type Alias struct {
	Pattern  string
	Category model.Category
}

// Aliases is the priority-ordered substring table. Reports phrase the
// same category many ways ("Estimated presence", "Occupancy",
// "Next steps"); containment on lowercase text absorbs that variation.
var Aliases = []Alias{
	{"anomal", model.CategoryAnomalies},
	{"unusual", model.CategoryAnomalies},
	{"security", model.CategorySecurity},
	{"safety", model.CategorySecurity},
	{"comfort", model.CategoryComfort},
	{"climate", model.CategoryComfort},
	{"temperature", model.CategoryComfort},
	{"energy", model.CategoryEnergy},
	{"power", model.CategoryEnergy},
	{"consumption", model.CategoryEnergy},
	{"estimated presence", model.CategoryPresence},
	{"occupancy", model.CategoryPresence},
	{"presence", model.CategoryPresence},
	{"who is home", model.CategoryPresence},
	{"actions to take", model.CategoryActions},
	{"suggested action", model.CategoryActions},
	{"next steps", model.CategoryActions},
	{"recommendation", model.CategoryActions},
	{"action", model.CategoryActions},
}

// Canonicalize resolves a heading or category title to exactly one
// canonical category. Unknown and empty titles fall back to generic;
// this is never an error. Pure: the same input always yields the same
// category.
func Canonicalize(title string) model.Category {
	normalized := strings.ToLower(strings.TrimSpace(title))
	if normalized == "" {
		return model.CategoryGeneric
	}
	for _, a := range Aliases {
		if strings.Contains(normalized, a.Pattern) {
			return a.Category
		}
	}
	return model.CategoryGeneric
}

var labels = map[model.Category]string{
	model.CategorySecurity:  "Security",
	model.CategoryComfort:   "Comfort",
	model.CategoryEnergy:    "Energy",
	model.CategoryAnomalies: "Anomalies",
	model.CategoryPresence:  "Presence",
	model.CategoryActions:   "Actions",
	model.CategoryGeneric:   "General",
}

// Label returns the display label the renderer shows for a category.
func Label(c model.Category) string {
	if l, ok := labels[c]; ok {
		return l
	}
	return labels[model.CategoryGeneric]
}
