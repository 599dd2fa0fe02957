package model

// Category classifies a report section into the fixed insight taxonomy.
// The set is closed: every section resolves to exactly one Category,
// with CategoryGeneric as the fallback.
type Category string

const (
	CategorySecurity  Category = "security"
	CategoryComfort   Category = "comfort"
	CategoryEnergy    Category = "energy"
	CategoryAnomalies Category = "anomalies"
	CategoryPresence  Category = "presence"
	CategoryActions   Category = "actions"
	CategoryGeneric   Category = "generic"
)

// HeatCategories are the categories rendered as heatmap cells.
// Presence, actions and generic sections are scored but never
// accumulated into the matrix.
var HeatCategories = []Category{
	CategorySecurity,
	CategoryComfort,
	CategoryEnergy,
	CategoryAnomalies,
}

// IsHeat reports whether the category contributes to the heatmap matrix.
func (c Category) IsHeat() bool {
	switch c {
	case CategorySecurity, CategoryComfort, CategoryEnergy, CategoryAnomalies:
		return true
	}
	return false
}
