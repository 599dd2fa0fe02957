package taxonomy

import (
	"testing"

	"github.com/Prosono/HomeGPT/internal/model"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  model.Category
	}{
		{"exact category name", "Security", model.CategorySecurity},
		{"singular anomaly", "Anomaly", model.CategoryAnomalies},
		{"plural anomalies", "Anomalies detected", model.CategoryAnomalies},
		{"occupancy synonym", "Occupancy", model.CategoryPresence},
		{"estimated presence phrasing", "Estimated Presence", model.CategoryPresence},
		{"next steps phrasing", "Next Steps", model.CategoryActions},
		{"actions to take phrasing", "Actions to take", model.CategoryActions},
		{"climate maps to comfort", "Climate & Comfort", model.CategoryComfort},
		{"energy consumption", "Energy consumption", model.CategoryEnergy},
		{"power usage", "Power usage overview", model.CategoryEnergy},
		{"surrounding whitespace", "  security  ", model.CategorySecurity},
		{"mixed case", "SECURITY STATUS", model.CategorySecurity},
		{"empty title", "", model.CategoryGeneric},
		{"unknown title", "Weather outlook", model.CategoryGeneric},
		{"structural summary label", "Summary", model.CategoryGeneric},
		{"structural details label", "Details", model.CategoryGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonicalize(tt.title); got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

// Anomaly sections must win over security/comfort words appearing in
// the same heading: the alias table is priority ordered.
func TestCanonicalizePriority(t *testing.T) {
	got := Canonicalize("Anomalies in security sensors")
	if got != model.CategoryAnomalies {
		t.Errorf("Canonicalize priority = %q, want %q", got, model.CategoryAnomalies)
	}
}

func TestCanonicalizeStable(t *testing.T) {
	titles := []string{"Security", "Occupancy", "garbage", "", "Next steps"}
	for _, title := range titles {
		first := Canonicalize(title)
		for i := 0; i < 10; i++ {
			if got := Canonicalize(title); got != first {
				t.Fatalf("Canonicalize(%q) unstable: %q then %q", title, first, got)
			}
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(model.CategorySecurity); got != "Security" {
		t.Errorf("Label(security) = %q", got)
	}
	if got := Label(model.Category("bogus")); got != "General" {
		t.Errorf("Label(bogus) = %q, want General fallback", got)
	}
}
