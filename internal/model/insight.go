package model

import "time"

// TimeBucket accumulates the salience of every record falling inside
// one hour-aligned slot of the lookback window.
type TimeBucket struct {
	Start   time.Time
	Scores  map[Category]int // heat categories only, always >= 0
	Records []AnalysisRecord // records whose timestamp falls in this slot
}

// HeatmapMatrix is the dense hour-by-category grid over a lookback
// window. Buckets are strictly increasing by exactly one hour with no
// gaps, even for hours with zero records.
type HeatmapMatrix struct {
	Buckets []TimeBucket
	Max     map[Category]int // per-category maximum across buckets, floored at 1
}

// PreviewDigest is the compact per-report summary used for card-style
// listing. Derived per render, never persisted.
type PreviewDigest struct {
	Categories  []Category // deduplicated, first-seen order, max 4
	LeadPoints  []string   // up to 2 salient points
	SparkSeries []float64  // nil (not empty) when the report has fewer than 4 numbers
}

// EntityReference is a domain-entity token found in free text, resolved
// to a deep-link target.
type EntityReference struct {
	RawToken string
	Domain   string
	Target   string
}

// ChipKind discriminates the summary action chips attached to a report.
type ChipKind string

const (
	ChipEditEntity   ChipKind = "edit_entity"
	ChipManageDevice ChipKind = "manage_device"
)

// ActionChip is a small actionable shortcut derived from the entity and
// device identifiers a report mentions. A chip with Pending set carries
// an entity id whose device is not yet known; the caller resolves it
// later through the registry cache.
type ActionChip struct {
	Kind     ChipKind
	EntityID string
	DeviceID string
	Target   string
	Pending  bool
}
