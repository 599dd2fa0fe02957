// Package dto holds the JSON shapes consumed by the dashboard
// renderer. Internal types never cross that boundary directly; the
// mapping here is the whole contract.
package dto

import (
	"time"

	"github.com/Prosono/HomeGPT/internal/model"
	"github.com/Prosono/HomeGPT/internal/taxonomy"
)

type HeatmapBucket struct {
	StartInstant string `json:"startInstant"`
	Security     int    `json:"security"`
	Comfort      int    `json:"comfort"`
	Energy       int    `json:"energy"`
	Anomalies    int    `json:"anomalies"`
}

type HeatmapMax struct {
	Security  int `json:"security"`
	Comfort   int `json:"comfort"`
	Energy    int `json:"energy"`
	Anomalies int `json:"anomalies"`
}

type Heatmap struct {
	Buckets []HeatmapBucket `json:"buckets"`
	Max     HeatmapMax      `json:"max"`
}

// HeatmapView flattens the matrix into the renderer payload.
func HeatmapView(m model.HeatmapMatrix) Heatmap {
	buckets := make([]HeatmapBucket, len(m.Buckets))
	for i, b := range m.Buckets {
		buckets[i] = HeatmapBucket{
			StartInstant: b.Start.UTC().Format(time.RFC3339),
			Security:     b.Scores[model.CategorySecurity],
			Comfort:      b.Scores[model.CategoryComfort],
			Energy:       b.Scores[model.CategoryEnergy],
			Anomalies:    b.Scores[model.CategoryAnomalies],
		}
	}
	return Heatmap{
		Buckets: buckets,
		Max: HeatmapMax{
			Security:  m.Max[model.CategorySecurity],
			Comfort:   m.Max[model.CategoryComfort],
			Energy:    m.Max[model.CategoryEnergy],
			Anomalies: m.Max[model.CategoryAnomalies],
		},
	}
}

type DigestCategory struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

type Digest struct {
	Categories  []DigestCategory `json:"categories"`
	LeadPoints  []string         `json:"leadPoints"`
	SparkSeries []float64        `json:"sparkSeries"` // null when the report has no usable series
}

// DigestView maps a preview digest onto the card payload. Categories
// and lead points serialize as empty arrays when absent; the spark
// series stays null so the renderer can distinguish "no series" from
// "empty series".
func DigestView(d model.PreviewDigest) Digest {
	categories := make([]DigestCategory, len(d.Categories))
	for i, c := range d.Categories {
		categories[i] = DigestCategory{
			Category: string(c),
			Label:    taxonomy.Label(c),
		}
	}
	leadPoints := d.LeadPoints
	if leadPoints == nil {
		leadPoints = []string{}
	}
	return Digest{
		Categories:  categories,
		LeadPoints:  leadPoints,
		SparkSeries: d.SparkSeries,
	}
}
