package contract

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHeatmapViewSchema(t *testing.T) {
	data, err := json.Marshal(HeatmapViewSchema())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	for _, field := range []string{"buckets", "max", "startInstant", "security", "comfort", "energy", "anomalies"} {
		if !strings.Contains(got, `"`+field+`"`) {
			t.Errorf("schema missing %q: %s", field, got)
		}
	}
}

func TestDigestViewSchema(t *testing.T) {
	data, err := json.Marshal(DigestViewSchema())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	for _, field := range []string{"categories", "leadPoints", "sparkSeries", "label"} {
		if !strings.Contains(got, `"`+field+`"`) {
			t.Errorf("schema missing %q: %s", field, got)
		}
	}
}
