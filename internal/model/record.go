package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AnalysisMode is how the analysis run that produced a record was triggered.
type AnalysisMode string

const (
	ModePassive AnalysisMode = "passive"
	ModeActive  AnalysisMode = "active"
)

// AnalysisRecord is one stored analysis run, produced by the upstream
// analysis pipeline and owned by storage. This package only reads it.
//
// Storage serves records either as a positional row
// [id, ts, mode, focus, summary, actions] or as an object with the same
// fields keyed by name. UnmarshalJSON accepts both so nothing downstream
// ever branches on shape.
type AnalysisRecord struct {
	ID        int64
	Timestamp string // ISO-8601, may be empty for legacy rows
	Mode      AnalysisMode
	Focus     string
	Summary   string
	Actions   json.RawMessage // opaque, passed through untouched
}

type recordObject struct {
	ID        int64           `json:"id"`
	Timestamp string          `json:"ts"`
	Mode      string          `json:"mode"`
	Focus     *string         `json:"focus"`
	Summary   string          `json:"summary"`
	Actions   json.RawMessage `json:"actions"`
}

// UnmarshalJSON normalizes the two storage shapes into one record.
func (r *AnalysisRecord) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return r.unmarshalRow(trimmed)
	}

	var obj recordObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decoding record object: %w", err)
	}
	r.ID = obj.ID
	r.Timestamp = obj.Timestamp
	r.Mode = AnalysisMode(obj.Mode)
	if obj.Focus != nil {
		r.Focus = *obj.Focus
	}
	r.Summary = obj.Summary
	r.Actions = obj.Actions
	return nil
}

func (r *AnalysisRecord) unmarshalRow(data []byte) error {
	var row []json.RawMessage
	if err := json.Unmarshal(data, &row); err != nil {
		return fmt.Errorf("decoding record row: %w", err)
	}
	if len(row) < 6 {
		return fmt.Errorf("record row has %d fields, want 6", len(row))
	}
	if err := json.Unmarshal(row[0], &r.ID); err != nil {
		return fmt.Errorf("decoding record id: %w", err)
	}
	r.Timestamp = decodeOptionalString(row[1])
	r.Mode = AnalysisMode(decodeOptionalString(row[2]))
	r.Focus = decodeOptionalString(row[3])
	r.Summary = decodeOptionalString(row[4])
	r.Actions = row[5]
	return nil
}

func decodeOptionalString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// DecodeRecords normalizes a JSON array of records in either shape.
func DecodeRecords(data []byte) ([]AnalysisRecord, error) {
	var records []AnalysisRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	return records, nil
}

// Time parses the record timestamp. A record with a missing or
// unparseable timestamp is treated as occurring at fallback, so a
// bad row degrades to "now" instead of being dropped.
func (r AnalysisRecord) Time(fallback time.Time) time.Time {
	if r.Timestamp == "" {
		return fallback
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, r.Timestamp); err == nil {
			return ts
		}
	}
	return fallback
}
