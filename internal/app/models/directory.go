package models

import "github.com/goccy/go-json"

// RawRecord is a directory row exactly as the directory returned it. Fields
// is kept as raw JSON because the directory schema drifts; it is projected
// field by field into typed models.
type RawRecord struct {
	ID          string          `json:"id"`
	CreatedTime string          `json:"createdTime,omitempty"`
	Fields      json.RawMessage `json:"fields"`
}

type FilterMode int

const (
	// FilterEquals matches a plain field whose value equals Value.
	FilterEquals FilterMode = iota
	// FilterLinkedContains matches a linked/lookup field whose values contain Value.
	FilterLinkedContains
)

// Filter selects directory rows on a single field.
type Filter struct {
	Field string
	Value string
	Mode  FilterMode
}
