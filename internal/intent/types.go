// Package intent turns free-text dataset queries into structured search
// intents. The interpretation comes from a text-generation model call and is
// then corrected by deterministic heuristics, validated, and defaulted so
// that callers always receive a usable QueryIntent.
package intent

import "fmt"

// FilterType is how a filter condition matches a metadata value.
type FilterType string

const (
	FilterEquals   FilterType = "equals"
	FilterContains FilterType = "contains"
	FilterExists   FilterType = "exists"
)

// FilterOperation is how a condition combines with the conditions before it.
type FilterOperation string

const (
	OperationAnd FilterOperation = "AND"
	OperationOr  FilterOperation = "OR"
)

// FilterCondition is one predicate applied to a search.
// Value is required for equals/contains and must be absent for exists.
type FilterCondition struct {
	Field     string          `json:"field"`
	Type      FilterType      `json:"type"`
	Value     *string         `json:"value,omitempty"`
	Operation FilterOperation `json:"operation"`
	Include   bool            `json:"include"`
}

// Validate checks the condition against the filter schema.
func (f FilterCondition) Validate() error {
	if f.Field == "" {
		return fmt.Errorf("filter: field is required")
	}
	switch f.Type {
	case FilterEquals, FilterContains:
		if f.Value == nil {
			return fmt.Errorf("filter %q: type %q requires a value", f.Field, f.Type)
		}
	case FilterExists:
		if f.Value != nil {
			return fmt.Errorf("filter %q: type %q must not carry a value", f.Field, f.Type)
		}
	default:
		return fmt.Errorf("filter %q: unknown type %q", f.Field, f.Type)
	}
	switch f.Operation {
	case OperationAnd, OperationOr:
	default:
		return fmt.Errorf("filter %q: unknown operation %q", f.Field, f.Operation)
	}
	return nil
}

// QueryIntent is the structured interpretation of a user query. It says
// which indexes to search, which filters to apply, and how many files the
// downstream search step should return.
type QueryIntent struct {
	DatasetInfo  bool `json:"dataset_info"`
	FileMetadata bool `json:"file_metadata"`
	FileContent  bool `json:"file_content"`
	Summary      bool `json:"summary"`

	Filters []FilterCondition `json:"filters"`
	Fields  []string          `json:"fields"`

	IsDatasetRelated     bool    `json:"is_dataset_related"`
	NeedsClarification   bool    `json:"needs_clarification"`
	ClarificationMessage *string `json:"clarification_message,omitempty"`

	// MaxFiles is always kept within [5, 25].
	MaxFiles int `json:"max_files"`
}

const (
	minFiles = 5
	maxFiles = 25

	defaultMaxFiles = 10

	defaultClarificationMessage = "Could you provide more details about what you're looking for in the dataset?"

	nonDatasetClarificationMessage = "Your question doesn't appear to be related to searching the dataset. " +
		"Please try a query about the dataset content or metadata."
)

// DefaultIntent is the safe fallback returned whenever extraction fails.
func DefaultIntent() QueryIntent {
	return QueryIntent{
		Filters:          []FilterCondition{},
		Fields:           []string{},
		IsDatasetRelated: true,
		MaxFiles:         defaultMaxFiles,
	}
}

// NonDatasetIntent is the terminal interpretation for queries that are not
// about the dataset at all. It is returned as-is, with no further correction.
func NonDatasetIntent() QueryIntent {
	msg := nonDatasetClarificationMessage
	return QueryIntent{
		Filters:              []FilterCondition{},
		Fields:               []string{},
		IsDatasetRelated:     false,
		NeedsClarification:   true,
		ClarificationMessage: &msg,
		MaxFiles:             minFiles,
	}
}

// clampMaxFiles constrains v to the closed range [5, 25].
func clampMaxFiles(v int) int {
	if v < minFiles {
		return minFiles
	}
	if v > maxFiles {
		return maxFiles
	}
	return v
}

// Validate checks the intent's invariants. Range checks assume MaxFiles was
// already clamped; an out-of-range value here means the record was built
// outside the extraction pipeline.
func (q QueryIntent) Validate() error {
	for _, f := range q.Filters {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	if q.MaxFiles < minFiles || q.MaxFiles > maxFiles {
		return fmt.Errorf("max_files %d outside [%d, %d]", q.MaxFiles, minFiles, maxFiles)
	}
	return nil
}
