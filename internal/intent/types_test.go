package intent

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestClampMaxFiles(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-3, 5},
		{0, 5},
		{4, 5},
		{5, 5},
		{10, 10},
		{25, 25},
		{26, 25},
		{1000, 25},
	}
	for _, tt := range tests {
		if got := clampMaxFiles(tt.in); got != tt.want {
			t.Errorf("clampMaxFiles(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFilterConditionValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  FilterCondition
		wantErr string
	}{
		{
			name:   "contains with value",
			filter: FilterCondition{Field: "filename", Type: FilterContains, Value: strPtr("risk"), Operation: OperationAnd, Include: true},
		},
		{
			name:   "exists without value",
			filter: FilterCondition{Field: "owner", Type: FilterExists, Operation: OperationOr},
		},
		{
			name:    "equals without value",
			filter:  FilterCondition{Field: "status", Type: FilterEquals, Operation: OperationAnd},
			wantErr: "requires a value",
		},
		{
			name:    "exists with value",
			filter:  FilterCondition{Field: "owner", Type: FilterExists, Value: strPtr("x"), Operation: OperationAnd},
			wantErr: "must not carry a value",
		},
		{
			name:    "unknown type",
			filter:  FilterCondition{Field: "status", Type: "matches", Value: strPtr("x"), Operation: OperationAnd},
			wantErr: "unknown type",
		},
		{
			name:    "unknown operation",
			filter:  FilterCondition{Field: "status", Type: FilterEquals, Value: strPtr("x"), Operation: "XOR"},
			wantErr: "unknown operation",
		},
		{
			name:    "missing field",
			filter:  FilterCondition{Type: FilterEquals, Value: strPtr("x"), Operation: OperationAnd},
			wantErr: "field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultIntentShape(t *testing.T) {
	d := DefaultIntent()
	if d.DatasetInfo || d.FileMetadata || d.FileContent || d.Summary {
		t.Error("default intent must have all search facets off")
	}
	if !d.IsDatasetRelated {
		t.Error("default intent must be dataset-related")
	}
	if d.NeedsClarification {
		t.Error("default intent must not need clarification")
	}
	if d.MaxFiles != 10 {
		t.Errorf("default max_files = %d, want 10", d.MaxFiles)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("default intent failed validation: %v", err)
	}
}

func TestNonDatasetIntentShape(t *testing.T) {
	n := NonDatasetIntent()
	if n.DatasetInfo || n.FileMetadata || n.FileContent || n.Summary {
		t.Error("non-dataset intent must have all search facets off")
	}
	if n.IsDatasetRelated {
		t.Error("non-dataset intent must not be dataset-related")
	}
	if !n.NeedsClarification || n.ClarificationMessage == nil {
		t.Fatal("non-dataset intent must carry a clarification message")
	}
	if *n.ClarificationMessage != nonDatasetClarificationMessage {
		t.Errorf("unexpected clarification message: %q", *n.ClarificationMessage)
	}
	if n.MaxFiles != 5 {
		t.Errorf("non-dataset max_files = %d, want 5", n.MaxFiles)
	}
}

func TestQueryIntentValidateMaxFilesRange(t *testing.T) {
	q := DefaultIntent()
	q.MaxFiles = 3
	if err := q.Validate(); err == nil {
		t.Error("expected validation error for max_files below range")
	}
	q.MaxFiles = 30
	if err := q.Validate(); err == nil {
		t.Error("expected validation error for max_files above range")
	}
}

func TestCandidateToIntentDefaults(t *testing.T) {
	c := &candidate{}
	q, err := c.toIntent()
	if err != nil {
		t.Fatalf("toIntent failed: %v", err)
	}
	if !q.IsDatasetRelated {
		t.Error("is_dataset_related must default to true")
	}
	if q.MaxFiles != 10 {
		t.Errorf("max_files = %d, want default 10", q.MaxFiles)
	}
	if q.Filters == nil || q.Fields == nil {
		t.Error("filters and fields must be empty, not nil")
	}
}

func TestCandidateToIntentFilterDefaults(t *testing.T) {
	c := &candidate{
		Filters: []candidateFilter{
			{Field: "filename", Type: "contains", Value: strPtr("risk")},
		},
	}
	q, err := c.toIntent()
	if err != nil {
		t.Fatalf("toIntent failed: %v", err)
	}
	if len(q.Filters) != 1 {
		t.Fatalf("got %d filters, want 1", len(q.Filters))
	}
	f := q.Filters[0]
	if f.Operation != OperationAnd {
		t.Errorf("operation = %q, want AND default", f.Operation)
	}
	if !f.Include {
		t.Error("include must default to true")
	}
}

func TestCandidateToIntentContentImpliesMetadata(t *testing.T) {
	c := &candidate{FileContent: boolPtr(true), FileMetadata: boolPtr(false)}
	q, err := c.toIntent()
	if err != nil {
		t.Fatalf("toIntent failed: %v", err)
	}
	if !q.FileMetadata {
		t.Error("file_content=true must force file_metadata=true")
	}
}

func TestCandidateToIntentRejectsBadFilter(t *testing.T) {
	c := &candidate{
		Filters: []candidateFilter{
			{Field: "filename", Type: "equals"}, // equals with no value
		},
	}
	if _, err := c.toIntent(); err == nil {
		t.Error("expected validation error")
	}
}
