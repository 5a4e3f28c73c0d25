package intent

import (
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "With Preamble",
			input:    `Here is the intent: {"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "With Postamble",
			input:    `{"key": "value"} as requested`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "Markdown Fence",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "Nested Object",
			input:    `{"outer": {"inner": "value"}}`,
			expected: `{"outer": {"inner": "value"}}`,
		},
		{
			name:     "First Of Two Objects",
			input:    `{"first": 1} then {"second": 2}`,
			expected: `{"first": 1}`,
		},
		{
			name:     "Closing Brace In String",
			input:    `{"a": "}"}`,
			expected: `{"a": "}"}`,
		},
		{
			name:     "Opening Brace In String",
			input:    `{"a": "{"} trailer`,
			expected: `{"a": "{"}`,
		},
		{
			name:     "Escaped Quote In String",
			input:    `{"a": "say \"}\" loudly"}`,
			expected: `{"a": "say \"}\" loudly"}`,
		},
		{
			name:     "Unbalanced",
			input:    `{"key": "value"`,
			expected: ``,
		},
		{
			name:     "No Object",
			input:    `just prose`,
			expected: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.expected {
				t.Errorf("extractJSON() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseCandidateWholeResponse(t *testing.T) {
	c, err := parseCandidate(`{"file_content": true, "max_files": 12}`)
	if err != nil {
		t.Fatalf("parseCandidate failed: %v", err)
	}
	if c.FileContent == nil || !*c.FileContent {
		t.Error("file_content not decoded")
	}
	if c.MaxFiles == nil || *c.MaxFiles != 12 {
		t.Error("max_files not decoded")
	}
	if c.Summary != nil {
		t.Error("absent keys must decode to nil")
	}
}

func TestParseCandidateWrappedResponse(t *testing.T) {
	resp := "Based on the query, here is the intent:\n\n" +
		`{"dataset_info": true, "filters": [{"field": "department", "type": "equals", "value": "finance"}]}` +
		"\n\nLet me know if you need anything else."
	c, err := parseCandidate(resp)
	if err != nil {
		t.Fatalf("parseCandidate failed: %v", err)
	}
	if c.DatasetInfo == nil || !*c.DatasetInfo {
		t.Error("dataset_info not decoded from wrapped response")
	}
	if len(c.Filters) != 1 || c.Filters[0].Field != "department" {
		t.Errorf("filters not decoded: %+v", c.Filters)
	}
}

func TestParseCandidateNoJSON(t *testing.T) {
	if _, err := parseCandidate("I cannot determine the intent."); err == nil {
		t.Error("expected error for response without JSON")
	}
}

func TestParseCandidateMalformedJSON(t *testing.T) {
	if _, err := parseCandidate(`{"file_content": tru`); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
