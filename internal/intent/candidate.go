package intent

// candidate is the unvalidated record decoded from the model's response.
// Pointer fields preserve key presence: the correction heuristics and the
// defaulting rules both need to know whether the model said anything at all
// about a field, not just what it said.
type candidate struct {
	DatasetInfo          *bool             `json:"dataset_info"`
	FileMetadata         *bool             `json:"file_metadata"`
	FileContent          *bool             `json:"file_content"`
	Summary              *bool             `json:"summary"`
	Filters              []candidateFilter `json:"filters"`
	Fields               []string          `json:"fields"`
	IsDatasetRelated     *bool             `json:"is_dataset_related"`
	NeedsClarification   *bool             `json:"needs_clarification"`
	ClarificationMessage *string           `json:"clarification_message"`
	MaxFiles             *int              `json:"max_files"`
}

// empty reports whether the decoded object carried no keys at all. An empty
// object is treated as a failed extraction, not as an intent to correct.
func (c *candidate) empty() bool {
	return c.DatasetInfo == nil && c.FileMetadata == nil && c.FileContent == nil &&
		c.Summary == nil && c.IsDatasetRelated == nil && c.NeedsClarification == nil &&
		c.ClarificationMessage == nil && c.MaxFiles == nil &&
		c.Filters == nil && c.Fields == nil
}

type candidateFilter struct {
	Field     string  `json:"field"`
	Type      string  `json:"type"`
	Value     *string `json:"value"`
	Operation *string `json:"operation"`
	Include   *bool   `json:"include"`
}

// toIntent applies schema defaults and validates the corrected candidate.
// It fails closed: any schema violation discards the whole record.
func (c *candidate) toIntent() (QueryIntent, error) {
	q := QueryIntent{
		Filters:              []FilterCondition{},
		Fields:               []string{},
		IsDatasetRelated:     true,
		ClarificationMessage: c.ClarificationMessage,
		MaxFiles:             defaultMaxFiles,
	}

	if c.DatasetInfo != nil {
		q.DatasetInfo = *c.DatasetInfo
	}
	if c.FileMetadata != nil {
		q.FileMetadata = *c.FileMetadata
	}
	if c.FileContent != nil {
		q.FileContent = *c.FileContent
	}
	if c.Summary != nil {
		q.Summary = *c.Summary
	}
	if c.IsDatasetRelated != nil {
		q.IsDatasetRelated = *c.IsDatasetRelated
	}
	if c.NeedsClarification != nil {
		q.NeedsClarification = *c.NeedsClarification
	}
	if c.MaxFiles != nil {
		q.MaxFiles = *c.MaxFiles
	}
	if c.Fields != nil {
		q.Fields = c.Fields
	}

	for _, f := range c.Filters {
		fc := FilterCondition{
			Field:     f.Field,
			Type:      FilterType(f.Type),
			Value:     f.Value,
			Operation: OperationAnd,
			Include:   true,
		}
		if f.Operation != nil {
			fc.Operation = FilterOperation(*f.Operation)
		}
		if f.Include != nil {
			fc.Include = *f.Include
		}
		q.Filters = append(q.Filters, fc)
	}

	if err := q.Validate(); err != nil {
		return QueryIntent{}, err
	}

	// Content cannot be located without a metadata lookup.
	if q.FileContent {
		q.FileMetadata = true
	}

	return q, nil
}
