package intent

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Keyword sets for the content-request correction pass. Models regularly
// classify "show me the content of X" as a pure metadata search; these
// deterministic rules force the content facet on when the query plainly
// asks for it.
var (
	contentKeywords = []string{"content", "text", "document", "what's in", "what is in"}

	actionKeywords = []string{
		"display", "show", "view", "summarize", "read",
		"get", "extract", "tell me about", "tell about",
	}

	fileExtensions = []string{".pdf", ".docx", ".txt", ".xlsx"}

	fullContentIndicators = []string{
		"full content", "complete text", "entire content", "full text", "verbatim",
	}
)

// tellAboutFilePattern matches "tell [me] about <something.pdf>" style
// requests where the target is a concrete file.
var tellAboutFilePattern = regexp.MustCompile(`tell\s+(?:me\s+)?about\s+([\w\s\-.,]+\.(?:pdf|docx|txt|xlsx))`)

// filenamePatterns extract a filename mention when the model produced no
// filters. Ordered from most to least specific; the first match wins, so
// keep the permissive patterns last.
var filenamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`filename\s+(?:that\s+)?contains\s+([^\s.,]+)`),
	regexp.MustCompile(`filename\s+([^\s.,]+)`),
	regexp.MustCompile(`file\s+named\s+([^\s.,]+)`),
	regexp.MustCompile(`file\s+([^\s.,]+\.(?:pdf|csv|txt|xlsx|docx|html))`),
}

// applyContentHeuristics forces the file_content facet on when the query
// looks like a content request but the model left the flag off. Summary
// defaults to true unless the user asked for the full text.
func applyContentHeuristics(log *zap.Logger, query string, c *candidate) {
	q := strings.ToLower(query)

	hasContentKeyword := containsAny(q, contentKeywords)
	hasActionKeyword := containsAny(q, actionKeywords)
	hasFileMention := strings.Contains(q, "file") || containsAny(q, fileExtensions)
	tellAboutFile := tellAboutFilePattern.MatchString(q)

	alreadyContent := c.FileContent != nil && *c.FileContent
	if !(hasContentKeyword || (hasActionKeyword && hasFileMention) || tellAboutFile) || alreadyContent {
		return
	}

	log.Info("forcing file_content based on query keywords", zap.String("query", query))
	c.FileContent = boolPtr(true)
	c.FileMetadata = boolPtr(true)

	if c.Summary == nil {
		c.Summary = boolPtr(true)
	}
	if containsAny(q, fullContentIndicators) {
		c.Summary = boolPtr(false)
	}
}

// applyFilenameFallback appends a filename-contains filter when the query
// mentions a filename but the model extracted no filters at all.
func applyFilenameFallback(log *zap.Logger, query string, c *candidate) {
	if len(c.Filters) > 0 {
		return
	}

	q := strings.ToLower(query)
	if !strings.Contains(q, "filename") {
		return
	}

	for _, pattern := range filenamePatterns {
		m := pattern.FindStringSubmatch(q)
		if len(m) < 2 {
			continue
		}
		value := m[1]
		log.Info("fallback filename filter extracted", zap.String("value", value))
		op := string(OperationAnd)
		c.Filters = append(c.Filters, candidateFilter{
			Field:     "filename",
			Type:      string(FilterContains),
			Value:     &value,
			Operation: &op,
			Include:   boolPtr(true),
		})
		return
	}
}

// containsAny checks whether s contains any of the substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func boolPtr(v bool) *bool { return &v }
