package intent

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"querylens/internal/llm"
	"querylens/internal/logging"
)

// FieldSource supplies the known metadata field names offered to the model
// as filter targets. It is consulted on every extraction, so sources backed
// by a hot-reloaded registry take effect immediately.
type FieldSource interface {
	Names() []string
}

// StaticFields adapts a fixed list of field names to FieldSource.
type StaticFields []string

// Names returns the list as-is.
func (s StaticFields) Names() []string { return s }

// Extractor interprets free-text dataset queries. It is safe for concurrent
// use; each extraction is independent and shares no mutable state.
type Extractor struct {
	client llm.Client
	fields FieldSource
	log    *zap.Logger
}

// NewExtractor creates an extractor backed by the given model client.
func NewExtractor(client llm.Client, fields FieldSource) *Extractor {
	return &Extractor{
		client: client,
		fields: fields,
		log:    logging.Get(logging.CategoryIntent),
	}
}

// ExtractIntent interprets a user query. It never fails: any model-call
// error, unparseable response, or schema violation degrades to
// DefaultIntent so the downstream search step always has an intent to act
// on. Cancellation of ctx surfaces as a model-call error and takes the same
// fallback path.
func (e *Extractor) ExtractIntent(ctx context.Context, query string) QueryIntent {
	log := e.log.With(zap.String("request_id", uuid.NewString()))

	response, err := e.client.CompleteWithSystem(ctx, extractionSystemPrompt, buildExtractionPrompt(query, e.fields.Names()))
	if err != nil {
		log.Error("model call failed, returning default intent", zap.Error(err))
		return DefaultIntent()
	}

	cand, err := parseCandidate(response)
	if err != nil {
		log.Warn("failed to extract JSON from model response", zap.Error(err))
		return DefaultIntent()
	}
	if cand.empty() {
		log.Warn("model response carried an empty object, returning default intent")
		return DefaultIntent()
	}

	if cand.MaxFiles != nil {
		*cand.MaxFiles = clampMaxFiles(*cand.MaxFiles)
	}

	// Deterministic correction pass, independent of what the model said.
	applyContentHeuristics(log, query, cand)
	applyFilenameFallback(log, query, cand)

	intent, err := cand.toIntent()
	if err != nil {
		log.Error("candidate intent failed validation", zap.Error(err))
		return DefaultIntent()
	}

	if !intent.IsDatasetRelated {
		log.Info("query not related to dataset search", zap.String("query", query))
		return NonDatasetIntent()
	}

	if intent.NeedsClarification && intent.ClarificationMessage == nil {
		msg := defaultClarificationMessage
		intent.ClarificationMessage = &msg
	}

	return intent
}
