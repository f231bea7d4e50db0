package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bibliomate/internal/agent/deps"
	"bibliomate/internal/agent/prompt"
	"bibliomate/internal/agent/response"
	"bibliomate/internal/logger"
	"bibliomate/internal/metrics"
	"bibliomate/internal/model"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultModel is the Gemini model used when none is configured
	DefaultModel = "gemini-2.0-flash"
	// ResponseMIMEType asks for plain text; JSON is extracted from it
	ResponseMIMEType = "text/plain"
)

// DefaultGenerationConfig returns the sampling parameters used for analyses
func DefaultGenerationConfig() deps.GenerationConfig {
	return deps.GenerationConfig{
		Temperature:      1,
		TopP:             0.95,
		TopK:             40,
		MaxOutputTokens:  8192,
		ResponseMIMEType: ResponseMIMEType,
	}
}

// BookAnalyzer turns a book title into a BookRecord with one model call
type BookAnalyzer struct {
	llm           deps.LLMClient
	promptBuilder *prompt.Builder
	config        deps.GenerationConfig
}

// NewBookAnalyzer creates a new BookAnalyzer
func NewBookAnalyzer(llm deps.LLMClient, config deps.GenerationConfig) *BookAnalyzer {
	if config.ResponseMIMEType == "" {
		config.ResponseMIMEType = ResponseMIMEType
	}
	return &BookAnalyzer{
		llm:           llm,
		promptBuilder: prompt.NewBuilder(),
		config:        config,
	}
}

// Analyze sends the exemplar history and the prompt for title, then parses
// the reply. Every failure is returned as *AnalysisFailedError, except a
// blank title which yields ErrEmptyInput without a network call.
func (a *BookAnalyzer) Analyze(ctx context.Context, title string) (*model.BookRecord, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyInput
	}

	start := time.Now()
	log := logger.For(ctx).WithField("title", title)
	log.Info("[ANALYZE] Starting book analysis")
	defer logger.Track(ctx, "[ANALYZE] Book analysis")()

	message := a.promptBuilder.BuildBookPrompt(title)
	reply, err := a.llm.Chat(ctx, a.promptBuilder.Exemplar(), message, a.config)
	if err != nil {
		return nil, a.fail(ctx, start, fmt.Errorf("%w: %v", ErrTransport, err), classifyTransportError(err))
	}

	if strings.TrimSpace(reply) == "" {
		return nil, a.fail(ctx, start, ErrEmptyResponse, "")
	}

	log.WithField("reply_length", len(reply)).Debug("[ANALYZE] Raw reply received")

	record, err := response.Parse(reply)
	if err != nil {
		if errors.Is(err, response.ErrEmpty) {
			return nil, a.fail(ctx, start, ErrEmptyResponse, "")
		}
		return nil, a.fail(ctx, start, fmt.Errorf("%w: %v", ErrParse, err), "")
	}

	metrics.AnalysesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.AnalysisDuration.WithLabelValues(metrics.OutcomeSuccess).Observe(time.Since(start).Seconds())
	log.WithFields(logrus.Fields{
		"author":        record.Author.String(),
		"similar_books": len(record.SimilarBooks),
	}).Info("[ANALYZE] Book analysis succeeded")

	return record, nil
}

// fail logs the cause for diagnostics and returns the generic error
func (a *BookAnalyzer) fail(ctx context.Context, start time.Time, cause error, kind string) error {
	outcome := outcomeFor(cause)
	metrics.AnalysesTotal.WithLabelValues(outcome).Inc()
	metrics.AnalysisDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	entry := logger.For(ctx).WithError(cause).WithField("outcome", outcome)
	if kind != "" {
		entry = entry.WithField("kind", kind)
	}
	entry.Error("[ANALYZE] Book analysis failed")

	return NewAnalysisFailedError(cause)
}

func outcomeFor(cause error) string {
	switch {
	case errors.Is(cause, ErrEmptyResponse):
		return metrics.OutcomeEmptyResponse
	case errors.Is(cause, ErrParse):
		return metrics.OutcomeParseError
	default:
		return metrics.OutcomeTransport
	}
}
