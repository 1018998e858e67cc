// Package engine runs one PO classification end to end: input validation,
// the call to the classification service, and parsing of its response.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/llm"
	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/Veraticus/po-classifier/internal/result"
)

// ClassificationEngine turns form input into a DisplayedResult.
type ClassificationEngine struct {
	client llm.Client
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new classification engine backed by client.
func New(client llm.Client, logger *slog.Logger) *ClassificationEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassificationEngine{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Classify validates the input, calls the classification service once and
// parses what it returned.
//
// An empty description fails with common.ErrEmptyDescription before any
// call is made. A failed call is returned as an error matching
// common.ErrCollaborator and produces no result. A response that is not
// JSON is not an error: it yields an Unstructured outcome with the raw text.
func (e *ClassificationEngine) Classify(ctx context.Context, description, supplier string) (result.DisplayedResult, error) {
	req, err := model.NewClassificationRequest(description, supplier)
	if err != nil {
		return result.DisplayedResult{}, err
	}

	return e.ClassifyRequest(ctx, req)
}

// ClassifyRequest is Classify for an already validated request.
func (e *ClassificationEngine) ClassifyRequest(ctx context.Context, req model.ClassificationRequest) (result.DisplayedResult, error) {
	if e.client == nil {
		return result.DisplayedResult{}, fmt.Errorf("%w: no classification client", common.ErrMissingConfig)
	}

	start := e.now()
	e.logger.Debug("Classifying PO line item", "request", req.String())

	raw, err := e.client.Classify(ctx, req)
	if err != nil {
		e.logger.Error("Classification service call failed",
			"error", err,
			"duration", e.now().Sub(start))
		return result.DisplayedResult{}, fmt.Errorf("classification failed: %w", err)
	}

	displayed := result.NewDisplayedResult(req, raw, e.now())

	if displayed.Outcome.IsStructured() {
		e.logger.Info("Classification complete",
			"outcome", displayed.Outcome.String(),
			"bytes", len(raw),
			"duration", displayed.ClassifiedAt.Sub(start))
	} else {
		e.logger.Warn("Classification response was not valid structured data",
			"bytes", len(raw),
			"duration", displayed.ClassifiedAt.Sub(start))
	}

	return displayed, nil
}
