package qa

import (
	"context"
	"strings"
	"time"

	"docqa-backend/internal/documents"
	"docqa-backend/internal/llm"
	"docqa-backend/internal/shared/metrics"
	"docqa-backend/internal/shared/telemetry"
)

const appreciationAnswer = "Thanks!"

// DocumentReader is the slice of the documents service the QA flow needs.
type DocumentReader interface {
	Get(ctx context.Context, userId string, id int64) (documents.Document, error)
}

// Service answers questions about documents and produces summaries by
// prompting a completion model with the document's extracted text.
type Service struct {
	Documents DocumentReader
	LLM       llm.Client
}

// Ask answers a question about the given document. Appreciative questions are
// answered with a canned acknowledgement before any document lookup, so they
// succeed even with a nonexistent document id. The model's answer is returned
// with surrounding whitespace trimmed.
func (s *Service) Ask(ctx context.Context, userId string, documentID int64, question string) (string, error) {
	normalized := normalizeQuestion(question)
	if isAppreciation(normalized) {
		return appreciationAnswer, nil
	}

	doc, err := s.Documents.Get(ctx, userId, documentID)
	if err != nil {
		return "", err
	}
	if doc.ExtractedText == "" {
		return "", ErrNoTextContent
	}

	answer, err := s.complete(ctx, buildQuestionPrompt(doc.ExtractedText, normalized), doc.ID, userId)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Summarize produces a summary of the document's extracted text. Unlike Ask,
// the model output is returned as is.
func (s *Service) Summarize(ctx context.Context, userId string, documentID int64) (string, error) {
	doc, err := s.Documents.Get(ctx, userId, documentID)
	if err != nil {
		return "", err
	}
	if doc.ExtractedText == "" {
		return "", ErrNoTextContent
	}
	return s.complete(ctx, buildSummaryPrompt(doc.ExtractedText), doc.ID, userId)
}

func (s *Service) complete(ctx context.Context, prompt string, documentID int64, userId string) (string, error) {
	metrics.IncCompletion()
	start := time.Now()
	out, err := s.LLM.Complete(ctx, prompt)
	metrics.ObserveCompletionDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncCompletionFailed()
		telemetry.Error("qa.completion_failed", map[string]any{
			"userId":     userId,
			"documentId": documentID,
			"error":      err.Error(),
		})
		return "", err
	}
	return out, nil
}
