package qa_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"docqa-backend/internal/documents"
	"docqa-backend/internal/qa"
)

type stubLLM struct {
	out string
	err error
}

func (s *stubLLM) Complete(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

func newQARouter(t *testing.T, repo documents.DocumentsRepo, client *stubLLM) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	docSvc := &documents.Service{Repo: repo}
	handler := qa.NewHandler(&qa.Service{Documents: docSvc, LLM: client})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "guest:tester")
		c.Next()
	})
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func seedDocument(t *testing.T, repo documents.DocumentsRepo, userID, text string) documents.Document {
	t.Helper()

	now := time.Now().UTC()
	doc, err := repo.Create(context.Background(), documents.Document{
		UserID:        userID,
		Title:         "Seeded",
		FileName:      "seed.pdf",
		ExtractedText: text,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return doc
}

func askQuestion(t *testing.T, router *gin.Engine, documentID int64, question string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(map[string]any{"document_id": documentID, "question": question})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/ask-question", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAskQuestionReturnsAnswer(t *testing.T) {
	repo := documents.NewMemoryDocumentsRepo()
	doc := seedDocument(t, repo, "guest:tester", "The capital of France is Paris.")
	router := newQARouter(t, repo, &stubLLM{out: " Paris. "})

	resp := askQuestion(t, router, doc.ID, "What is the capital of France?")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Answer != "Paris." {
		t.Fatalf("expected trimmed answer Paris., got %q", body.Answer)
	}
}

func TestAskQuestionAppreciationWorksWithUnknownDocument(t *testing.T) {
	repo := documents.NewMemoryDocumentsRepo()
	router := newQARouter(t, repo, &stubLLM{err: errors.New("must not be called")})

	resp := askQuestion(t, router, 999999, "Thanks, nice work!")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Answer != "Thanks!" {
		t.Fatalf("expected Thanks!, got %q", body.Answer)
	}
}

func TestAskQuestionUnknownDocumentReturns404(t *testing.T) {
	repo := documents.NewMemoryDocumentsRepo()
	router := newQARouter(t, repo, &stubLLM{out: "unused"})

	resp := askQuestion(t, router, 12345, "What is this about?")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", resp.Code, resp.Body.String())
	}
	assertError(t, resp, "Document not found")
}

func TestAskQuestionEmptyTextReturns400(t *testing.T) {
	repo := documents.NewMemoryDocumentsRepo()
	doc := seedDocument(t, repo, "guest:tester", "")
	router := newQARouter(t, repo, &stubLLM{err: errors.New("must not be called")})

	resp := askQuestion(t, router, doc.ID, "What is this about?")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
	assertError(t, resp, "No text content available for this document")
}

func TestAskQuestionCompletionFailureReturns500(t *testing.T) {
	repo := documents.NewMemoryDocumentsRepo()
	doc := seedDocument(t, repo, "guest:tester", "some content")
	router := newQARouter(t, repo, &stubLLM{err: errors.New("quota exceeded")})

	resp := askQuestion(t, router, doc.ID, "What is this about?")
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", resp.Code, resp.Body.String())
	}
	assertError(t, resp, "Error generating answer: quota exceeded")
}

func TestAskQuestionValidatesFields(t *testing.T) {
	repo := documents.NewMemoryDocumentsRepo()
	router := newQARouter(t, repo, &stubLLM{out: "unused"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/ask-question", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Details["document_id"] == "" || body.Details["question"] == "" {
		t.Fatalf("expected field details for document_id and question, got %v", body.Details)
	}
}

func TestSummarizeReturnsSummary(t *testing.T) {
	repo := documents.NewMemoryDocumentsRepo()
	doc := seedDocument(t, repo, "guest:tester", "Quarterly revenue grew by ten percent.")
	router := newQARouter(t, repo, &stubLLM{out: "Revenue grew.\n"})

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/documents/%d/summarize", doc.ID), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Summary != "Revenue grew.\n" {
		t.Fatalf("expected raw summary, got %q", body.Summary)
	}
}

func TestSummarizeCompletionFailureReturns500(t *testing.T) {
	repo := documents.NewMemoryDocumentsRepo()
	doc := seedDocument(t, repo, "guest:tester", "some content")
	router := newQARouter(t, repo, &stubLLM{err: errors.New("timeout")})

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/documents/%d/summarize", doc.ID), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", resp.Code, resp.Body.String())
	}
	assertError(t, resp, "Error generating summary: timeout")
}

func assertError(t *testing.T, resp *httptest.ResponseRecorder, want string) {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error != want {
		t.Fatalf("expected error %q, got %q", want, body.Error)
	}
}
