package qa

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"docqa-backend/internal/documents"
	"docqa-backend/internal/shared/server/middleware"
	"docqa-backend/internal/shared/server/respond"
)

// Handler exposes the question-answering and summarization endpoints.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes mounts the QA endpoints on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/ask-question", h.askQuestion)
	rg.GET("/documents/:id/summarize", h.summarize)
}

type askQuestionRequest struct {
	DocumentID *int64 `json:"document_id"`
	Question   string `json:"question"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

func (h *Handler) askQuestion(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req askQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	details := map[string]string{}
	if req.DocumentID == nil {
		details["document_id"] = "This field is required."
	}
	if strings.TrimSpace(req.Question) == "" {
		details["question"] = "This field is required."
	}
	if len(details) > 0 {
		respond.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request", details)
		return
	}

	c.Set("documentId", *req.DocumentID)
	answer, err := h.Service.Ask(c.Request.Context(), userID, *req.DocumentID, req.Question)
	if err != nil {
		h.writeError(c, err, "Error generating answer: ")
		return
	}
	respond.OK(c, answerResponse{Answer: answer})
}

func (h *Handler) summarize(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusNotFound, "Document not found")
		return
	}

	c.Set("documentId", id)
	summary, err := h.Service.Summarize(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, err, "Error generating summary: ")
		return
	}
	respond.OK(c, summaryResponse{Summary: summary})
}

func (h *Handler) writeError(c *gin.Context, err error, completionPrefix string) {
	switch {
	case errors.Is(err, documents.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "Document not found")
	case errors.Is(err, ErrNoTextContent):
		respond.Error(c, http.StatusBadRequest, "No text content available for this document")
	default:
		respond.Error(c, http.StatusInternalServerError, completionPrefix+err.Error())
	}
}
