package documents

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"docqa-backend/internal/shared/server/middleware"
	"docqa-backend/internal/shared/server/respond"
)

const (
	maxUploadBytes   = 10 << 20
	defaultListLimit = 50
	maxListLimit     = 200
)

// Handler exposes the document CRUD endpoints.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes mounts the document endpoints on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents", h.list)
	rg.POST("/documents", h.create)
	rg.GET("/documents/:id", h.get)
	rg.PUT("/documents/:id", h.update)
	rg.PATCH("/documents/:id", h.update)
	rg.DELETE("/documents/:id", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	title := c.PostForm("title")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request", map[string]string{
			"file": "This field is required.",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	doc, err := h.Service.Create(c.Request.Context(), userID, title, fileHeader.Filename, file)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.Created(c, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit := parseIntQuery(c, "limit", defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := parseIntQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	docs, err := h.Service.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponseList(docs))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	doc, err := h.Service.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(doc))
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	params, err := h.parseUpdate(c)
	if err != nil {
		respond.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request", map[string]string{
			"title": err.Error(),
		})
		return
	}
	defer func() {
		if closer, ok := params.File.(interface{ Close() error }); ok && closer != nil {
			closer.Close()
		}
	}()

	doc, err := h.Service.Update(c.Request.Context(), userID, id, params)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(doc))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseUpdate accepts either a multipart form (title and/or file) or a JSON
// body with a title. PUT requires a title; PATCH treats every field as
// optional.
func (h *Handler) parseUpdate(c *gin.Context) (UpdateParams, error) {
	requireTitle := c.Request.Method == http.MethodPut
	var params UpdateParams

	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
		if title, ok := c.GetPostForm("title"); ok {
			params.Title = &title
		}
		if fileHeader, err := c.FormFile("file"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				return UpdateParams{}, fmt.Errorf("could not read uploaded file")
			}
			params.FileName = fileHeader.Filename
			params.File = file
		}
	} else {
		var body struct {
			Title *string `json:"title"`
		}
		if err := c.ShouldBindJSON(&body); err != nil && requireTitle {
			return UpdateParams{}, fmt.Errorf("This field is required.")
		}
		params.Title = body.Title
	}

	if requireTitle && params.Title == nil {
		return UpdateParams{}, fmt.Errorf("This field is required.")
	}
	return params, nil
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "Document not found")
	case errors.Is(err, ErrInvalidInput):
		respond.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request", map[string]string{
			"title": strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": "),
		})
	default:
		respond.Error(c, http.StatusInternalServerError, "internal error")
	}
}

func parseDocumentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusNotFound, "Document not found")
		return 0, false
	}
	c.Set("documentId", id)
	return id, true
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
