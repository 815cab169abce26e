package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa-backend/internal/shared/server/middleware"
	"docqa-backend/internal/shared/server/respond"
)

// Handler exposes the current-user endpoint.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes attaches the /me endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

// me reports the caller's identity. Signed-in users get their stored profile;
// guests get their derived id, since no profile is kept for them.
func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	response := gin.H{"userId": userID}

	if user, err := h.Service.Get(c.Request.Context(), userID); err == nil {
		if user.Email != "" {
			response["email"] = user.Email
		}
		if user.FullName != "" {
			response["name"] = user.FullName
		}
		if user.PictureURL != "" {
			response["picture"] = user.PictureURL
		}
		respond.OK(c, response)
		return
	}

	// Fall back to token claims when no profile is stored.
	if email := middleware.UserEmailFromContext(c); email != "" {
		response["email"] = email
	}
	if name := middleware.UserNameFromContext(c); name != "" {
		response["name"] = name
	}
	if picture := middleware.UserPictureFromContext(c); picture != "" {
		response["picture"] = picture
	}
	respond.OK(c, response)
}
