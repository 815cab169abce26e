package users_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"docqa-backend/internal/users"
)

func newMeRouter(t *testing.T, svc *users.Service, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	users.NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestMeReturnsStoredProfile(t *testing.T) {
	svc := users.NewService(users.NewMemoryUsersRepo())
	if _, err := svc.Upsert(context.Background(), users.User{
		ID:         "google:123",
		Email:      "jo@example.com",
		FullName:   "Jo Example",
		PictureURL: "https://example.com/jo.png",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	router := newMeRouter(t, svc, "google:123")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["userId"] != "google:123" || body["email"] != "jo@example.com" || body["name"] != "Jo Example" {
		t.Fatalf("unexpected profile: %v", body)
	}
}

func TestMeGuestFallsBackToDerivedIdentity(t *testing.T) {
	svc := users.NewService(users.NewMemoryUsersRepo())

	router := newMeRouter(t, svc, "guest:abc")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["userId"] != "guest:abc" {
		t.Fatalf("expected guest identity, got %v", body)
	}
	if _, ok := body["email"]; ok {
		t.Fatalf("expected no email for guest, got %v", body)
	}
}

func TestMemoryRepoUpsertPreservesCreatedAt(t *testing.T) {
	repo := users.NewMemoryUsersRepo()

	first, err := repo.Upsert(context.Background(), users.User{ID: "google:1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := repo.Upsert(context.Background(), users.User{ID: "google:1", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected created_at preserved, got %v vs %v", second.CreatedAt, first.CreatedAt)
	}
	if second.Email != "b@example.com" {
		t.Fatalf("expected updated email, got %q", second.Email)
	}
}
