package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"crusaiders.backend/internal/infrastructure/repositories"
	"crusaiders.backend/internal/usecases"
)

func newContentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecases.NewContentUsecase(
		repositories.NewMemoryTeamMemberRepository(),
		repositories.NewMemoryProjectRepository(),
	)
	h := NewContentHandler(uc)
	r := gin.New()
	r.GET("/api/team", h.ListTeamMembers)
	r.GET("/api/projects", h.ListProjects)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) []map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for %s, got %d body=%s", path, rec.Code, rec.Body.String())
	}
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("expected a JSON array for %s: %v", path, err)
	}
	return items
}

func TestListTeamMembersReturnsArray(t *testing.T) {
	r := newContentRouter()
	items := getJSON(t, r, "/api/team")
	if len(items) == 0 {
		t.Fatal("expected seeded team members")
	}
	for _, m := range items {
		for _, key := range []string{"id", "name", "role", "bio", "skills"} {
			if _, ok := m[key]; !ok {
				t.Fatalf("team member missing %q: %v", key, m)
			}
		}
	}
}

func TestListProjectsReturnsArray(t *testing.T) {
	r := newContentRouter()
	items := getJSON(t, r, "/api/projects")
	if len(items) == 0 {
		t.Fatal("expected seeded projects")
	}
	for _, p := range items {
		for _, key := range []string{"id", "title", "description", "category"} {
			if _, ok := p[key]; !ok {
				t.Fatalf("project missing %q: %v", key, p)
			}
		}
	}
}
