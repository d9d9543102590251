package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainerrors "crusaiders.backend/internal/domain/errors"
)

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return rec
}

func TestSuccess(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"message": "ok", "id": 7})
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var body struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Message != "ok" || body.ID != 7 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestErrorValidation(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Error(c, domainerrors.Validation(
			domainerrors.FieldError{Field: "email", Message: "Invalid email address"},
			domainerrors.FieldError{Field: "name", Message: "name is required"},
		))
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Message != "Invalid data" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
	if len(body.Errors) != 2 || body.Errors[0].Field != "email" {
		t.Fatalf("unexpected errors: %+v", body.Errors)
	}
}

func TestErrorAppError(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Error(c, domainerrors.NotFound("record not found"))
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["message"] != "record not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestErrorHidesUnknownCauses(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Error(c, errors.New("pq: connection refused"))
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "" || strings.Contains(body, "pq:") {
		t.Fatalf("internal cause leaked: %s", body)
	}
}
