package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(ContextKeyRequestID, "req-123")

	Success(c, http.StatusCreated, gin.H{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("got status %d, want 201", w.Code)
	}

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error != nil {
		t.Errorf("unexpected error body: %+v", body.Error)
	}
	if body.Metadata.RequestID != "req-123" {
		t.Errorf("got request id %q, want req-123", body.Metadata.RequestID)
	}
	if body.Metadata.Timestamp == "" {
		t.Error("metadata timestamp is empty")
	}
}

func TestFailEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(c, http.StatusNotFound, ErrSubjectNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error == nil || body.Error.Code != ErrSubjectNotFound {
		t.Errorf("got error %+v, want code %q", body.Error, ErrSubjectNotFound)
	}
	// Without the request id middleware a fallback id is still generated.
	if body.Metadata.RequestID == "" {
		t.Error("metadata request id is empty")
	}
}

func TestFailWithFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	fields := map[string]string{"name": "Name is required."}
	FailWithFields(c, http.StatusUnprocessableEntity, ErrValidation, fields)

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error == nil || body.Error.Fields["name"] != "Name is required." {
		t.Errorf("got error %+v, want field detail for name", body.Error)
	}
}
