package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"kottage/internal/modules/form"
)

func newFormRouter(t *testing.T) *gin.Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := form.NewService(form.NewStore(rdb), nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewFormHandler(svc)
	r.GET("/api/form", h.Load)
	r.PATCH("/api/form", h.Merge)
	r.POST("/api/form/extraction", h.ApplyExtraction)
	return r
}

func TestApplyExtraction_MergesIntoStore(t *testing.T) {
	r := newFormRouter(t)

	body := `{
		"classification": {
			"category": "Pet Services",
			"subcategory": "Dog Grooming",
			"service_focus": "Mobile grooming"
		},
		"extracted_fields": {
			"business_name": "Pawfect Grooming",
			"booking_policy": "instant booking",
			"payment_policy": null
		},
		"recommended_fields": ["service_area"],
		"missing_mandatory_info": ["payment_policy"]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/form/extraction", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	// The server owns the extraction-key mapping; responses carry registry keys.
	resp := w.Body.String()
	for _, want := range []string{
		`"serviceCategory":"Pet Services"`,
		`"serviceSubcategory":"Dog Grooming"`,
		`"shopDescription":"Mobile grooming"`,
		`"shopName":"Pawfect Grooming"`,
		`"booking-policy-details":"instant booking"`,
	} {
		if !strings.Contains(resp, want) {
			t.Errorf("body = %s, want %s", resp, want)
		}
	}
	if strings.Contains(resp, "payment-policy-details") {
		t.Error("null extracted field must not be merged")
	}

	// The merge is persisted, not just echoed.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/form", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("load status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"shopName":"Pawfect Grooming"`) {
		t.Errorf("stored answers = %s, want shopName present", w.Body.String())
	}
}

func TestApplyExtraction_KeepsExistingAnswers(t *testing.T) {
	r := newFormRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/form", strings.NewReader(`{"shopWebsite":"https://pawfect.example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed merge status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/form/extraction", strings.NewReader(`{
		"classification": {"category": "Pet Services"},
		"extracted_fields": {}
	}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := w.Body.String()
	if !strings.Contains(resp, `"shopWebsite":"https://pawfect.example.com"`) {
		t.Errorf("body = %s, want prior answers kept", resp)
	}
	if !strings.Contains(resp, `"serviceCategory":"Pet Services"`) {
		t.Errorf("body = %s, want classification merged", resp)
	}
}

func TestApplyExtraction_InvalidJSON(t *testing.T) {
	r := newFormRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/form/extraction", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
