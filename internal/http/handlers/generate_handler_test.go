package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"kottage/internal/ai"
)

type fakeExtractor struct {
	result *ai.ExtractionResult
	err    error

	gotDescription string
}

func (f *fakeExtractor) ExtractFields(_ context.Context, description string) (*ai.ExtractionResult, error) {
	f.gotDescription = description
	return f.result, f.err
}

func newGenerateRouter(extractor ai.FieldExtractor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewGenerateHandler(extractor)
	r.POST("/api/generate/form-fields", h.FormFields)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateFormFields_Success(t *testing.T) {
	name := "Pawfect Grooming"
	fake := &fakeExtractor{result: &ai.ExtractionResult{
		Classification: ai.Classification{
			Category:     "Pet Services",
			Subcategory:  "Dog Grooming",
			ServiceFocus: "Mobile grooming",
		},
		ExtractedFields:      map[string]*string{"business_name": &name, "booking_policy": nil},
		RecommendedFields:    []string{"service_area"},
		MissingMandatoryInfo: []string{"booking_policy"},
	}}
	r := newGenerateRouter(fake)

	w := postJSON(t, r, "/api/generate/form-fields", `{"description":"I run a mobile dog grooming business"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if fake.gotDescription != "I run a mobile dog grooming business" {
		t.Errorf("description passed = %q", fake.gotDescription)
	}

	body := w.Body.String()
	for _, want := range []string{
		`"classification"`,
		`"extracted_fields"`,
		`"recommended_fields"`,
		`"missing_mandatory_info"`,
		`"business_name":"Pawfect Grooming"`,
		`"booking_policy":null`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body = %s, want %s", body, want)
		}
	}
}

func TestGenerateFormFields_MissingDescription(t *testing.T) {
	fake := &fakeExtractor{}
	r := newGenerateRouter(fake)

	for _, body := range []string{`{}`, `{"description":"   "}`, `not json`} {
		w := postJSON(t, r, "/api/generate/form-fields", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
	if fake.gotDescription != "" {
		t.Error("extractor must not be called on invalid input")
	}
}

func TestGenerateFormFields_UpstreamErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"provider down", ai.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"unparseable model output", ai.ErrMalformedResponse, http.StatusBadGateway},
		{"invalid input sentinel", ai.ErrInvalidInput, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newGenerateRouter(&fakeExtractor{err: tc.err})
			w := postJSON(t, r, "/api/generate/form-fields", `{"description":"something"}`)
			if w.Code != tc.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tc.wantCode)
			}
		})
	}
}
