package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/nurpe/printhub-api/internal/auth"
	"github.com/nurpe/printhub-api/internal/http/middleware"
	"github.com/nurpe/printhub-api/internal/model"
	"github.com/nurpe/printhub-api/internal/pdf"
	"github.com/nurpe/printhub-api/internal/service"
)

const testSecret = "test-secret"

type memStore struct {
	contacts     []model.ContactSubmission
	uploads      []model.FileUpload
	testimonials []model.Testimonial
	failInsert   error
}

func (m *memStore) InsertContact(_ context.Context, sub *model.ContactSubmission) error {
	if m.failInsert != nil {
		return m.failInsert
	}
	m.contacts = append(m.contacts, *sub)
	return nil
}

func (m *memStore) InsertFileUpload(_ context.Context, upload *model.FileUpload) error {
	if m.failInsert != nil {
		return m.failInsert
	}
	m.uploads = append(m.uploads, *upload)
	return nil
}

func (m *memStore) ListContacts(_ context.Context) ([]model.ContactSubmission, error) {
	return m.contacts, nil
}

func (m *memStore) ListFileUploads(_ context.Context) ([]model.FileUpload, error) {
	return m.uploads, nil
}

func (m *memStore) InsertTestimonial(_ context.Context, t *model.Testimonial) error {
	if m.failInsert != nil {
		return m.failInsert
	}
	m.testimonials = append(m.testimonials, *t)
	return nil
}

func (m *memStore) ListTestimonials(_ context.Context) ([]model.Testimonial, error) {
	return m.testimonials, nil
}

type stubExcel struct{}

func (stubExcel) Generate(model.SubmissionExport) ([]byte, error) {
	return []byte("xlsx"), nil
}

func newTestRouter(t *testing.T, store *memStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	submissions := service.NewSubmissionService(store, store, stubExcel{})
	quotes := service.NewQuoteService(pdf.NewGenerator(), "Rs.")
	handler := NewHandler(submissions, quotes, zerolog.Nop())
	authMiddleware := middleware.Auth(auth.NewParser(testSecret))
	return NewRouter(handler, authMiddleware, "test", nil)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

func TestCreateContact_ValidationFailureListsEveryField(t *testing.T) {
	router := newTestRouter(t, &memStore{})

	recorder := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "A",
		"phone":   "123",
		"email":   "bad",
		"service": "",
		"message": "hi",
	}, nil)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}

	body := decodeBody(t, recorder)
	if body["error"] != "Validation failed" {
		t.Fatalf("error = %v, want Validation failed", body["error"])
	}

	details, _ := body["details"].(string)
	for _, want := range []string{
		"Name must be at least 2 characters",
		"Please enter a valid phone number",
		"Please enter a valid email",
		"Please select a service",
		"Message must be at least 10 characters",
	} {
		if !strings.Contains(details, want) {
			t.Fatalf("details missing %q: %s", want, details)
		}
	}
}

func TestCreateContact_RoundTrip(t *testing.T) {
	store := &memStore{}
	router := newTestRouter(t, store)

	recorder := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Rajesh Kumar",
		"phone":   "9740007147",
		"email":   "raj@example.com",
		"service": "offset-printing",
		"message": "Need 500 business cards please",
	}, nil)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", recorder.Code, recorder.Body.String())
	}

	body := decodeBody(t, recorder)
	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatal("expected a non-empty id")
	}

	if len(store.contacts) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(store.contacts))
	}
	stored := store.contacts[0]
	if stored.ID.String() != id {
		t.Fatalf("stored id %s does not match response id %s", stored.ID, id)
	}
	if stored.Name != "Rajesh Kumar" || stored.Service != "offset-printing" {
		t.Fatalf("stored record does not match input: %+v", stored)
	}
	if stored.SubmittedAt.IsZero() {
		t.Fatal("expected a server-assigned submittedAt")
	}
}

func TestCreateContact_StoreFailure(t *testing.T) {
	store := &memStore{failInsert: errors.New("connection refused")}
	router := newTestRouter(t, store)

	recorder := doJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Rajesh Kumar",
		"phone":   "9740007147",
		"email":   "raj@example.com",
		"service": "offset-printing",
		"message": "Need 500 business cards please",
	}, nil)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", recorder.Code)
	}

	body := decodeBody(t, recorder)
	if body["error"] != "Internal server error" {
		t.Fatalf("error = %v, want Internal server error", body["error"])
	}
	if len(store.contacts) != 0 {
		t.Fatalf("expected zero rows after store failure, got %d", len(store.contacts))
	}
}

func TestCreateFileUpload_MetadataOnly(t *testing.T) {
	store := &memStore{}
	router := newTestRouter(t, store)

	recorder := doJSON(t, router, http.MethodPost, "/api/file-uploads", map[string]string{
		"customerName":  "Priya Sharma",
		"customerEmail": "priya@example.com",
		"customerPhone": "9876543210",
		"serviceType":   "Business Cards",
		"fileName":      "card-design.pdf",
		"fileSize":      "2.50 MB",
		"fileType":      "application/pdf",
	}, nil)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", recorder.Code, recorder.Body.String())
	}
	if len(store.uploads) != 1 {
		t.Fatalf("expected 1 stored upload, got %d", len(store.uploads))
	}
	if store.uploads[0].FileSize != "2.50 MB" {
		t.Fatalf("file size = %q, want 2.50 MB", store.uploads[0].FileSize)
	}
}

func TestEstimateQuote(t *testing.T) {
	router := newTestRouter(t, &memStore{})

	recorder := doJSON(t, router, http.MethodPost, "/api/quote", map[string]any{
		"serviceType": "business-cards",
		"quantity":    100,
		"quality":     "luxury",
		"printSide":   "double",
	}, nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}

	body := decodeBody(t, recorder)
	if body["estimatedPrice"] != float64(1232) {
		t.Fatalf("estimatedPrice = %v, want 1232", body["estimatedPrice"])
	}
}

func TestEstimateQuote_UnknownServiceType(t *testing.T) {
	router := newTestRouter(t, &memStore{})

	recorder := doJSON(t, router, http.MethodPost, "/api/quote", map[string]any{
		"serviceType": "t-shirts",
		"quantity":    10,
	}, nil)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
}

func TestQuoteDocument_ReturnsPDF(t *testing.T) {
	router := newTestRouter(t, &memStore{})

	recorder := doJSON(t, router, http.MethodPost, "/api/quote/pdf", map[string]any{
		"serviceType": "posters",
		"quantity":    50,
		"quality":     "premium",
		"printSide":   "single",
	}, nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content type = %q, want application/pdf", got)
	}
	if !bytes.HasPrefix(recorder.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("response body is not a PDF")
	}
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	router := newTestRouter(t, &memStore{})

	for _, path := range []string{"/admin/contact-submissions", "/admin/file-uploads", "/admin/submissions/export"} {
		recorder := doJSON(t, router, http.MethodGet, path, nil, nil)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", path, recorder.Code)
		}
	}
}

func TestAdminListContacts_WithToken(t *testing.T) {
	store := &memStore{contacts: []model.ContactSubmission{{Name: "Rajesh Kumar"}}}
	router := newTestRouter(t, store)

	recorder := doJSON(t, router, http.MethodGet, "/admin/contact-submissions", nil, map[string]string{
		"Authorization": "Bearer " + signTestToken(t),
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}

	body := decodeBody(t, recorder)
	items, _ := body["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %v", body["items"])
	}
}

func signTestToken(t *testing.T) string {
	t.Helper()

	claims := auth.Claims{
		Email: "admin@example.com",
		Role:  "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return token
}
