package triage

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

const validBody = `{"symptoms":"I have a persistent headache and feel dizzy when standing up","duration":"2-3 days","severity":6,"age":35}`

func TestHandler_Diagnose(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Diagnose(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var d Diagnosis
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if d.SeverityTier != TierModerate {
		t.Errorf("expected moderate tier, got %s", d.SeverityTier)
	}
	if d.AnalyzedSymptoms == "" {
		t.Error("expected analyzed_symptoms to be echoed back")
	}
}

func TestHandler_Diagnose_ValidationError(t *testing.T) {
	h, e := newTestHandler()
	body := `{"symptoms":"asdf","severity":6}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/diagnose", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Diagnose(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
			Kind  string `json:"kind"`
		} `json:"details"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Error != "Validation Error" {
		t.Errorf("unexpected error label %q", resp.Error)
	}
	if len(resp.Details) != 1 || resp.Details[0].Field != "symptoms" {
		t.Errorf("expected one detail for field symptoms, got %+v", resp.Details)
	}
	if resp.Path != "/api/v1/diagnose" {
		t.Errorf("expected request path in response, got %q", resp.Path)
	}
}

func TestHandler_Diagnose_MalformedJSON(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"symptoms":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.Diagnose(c)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Echo(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Echo(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp EchoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.ReceivedDuration != "2-3 days" {
		t.Errorf("expected duration echoed back, got %q", resp.ReceivedDuration)
	}
	if resp.ReceivedSeverity == nil || *resp.ReceivedSeverity != 6 {
		t.Error("expected severity echoed back")
	}
}

func TestHandler_EchoPreviewKeepsRunesIntact(t *testing.T) {
	h, e := newTestHandler()

	symptoms := strings.Repeat("ü", 60)
	body, err := json.Marshal(map[string]string{"symptoms": symptoms})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Echo(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp EchoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !utf8.ValidString(resp.Message) {
		t.Errorf("preview split a multi-byte character: %q", resp.Message)
	}
	if want := strings.Repeat("ü", 50); !strings.Contains(resp.Message, want) {
		t.Errorf("expected a 50-character preview, got %q", resp.Message)
	}
}

func TestHandler_HistoryLifecycle(t *testing.T) {
	h, e := newTestHandler()

	// Empty history enumerates as an empty array.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h.History(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}

	// Two diagnoses, two entries.
	for i := 0; i < 2; i++ {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec = httptest.NewRecorder()
		if err := h.Diagnose(e.NewContext(req, rec)); err != nil {
			t.Fatalf("diagnose failed: %v", err)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	if err := h.History(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var entries []*HistoryEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != 1 || entries[1].ID != 2 {
		t.Fatalf("expected entries with ids 1,2, got %+v", entries)
	}

	// Clear succeeds with 204 and empties the log.
	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	rec = httptest.NewRecorder()
	if err := h.ClearHistory(e.NewContext(req, rec)); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	if err := h.History(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array after clear, got %s", body)
	}
}

func TestHandler_HistoryEntry(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Diagnose(e.NewContext(req, rec)); err != nil {
		t.Fatalf("diagnose failed: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.HistoryEntry(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_HistoryEntry_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")
	err := h.HistoryEntry(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_HistoryEntry_InvalidID(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")
	err := h.HistoryEntry(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
