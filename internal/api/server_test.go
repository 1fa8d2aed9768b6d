package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/govardhan-06/pdf-upload-extract-system/internal/config"
	"github.com/govardhan-06/pdf-upload-extract-system/internal/extract"
)

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	if cfg.DownloadTimeout == 0 {
		cfg.DownloadTimeout = 5 * time.Second
	}
	if cfg.MaxPDFBytes == 0 {
		cfg.MaxPDFBytes = 10 << 20
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := extract.NewService(extract.DefaultConfig(), log)
	return NewServer(svc, log, cfg)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, config.Config{})
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestExtract_RejectsInvalidURL(t *testing.T) {
	srv := newTestServer(t, config.Config{})

	cases := []string{
		"/extract",
		"/extract?pdf_url=ftp://example.com/doc.pdf",
		"/extract?pdf_url=not-a-url",
	}
	for _, path := range cases {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestExtract_RejectsBadPageParams(t *testing.T) {
	srv := newTestServer(t, config.Config{})

	for _, q := range []string{"start_page=zero", "end_page=-3", "start_page=0"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/extract?pdf_url=http://example.com/doc.pdf&"+q, nil)
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestExtract_DownloadFailureIs400(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer origin.Close()

	srv := newTestServer(t, config.Config{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/extract?pdf_url="+origin.URL+"/missing.pdf", nil)

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unfetchable document, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("non-JSON error body: %s", rec.Body.String())
	}
	if body["error"] == "" {
		t.Errorf("expected error message, got %v", body)
	}
}

func TestExtract_UnparseableDocumentIs500(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a pdf"))
	}))
	defer origin.Close()

	srv := newTestServer(t, config.Config{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/extract?pdf_url="+origin.URL+"/doc.pdf", nil)

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unparseable document, got %d", rec.Code)
	}
}

func TestPDFProxy(t *testing.T) {
	payload := []byte("%PDF-1.4 fake body")
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer origin.Close()

	srv := newTestServer(t, config.Config{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pdf/?pdf_url="+origin.URL+"/doc.pdf", nil)

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("expected pdf content type, got %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("unexpected cache header: %q", got)
	}
	if rec.Body.String() != string(payload) {
		t.Errorf("body not passed through")
	}
}

func TestPDFProxy_InvalidURL(t *testing.T) {
	srv := newTestServer(t, config.Config{})
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pdf/?pdf_url=garbage", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStats_OpenWithoutKey(t *testing.T) {
	srv := newTestServer(t, config.Config{})
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/extract", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestStats_RequiresKeyWhenConfigured(t *testing.T) {
	srv := newTestServer(t, config.Config{StatsAPIKey: "secret"})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/extract", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/extract", nil)
	req.Header.Set("Authorization", "Bearer secret")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
}

func TestCORS_PreflightAllowsAnyOrigin(t *testing.T) {
	srv := newTestServer(t, config.Config{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/extract", nil)
	req.Header.Set("Origin", "http://viewer.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}
