package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = io.WriteString(w, "ok")
}

func TestAppendRouteRestrictsMethods(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	s.AppendRoute("/page", okHandler, http.MethodGet, http.MethodHead)

	tests := []struct {
		method string
		want   int
	}{
		{method: http.MethodGet, want: http.StatusOK},
		{method: http.MethodHead, want: http.StatusOK},
		{method: http.MethodPost, want: http.StatusMethodNotAllowed},
		{method: http.MethodDelete, want: http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, httptest.NewRequest(tt.method, "/page", nil))
			if rec.Code != tt.want {
				t.Fatalf("%s /page: expected %d, got %d", tt.method, tt.want, rec.Code)
			}
		})
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	s := NewServer("127.0.0.1:0")
	s.AppendRoute("/page", okHandler)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAppendFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "invoice.png")
	if err := os.WriteFile(file, []byte("png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := NewServer("127.0.0.1:0")
	s.AppendFile("/pay/invoice.png", file)
	s.AppendFile("/pay/missing.png", filepath.Join(dir, "missing.png"))

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pay/invoice.png", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "png" {
		t.Fatalf("expected file contents, got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pay/missing.png", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing image, got %d", rec.Code)
	}
}
