package server

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/livinggrainco/site/internal/session"
)

func TestAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}

	deps := testDeps(session.NewMemoryStore(time.Hour))
	deps.AssetsDir = dir
	h := newRouter(slog.New(slog.DiscardHandler), deps)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/assets/site.css", http.StatusOK},
		{"/assets/missing.css", http.StatusNotFound},
		{"/assets/img/", http.StatusNotFound},
		{"/assets/../go.mod", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.path, rec.Code, tt.wantStatus)
		}
	}
}

func TestAssetsWithoutDirectory(t *testing.T) {
	deps := testDeps(session.NewMemoryStore(time.Hour))
	deps.AssetsDir = filepath.Join(t.TempDir(), "absent")
	h := newRouter(slog.New(slog.DiscardHandler), deps)

	req := httptest.NewRequest(http.MethodGet, "/assets/site.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
