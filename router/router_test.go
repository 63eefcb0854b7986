// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/valentine-week/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	mux, err := NewRouter(db, cfg)
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootServesIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)

	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.StaticDir, "index.html"), []byte("<html>love</html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	mux, err := NewRouter(db, cfg)
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	for _, path := range []string{"/", "/day/rose-day"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			if w.Body.String() != "<html>love</html>" {
				t.Errorf("Expected index.html, got '%s'", w.Body.String())
			}
		})
	}
}

func TestStaticRequestsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	mux, err := NewRouter(db, cfg)
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	// No index.html, so the fallback answers 404
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/day/rose-day", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	out := buf.String()
	if !strings.Contains(out, "request completed") || !strings.Contains(out, "path=/day/rose-day") || !strings.Contains(out, "status=404") {
		t.Errorf("Expected completion log for the static request, got:\n%s", out)
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	mux, err := NewRouter(db, cfg)
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	// 400, 403 and 404 are all valid responses depending on handler logic
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/api/days"},
		{"GET", "/api/days/rose-day"},
		{"GET", "/api/today"},
		{"POST", "/api/movie-date"},
		{"POST", "/api/chocolate-ranking"},
		{"POST", "/api/promise-day"},
		{"POST", "/api/track-visit"},
		{"GET", "/api/movie-date/responses"},
		{"GET", "/api/teddy-responses"},
		{"GET", "/api/chocolate-ranking/responses"},
		{"GET", "/api/promise-day/responses"},
		{"GET", "/api/track-visit/responses"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	mux, err := NewRouter(db, cfg)
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"POST", "/api/days"},
		{"DELETE", "/api/movie-date/responses"},
		{"PUT", "/api/movie-date"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPreflight(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	mux, err := NewRouter(db, cfg)
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	req := httptest.NewRequest("OPTIONS", "/api/movie-date", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected origin to be echoed, got '%s'", got)
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	mux, err := NewRouter(db, cfg)
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	t.Run("known slug", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/days/teddy-day", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("unknown slug", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/days/unknown-day", nil))
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
