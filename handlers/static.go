// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/valentine-week/middleware"
)

const indexFile = "index.html"

// StaticHandler serves the built front-end. Paths that don't name a file
// get index.html so client-side routes work, API-looking paths included.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Serve handles GET / and every path no other route claims
func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if rel != "" && h.serveFile(w, r, filepath.Join(h.dir, filepath.FromSlash(rel))) {
		return
	}

	if !h.serveFile(w, r, filepath.Join(h.dir, indexFile)) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	}
}

// serveFile writes the file at name if it exists and is not a directory.
func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
