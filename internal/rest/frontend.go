package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// FrontendHandler serves the built single-page frontend. Requests that do not
// match a file on disk fall back to the index page so client-side routes work
// after a reload.
type FrontendHandler struct {
	dir   string
	index string
	files http.Handler
}

func NewFrontendHandler(dir string, index string) *FrontendHandler {
	return &FrontendHandler{
		dir:   dir,
		index: index,
		files: http.FileServer(http.Dir(dir)),
	}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.Clean("/"+r.URL.Path))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, h.index))
		return
	}
	h.files.ServeHTTP(w, r)
}
