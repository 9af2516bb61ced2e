package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

const indexDocument = "index.html"

// Handler serves regular files below a root directory.
type Handler struct {
	root          string
	indexFallback bool
	logger        *slog.Logger
}

func NewHandler(root string, indexFallback bool, logger *slog.Logger) (*Handler, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", abs)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{root: abs, indexFallback: indexFallback, logger: logger}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := h.resolve(r.URL.Path)
	if h.sendFile(w, target) {
		h.logger.Debug("served", slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.String("file", target))
		return
	}

	if h.indexFallback && h.sendFile(w, filepath.Join(h.root, indexDocument)) {
		h.logger.Debug("served index fallback", slog.String("method", r.Method), slog.String("path", r.URL.Path))
		return
	}

	h.logger.Debug("not found", slog.String("method", r.Method), slog.String("path", r.URL.Path))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, "Not Found")
}

// resolve maps a decoded URL path to a file path that cannot leave the root.
// Cleaning against "/" drops every ".." that would climb above it. Backslashes
// are treated as separators first so Windows cannot see a hidden "..".
func (h *Handler) resolve(urlPath string) string {
	urlPath = strings.ReplaceAll(urlPath, `\`, "/")
	if urlPath == "" || urlPath == "/" {
		urlPath = "/" + indexDocument
	}
	clean := path.Clean("/" + urlPath)
	return filepath.Join(h.root, filepath.FromSlash(clean))
}

// sendFile streams name if it is a regular file and reports whether it did.
func (h *Handler) sendFile(w http.ResponseWriter, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	w.Header().Set("Content-Type", contentType(name))
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Warn("stream file", slog.String("file", name), slog.String("error", err.Error()))
	}
	return true
}
