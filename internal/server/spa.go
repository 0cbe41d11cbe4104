package server

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

// handleSPA serves the built terminal frontend from dir. Paths that don't
// name a real file get index.html so client-side routes still load.
func handleSPA(dir string) http.HandlerFunc {
	root := os.DirFS(dir)
	fileServer := http.FileServerFS(root)

	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name != "" {
			if info, err := fs.Stat(root, name); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		// API paths never fall back to the app shell.
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		http.ServeFileFS(w, r, root, "index.html")
	}
}
