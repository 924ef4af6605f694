package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// handleAssets serves files under dir at /assets/. Directories are not
// listed.
func handleAssets(dir string) http.Handler {
	fileServer := http.StripPrefix("/assets/", http.FileServer(http.Dir(dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := filepath.FromSlash(r.URL.Path[len("/assets/"):])
		path := filepath.Join(dir, filepath.Clean("/"+rel))
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
}
