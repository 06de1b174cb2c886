package static

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// contentTypes maps file extensions to Content-Type headers. Anything
// else is served as an opaque byte stream.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
}

// Handler serves files from webRoot for GET requests on paths no API route
// claimed. "/" maps to index.html. The resolved path must stay inside the
// web root; anything that escapes is rejected with 403 before touching the
// filesystem.
func Handler(webRoot string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusNotFound, "unknown endpoint")
			return
		}

		path := r.URL.Path
		if path == "/" {
			path = "/index.html"
		}

		absRoot, err := filepath.Abs(webRoot)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		full := filepath.Join(absRoot, filepath.Clean(strings.TrimPrefix(path, "/")))
		if full != absRoot && !strings.HasPrefix(full, absRoot+string(os.PathSeparator)) {
			writeError(w, http.StatusForbidden, "invalid path")
			return
		}

		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			writeError(w, http.StatusNotFound, "file not found")
			return
		}

		content, err := os.ReadFile(full)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		contentType, ok := contentTypes[strings.ToLower(filepath.Ext(full))]
		if !ok {
			contentType = "application/octet-stream"
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(content)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
