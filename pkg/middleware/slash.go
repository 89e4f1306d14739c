package middleware

import (
	"net/http"
	"slices"
	"strings"
)

// AddSlash returns middleware that redirects requests without a trailing slash
// to the slashed form, matching route tables whose paths end in "/". Paths with
// a file extension and the exempt paths are served unchanged.
func AddSlash(exempt ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if strings.HasSuffix(path, "/") || hasFileExtension(path) || slices.Contains(exempt, path) {
				next.ServeHTTP(w, r)
				return
			}

			target := path + "/"
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			status := http.StatusMovedPermanently
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				status = http.StatusPermanentRedirect
			}
			http.Redirect(w, r, target, status)
		})
	}
}

func hasFileExtension(path string) bool {
	lastSlash := strings.LastIndex(path, "/")
	lastDot := strings.LastIndex(path, ".")
	return lastDot > lastSlash
}
