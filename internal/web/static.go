package web

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

type asset struct {
	body        string
	contentType string
	etag        string
}

func newAsset(body, contentType string) asset {
	sum := sha256.Sum256([]byte(body))
	return asset{body: body, contentType: contentType, etag: `"` + hex.EncodeToString(sum[:8]) + `"`}
}

var staticAssets = map[string]asset{
	cssPath:    newAsset(cssContent, "text/css; charset=utf-8"),
	siteJSPath: newAsset(siteJSContent, "text/javascript; charset=utf-8"),
	heroJSPath: newAsset(heroJSContent, "text/javascript; charset=utf-8"),
}

// StaticFiles returns the built-in assets keyed by URL path.
func StaticFiles() map[string]string {
	files := make(map[string]string, len(staticAssets))
	for path, a := range staticAssets {
		files[path] = a.body
	}
	return files
}

func serveAsset(a asset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", a.contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("ETag", a.etag)
		if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, a.etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Write([]byte(a.body))
	}
}
