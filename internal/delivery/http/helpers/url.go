package helpers

import (
	"net/http"
	"strings"
)

// BaseURL returns the absolute origin used to build external links.
// configured (PUBLIC_BASE_URL) wins; otherwise the scheme comes from TLS or
// X-Forwarded-Proto and the host from the request.
func BaseURL(r *http.Request, configured string) string {
	if configured != "" {
		return strings.TrimSuffix(configured, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host
}
