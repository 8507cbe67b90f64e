package middleware

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/frahmantamala/hrms-backend/internal/transport"
)

// TrustedHosts rejects requests whose Host header is not in hosts. Entries
// may be exact names, "*" or a "*.example.com" suffix. An empty list
// allows every host.
func TrustedHosts(hosts []string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(hosts) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := r.Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}
			if hostAllowed(strings.ToLower(host), hosts) {
				next.ServeHTTP(w, r)
				return
			}

			logger.Warn("untrusted host rejected", "host", r.Host, "path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(transport.Failure("Invalid host header", nil))
		})
	}
}

func hostAllowed(host string, allowed []string) bool {
	for _, pattern := range allowed {
		pattern = strings.ToLower(pattern)
		switch {
		case pattern == "*":
			return true
		case strings.HasPrefix(pattern, "*."):
			if strings.HasSuffix(host, pattern[1:]) {
				return true
			}
		case host == pattern:
			return true
		}
	}
	return false
}
