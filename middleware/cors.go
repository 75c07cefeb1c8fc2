package middleware

import (
	"net/http"
	"strings"

	"github.com/prodash/prodash/config"
)

// CORS returns a middleware that applies CORS headers based on config.
// The dashboard frontend is typically served from another origin in
// development, so the default is permissive.
func CORS(c config.CorsConfig) func(http.Handler) http.Handler {
	origin := "*"
	if len(c.AllowedOrigins) > 0 {
		origin = c.AllowedOrigins[0]
	}
	methods := "GET,POST,PUT,OPTIONS"
	if len(c.AllowedMethods) > 0 {
		methods = strings.Join(c.AllowedMethods, ",")
	}
	headers := "Content-Type"
	if len(c.AllowedHeaders) > 0 {
		headers = strings.Join(c.AllowedHeaders, ",")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
