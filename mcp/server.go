// Package mcp exposes the product proxy operations as MCP tools so agent
// clients can drive the same upstream API the dashboard uses.
package mcp

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/prodash/prodash/logger"
	"github.com/prodash/prodash/services/products"
)

func newServer(svc *products.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"prodash",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	registerTools(s, svc)
	return s
}

// Serve starts the MCP stdio server with all tools registered.
func Serve(svc *products.Service) error {
	return server.ServeStdio(newServer(svc))
}

// ServeHTTP starts the MCP server over HTTP with optional bearer auth.
func ServeHTTP(addr, apiKey string, svc *products.Service) error {
	httpServer := server.NewStreamableHTTPServer(newServer(svc), server.WithStateLess(true))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	var handler http.Handler = httpServer
	if apiKey != "" {
		handler = bearerAuth(apiKey, httpServer)
	}
	mux.Handle("/mcp", handler)

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("mcp.listen", logger.Fields{"addr": addr})
	return srv.ListenAndServe()
}

func bearerAuth(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="mcp"`)
			http.Error(w, `{"error":"missing Authorization header"}`, http.StatusUnauthorized)
			return
		}
		token, found := strings.CutPrefix(auth, "Bearer ")
		if !found || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			w.Header().Set("WWW-Authenticate", `Bearer realm="mcp", error="invalid_token"`)
			http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
