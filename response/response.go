package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape of every proxy error: {"error": "..."}.
// The dashboard client and the upstream API share this convention.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON encodes v with the given status code.
func JSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Raw writes an upstream payload through verbatim. The proxy must not
// re-encode the body: larger-than-int53 ids and field ordering survive only
// if the bytes pass through untouched.
func Raw(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// Error writes a normalized error body.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, ErrorBody{Error: message})
}
