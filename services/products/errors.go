package products

// Kind classifies a proxy failure for status mapping at the HTTP boundary.
type Kind int

const (
	// KindBadRequest is a caller mistake detected before any upstream call.
	KindBadRequest Kind = iota
	// KindUpstream is any upstream failure: network error, timeout, or a
	// non-2xx response.
	KindUpstream
)

// Error is the normalized proxy error. Message is always human-readable:
// the upstream error body when one exists, else the transport error, else a
// fixed per-operation fallback.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest builds a caller-error with the given message.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}
