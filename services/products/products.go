// Package products is the proxy service between the dashboard surface and
// the upstream product API. Each operation translates to exactly one
// upstream call and normalizes any failure into a products.Error.
package products

import (
	"context"
	"net/url"

	"github.com/prodash/prodash/logger"
)

// Upstream is the transport the service forwards through. *upstream.Client
// satisfies it; tests substitute fakes.
type Upstream interface {
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)
	Post(ctx context.Context, path string, body []byte) ([]byte, error)
	Put(ctx context.Context, path string, body []byte) ([]byte, error)
}

type Service struct {
	up  Upstream
	log *logger.Logger
}

func NewService(up Upstream, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{up: up, log: log}
}

// FetchOne returns one product by id, verbatim from upstream. An empty id
// fails before any upstream call is attempted.
func (s *Service) FetchOne(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, BadRequest("product_id is required")
	}
	body, err := s.up.Get(ctx, "/product", url.Values{"product_id": {id}})
	if err != nil {
		return nil, s.upstreamError("products.FetchOne", err, "Failed to fetch product")
	}
	return body, nil
}

// Create forwards the inbound payload to the upstream create call unchanged.
func (s *Service) Create(ctx context.Context, payload []byte) ([]byte, error) {
	body, err := s.up.Post(ctx, "/product", payload)
	if err != nil {
		return nil, s.upstreamError("products.Create", err, "Failed to create product")
	}
	return body, nil
}

// Update forwards the inbound payload to the upstream update call unchanged.
// The payload is expected to carry product_id; the upstream rejects it
// otherwise, and that rejection flows back as the normalized error.
func (s *Service) Update(ctx context.Context, payload []byte) ([]byte, error) {
	body, err := s.up.Put(ctx, "/product", payload)
	if err != nil {
		return nil, s.upstreamError("products.Update", err, "Failed to update product")
	}
	return body, nil
}

// List forwards page, limit and search as-is and returns the upstream
// payload verbatim. Empty parameters take the documented defaults.
func (s *Service) List(ctx context.Context, page, limit, search string) ([]byte, error) {
	if page == "" {
		page = "1"
	}
	if limit == "" {
		limit = "10"
	}
	q := url.Values{"page": {page}, "limit": {limit}, "search": {search}}
	body, err := s.up.Get(ctx, "/products", q)
	if err != nil {
		return nil, s.upstreamError("products.List", err, "Failed to fetch products")
	}
	return body, nil
}

func (s *Service) upstreamError(op string, err error, fallback string) *Error {
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	s.log.Error(op, logger.Fields{"error": msg})
	return &Error{Kind: KindUpstream, Message: msg}
}
