package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/prodash/prodash/product"
	"github.com/prodash/prodash/services/products"
)

// ProxyFetcher adapts the proxy service to the controller's Fetcher
// interface, normalizing the list response shape on the way through.
type ProxyFetcher struct {
	Service *products.Service
}

func NewProxyFetcher(svc *products.Service) *ProxyFetcher {
	return &ProxyFetcher{Service: svc}
}

func (p *ProxyFetcher) List(ctx context.Context, q product.ListQuery) (product.Page, error) {
	body, err := p.Service.List(ctx, strconv.Itoa(q.Page), strconv.Itoa(q.Limit), q.Search)
	if err != nil {
		return product.Page{}, err
	}
	return product.NormalizePage(body), nil
}

func (p *ProxyFetcher) Create(ctx context.Context, values FormValues) error {
	payload, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode create payload: %w", err)
	}
	_, err = p.Service.Create(ctx, payload)
	return err
}

func (p *ProxyFetcher) Update(ctx context.Context, values FormValues) error {
	payload, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode update payload: %w", err)
	}
	_, err = p.Service.Update(ctx, payload)
	return err
}
