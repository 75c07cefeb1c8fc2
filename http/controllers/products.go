package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/prodash/prodash/response"
	"github.com/prodash/prodash/router"
	"github.com/prodash/prodash/services/products"
)

// Products exposes the four proxy endpoints. Every handler is a direct
// translation of the inbound request into one service call; payloads pass
// through verbatim in both directions.
type Products struct {
	Service *products.Service
}

func NewProducts(svc *products.Service) *Products {
	return &Products{Service: svc}
}

// Show handles GET /product?product_id=<id>.
func (c *Products) Show(w http.ResponseWriter, r *http.Request) {
	body, err := c.Service.FetchOne(r.Context(), r.URL.Query().Get("product_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	response.Raw(w, http.StatusOK, body)
}

// Create handles POST /product.
func (c *Products) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	body, err := c.Service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Raw(w, http.StatusOK, body)
}

// Update handles PUT /product.
func (c *Products) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	body, err := c.Service.Update(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Raw(w, http.StatusOK, body)
}

// Index handles GET /products?page&limit&search.
func (c *Products) Index(w http.ResponseWriter, r *http.Request) {
	page := router.Query(r, "page", "1")
	limit := router.Query(r, "limit", "10")
	search := router.Query(r, "search", "")

	body, err := c.Service.List(r.Context(), page, limit, search)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Raw(w, http.StatusOK, body)
}

// RegisterRoutes registers the proxy routes into the provided router.
func (c *Products) RegisterRoutes(rt *router.Router) {
	group := rt.Group("/")

	group.Get("/product", c.Show)
	group.Post("/product", c.Create)
	group.Put("/product", c.Update)
	group.Get("/products", c.Index)
}

func writeError(w http.ResponseWriter, err error) {
	var perr *products.Error
	if errors.As(err, &perr) && perr.Kind == products.KindBadRequest {
		response.Error(w, http.StatusBadRequest, perr.Message)
		return
	}
	response.Error(w, http.StatusInternalServerError, err.Error())
}
