package router

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
)

// Router is a lightweight wrapper around a chi router. Controllers register
// their routes through Group so they never import chi directly.
type Router struct {
	r chi.Router
}

// New creates a new Router instance.
func New() *Router {
	return &Router{r: chi.NewRouter()}
}

// Handler returns the underlying http.Handler for ListenAndServe.
func (rt *Router) Handler() http.Handler {
	return rt.r
}

// Use applies middleware to the whole router. Must be called before any
// route is registered, matching chi's rules.
func (rt *Router) Use(mws ...func(http.Handler) http.Handler) {
	rt.r.Use(mws...)
}

// Group creates a route group rooted at the provided prefix.
func (rt *Router) Group(prefix string) *Group {
	return &Group{parent: rt.r, prefix: prefix}
}

// Group represents a set of routes under a common prefix.
type Group struct {
	parent chi.Router
	prefix string
}

// With returns a new Group that applies the provided middleware to all
// routes registered through it.
func (g *Group) With(mws ...func(http.Handler) http.Handler) *Group {
	return &Group{parent: g.parent.With(mws...), prefix: g.prefix}
}

func join(prefix, p string) string {
	if prefix == "" || prefix == "/" {
		return p
	}
	return path.Join(prefix, p)
}

// Get registers a GET handler under the group's prefix.
func (g *Group) Get(p string, h http.HandlerFunc) {
	g.parent.Method(http.MethodGet, join(g.prefix, p), h)
}

// Post registers a POST handler under the group's prefix.
func (g *Group) Post(p string, h http.HandlerFunc) {
	g.parent.Method(http.MethodPost, join(g.prefix, p), h)
}

// Put registers a PUT handler under the group's prefix.
func (g *Group) Put(p string, h http.HandlerFunc) {
	g.parent.Method(http.MethodPut, join(g.prefix, p), h)
}

// Param returns a URL parameter value by name. It delegates to chi.URLParam
// but keeps handlers free from importing chi directly.
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// Query returns a query string value with a fallback default.
func Query(r *http.Request, name, def string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}
