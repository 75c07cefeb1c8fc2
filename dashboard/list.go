// Package dashboard implements the client-side logic of the product list
// view: query state, debounced search, fetch cycles and the create/edit
// form, decoupled from any concrete widget toolkit through the Renderer and
// Notifier interfaces.
package dashboard

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/prodash/prodash/product"
)

// Fetcher is the proxy surface the controller drives. ProxyFetcher adapts
// the products service to it; tests substitute fakes.
type Fetcher interface {
	List(ctx context.Context, q product.ListQuery) (product.Page, error)
	Create(ctx context.Context, values FormValues) error
	Update(ctx context.Context, values FormValues) error
}

// Renderer receives display updates. It must tolerate being called from the
// controller's fetch goroutines.
type Renderer interface {
	RenderRows(rows []product.Product, total int)
	SetLoading(loading bool)
}

// Notifier surfaces transient user-visible messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// ListOptions configures one list session.
type ListOptions struct {
	PageSize         int
	DebounceInterval time.Duration
	// KeepModalOnError leaves the form open after a failed create/update so
	// the user can retry; when false the modal closes regardless.
	KeepModalOnError bool
}

// ListController owns the query state of the product list and orchestrates
// every fetch and mutation cycle. It is the single writer of the row/total
// display state.
type ListController struct {
	mu sync.Mutex

	ctx      context.Context
	fetcher  Fetcher
	renderer Renderer
	notifier Notifier
	form     *Form
	opts     ListOptions

	page    int
	search  string
	rows    []product.Product
	total   int
	loading bool

	editing *product.Product

	// single-slot debounce timer: arming a new one always disarms the old,
	// so only the last search value inside a quiet window is applied
	debounce *time.Timer
	// fetch sequence; a completion whose tag no longer matches is stale and
	// discarded, so the most recently requested query always wins
	seq uint64
}

func NewListController(ctx context.Context, f Fetcher, r Renderer, n Notifier, form *Form, opts ListOptions) *ListController {
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}
	if opts.DebounceInterval <= 0 {
		opts.DebounceInterval = 300 * time.Millisecond
	}
	return &ListController{
		ctx:      ctx,
		fetcher:  f,
		renderer: r,
		notifier: n,
		form:     form,
		opts:     opts,
		page:     1,
		rows:     []product.Product{},
	}
}

// OnSearchInput captures a raw keystroke. The text is applied only after
// the debounce interval passes with no further input; applying it resets
// the page to 1 and triggers a fetch.
func (c *ListController) OnSearchInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(c.opts.DebounceInterval, func() {
		c.mu.Lock()
		c.page = 1
		c.search = text
		c.fetchLocked()
		c.mu.Unlock()
	})
}

// SetPage applies a page change directly, with no debounce. The search text
// is left untouched.
func (c *ListController) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.fetchLocked()
	c.mu.Unlock()
}

// Refresh triggers a fetch cycle with the current query state.
func (c *ListController) Refresh() {
	c.mu.Lock()
	c.fetchLocked()
	c.mu.Unlock()
}

// fetchLocked starts one fetch cycle. The caller holds c.mu. The network
// call runs on its own goroutine; completion is applied only if no newer
// cycle has started in the meantime.
func (c *ListController) fetchLocked() {
	c.seq++
	tag := c.seq
	q := product.ListQuery{Page: c.page, Limit: c.opts.PageSize, Search: c.search}

	c.loading = true
	c.renderer.SetLoading(true)

	go func() {
		page, err := c.fetcher.List(c.ctx, q)

		c.mu.Lock()
		defer c.mu.Unlock()
		if tag != c.seq {
			// a newer fetch cycle owns the display now
			return
		}
		c.loading = false
		c.renderer.SetLoading(false)
		if err != nil {
			c.rows = []product.Product{}
			c.total = 0
			c.renderer.RenderRows(c.rows, c.total)
			c.notifier.Error(err.Error())
			return
		}
		c.rows = page.Data
		c.total = page.Total
		c.renderer.RenderRows(c.rows, c.total)
	}()
}

// OpenCreate opens the form in create mode.
func (c *ListController) OpenCreate() {
	c.mu.Lock()
	c.editing = nil
	c.mu.Unlock()
	c.form.Open(nil)
}

// OpenEdit opens the form pre-populated with the given product.
func (c *ListController) OpenEdit(p product.Product) {
	c.mu.Lock()
	c.editing = &p
	c.mu.Unlock()
	c.form.Open(&p)
}

// ConfirmForm validates the form and, when valid, submits it: an editing
// target with an id becomes an update carrying the original id merged over
// the target's fields, anything else a create. A successful mutation closes
// the form, clears the editing target and refreshes the list.
func (c *ListController) ConfirmForm() error {
	err := c.form.Confirm(c.submit)
	if err == nil || err == ErrInvalid || err == ErrNotOpen {
		return err
	}
	// failed create/update: surface it and honor the close policy
	c.notifier.Error(err.Error())
	if !c.opts.KeepModalOnError {
		c.CancelForm()
	}
	return err
}

func (c *ListController) submit(values FormValues) error {
	c.mu.Lock()
	editing := c.editing
	c.mu.Unlock()

	if editing != nil && editing.ID != "" {
		merged := mergeProduct(*editing, values)
		if err := c.fetcher.Update(c.ctx, merged); err != nil {
			return err
		}
		c.finishSubmit("Product updated")
		return nil
	}
	if err := c.fetcher.Create(c.ctx, values); err != nil {
		return err
	}
	c.finishSubmit("Product created")
	return nil
}

func (c *ListController) finishSubmit(msg string) {
	c.notifier.Success(msg)
	c.mu.Lock()
	c.editing = nil
	c.fetchLocked()
	c.mu.Unlock()
}

// CancelForm dismisses the form without submitting.
func (c *ListController) CancelForm() {
	c.form.Cancel()
	c.mu.Lock()
	c.editing = nil
	c.mu.Unlock()
}

// CanDelete always reports false: the upstream API has no delete operation,
// so renderers draw the affordance disabled.
func (c *ListController) CanDelete() bool { return false }

// Delete is intentionally a no-op.
func (c *ListController) Delete(product.Product) {}

// Rows returns the current row set.
func (c *ListController) Rows() []product.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows
}

// Total returns the current total item count across all pages.
func (c *ListController) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Query returns the active query state.
func (c *ListController) Query() product.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return product.ListQuery{Page: c.page, Limit: c.opts.PageSize, Search: c.search}
}

// Loading reports whether a fetch cycle is in flight.
func (c *ListController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// mergeProduct overlays the submitted values on the editing target and pins
// the original id, so untouched fields keep their old values and the id can
// never change during an edit.
func mergeProduct(target product.Product, values FormValues) FormValues {
	merged := FormValues{}
	b, _ := json.Marshal(target)
	_ = json.Unmarshal(b, &merged)
	for k, v := range values {
		merged[k] = v
	}
	merged["product_id"] = target.ID
	return merged
}
