package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prodash/prodash/dashboard"
	"github.com/prodash/prodash/product"
)

// consoleRenderer prints the list view as a plain table and signals each
// completed render so commands know when a fetch cycle settled.
type consoleRenderer struct {
	rendered chan struct{}
}

func newConsoleRenderer() *consoleRenderer {
	return &consoleRenderer{rendered: make(chan struct{}, 8)}
}

func (r *consoleRenderer) RenderRows(rows []product.Product, total int) {
	for i, p := range rows {
		fmt.Fprintf(os.Stdout, " %d. %s\n", i+1, p.Title)
		line := "    Price: " + dashboard.FormatPrice(p.Price)
		if p.Category != "" {
			line += "  |  Category: " + p.Category
		}
		fmt.Fprintln(os.Stdout, line)
		if p.Description != "" {
			fmt.Fprintf(os.Stdout, "    %s\n", p.Description)
		}
	}
	fmt.Fprintf(os.Stdout, "-- %d of %d items\n", len(rows), total)
	r.rendered <- struct{}{}
}

func (r *consoleRenderer) SetLoading(bool) {}

func (r *consoleRenderer) wait() error {
	select {
	case <-r.rendered:
		return nil
	case <-time.After(30 * time.Second):
		return fmt.Errorf("timed out waiting for the list to load")
	}
}

type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Fprintln(os.Stdout, msg) }
func (consoleNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "error: "+msg) }

// newDashboardStack wires the full list session the way the web view does:
// proxy service over the upstream client, form and controller from config.
func newDashboardStack(ctx context.Context) (*dashboard.ListController, *dashboard.Form, *consoleRenderer) {
	svc := newService()
	fetcher := dashboard.NewProxyFetcher(svc)
	form := dashboard.NewForm(dashboard.FormOptions{
		RequireCategory: cfg.Dashboard.CategoryRequired,
	})
	renderer := newConsoleRenderer()
	ctrl := dashboard.NewListController(ctx, fetcher, renderer, consoleNotifier{}, form, dashboard.ListOptions{
		PageSize:         cfg.Dashboard.PageSize,
		DebounceInterval: time.Duration(cfg.Dashboard.DebounceMillis) * time.Millisecond,
		KeepModalOnError: cfg.Dashboard.KeepModalOnError,
	})
	return ctrl, form, renderer
}
