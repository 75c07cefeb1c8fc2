package dashboard

import (
	"errors"
	"testing"

	"github.com/prodash/prodash/product"
)

func fieldErr(f *Form, field string) string {
	for _, fe := range f.FieldErrors() {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func TestConfirmRejectsMissingTitle(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(nil)
	f.SetPrice("100")

	called := false
	err := f.Confirm(func(FormValues) error { called = true; return nil })
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if called {
		t.Fatalf("submit called despite invalid form")
	}
	if msg := fieldErr(f, "product_title"); msg != "Please enter product title" {
		t.Fatalf("title message = %q", msg)
	}
	if !f.IsOpen() {
		t.Fatalf("form must stay open after failed validation")
	}
}

func TestConfirmRejectsNegativePriceLocally(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(nil)
	f.SetTitle("Keyboard")
	f.SetPrice("-5")

	called := false
	err := f.Confirm(func(FormValues) error { called = true; return nil })
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if called {
		t.Fatalf("negative price must never reach the network")
	}
	if msg := fieldErr(f, "product_price"); msg == "" {
		t.Fatalf("expected a price error, got %v", f.FieldErrors())
	}
}

func TestConfirmRejectsMissingPrice(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(nil)
	f.SetTitle("Keyboard")

	if err := f.Confirm(func(FormValues) error { return nil }); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if msg := fieldErr(f, "product_price"); msg != "Please enter price" {
		t.Fatalf("price message = %q", msg)
	}
}

func TestConfirmRejectsBadImageURL(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(nil)
	f.SetTitle("Keyboard")
	f.SetPrice("100")
	f.SetImage("not a url")

	if err := f.Confirm(func(FormValues) error { return nil }); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if msg := fieldErr(f, "product_image"); msg != "Please enter a valid URL" {
		t.Fatalf("image message = %q", msg)
	}
}

func TestCategoryRequiredIsConfigurable(t *testing.T) {
	strict := NewForm(FormOptions{RequireCategory: true})
	strict.Open(nil)
	strict.SetTitle("Keyboard")
	strict.SetPrice("100")
	if err := strict.Confirm(func(FormValues) error { return nil }); !errors.Is(err, ErrInvalid) {
		t.Fatalf("strict variant: expected ErrInvalid, got %v", err)
	}
	if msg := fieldErr(strict, "product_category"); msg != "Please enter product category" {
		t.Fatalf("category message = %q", msg)
	}

	lenient := NewForm(FormOptions{RequireCategory: false})
	lenient.Open(nil)
	lenient.SetTitle("Keyboard")
	lenient.SetPrice("100")
	if err := lenient.Confirm(func(FormValues) error { return nil }); err != nil {
		t.Fatalf("lenient variant: unexpected error %v", err)
	}
}

func TestConfirmParsesFormattedPrice(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(nil)
	f.SetTitle("Keyboard")
	f.SetPrice("1,599,000")

	var got FormValues
	if err := f.Confirm(func(v FormValues) error { got = v; return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["product_price"] != int64(1599000) {
		t.Fatalf("price = %v (%T)", got["product_price"], got["product_price"])
	}
	if got["product_title"] != "Keyboard" {
		t.Fatalf("title = %v", got["product_title"])
	}
}

func TestOpenWithTargetPrepopulatesFields(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(&product.Product{
		ID:       "P1",
		Title:    "Keyboard",
		Price:    1599000,
		Category: "Electronics",
	})

	if f.Editing() == nil || f.Editing().ID != "P1" {
		t.Fatalf("editing target not kept")
	}
	if f.Price() != "1,599,000" {
		t.Fatalf("price not formatted for display: %q", f.Price())
	}

	var got FormValues
	if err := f.Confirm(func(v FormValues) error { got = v; return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["product_price"] != int64(1599000) || got["product_category"] != "Electronics" {
		t.Fatalf("prepopulated values lost: %v", got)
	}
}

func TestOpenWithoutTargetResetsFields(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(&product.Product{ID: "P1", Title: "Keyboard", Price: 10})
	f.Cancel()

	f.Open(nil)
	if f.Editing() != nil {
		t.Fatalf("create mode should have no editing target")
	}
	if f.Price() != "" {
		t.Fatalf("fields not reset: price = %q", f.Price())
	}
}

func TestSuccessfulSubmitClearsAndCloses(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(nil)
	f.SetTitle("Keyboard")
	f.SetPrice("100")

	if err := f.Confirm(func(FormValues) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.IsOpen() {
		t.Fatalf("form must close after a successful submit")
	}
	f.Open(nil)
	if f.Price() != "" {
		t.Fatalf("form not cleared")
	}
}

func TestFailedSubmitLeavesFormOpen(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(nil)
	f.SetTitle("Keyboard")
	f.SetPrice("100")

	subErr := errors.New("upstream exploded")
	if err := f.Confirm(func(FormValues) error { return subErr }); !errors.Is(err, subErr) {
		t.Fatalf("expected submit error back, got %v", err)
	}
	if !f.IsOpen() {
		t.Fatalf("form must stay open so the user can retry")
	}
}

func TestCancelClearsWithoutSubmitting(t *testing.T) {
	f := NewForm(FormOptions{})
	f.Open(&product.Product{ID: "P1", Title: "Keyboard", Price: 10})
	f.Cancel()

	if f.IsOpen() {
		t.Fatalf("cancel must close the form")
	}
	if f.Editing() != nil {
		t.Fatalf("cancel must drop the editing target")
	}
}

func TestConfirmWhileClosed(t *testing.T) {
	f := NewForm(FormOptions{})
	if err := f.Confirm(func(FormValues) error { return nil }); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
}
