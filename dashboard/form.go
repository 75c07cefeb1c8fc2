package dashboard

import (
	"errors"

	"github.com/prodash/prodash/product"
	"github.com/prodash/prodash/validation"
)

// FormValues is the partial product a confirmed form hands to its caller.
// Keys are the upstream json field names.
type FormValues map[string]interface{}

// ErrNotOpen is returned when the form is driven while closed.
var ErrNotOpen = errors.New("form is not open")

// ErrInvalid is returned when confirmation fails validation. The field
// messages are available through FieldErrors.
var ErrInvalid = errors.New("form has invalid fields")

// FormOptions configures validation strictness. Whether category is
// mandatory differs between deployments, so it is an explicit choice.
type FormOptions struct {
	RequireCategory bool
}

// Form is the create/edit modal state machine. It is either closed or open;
// open is parameterized by an optional editing target. The form never
// decides create-versus-update: it only collects and validates values and
// hands them to the submit callback supplied by its caller.
type Form struct {
	opts    FormOptions
	open    bool
	editing *product.Product

	title       string
	price       string
	category    string
	description string
	image       string

	errs []validation.FieldError
}

func NewForm(opts FormOptions) *Form {
	return &Form{opts: opts}
}

// Open transitions the form to its open state. With an editing target the
// fields are pre-populated from it; without one they are reset for create.
func (f *Form) Open(target *product.Product) {
	f.open = true
	f.editing = target
	f.errs = nil
	if target != nil {
		f.title = target.Title
		f.price = FormatPrice(target.Price)
		f.category = target.Category
		f.description = target.Description
		f.image = target.Image
		return
	}
	f.reset()
}

// IsOpen reports whether the form is currently open.
func (f *Form) IsOpen() bool { return f.open }

// Editing returns the current editing target, or nil in create mode.
func (f *Form) Editing() *product.Product { return f.editing }

func (f *Form) SetTitle(v string)       { f.title = v }
func (f *Form) SetPrice(v string)       { f.price = v }
func (f *Form) SetCategory(v string)    { f.category = v }
func (f *Form) SetDescription(v string) { f.description = v }
func (f *Form) SetImage(v string)       { f.image = v }

// Price returns the displayed price text, thousands-separated for an
// editing target.
func (f *Form) Price() string { return f.price }

// FieldErrors returns the messages from the last failed confirmation.
func (f *Form) FieldErrors() []validation.FieldError { return f.errs }

type formPayload struct {
	Title string `json:"product_title" validate:"required"`
	Price *int64 `json:"product_price" validate:"required,gte=0"`
	Image string `json:"product_image" validate:"omitempty,url"`
}

// Confirm validates all fields synchronously. On failure the form stays
// open, field errors are recorded and no submission occurs. On success the
// collected values are handed to submit; the form is cleared and closed only
// when submit succeeds, so a failed submission can be retried in place.
func (f *Form) Confirm(submit func(FormValues) error) error {
	if !f.open {
		return ErrNotOpen
	}

	payload := formPayload{Title: f.title, Image: f.image}
	var parseErrs []validation.FieldError
	if f.price != "" {
		if n, err := ParsePrice(f.price); err != nil {
			parseErrs = append(parseErrs, validation.FieldError{
				Field: "product_price", Rule: "numeric",
			})
		} else {
			payload.Price = &n
		}
	}

	errs := parseErrs
	if err := validation.Validate(payload); err != nil {
		fields := validation.Fields(err, payload)
		// a price that failed to parse already has its own error
		for _, fe := range fields {
			if fe.Field == "product_price" && len(parseErrs) > 0 {
				continue
			}
			errs = append(errs, fe)
		}
	}
	if f.opts.RequireCategory && f.category == "" {
		errs = append(errs, validation.FieldError{Field: "product_category", Rule: "required"})
	}
	if len(errs) > 0 {
		for i := range errs {
			errs[i].Message = fieldMessage(errs[i])
		}
		f.errs = errs
		return ErrInvalid
	}
	f.errs = nil

	values := FormValues{
		"product_title":       f.title,
		"product_price":       *payload.Price,
		"product_category":    f.category,
		"product_description": f.description,
		"product_image":       f.image,
	}
	if err := submit(values); err != nil {
		return err
	}
	f.clear()
	return nil
}

// Cancel clears the form and closes it without submitting. Backdrop
// dismissal is not a transition; this is the only way out besides a
// successful confirm.
func (f *Form) Cancel() {
	f.clear()
}

func (f *Form) clear() {
	f.open = false
	f.editing = nil
	f.errs = nil
	f.reset()
}

func (f *Form) reset() {
	f.title = ""
	f.price = ""
	f.category = ""
	f.description = ""
	f.image = ""
}

func fieldMessage(fe validation.FieldError) string {
	switch fe.Field {
	case "product_title":
		return "Please enter product title"
	case "product_price":
		switch fe.Rule {
		case "required":
			return "Please enter price"
		case "numeric":
			return "Price must be a number"
		default:
			return "Price must be greater than 0"
		}
	case "product_category":
		return "Please enter product category"
	case "product_image":
		return "Please enter a valid URL"
	}
	if fe.Message != "" {
		return fe.Message
	}
	return "Invalid value"
}
