package validation

import (
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
)

// FieldError carries one failed rule for one field, keyed by the field's
// json tag name so it can be surfaced next to the matching form input.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

var validate = v10.New()

// Validate runs struct validation using go-playground/validator.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// Fields converts validator.ValidationErrors into FieldError values, using
// the struct's json tags for field names.
func Fields(err error, v interface{}) []FieldError {
	if err == nil {
		return nil
	}
	ve, ok := err.(v10.ValidationErrors)
	if !ok {
		return []FieldError{{Rule: "invalid", Message: err.Error()}}
	}

	var rt reflect.Type
	if v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Ptr {
			rv = rv.Elem()
		}
		if rv.IsValid() {
			rt = rv.Type()
		}
	}

	out := make([]FieldError, 0, len(ve))
	for _, f := range ve {
		name := jsonName(rt, f.Field())
		out = append(out, FieldError{
			Field:   name,
			Rule:    strings.ToLower(f.Tag()),
			Param:   f.Param(),
			Message: f.Error(),
		})
	}
	return out
}

func jsonName(rt reflect.Type, field string) string {
	if rt == nil {
		return strings.ToLower(field)
	}
	sf, ok := rt.FieldByName(field)
	if !ok {
		return strings.ToLower(field)
	}
	tag := sf.Tag.Get("json")
	if tag == "" {
		return strings.ToLower(field)
	}
	name := strings.Split(tag, ",")[0]
	if name == "" || name == "-" {
		return strings.ToLower(field)
	}
	return name
}
