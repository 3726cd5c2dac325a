// Package validation runs struct-tag validation and reports failures as a
// field map keyed by JSON path, e.g. "items[0].shape".
package validation

import (
	"reflect"
	"strings"

	domainerrors "stampshop/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// messages overrides the generic text for specific field/tag pairs.
// Keys use the field path with list indexes removed.
var messages = map[string]string{
	"customerName.required":      "Name is required",
	"customerPhone.required":     "Phone is required",
	"customerPhone.min":          "Phone is required",
	"customerEmail.email":        "Invalid email",
	"deliveryMethod.required":    "Delivery method is required",
	"deliveryMethod.oneof":       "Delivery method must be DELIVERY or PICKUP",
	"address.required_if":        "Address is required for delivery",
	"items.required":             "Cart is empty",
	"items.min":                  "Cart is empty",
	"items.shape.oneof":          "Shape must be one of round, square, rectangle, oval",
	"items.color.oneof":          "Color must be one of black, blue, red, green",
	"items.companyName.required": "Company name is required",
	"items.tradeLicenseUrl.url":  "Invalid document URL",
	"orderId.required":           "Order ID is required",
	"code.required":              "Code is required",
	"code.len":                   "Code must be 6 digits",
	"code.numeric":               "Code must be 6 digits",
	"status.required":            "Status required",
}

// Validator wraps go-playground/validator with JSON field names.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: v}
}

// Struct validates s and returns a *domainerrors.ValidationError on failure.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := domainerrors.FieldErrors{}
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		fields.Add(path, Message(path, fe.Tag(), fe.Param()))
	}

	return domainerrors.NewValidationError(fields)
}

// Message returns the text reported for a failed tag on path.
func Message(path, tag, param string) string {
	if msg, ok := messages[stripIndexes(path)+"."+tag]; ok {
		return msg
	}

	switch tag {
	case "required", "required_if":
		return "Required"
	case "oneof":
		return "Must be one of: " + param
	case "min":
		return "Must be at least " + param + " characters"
	case "email":
		return "Invalid email"
	case "url":
		return "Invalid URL"
	default:
		return "Invalid value"
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}

	return name
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

func stripIndexes(path string) string {
	var b strings.Builder
	depth := 0
	for _, r := range path {
		switch {
		case r == '[':
			depth++
		case r == ']':
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}
