// Package validation wraps go-playground/validator with the tags and error shape used by the domain packages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// conventionalEmail is the address shape accepted by the registration forms.
var conventionalEmail = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// FieldError is one violated rule, addressed by its JSON location (e.g. "contactPerson.email").
type FieldError struct {
	Field   string
	Message string
}

// Errors lists every violated rule of a single check.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Messages(), "; ")
}

func (e Errors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, item := range e {
		out = append(out, item.Message)
	}
	return out
}

// Has reports whether field has at least one violation.
func (e Errors) Has(field string) bool {
	for _, item := range e {
		if item.Field == field {
			return true
		}
	}
	return false
}

// Add appends a violation and returns the grown list.
func (e Errors) Add(field, message string) Errors {
	return append(e, FieldError{Field: field, Message: message})
}

// OrNil returns nil for an empty list so callers can return it as error directly.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// New returns a validator that names fields by their json tag and knows the custom tags:
//
//	digits=N            exactly N ASCII digits
//	conventional_email  address matching the registration form pattern
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	mustRegister(v, "digits", isDigits)
	mustRegister(v, "conventional_email", func(fl validator.FieldLevel) bool {
		return conventionalEmail.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func isDigits(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	want, err := strconv.Atoi(fl.Param())
	if err != nil || len(value) != want {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// IsConventionalEmail reports whether s matches the registration email pattern.
func IsConventionalEmail(s string) bool {
	return conventionalEmail.MatchString(s)
}

// Check validates schema and converts failures into Errors, keeping the first violation per field.
// messages maps a location, or "location|tag", to a fixed human message.
func Check(v *validator.Validate, schema any, messages map[string]string) Errors {
	err := v.Struct(schema)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return Errors{{Field: "", Message: err.Error()}}
	}

	out := make(Errors, 0, len(violations))
	seen := make(map[string]struct{}, len(violations))
	for _, fe := range violations {
		loc := location(fe)
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}

		msg, ok := messages[loc+"|"+fe.Tag()]
		if !ok {
			msg, ok = messages[loc]
		}
		if !ok {
			msg = DefaultMessage(loc, fe)
		}
		out = out.Add(loc, msg)
	}
	return out
}

// location strips the root struct name from the namespace.
func location(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func DefaultMessage(field string, fe validator.FieldError) string {
	numeric := isNumericKind(fe.Kind())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min", "gte":
		if numeric {
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max", "lte":
		if numeric {
			return fmt.Sprintf("%s must be at most %s", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), "'", ""))
	case "digits":
		return fmt.Sprintf("%s must be a %s-digit number", field, fe.Param())
	case "conventional_email", "email":
		return field + " must be a valid email address"
	case "ltefield", "ltecsfield":
		return fmt.Sprintf("%s must not be after %s", field, lowerFirst(fe.Param()))
	case "gtefield", "gtecsfield":
		return fmt.Sprintf("%s must not be before %s", field, lowerFirst(fe.Param()))
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, lowerFirst(fe.Param()))
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
