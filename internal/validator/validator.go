package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError maps form field names to human readable messages.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", field, e.Errors[field]))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add records a violation for field unless one is already present.
func (e *ValidationError) Add(field, msg string) {
	if e.Errors == nil {
		e.Errors = make(map[string]string)
	}
	if _, ok := e.Errors[field]; !ok {
		e.Errors[field] = msg
	}
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Errors) == 0
}

// Validator wraps go-playground/validator with form-field naming and the
// project's custom rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report violations under the names the client submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

// Normalizer is implemented by requests that clean up or convert their own
// fields (trimming, text to number) before tag validation. It returns the
// violations found while converting.
type Normalizer interface {
	Normalize() map[string]string
}

// Validate normalizes i when it is a Normalizer and checks it against its
// struct tags. Violations come back as a *ValidationError; any other error
// signals a programming mistake.
func (v *Validator) Validate(i interface{}) error {
	out := &ValidationError{}
	if n, ok := i.(Normalizer); ok {
		for field, msg := range n.Normalize() {
			out.Add(field, msg)
		}
	}

	if err := v.validate.Struct(i); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range validationErrors {
			out.Add(fe.Field(), getErrorMessage(fe))
		}
	}

	if out.Empty() {
		return nil
	}
	return out
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case "alphaspace":
		return "May only contain letters and spaces"
	case "password-strength":
		return "Must contain at least one letter, one number and one special character"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
