package apperror

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// FieldLabel turns a json field name into a human label:
// confirmPassword -> Confirm Password, recipient_phone -> Recipient Phone.
func FieldLabel(s string) string {
	s = wordBoundary.ReplaceAllString(s, "$1 $2")
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a binding failure into a client-facing AppError
// without echoing decoder internals.
func MapValidationError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		// nested paths come as "values.fullName", label the leaf
		field := typeErr.Field[strings.LastIndex(typeErr.Field, ".")+1:]
		return InvalidField(FieldLabel(field))
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		// Only the first failure is reported
		e := errs[0]

		// e.Field() already holds the json name, see Init()
		label := FieldLabel(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(label)
		default:
			return InvalidField(label)
		}
	}

	return ErrInvalidInput
}
