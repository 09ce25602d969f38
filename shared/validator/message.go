package validator

import (
	"errors"
	"strings"

	"frontdesk/shared/constant"

	val "github.com/go-playground/validator/v10"
)

const messageSeparator = "; "

var messages = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be at least {param}",
	"max":      "{field} must not exceed {param}",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"dateonly": "{field} must be a date formatted as YYYY-MM-DD",
	"nonblank": "{field} must not be blank",
}

// message renders every failed field, in declaration order. Nested fields
// keep their path, e.g. rooms[1].room_number.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			parts = append(parts, valErr.Error())

			continue
		}

		param := valErr.Param()
		if valErr.Tag() == "oneof" {
			param = strings.Join(strings.Fields(param), constant.Comma+" ")
		}

		replacer := strings.NewReplacer("{field}", fieldPath(valErr), "{param}", param)
		parts = append(parts, replacer.Replace(template))
	}

	return strings.Join(parts, messageSeparator)
}

// fieldPath drops the root struct name from the namespace. Plain variables
// have no namespace and no field name.
func fieldPath(valErr val.FieldError) string {
	namespace := valErr.Namespace()
	if _, path, ok := strings.Cut(namespace, "."); ok {
		return path
	}

	if valErr.Field() != constant.Empty {
		return valErr.Field()
	}

	return "value"
}
