package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldNames maps struct field names to their wire (JSON/form) names so the
// client can match messages to inputs.
var fieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Phone":   "phone",
	"Service": "service",
	"Message": "message",
}

// FieldErrors converts validator.ValidationErrors into a wire-name -> message
// map. Non-validation errors collapse to a single generic entry.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = "Invalid input data"
		return fields
	}

	for _, e := range validationErrors {
		fields[wireName(e.Field())] = messageFor(e)
	}
	return fields
}

func wireName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return structField
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", e.Param())
	case "contact_email":
		return "Enter a valid email address"
	case "contact_phone":
		return "Enter a valid phone number"
	default:
		return "Invalid value"
	}
}
