package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Specialist fields
	"FullName":      "Full name",
	"AvailableFrom": "Available from",
	"AvailableTo":   "Available to",
	"Skills":        "Skills",

	// Interview fields
	"SpecialistID":    "Specialist",
	"CandidateName":   "Candidate name",
	"InterviewTime":   "Interview time",
	"DurationMinutes": "Duration (minutes)",

	// Skill fields
	"Name": "Name",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, e.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", label)
	case "timeofday":
		return fmt.Sprintf("%s must be a time of day in HH:MM or HH:MM:SS form", label)
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
