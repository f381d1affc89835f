package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Allow letters, spaces, and common name punctuation: . ' -
var nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("timeofday", TimeOfDay)
	_ = v.RegisterValidation("valid_name", ValidName)
}

// TimeOfDay validates a time-of-day string in HH:MM or HH:MM:SS form.
func TimeOfDay(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	if _, err := time.Parse("15:04:05", val); err == nil {
		return true
	}
	_, err := time.Parse("15:04", val)
	return err == nil
}

// ValidName validates that a string contains only valid name characters
// Rejects digits and most special symbols
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}
