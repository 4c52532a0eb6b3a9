package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	timeOfDayRgx = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	weekdays = map[string]bool{
		"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
		"Friday": true, "Saturday": true, "Sunday": true,
	}
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("weekday", validateWeekday)
	validator.RegisterValidation("timeofday", validateTimeOfDay)

	return validator
}

func validateWeekday(fl validator.FieldLevel) bool {
	return weekdays[fl.Field().String()]
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return timeOfDayRgx.MatchString(fl.Field().String())
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 72 {
		return false
	}

	containsUpper, containsLower, containsDigit := false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		}
	}

	return containsUpper && containsLower && containsDigit
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "alphanum":
		return "must contain only letters and digits"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "url":
		return "must be a valid URL"
	case "weekday":
		return "must be a weekday name such as Friday"
	case "timeofday":
		return "must be a time of day in HH:MM format"
	case "password":
		return "must be 8 to 72 characters long and include at least one uppercase letter, one lowercase letter, " +
			"and one number"
	default:
		return "is invalid"
	}
}
