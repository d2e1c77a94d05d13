// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// hhmmRegex matches zero-padded 24-hour clock times such as "09:00".
var hhmmRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// dateRegex matches ISO calendar dates such as "2025-08-31". The handler
// still parses the value; this only rejects obviously malformed input early.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hhmm", validateHHMM)
		_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	}
}

func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	return dateRegex.MatchString(fl.Field().String())
}
