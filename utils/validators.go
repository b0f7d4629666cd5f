package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CalendarDateLayout is the wire format for calendar dates (HTML date input).
const CalendarDateLayout = "2006-01-02"

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("calendardate", ValidateCalendarDateRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("calendardate", ValidateCalendarDateRule)
	}
}

func ValidateCalendarDateRule(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // presence is the `required` rule's job
	}
	_, err := time.ParseInLocation(CalendarDateLayout, value, time.Local)
	return err == nil
}

// ParseCalendarDate parses a YYYY-MM-DD string in local time. Local time
// matters: the date-window views compare local calendar days.
func ParseCalendarDate(value string) (time.Time, error) {
	return time.ParseInLocation(CalendarDateLayout, value, time.Local)
}
