package validators

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterBindings adds the custom rules to gin's validator engine.
func RegisterBindings() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("booking_date", validateBookingDate)
	})
	return err
}

// booking_date accepts YYYY-MM-DD or an RFC3339 instant.
func validateBookingDate(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if _, err := time.Parse("2006-01-02", raw); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, raw)
	return err == nil
}
