package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding validators on gin's
// validator engine. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("iso_date", validISODate)
}

// validISODate accepts dates in the storage form, YYYY-MM-DD.
func validISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(isoDate, fl.Field().String())
	return err == nil
}
