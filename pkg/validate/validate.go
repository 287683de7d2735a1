package validate

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the wallet tags registered:
// luhn (card numbers) and dpositive (positive decimal amount).
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		_ = instance.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
			return IsCardNumber(fl.Field().String())
		})
		_ = instance.RegisterValidation("dpositive", func(fl validator.FieldLevel) bool {
			d, ok := fl.Field().Interface().(decimal.Decimal)
			return ok && d.IsPositive()
		})
	})
	return instance
}

func Struct(v any) error {
	return Validator().Struct(v)
}

func FormatValidationError(err error) []string {
	var errs []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs
	}
	for _, e := range validationErrors {
		field := e.Field()

		switch e.Tag() {
		case "required":
			errs = append(errs, fmt.Sprintf("%s is required", field))
		case "min":
			errs = append(errs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			errs = append(errs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "len":
			errs = append(errs, fmt.Sprintf("%s must have length %s", field, e.Param()))
		case "numeric":
			errs = append(errs, fmt.Sprintf("%s must contain digits only", field))
		case "oneof":
			errs = append(errs, fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
		case "luhn":
			errs = append(errs, fmt.Sprintf("%s is not a valid card number", field))
		case "dpositive", "gt":
			errs = append(errs, fmt.Sprintf("%s must be positive", field))
		default:
			errs = append(errs, fmt.Sprintf("%s is invalid (%s)", field, e.Tag()))
		}
	}
	return errs
}
