// Package validators contains custom go-playground/validator rules shared by
// domain entities and request DTOs.
package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// ModalPriceValidation checks that a modal price sits between the min and max
// prices declared on the same struct.
func ModalPriceValidation(fl validator.FieldLevel) bool {
	modal, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	minField := fl.Parent().FieldByName("MinPrice")
	maxField := fl.Parent().FieldByName("MaxPrice")
	if !minField.IsValid() || !maxField.IsValid() {
		return false
	}

	minPrice, ok := minField.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	maxPrice, ok := maxField.Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return modal.GreaterThanOrEqual(minPrice) && modal.LessThanOrEqual(maxPrice)
}

// PhoneValidation checks an Indian mobile style phone number: optional leading
// plus followed by 10-15 digits.
func PhoneValidation(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}
