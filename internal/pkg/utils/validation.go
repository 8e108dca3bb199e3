package utils

import (
	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) >= minPasswordLength
}
