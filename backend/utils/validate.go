package utils

import (
	"github.com/go-playground/validator/v10"

	"zenyoga/backend/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Category and level are closed enumerations; "oneof" cannot express
	// values containing spaces, so both get dedicated validators.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		return models.Level(fl.Field().String()).Valid()
	})
	return v
}

// ValidateStruct checks the struct's validate tags and returns per-field
// messages, or nil when everything passes.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "this field is required"
		case "email":
			fields[fe.Field()] = "must be a valid email address"
		case "category":
			fields[fe.Field()] = "unknown category"
		case "level":
			fields[fe.Field()] = "unknown level"
		default:
			fields[fe.Field()] = "invalid value"
		}
	}
	return fields
}
