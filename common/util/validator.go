package util

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(fieldName)
}

// fieldName reports fields by their wire name (json, then yaml) so messages
// match what the caller actually sent.
func fieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "yaml"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// GetValidationErrors formats validation errors into readable messages
func GetValidationErrors(err error) []string {
	var errors []string
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required", "required_if":
				errors = append(errors, fieldError.Field()+" is required")
			case "email":
				errors = append(errors, fieldError.Field()+" must be a valid email")
			case "url":
				errors = append(errors, fieldError.Field()+" must be a valid URL")
			case "timezone":
				errors = append(errors, fieldError.Field()+" must be a valid IANA timezone")
			case "oneof":
				errors = append(errors, fieldError.Field()+" must be one of: "+fieldError.Param())
			case "min":
				errors = append(errors, fieldError.Field()+" must be at least "+fieldError.Param())
			case "max":
				errors = append(errors, fieldError.Field()+" must be at most "+fieldError.Param())
			default:
				errors = append(errors, fieldError.Field()+" is invalid")
			}
		}
	}
	if len(errors) == 0 && err != nil {
		errors = append(errors, err.Error())
	}
	return errors
}
