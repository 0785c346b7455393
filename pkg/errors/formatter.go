package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "max":
		if param != "" {
			return fmt.Sprintf("Must not exceed %s characters", param)
		}
		return "Value is too long"
	case "min":
		if param != "" {
			return fmt.Sprintf("Must be at least %s characters", param)
		}
		return "Value is too short"
	default:
		return "Invalid value"
	}
}

// fieldName prefers the json name, then the form name, of the struct field.
func fieldName(structType reflect.Type, name string) string {
	if structType == nil {
		return name
	}

	field, found := structType.FieldByName(name)
	if !found {
		return name
	}

	for _, key := range []string{"json", "form"} {
		if tag := field.Tag.Get(key); tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}

	return name
}

func FormatValidationErrors(err error, model any) []ValidationErrorResponse {
	var errorsList []ValidationErrorResponse

	if err == nil {
		return errorsList
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ValidationErrorResponse{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("Invalid type for field %s. Expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value),
		}}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errorsList
	}

	var structType reflect.Type
	if model != nil {
		structType = reflect.TypeOf(model)
		if structType.Kind() == reflect.Ptr {
			structType = structType.Elem()
		}
	}

	errorsList = make([]ValidationErrorResponse, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		errorsList = append(errorsList, ValidationErrorResponse{
			Field:   fieldName(structType, fieldError.Field()),
			Message: msgForTag(fieldError.Tag(), fieldError.Param()),
		})
	}

	return errorsList
}
