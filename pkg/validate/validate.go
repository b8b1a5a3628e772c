// Package validate checks request DTOs against their `validate` struct tags.
package validate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return instance
}

func Struct(s interface{}) error {
	return get().Struct(s)
}

// FormatValidationError turns validator errors into one readable line per field.
func FormatValidationError(err error) []string {
	var errs []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errs = append(errs, fmt.Sprintf("%s is required", field))
			case "email":
				errs = append(errs, fmt.Sprintf("%s must be a valid email", field))
			case "min":
				errs = append(errs, fmt.Sprintf("%s must have minimum length %s", field, e.Param()))
			case "max":
				errs = append(errs, fmt.Sprintf("%s must have maximum length %s", field, e.Param()))
			case "oneof":
				errs = append(errs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
			case "gt", "gte":
				errs = append(errs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
			default:
				errs = append(errs, fmt.Sprintf("%s is invalid (%s)", field, e.Tag()))
			}
		}
		return errs
	}
	if err != nil {
		errs = append(errs, err.Error())
	}
	return errs
}
