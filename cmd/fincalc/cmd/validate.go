package cmd

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	ferrors "fincalc/internal/errors"
)

var requestValidator = validator.New()

// checkRequest runs struct-tag validation over a command's parsed
// flags and converts the first failure into a flag-level error. The
// `flag` struct tag maps a field back to the flag name shown to the
// user.
func checkRequest(req interface{}) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	flag := flagNameFor(req, fe.StructField())
	return ferrors.InvalidInput(flag, fe.Value(), formatValidationError(flag, fe))
}

func reflectStructType(req interface{}) reflect.Type {
	t := reflect.TypeOf(req)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

func flagNameFor(req interface{}, structField string) string {
	t := reflectStructType(req)
	if t == nil {
		return strings.ToLower(structField)
	}
	if f, ok := t.FieldByName(structField); ok {
		if name := f.Tag.Get("flag"); name != "" {
			return name
		}
	}
	return strings.ToLower(structField)
}

// formatValidationError formats validation error messages
func formatValidationError(flag string, err validator.FieldError) string {
	param := err.Param()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("--%s is required", flag)
	case "min":
		return fmt.Sprintf("--%s needs at least %s values", flag, param)
	case "gt":
		return fmt.Sprintf("--%s must be greater than %s", flag, param)
	case "gte":
		return fmt.Sprintf("--%s must be greater than or equal to %s", flag, param)
	case "lt":
		return fmt.Sprintf("--%s must be less than %s", flag, param)
	case "lte":
		return fmt.Sprintf("--%s must be less than or equal to %s", flag, param)
	case "oneof":
		return fmt.Sprintf("--%s must be one of: %s", flag, strings.Replace(param, " ", ", ", -1))
	default:
		return fmt.Sprintf("--%s failed %s validation", flag, err.Tag())
	}
}
