package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/alimikegami/toy-town/pkg/response"
	"github.com/go-playground/validator/v10"
)

// ValidationErrors is returned by Validate when a payload breaks one or more
// field rules.
type ValidationErrors []response.ValidationError

func (v ValidationErrors) Error() string {
	fields := make([]string, len(v))
	for i, e := range v {
		fields[i] = e.Field + ":" + e.Tag
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// RequestValidator plugs go-playground/validator into echo.Echo.Validator.
// Field names are reported by their JSON key.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, response.ValidationError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
		})
	}

	return result
}
