package validators

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "task-management.com/task-management/internal/errors"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface, turning tag failures into the structured field-error payload.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	v := validator.New()

	// Report fields by their json name, not the Go struct field.
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

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fieldErrors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fieldErrors[fe.Field()] = messageFor(fe)
	}
	return apperrors.NewValidation(fieldErrors)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		if fe.Tag() == "max" {
			return "Title must not exceed 100 characters"
		}
		return "Title is required"
	case "description":
		return "Description must not exceed 500 characters"
	case "status":
		return "Status must be one of TODO, IN_PROGRESS, COMPLETED"
	}
	return "Invalid value"
}
