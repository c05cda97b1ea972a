package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"sobasite/internal/core/domain/reservation"
	validatorPlatform "sobasite/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundAdapter() validatorPlatform.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(tagName)
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("category", validateCategory)

	return &playgroundValidator{
		validate: v,
	}
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPlatform.FieldError{
					Field:   fieldPath(fe),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPlatform.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

// tagName reports fields under their wire names: json first, then form, then yaml.
func tagName(field reflect.StructField) string {
	for _, key := range []string{"json", "form", "yaml"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return strings.ToLower(field.Name)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validateCategory(fl validator.FieldLevel) bool {
	_, err := reservation.ParseCategory(fl.Field().String())
	return err == nil
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "url", "http_url":
		return "This field must be a valid URL"
	case "max":
		return fmt.Sprintf("This field must be at most %s characters long", e.Param())
	case "min":
		return fmt.Sprintf("This field must contain at least %s items", e.Param())
	case "oneof":
		return fmt.Sprintf("This field must be one of: %s", e.Param())
	case "category":
		return "This field must be one of: soba inquiry other"
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
