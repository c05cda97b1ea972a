package reservation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidForm     = errors.New("reservation form is invalid")
	ErrUnknownField    = errors.New("unknown form field")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidConsent  = errors.New("invalid consent value")
)

// Kind is the class of a validation failure.
type Kind string

const (
	KindRequired Kind = "required"
	KindFormat   Kind = "format"
)

// ValidationError describes why a single field is rejected.
type ValidationError struct {
	Field   Field  `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Kind)
}

// FormError is returned by Submit when at least one field is invalid.
type FormError struct {
	Errors ErrorState
}

func (e *FormError) Error() string {
	failed := e.Errors.Failed()
	parts := make([]string, 0, len(failed))
	for _, ve := range failed {
		parts = append(parts, ve.Error())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(parts, ", "))
}

func (e *FormError) Unwrap() error {
	return ErrInvalidForm
}
