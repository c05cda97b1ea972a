package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldError_Error(t *testing.T) {
	fe := FieldError{Field: "email", Message: "invalid"}
	assert.Equal(t, "field email: invalid", fe.Error())
}

func TestValidationError_Error(t *testing.T) {
	ve := ValidationError{Errors: []FieldError{
		{Field: "name", Message: "required"},
		{Field: "category", Message: "unknown"},
	}}

	assert.Equal(t, "validation failed: field name: required, field category: unknown", ve.Error())
	assert.Equal(t, []string{"name", "category"}, ve.Fields())
}

func TestValidationError_Empty(t *testing.T) {
	ve := ValidationError{}

	assert.Equal(t, "validation failed: ", ve.Error())
	assert.Empty(t, ve.Fields())
}
