package validator_test

import (
	"testing"

	"clinic-scheduler/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	Role string `validate:"required,oneof=doctor patient"`
}

func TestValidateAndFormat(t *testing.T) {
	cv := validator.NewValidator()

	require.NoError(t, cv.Validate(&sample{Name: "Ana", Role: "doctor"}))

	err := cv.Validate(&sample{Role: "admin"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Name is required", formatted["Name"])
	assert.Equal(t, "Role must be one of: doctor patient", formatted["Role"])
}
