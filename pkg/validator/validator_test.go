package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Summary string `json:"summary" validate:"required,min=20,max=500"`
	Pincode string `json:"pincode" validate:"required,numeric,min=5,max=6"`
	Role    string `json:"role" validate:"required,oneof=patient doctor"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Summary: "too short", Pincode: "12a45", Role: "admin"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "summary must be at least 20 characters", errs["summary"])
	assert.Equal(t, "pincode must contain digits only", errs["pincode"])
	assert.Equal(t, "role must be one of: patient doctor", errs["role"])
}

func TestValidate_PincodeLength(t *testing.T) {
	v := NewValidator()
	valid := "a summary that is at least twenty characters"

	assert.NoError(t, v.Validate(&sampleRequest{Summary: valid, Pincode: "12345", Role: "doctor"}))
	assert.NoError(t, v.Validate(&sampleRequest{Summary: valid, Pincode: "123456", Role: "patient"}))
	assert.Error(t, v.Validate(&sampleRequest{Summary: valid, Pincode: "1234", Role: "patient"}))
	assert.Error(t, v.Validate(&sampleRequest{Summary: valid, Pincode: "1234567", Role: "patient"}))
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, NewValidator().FormatValidationErrors(assert.AnError))
}
