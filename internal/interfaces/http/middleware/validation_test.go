package middleware

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecoders/backend/internal/interfaces/http/dto"
)

type validatedRequest struct {
	Name   string `json:"name" validate:"required"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	TabKey string `json:"tab_key" validate:"oneof=tomorrow week month"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(validatedRequest{Rating: 9, TabKey: "yesterday"})
	require.Error(t, err)

	resp := FormatValidationErrors(err, "req-42")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-42", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 3)
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError, "")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Empty(t, resp.Error.Details)
}

func TestGetValidationMessage(t *testing.T) {
	v := validator.New()
	err := v.Struct(validatedRequest{Name: "ok", Rating: 3, TabKey: "yesterday"})
	require.Error(t, err)

	errs := err.(validator.ValidationErrors)
	require.Len(t, errs, 1)
	assert.Equal(t, "Must be one of: tomorrow week month", getValidationMessage(errs[0]))
}
