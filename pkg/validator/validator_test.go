package validator

import (
	"errors"
	"testing"

	"github.com/alimikegami/toy-town/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Note     *string  `json:"note" validate:"required"`
	Internal string   `json:"-"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	price := -1.0
	err := New().Validate(&sample{Price: &price})

	var vErrs ValidationErrors
	require.True(t, errors.As(err, &vErrs))
	assert.ElementsMatch(t, ValidationErrors{
		{Field: "name", Tag: "required"},
		{Field: "price", Tag: "gte"},
		{Field: "note", Tag: "required"},
	}, vErrs)
	assert.Contains(t, err.Error(), "name:required")
}

func TestValidate_EmptyStringBehindPointerIsPresent(t *testing.T) {
	price := 0.0
	note := ""
	err := New().Validate(&sample{Name: "Racer", Price: &price, Note: &note})

	assert.NoError(t, err)
}

func TestValidationErrors_AreResponseDetails(t *testing.T) {
	var details []response.ValidationError = ValidationErrors{{Field: "name", Tag: "required"}}
	assert.Len(t, details, 1)
}
