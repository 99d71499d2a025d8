package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPropertyRequest struct {
	Title        string  `json:"title" validate:"required,max=512"`
	PropertyType string  `json:"property_type" validate:"required,oneof=commercial industrial agricultural residential"`
	Area         float64 `json:"area" validate:"required,gt=0"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Email        string  `json:"email" validate:"omitempty,email"`
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(testPropertyRequest{
		Title:        "Seaside villa",
		PropertyType: "residential",
		Area:         320,
		Price:        500000,
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(testPropertyRequest{
		PropertyType: "residential",
		Area:         320,
		Price:        500000,
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "title", verrs[0].Field)
	assert.Equal(t, "title is required", verrs[0].Message)
}

func TestValidateEnumAndRange(t *testing.T) {
	v := New()

	err := v.Validate(testPropertyRequest{
		Title:        "Plot",
		PropertyType: "castle",
		Area:         -5,
		Price:        100,
		Email:        "not-an-email",
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)

	fields := make(map[string]string)
	for _, ve := range verrs {
		fields[ve.Field] = ve.Tag
	}
	assert.Equal(t, "oneof", fields["property_type"])
	assert.Equal(t, "gt", fields["area"])
	assert.Equal(t, "email", fields["email"])
}
