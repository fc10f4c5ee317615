package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedItem struct {
	Name     string  `validate:"required,max=120"`
	Quantity float64 `validate:"gte=0"`
	Category string  `validate:"category"`
}

type validatedDay struct {
	Day   string `validate:"required,daykey"`
	Scope string `validate:"preparescope"`
}

func TestValidator_CategoryValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		category string
		wantErr  bool
	}{
		{"vegetables", "verduras", false},
		{"dairy with accent", "lácteos", false},
		{"other", "otros", false},
		{"empty allowed", "", false},
		{"unaccented dairy", "lacteos", true},
		{"english", "vegetables", true},
		{"upper case", "VERDURAS", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(validatedItem{Name: "arroz", Quantity: 1, Category: tt.category})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_DayAndScope(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		input   validatedDay
		wantErr bool
	}{
		{"monday", validatedDay{Day: "mon"}, false},
		{"upper case day", validatedDay{Day: "SUN"}, false},
		{"weekdays scope", validatedDay{Day: "fri", Scope: "weekdays"}, false},
		{"days scope", validatedDay{Day: "fri", Scope: "days"}, false},
		{"missing day", validatedDay{}, true},
		{"spanish day", validatedDay{Day: "lun"}, true},
		{"unknown scope", validatedDay{Day: "mon", Scope: "weekend"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(validatedItem{Name: "", Quantity: -1, Category: "nope"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["name"])
	assert.Equal(t, "Must be greater than or equal to 0", fields["quantity"])
	assert.Equal(t, "Invalid category", fields["category"])

	err = v.ValidateStruct(validatedDay{Day: "lun"})
	require.Error(t, err)
	assert.Equal(t, "Invalid day, use mon..sun", FormatValidationError(err)["day"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
