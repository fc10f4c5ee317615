package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Despensa_Go/internal/domain"
)

func TestCursor_RoundTrip(t *testing.T) {
	for _, id := range []string{"0190b1c2-7a3e-7c00-8000-000000000001", "a", "menu:1"} {
		got, err := DecodeCursor(EncodeCursor(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestDecodeCursor(t *testing.T) {
	got, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Empty(t, got, "empty cursor is the first page")

	tests := []struct {
		name   string
		cursor string
	}{
		{"not base64", "%%%"},
		{"missing prefix", "aWQtMQ"},
		{"empty id", EncodeCursor("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.cursor)
			assert.ErrorIs(t, err, domain.ErrInvalidCursor)
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, ClampLimit(0, 20, 100))
	assert.Equal(t, 20, ClampLimit(-3, 20, 100))
	assert.Equal(t, 5, ClampLimit(5, 20, 100))
	assert.Equal(t, 100, ClampLimit(500, 20, 100))
}
