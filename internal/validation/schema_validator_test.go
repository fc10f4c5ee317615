package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"version": {"type": "string"},
		"units": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {"type": "string", "minLength": 1}
			}
		}
	},
	"required": ["version", "units"]
}`

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o644))
	return path
}

func TestSchemaValidator_ValidateJSON(t *testing.T) {
	schemaPath := writeSchema(t)
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid document", data: `{"version": "1.0", "units": {"cup": ["taza"]}}`},
		{name: "missing required field", data: `{"units": {}}`, errorMsg: "required"},
		{name: "wrong item type", data: `{"version": "1.0", "units": {"cup": [3]}}`, errorMsg: "/units/cup/0"},
		{name: "empty alias", data: `{"version": "1.0", "units": {"cup": [""]}}`, errorMsg: "minLength"},
		{name: "invalid JSON", data: `{"version": `, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON([]byte(tt.data), schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateYAML(t *testing.T) {
	schemaPath := writeSchema(t)
	v := NewSchemaValidator()

	valid := []byte("version: \"1.0\"\nunits:\n  tbsp: [cda, cucharada]\n  piece:\n    - pieza\n")
	assert.NoError(t, v.ValidateYAML(valid, schemaPath))

	invalid := []byte("units:\n  tbsp: [cda]\n")
	err := v.ValidateYAML(invalid, schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	malformed := []byte("version: [unclosed\n")
	err = v.ValidateYAML(malformed, schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse YAML")
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateJSON([]byte(`{}`), "does/not/exist.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestSchemaValidator_RepositorySchema(t *testing.T) {
	v := NewSchemaValidator()
	data, err := os.ReadFile(filepath.Join("..", "..", "configs", "units.yaml"))
	require.NoError(t, err)
	assert.NoError(t, v.ValidateYAML(data, "configs/schemas/units.schema.json"))
}
