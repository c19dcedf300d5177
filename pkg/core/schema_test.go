package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaMapResolve(t *testing.T) {
	m := NewSchemaMap("vocab", "cdm")
	assert.Equal(t, "vocab", m.Resolve(VocabularySchema))
	assert.Equal(t, "cdm", m.Resolve(CDMSchema))
	assert.Equal(t, []string{"cdm", "vocab"}, m.Physical())

	var empty SchemaMap
	assert.Equal(t, "cdm_schema", empty.Resolve(CDMSchema))
}

func TestSchemaMapSharedSchema(t *testing.T) {
	m := NewSchemaMap("omop", "omop")
	assert.Equal(t, []string{"omop"}, m.Physical())
	assert.NoError(t, m.Validate())
}

func TestSchemaMapValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       SchemaMap
		wantErr bool
	}{
		{"valid", NewSchemaMap("a", "b"), false},
		{"partial", SchemaMap{CDMSchema: "b"}, false},
		{"empty name", SchemaMap{CDMSchema: ""}, true},
		{"unknown placeholder", SchemaMap{"results_schema": "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
