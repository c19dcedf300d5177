package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnType(t *testing.T) {
	tests := []struct {
		input   string
		want    ColumnType
		wantErr bool
	}{
		{"INTEGER", Integer, false},
		{"int", Integer, false},
		{"BigInt", BigInteger, false},
		{"NUMERIC", Numeric, false},
		{"decimal", Numeric, false},
		{"TEXT", Text, false},
		{"date", Date, false},
		{"TIMESTAMP", DateTime, false},
		{"datetime", DateTime, false},
		{"VARCHAR(50)", Varchar(50), false},
		{"string( 20 )", Varchar(20), false},
		{"VARCHAR", ColumnType{}, true},
		{"VARCHAR(0)", ColumnType{}, true},
		{"VARCHAR(50", ColumnType{}, true},
		{"BLOB", ColumnType{}, true},
		{"", ColumnType{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColumnType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnTypeString(t *testing.T) {
	assert.Equal(t, "VARCHAR(255)", Varchar(255).String())
	assert.Equal(t, "BIGINT", BigInteger.String())
	assert.Equal(t, "TIMESTAMP", DateTime.String())
	assert.Equal(t, "INFERRED", ColumnType{}.String())
	assert.True(t, ColumnType{}.IsInferred())
	assert.False(t, Integer.IsInferred())

	// round trip through the parser for every concrete kind
	for _, ct := range []ColumnType{Integer, BigInteger, Numeric, Text, Date, DateTime, Varchar(20)} {
		parsed, err := ParseColumnType(ct.String())
		require.NoError(t, err)
		assert.Equal(t, ct, parsed)
	}
}
