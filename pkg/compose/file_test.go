package compose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

const siteOverlay = `
name: site
operations:
  - op: replace_field
    entity: Person
    field:
      name: person_id
      type: BIGINT
      primary_key: true
  - op: insert_field
    entity: Death
    field:
      name: new_field_1
      type: TEXT
      position: 150
      nullable: true
  - op: add_entity
    entity: CloudSpine
    table: cloudspine
    fields:
      - name: cloud_id
        type: BIGINT
        position: 100
        primary_key: true
      - name: person_id
        references: cdm_schema.person.person_id
        on_delete: cascade
        position: 200
        index: true
    relationships:
      - name: person
        field: person_id
        target: Person
  - op: remove_field
    entity: Death
    field:
      name: cause_source_concept_id
`

func TestParseOverlay(t *testing.T) {
	ov, err := ParseOverlay([]byte(siteOverlay))
	require.NoError(t, err)
	assert.Equal(t, "site", ov.Name)
	require.Len(t, ov.Ops, 4)

	add, ok := ov.Ops[2].(AddEntity)
	require.True(t, ok)
	assert.Equal(t, core.CDMSchema, add.Entity.Schema)
	assert.Equal(t, core.PersonID, add.Entity.Fields[1].References)
	assert.Equal(t, core.OnDeleteCascade, add.Entity.Fields[1].OnDelete)

	s, err := Assemble(testCatalog(), ov)
	require.NoError(t, err)

	spine, ok := s.Table("cloudspine")
	require.True(t, ok)
	pid, _ := spine.Column("person_id")
	assert.Equal(t, core.BigInteger, pid.Type)

	death, _ := s.Table("death")
	assert.Equal(t, []string{"person_id", "new_field_1", "death_date", "cause_concept_id"}, death.ColumnNames())
}

func TestParseOverlayErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown op", "operations:\n  - op: rename_field\n    entity: Person\n"},
		{"missing entity", "operations:\n  - op: remove_entity\n"},
		{"bad type", "operations:\n  - op: change_type\n    entity: Person\n    field: {name: person_id, type: BLOB}\n"},
		{"insert without position", "operations:\n  - op: insert_field\n    entity: Person\n    field: {name: x, type: TEXT}\n"},
		{"bad reference", "operations:\n  - op: insert_field\n    entity: Person\n    field: {name: x, position: 5, references: person.person_id}\n"},
		{"untyped field", "operations:\n  - op: insert_field\n    entity: Person\n    field: {name: x, position: 5}\n"},
		{"bad schema", "operations:\n  - op: add_entity\n    entity: X\n    table: x\n    schema: results\n"},
		{"malformed yaml", "operations: [\n"},
		{"misspelled top-level key", "operation:\n  - op: remove_entity\n    entity: Death\n"},
		{"misspelled field key", "operations:\n  - op: insert_field\n    entity: Person\n    field: {name: x, type: TEXT, position: 5, nulable: true}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverlay([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseOverlayEmpty(t *testing.T) {
	ov, err := ParseOverlay(nil)
	require.NoError(t, err)
	assert.Empty(t, ov.Ops)
}

func TestLoadOverlayFileDefaultsName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widen-person.yaml")
	content := "operations:\n  - op: change_type\n    entity: Person\n    field: {name: year_of_birth, type: INTEGER}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ov, err := LoadOverlayFile(path)
	require.NoError(t, err)
	assert.Equal(t, "widen-person", ov.Name)

	_, err = LoadOverlayFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
