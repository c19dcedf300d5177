package compose

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// overlayFile is the YAML form of an Overlay.
type overlayFile struct {
	Name       string          `yaml:"name"`
	Operations []operationSpec `yaml:"operations"`
}

type operationSpec struct {
	Op           string             `yaml:"op"`
	Entity       string             `yaml:"entity"`
	Table        string             `yaml:"table"`
	Schema       string             `yaml:"schema"`
	Field        *fieldSpec         `yaml:"field"`
	Fields       []fieldSpec        `yaml:"fields"`
	Relationship *relationshipSpec  `yaml:"relationship"`
	Rels         []relationshipSpec `yaml:"relationships"`
}

type fieldSpec struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Position   int    `yaml:"position"`
	Nullable   *bool  `yaml:"nullable"`
	PrimaryKey bool   `yaml:"primary_key"`
	Index      bool   `yaml:"index"`
	References string `yaml:"references"`
	OnDelete   string `yaml:"on_delete"`
}

type relationshipSpec struct {
	Name   string `yaml:"name"`
	Field  string `yaml:"field"`
	Target string `yaml:"target"`
}

// LoadOverlayFile reads an overlay from a YAML file. The overlay name
// defaults to the file name without extension.
func LoadOverlayFile(path string) (Overlay, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided configuration
	if err != nil {
		return Overlay{}, fmt.Errorf("failed to read overlay file: %w", err)
	}
	ov, err := ParseOverlay(data)
	if err != nil {
		return Overlay{}, fmt.Errorf("overlay %s: %w", path, err)
	}
	if ov.Name == "" {
		ov.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ov, nil
}

// ParseOverlay decodes an overlay from YAML. Unknown keys are rejected.
func ParseOverlay(data []byte) (Overlay, error) {
	var f overlayFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Overlay{}, fmt.Errorf("failed to parse overlay: %w", err)
	}

	ov := Overlay{Name: f.Name}
	for i, spec := range f.Operations {
		op, err := spec.build()
		if err != nil {
			return Overlay{}, fmt.Errorf("operation %d (%s): %w", i+1, spec.Op, err)
		}
		ov.Ops = append(ov.Ops, op)
	}
	return ov, nil
}

func (s operationSpec) build() (Op, error) {
	if s.Entity == "" {
		return nil, fmt.Errorf("entity is required")
	}

	switch s.Op {
	case "replace_field":
		f, err := s.field(false)
		if err != nil {
			return nil, err
		}
		return ReplaceField{Entity: s.Entity, Field: f}, nil

	case "insert_field":
		f, err := s.field(true)
		if err != nil {
			return nil, err
		}
		return InsertField{Entity: s.Entity, Field: f}, nil

	case "change_type":
		if s.Field == nil || s.Field.Type == "" {
			return nil, fmt.Errorf("field name and type are required")
		}
		t, err := core.ParseColumnType(s.Field.Type)
		if err != nil {
			return nil, err
		}
		return ChangeType{Entity: s.Entity, Field: s.Field.Name, Type: t}, nil

	case "set_nullable":
		if s.Field == nil || s.Field.Nullable == nil {
			return nil, fmt.Errorf("field name and nullable are required")
		}
		return SetNullable{Entity: s.Entity, Field: s.Field.Name, Nullable: *s.Field.Nullable}, nil

	case "remove_field":
		if s.Field == nil || s.Field.Name == "" {
			return nil, fmt.Errorf("field name is required")
		}
		return RemoveField{Entity: s.Entity, Field: s.Field.Name}, nil

	case "add_entity":
		e, err := s.entity()
		if err != nil {
			return nil, err
		}
		return AddEntity{Entity: e}, nil

	case "remove_entity":
		return RemoveEntity{Entity: s.Entity}, nil

	case "add_relationship":
		if s.Relationship == nil {
			return nil, fmt.Errorf("relationship is required")
		}
		return AddRelationship{Entity: s.Entity, Relationship: s.Relationship.model()}, nil
	}
	return nil, fmt.Errorf("unknown operation %q", s.Op)
}

func (s operationSpec) field(needPosition bool) (core.Field, error) {
	if s.Field == nil {
		return core.Field{}, fmt.Errorf("field is required")
	}
	return s.Field.model(needPosition)
}

func (s operationSpec) entity() (core.Entity, error) {
	schema := core.LogicalSchema(s.Schema)
	if s.Schema == "" {
		schema = core.CDMSchema
	}
	if !schema.Valid() {
		return core.Entity{}, fmt.Errorf("unknown schema placeholder %q", s.Schema)
	}
	if s.Table == "" {
		return core.Entity{}, fmt.Errorf("table is required")
	}

	e := core.Entity{Name: s.Entity, Table: s.Table, Schema: schema}
	for _, fs := range s.Fields {
		f, err := fs.model(true)
		if err != nil {
			return core.Entity{}, err
		}
		e.Fields = append(e.Fields, f)
	}
	for _, rs := range s.Rels {
		e.Relationships = append(e.Relationships, rs.model())
	}
	return e, nil
}

func (f fieldSpec) model(needPosition bool) (core.Field, error) {
	if f.Name == "" {
		return core.Field{}, fmt.Errorf("field name is required")
	}
	if needPosition && f.Position <= 0 {
		return core.Field{}, fmt.Errorf("field %q needs a positive position", f.Name)
	}

	out := core.Field{
		Name:       f.Name,
		Position:   f.Position,
		PrimaryKey: f.PrimaryKey,
		Index:      f.Index,
		Nullable:   f.Nullable != nil && *f.Nullable,
	}
	if f.Type != "" {
		t, err := core.ParseColumnType(f.Type)
		if err != nil {
			return core.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out.Type = t
	}
	if f.References != "" {
		ref, err := core.ParseRef(f.References)
		if err != nil {
			return core.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out.References = ref
	}
	if f.OnDelete != "" {
		action, err := core.ParseOnDelete(f.OnDelete)
		if err != nil {
			return core.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out.OnDelete = action
	}
	if out.Type.IsInferred() && out.References.IsZero() {
		return core.Field{}, fmt.Errorf("field %q needs a type or a reference", f.Name)
	}
	return out, nil
}

func (r relationshipSpec) model() core.Relationship {
	return core.Relationship{Name: r.Name, Field: r.Field, Target: r.Target}
}
