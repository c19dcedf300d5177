// Package naming derives deterministic constraint and index names from table
// and column names using %(token)s templates.
package naming

import (
	"crypto/md5" //nolint:gosec // used for name shortening, not security
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Kind selects one of the convention templates.
type Kind string

const (
	KindIndex      Kind = "ix"
	KindUnique     Kind = "uq"
	KindCheck      Kind = "ck"
	KindForeignKey Kind = "fk"
	KindPrimaryKey Kind = "pk"
)

// Template tokens.
const (
	TokenTableName         = "%(table_name)s"
	TokenColumn0Name       = "%(column_0_name)s"
	TokenColumn0NName      = "%(column_0_N_name)s"
	TokenReferredTableName = "%(referred_table_name)s"
	TokenConstraintName    = "%(constraint_name)s"
)

var tokenPattern = regexp.MustCompile(`%\(([a-zA-Z0-9_]+)\)s`)

var knownTokens = map[string]bool{
	TokenTableName:         true,
	TokenColumn0Name:       true,
	TokenColumn0NName:      true,
	TokenReferredTableName: true,
	TokenConstraintName:    true,
}

// ErrInvalidInput is returned when a name cannot be derived from the input.
var ErrInvalidInput = errors.New("invalid naming input")

// Convention holds one template per constraint kind.
type Convention struct {
	Index      string
	Unique     string
	Check      string
	ForeignKey string
	PrimaryKey string
}

// Default is the convention every catalog is generated with.
var Default = Convention{
	Index:      "ix_%(table_name)s_%(column_0_N_name)s",
	Unique:     "uq_%(table_name)s_%(column_0_name)s",
	Check:      "ck_%(table_name)s_%(constraint_name)s",
	ForeignKey: "fk_%(table_name)s_%(column_0_name)s_%(referred_table_name)s",
	PrimaryKey: "pk_%(table_name)s",
}

// Input carries the values substituted into a template.
type Input struct {
	Table          string
	Columns        []string
	ReferredTable  string
	ConstraintName string
}

// Merge returns c with every non-empty template of o applied on top.
func (c Convention) Merge(o Convention) Convention {
	if o.Index != "" {
		c.Index = o.Index
	}
	if o.Unique != "" {
		c.Unique = o.Unique
	}
	if o.Check != "" {
		c.Check = o.Check
	}
	if o.ForeignKey != "" {
		c.ForeignKey = o.ForeignKey
	}
	if o.PrimaryKey != "" {
		c.PrimaryKey = o.PrimaryKey
	}
	return c
}

// Template returns the template for a kind.
func (c Convention) Template(kind Kind) (string, error) {
	switch kind {
	case KindIndex:
		return c.Index, nil
	case KindUnique:
		return c.Unique, nil
	case KindCheck:
		return c.Check, nil
	case KindForeignKey:
		return c.ForeignKey, nil
	case KindPrimaryKey:
		return c.PrimaryKey, nil
	}
	return "", fmt.Errorf("%w: unknown constraint kind %q", ErrInvalidInput, kind)
}

// Validate rejects empty templates and unknown tokens.
func (c Convention) Validate() error {
	for _, kind := range []Kind{KindIndex, KindUnique, KindCheck, KindForeignKey, KindPrimaryKey} {
		tmpl, _ := c.Template(kind)
		if tmpl == "" {
			return fmt.Errorf("naming template %q is empty", kind)
		}
		for _, tok := range tokenPattern.FindAllString(tmpl, -1) {
			if !knownTokens[tok] {
				return fmt.Errorf("naming template %q: unknown token %s", kind, tok)
			}
		}
	}
	return nil
}

// Name renders the template for kind. It fails when a token the template uses
// has no value in the input.
func (c Convention) Name(kind Kind, in Input) (string, error) {
	tmpl, err := c.Template(kind)
	if err != nil {
		return "", err
	}
	if in.Table == "" {
		return "", fmt.Errorf("%w: %s name needs a table name", ErrInvalidInput, kind)
	}

	var missing string
	out := tokenPattern.ReplaceAllStringFunc(tmpl, func(tok string) string {
		var v string
		switch tok {
		case TokenTableName:
			v = in.Table
		case TokenColumn0Name:
			if len(in.Columns) > 0 {
				v = in.Columns[0]
			}
		case TokenColumn0NName:
			v = strings.Join(in.Columns, "_")
		case TokenReferredTableName:
			v = in.ReferredTable
		case TokenConstraintName:
			v = in.ConstraintName
		}
		if v == "" && missing == "" {
			missing = tok
		}
		return v
	})
	if missing != "" {
		return "", fmt.Errorf("%w: %s name for table %q has no value for %s", ErrInvalidInput, kind, in.Table, missing)
	}
	return out, nil
}

// IndexName names an index over the given columns.
func (c Convention) IndexName(table string, columns ...string) (string, error) {
	return c.Name(KindIndex, Input{Table: table, Columns: columns})
}

// UniqueName names a unique constraint.
func (c Convention) UniqueName(table string, columns ...string) (string, error) {
	return c.Name(KindUnique, Input{Table: table, Columns: columns})
}

// CheckName names a check constraint.
func (c Convention) CheckName(table, constraint string) (string, error) {
	return c.Name(KindCheck, Input{Table: table, ConstraintName: constraint})
}

// ForeignKeyName names a foreign key constraint.
func (c Convention) ForeignKeyName(table, column, referredTable string) (string, error) {
	return c.Name(KindForeignKey, Input{Table: table, Columns: []string{column}, ReferredTable: referredTable})
}

// PrimaryKeyName names a primary key constraint.
func (c Convention) PrimaryKeyName(table string) (string, error) {
	return c.Name(KindPrimaryKey, Input{Table: table})
}

// Truncate shortens name to at most maxLen characters. Longer names keep
// their first maxLen-8 characters followed by "_" and the last four hex
// digits of the MD5 of the full name. maxLen <= 0 disables truncation.
func Truncate(name string, maxLen int) string {
	if maxLen <= 0 || len(name) <= maxLen {
		return name
	}
	keep := maxLen - 8
	if keep < 0 {
		keep = 0
	}
	sum := md5.Sum([]byte(name)) //nolint:gosec // not used for security
	digest := hex.EncodeToString(sum[:])
	return name[:keep] + "_" + digest[len(digest)-4:]
}
