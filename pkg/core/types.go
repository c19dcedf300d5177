package core

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeKind classifies a column's logical SQL type.
type TypeKind int

const (
	// KindInferred marks a foreign key column whose type is taken from the
	// column it references at assembly time.
	KindInferred TypeKind = iota
	KindInteger
	KindBigInteger
	KindNumeric
	KindString
	KindText
	KindDate
	KindDateTime
)

var kindNames = map[TypeKind]string{
	KindInferred:   "INFERRED",
	KindInteger:    "INTEGER",
	KindBigInteger: "BIGINT",
	KindNumeric:    "NUMERIC",
	KindString:     "VARCHAR",
	KindText:       "TEXT",
	KindDate:       "DATE",
	KindDateTime:   "TIMESTAMP",
}

// String returns the canonical name of the kind.
func (k TypeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// ColumnType is a logical column type. Length is only meaningful for KindString.
type ColumnType struct {
	Kind   TypeKind
	Length int
}

// Common column types.
var (
	Integer    = ColumnType{Kind: KindInteger}
	BigInteger = ColumnType{Kind: KindBigInteger}
	Numeric    = ColumnType{Kind: KindNumeric}
	Text       = ColumnType{Kind: KindText}
	Date       = ColumnType{Kind: KindDate}
	DateTime   = ColumnType{Kind: KindDateTime}
)

// Varchar returns a bounded string type.
func Varchar(n int) ColumnType {
	return ColumnType{Kind: KindString, Length: n}
}

// IsInferred reports whether the type must be resolved from a referenced column.
func (t ColumnType) IsInferred() bool {
	return t.Kind == KindInferred
}

// String renders the type as it appears in catalogs and overlay files.
func (t ColumnType) String() string {
	if t.Kind == KindString {
		return fmt.Sprintf("VARCHAR(%d)", t.Length)
	}
	return t.Kind.String()
}

// ParseColumnType parses a type name such as "BIGINT" or "VARCHAR(50)".
func ParseColumnType(s string) (ColumnType, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	if raw == "" {
		return ColumnType{}, fmt.Errorf("empty column type")
	}

	name, arg := raw, ""
	if open := strings.IndexByte(raw, '('); open >= 0 {
		if !strings.HasSuffix(raw, ")") {
			return ColumnType{}, fmt.Errorf("malformed column type %q", s)
		}
		name = strings.TrimSpace(raw[:open])
		arg = strings.TrimSpace(raw[open+1 : len(raw)-1])
	}

	switch name {
	case "INTEGER", "INT":
		return Integer, nil
	case "BIGINT", "BIGINTEGER":
		return BigInteger, nil
	case "NUMERIC", "DECIMAL":
		return Numeric, nil
	case "TEXT":
		return Text, nil
	case "DATE":
		return Date, nil
	case "TIMESTAMP", "DATETIME":
		return DateTime, nil
	case "VARCHAR", "STRING":
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return ColumnType{}, fmt.Errorf("column type %q needs a positive length", s)
		}
		return Varchar(n), nil
	}
	return ColumnType{}, fmt.Errorf("unknown column type %q", s)
}
