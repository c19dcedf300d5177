package ddl

import (
	"bufio"
	"strings"
)

// Kind classifies a generated statement.
type Kind string

// Statement kinds in the order a script emits them.
const (
	KindCreateSchema  Kind = "create_schema"
	KindCreateTable   Kind = "create_table"
	KindAddForeignKey Kind = "add_foreign_key"
	KindCreateIndex   Kind = "create_index"
	KindDropSchema    Kind = "drop_schema"
	// KindDropTable drops one table when its schema cannot be dropped.
	KindDropTable Kind = "drop_table"
)

// Statement is one executable DDL statement, without a trailing semicolon.
type Statement struct {
	Kind   Kind   `json:"kind"`
	Schema string `json:"schema,omitempty"`
	Table  string `json:"table,omitempty"`
	SQL    string `json:"sql"`
}

// SkippedForeignKey records a reference the dialect could not express.
type SkippedForeignKey struct {
	Schema string `json:"schema"`
	Table  string `json:"table"`
	Column string `json:"column"`
	Target string `json:"target"`
	Reason string `json:"reason"`
}

// Script is an ordered DDL script for one dialect and one schema mapping.
type Script struct {
	Dialect    string              `json:"dialect"`
	Statements []Statement         `json:"statements"`
	Skipped    []SkippedForeignKey `json:"skipped,omitempty"`
}

// SQL returns the statement texts in execution order.
func (s *Script) SQL() []string {
	out := make([]string, len(s.Statements))
	for i, st := range s.Statements {
		out[i] = st.SQL
	}
	return out
}

// Filter returns the statements of one kind.
func (s *Script) Filter(kind Kind) []Statement {
	var out []Statement
	for _, st := range s.Statements {
		if st.Kind == kind {
			out = append(out, st)
		}
	}
	return out
}

// Tables returns the qualified names of the created tables in creation order.
func (s *Script) Tables() []string {
	var out []string
	for _, st := range s.Filter(KindCreateTable) {
		out = append(out, st.Schema+"."+st.Table)
	}
	return out
}

// String renders the script with every statement terminated by ";\n".
func (s *Script) String() string {
	var sb strings.Builder
	for i, st := range s.Statements {
		if i > 0 && st.Kind != s.Statements[i-1].Kind {
			sb.WriteByte('\n')
		}
		sb.WriteString(st.SQL)
		sb.WriteString(";\n")
	}
	return sb.String()
}

// SplitStatements splits a semicolon-terminated DDL script into executable statements.
// It drops blank lines and single-line comments that start with "--".
func SplitStatements(script string) []string {
	scanner := bufio.NewScanner(strings.NewReader(script))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var stmts []string
	var current strings.Builder

	flush := func() {
		stmt := strings.TrimSuffix(strings.TrimSpace(current.String()), ";")
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
		current.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
		if strings.HasSuffix(trimmed, ";") {
			flush()
		}
	}
	flush()

	return stmts
}
