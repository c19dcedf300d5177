// Package postgres provides a PostgreSQL database adapter.
package postgres

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/leapstack-labs/omopcdm/pkg/adapter"
	postgresdialect "github.com/leapstack-labs/omopcdm/pkg/adapters/postgres/dialect"
	"github.com/leapstack-labs/omopcdm/pkg/dialect"
)

// Adapter implements the adapter.Adapter interface for PostgreSQL.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new PostgreSQL adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the PostgreSQL DDL dialect.
func (a *Adapter) Dialect() *dialect.Dialect {
	return postgresdialect.Postgres
}

// Connect establishes a connection to PostgreSQL through the pgx stdlib driver.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	dsn := buildPostgresDSN(cfg)

	a.Logger.Debug("connecting to postgres", slog.String("host", cfg.Host), slog.String("database", cfg.Database))

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// buildPostgresDSN constructs a key=value connection string. Options other
// than sslmode are appended in name order.
func buildPostgresDSN(cfg adapter.Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	sslmode := "disable"
	if mode, ok := cfg.Options["sslmode"]; ok {
		sslmode = mode
	}

	parts := []string{
		"host=" + dsnValue(host),
		fmt.Sprintf("port=%d", port),
		"dbname=" + dsnValue(cfg.Database),
		"sslmode=" + dsnValue(sslmode),
	}
	if cfg.Username != "" {
		parts = append(parts, "user="+dsnValue(cfg.Username))
	}
	if cfg.Password != "" {
		parts = append(parts, "password="+dsnValue(cfg.Password))
	}

	keys := make([]string, 0, len(cfg.Options))
	for k := range cfg.Options {
		if k != "sslmode" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+dsnValue(cfg.Options[k]))
	}

	return strings.Join(parts, " ")
}

// dsnValue quotes a connection string value when libpq requires it.
func dsnValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// ListTables returns the base tables of one schema.
func (a *Adapter) ListTables(ctx context.Context, schema string) ([]string, error) {
	return a.ListTablesCommon(ctx, schema, a.Dialect())
}

// GetTableMetadata retrieves metadata for a specified table.
func (a *Adapter) GetTableMetadata(ctx context.Context, table string) (*adapter.Metadata, error) {
	return a.GetTableMetadataCommon(ctx, table, a.Dialect())
}

// LoadCSV streams a delimited file into an existing table with COPY FROM
// STDIN. The header row names the target columns, so files may list them
// in any order.
func (a *Adapter) LoadCSV(ctx context.Context, table string, path string, delimiter rune) error {
	if a.DB == nil {
		return adapter.ErrNotConnected
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	file, err := os.Open(absPath) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := bufio.NewReader(file)
	header, err := reader.ReadString('\n')
	if err != nil && header == "" {
		return fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	columns := splitHeader(header, delimiter)

	schema, name := adapter.ParseQualifiedName(table, a.Dialect())
	copySQL := copyStatement(a.Dialect(), schema, name, columns, delimiter)
	body := io.MultiReader(strings.NewReader(header), reader)

	conn, err := a.DB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	a.Logger.Debug("copying file", slog.String("table", table), slog.String("path", absPath))
	err = conn.Raw(func(driverConn any) error {
		pgConn := driverConn.(*stdlib.Conn).Conn().PgConn()
		tag, err := pgConn.CopyFrom(ctx, body, copySQL)
		if err != nil {
			return err
		}
		a.Logger.Debug("copy complete", slog.String("table", table), slog.Int64("rows", tag.RowsAffected()))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load %s into %s: %w", path, table, err)
	}
	return nil
}

func splitHeader(line string, delimiter rune) []string {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, string(delimiter))
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.Trim(strings.TrimSpace(f), `"`))
		if f != "" {
			cols = append(cols, f)
		}
	}
	return cols
}

// copyStatement renders COPY ... FROM STDIN. Tab-delimited vocabulary
// exports carry no quoting, so the quote character is set to backspace.
func copyStatement(d *dialect.Dialect, schema, table string, columns []string, delimiter rune) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = d.QuoteIdentifierIfNeeded(c)
	}

	opts := []string{"FORMAT csv", "HEADER true"}
	if delimiter == '\t' {
		opts = append(opts, `DELIMITER E'\t'`, `QUOTE E'\b'`)
	} else {
		opts = append(opts, "DELIMITER '"+strings.ReplaceAll(string(delimiter), "'", "''")+"'")
	}

	target := d.Qualify(schema, table)
	if len(quoted) > 0 {
		target += " (" + strings.Join(quoted, ", ") + ")"
	}
	return fmt.Sprintf("COPY %s FROM STDIN WITH (%s)", target, strings.Join(opts, ", "))
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
