package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/omopcdm/internal/cli/output"
	"github.com/leapstack-labs/omopcdm/internal/state"
	"github.com/leapstack-labs/omopcdm/pkg/core"
	"github.com/spf13/cobra"
)

// LoadOptions holds options for the load command.
type LoadOptions struct {
	Delimiter string
}

// LoadedFile describes one vocabulary file and its target table.
type LoadedFile struct {
	Table  string `json:"table"`
	Path   string `json:"path,omitempty"`
	Loaded bool   `json:"loaded"`
	Error  string `json:"error,omitempty"`
}

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	opts := &LoadOptions{}
	cmd := &cobra.Command{
		Use:   "load <dir>",
		Short: "Load vocabulary files into the vocabulary schema",
		Long: `Append vocabulary export files to the tables of the vocabulary schema.

For every vocabulary table the directory is searched for <TABLE>.csv, upper
case first (CONCEPT.csv), then lower case (concept.csv). Tables without a file
are skipped. Files are tab-delimited by default, the way vocabulary downloads
are distributed. Loading stops at the first failure.

Create the tables with --no-foreign-keys first when loading in bulk: the
files reference each other and arrive in no particular order.`,
		Example: `  omopcdm create --no-foreign-keys
  omopcdm load ./vocabulary_download_v5
  omopcdm load ./csv --delimiter ,`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runLoad(cmd.Context(), cmdCtx, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Delimiter, "delimiter", "\t", "Field delimiter (a single character)")
	return cmd
}

func parseDelimiter(s string) (rune, error) {
	if s == `\t` || strings.EqualFold(s, "tab") {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// findVocabularyFile returns the export file for table in dir, or "" if
// there is none.
func findVocabularyFile(dir, table string) (string, error) {
	for _, name := range []string{strings.ToUpper(table) + ".csv", strings.ToLower(table) + ".csv"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", nil
}

func runLoad(ctx context.Context, c *CommandContext, dir string, opts *LoadOptions) error {
	delimiter, err := parseDelimiter(opts.Delimiter)
	if err != nil {
		return err
	}
	if info, err := os.Stat(dir); err != nil {
		return fmt.Errorf("vocabulary directory: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("vocabulary directory: %s is not a directory", dir)
	}

	schema, err := c.Schema()
	if err != nil {
		return err
	}

	var files []LoadedFile
	for _, table := range schema.TableNamesIn(core.VocabularySchema) {
		path, err := findVocabularyFile(dir, table)
		if err != nil {
			return err
		}
		files = append(files, LoadedFile{Table: table, Path: path})
	}

	adp, err := c.OpenTarget(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = adp.Close() }()

	physical := c.Cfg.SchemaMap().Resolve(core.VocabularySchema)
	runErr := c.Record(ctx, state.OperationLoad, func() (int, error) {
		loaded := 0
		for i := range files {
			f := &files[i]
			if f.Path == "" {
				c.Logger.Debug("no file for table", slog.String("table", f.Table))
				continue
			}
			c.Logger.Info("loading vocabulary file", slog.String("table", f.Table), slog.String("path", f.Path))
			if err := adp.LoadCSV(ctx, physical+"."+f.Table, f.Path, delimiter); err != nil {
				f.Error = err.Error()
				return loaded, err
			}
			f.Loaded = true
			loaded++
		}
		return loaded, nil
	})

	if err := renderLoad(c.Renderer, physical, files); err != nil {
		return err
	}
	return runErr
}

func renderLoad(r *output.Renderer, physical string, files []LoadedFile) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(files)
	}

	styles := r.Styles()
	rows := make([][]string, 0, len(files))
	loaded := 0
	for _, f := range files {
		status := styles.Muted.Render("no file")
		switch {
		case f.Loaded:
			status = styles.StatusSuccess.String() + " loaded"
			loaded++
		case f.Error != "":
			status = styles.StatusFailed.String() + " failed"
		}
		rows = append(rows, []string{physical + "." + f.Table, filepath.Base(f.Path), status})
	}
	r.Header(1, "Vocabulary load")
	r.Table([]string{"Table", "File", "Status"}, rows)
	r.Muted(fmt.Sprintf("%d of %d tables loaded", loaded, len(files)))
	return nil
}
