package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		name  string
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{name: "catalogs", cmd: NewCatalogsCommand(), use: "catalogs"},
		{name: "describe", cmd: NewDescribeCommand(), use: "describe <table>"},
		{name: "ddl", cmd: NewDDLCommand(), use: "ddl", flags: []string{"dialect", "drop", "no-indexes", "no-foreign-keys", "if-not-exists"}},
		{name: "create", cmd: NewCreateCommand(), use: "create", flags: []string{"no-transaction", "no-indexes", "no-foreign-keys", "if-not-exists"}},
		{name: "drop", cmd: NewDropCommand(), use: "drop", flags: []string{"yes"}},
		{name: "verify", cmd: NewVerifyCommand(), use: "verify", flags: []string{"concurrency", "no-transaction", "keep"}},
		{name: "graph", cmd: NewGraphCommand(), use: "graph [table]"},
		{name: "load", cmd: NewLoadCommand(), use: "load <dir>", flags: []string{"delimiter"}},
		{name: "history", cmd: NewHistoryCommand(), use: "history", flags: []string{"limit"}},
		{name: "init", cmd: NewInitCommand(), use: "init [directory]", flags: []string{"force"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Example, "Example should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestDropCommand_YesShorthand(t *testing.T) {
	cmd := NewDropCommand()
	flag := cmd.Flags().ShorthandLookup("y")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "yes", flag.Name)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: "\t", want: '\t'},
		{in: `\t`, want: '\t'},
		{in: "tab", want: '\t'},
		{in: ",", want: ','},
		{in: "|", want: '|'},
		{in: "", wantErr: true},
		{in: ";;", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDelimiter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenameSpecialFiles(t *testing.T) {
	assert.Equal(t, ".gitignore", renameSpecialFiles("gitignore"))
	assert.Equal(t, "overlays/site.yaml", renameSpecialFiles("overlays/site.yaml"))
}
