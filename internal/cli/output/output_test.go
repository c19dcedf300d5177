package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeAuto},
		{in: "auto", want: ModeAuto},
		{in: "TEXT", want: ModeText},
		{in: "md", want: ModeMarkdown},
		{in: "markdown", want: ModeMarkdown},
		{in: "json", want: ModeJSON},
		{in: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "auto, text, markdown, json")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	var buf bytes.Buffer

	// a buffer is never a terminal
	assert.Equal(t, ModeMarkdown, NewRenderer(&buf, &buf, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeMarkdown, NewRenderer(&buf, &buf, "").EffectiveMode())
	assert.Equal(t, ModeText, NewRenderer(&buf, &buf, ModeText).EffectiveMode())
	assert.Equal(t, ModeJSON, NewRenderer(&buf, &buf, ModeJSON).EffectiveMode())
}

func TestRenderer_Header(t *testing.T) {
	var md, text bytes.Buffer

	NewRenderer(&md, &md, ModeMarkdown).Header(2, "Catalogs")
	assert.Equal(t, "## Catalogs\n\n", md.String())

	NewRenderer(&text, &text, ModeText).Header(1, "Catalogs")
	assert.Equal(t, "Catalogs\n", text.String())
}

func TestRenderer_Table(t *testing.T) {
	header := []string{"Name", "Tables"}
	rows := [][]string{{"5.4", "39"}, {"5.4+extras", "41"}}

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		NewRenderer(&buf, &buf, ModeMarkdown).Table(header, rows)
		out := buf.String()
		assert.Contains(t, strings.ToLower(out), "| name | tables |")
		assert.Contains(t, out, "| 5.4+extras |")
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		NewRenderer(&buf, &buf, ModeText).Table(header, rows)
		out := buf.String()
		assert.Contains(t, out, "┌")
		assert.Contains(t, out, "5.4+extras")
		assert.False(t, strings.HasPrefix(out, "|"))
	})
}

func TestRenderer_Diagnostics(t *testing.T) {
	var out, diag bytes.Buffer
	r := NewRenderer(&out, &diag, ModeText)

	r.Success("created 41 tables")
	r.Warning("2 foreign keys skipped")
	r.Error("verification failed")

	assert.Empty(t, out.String())
	assert.Contains(t, diag.String(), "✓ created 41 tables")
	assert.Contains(t, diag.String(), "! 2 foreign keys skipped")
	assert.Contains(t, diag.String(), "✗ verification failed")
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"tables": 41}))
	assert.Equal(t, "{\n  \"tables\": 41\n}\n", buf.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "### Title", FormatHeader(3, "Title"))
	assert.Equal(t, "- **Catalog:** 5.4", FormatKeyValue("Catalog", "5.4"))
	assert.Equal(t, "```sql\nSELECT 1;\n```", FormatCode("sql", "SELECT 1;\n\n"))
	assert.Equal(t, "Completed", Title("completed"))
}
