package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/omopcdm/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command error = %v", err)
	}
	if !strings.Contains(buf.String(), "omopcdm v"+cli.Version) {
		t.Errorf("version output should contain the version, got: %s", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help command error = %v", err)
	}
	for _, want := range []string{"catalogs", "ddl", "verify", "--vocab-schema"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}
