package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/devcheck/internal/config"
)

func newTestRegistry(out *bytes.Buffer) *CommandRegistry {
	r := NewCommandRegistry(VersionInfo{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-02"}, out)
	registerCommands(r)
	return r
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newTestRegistry(&out).Execute(args)
	return out.String(), err
}

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestExecute_NoCommand(t *testing.T) {
	out, err := run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, out, "COMMANDS:")
}

func TestExecute_UnknownCommand(t *testing.T) {
	out, err := run(t, "frobnicate")
	require.Error(t, err)
	assert.Equal(t, "unknown command: frobnicate", err.Error())
	assert.Contains(t, out, "USAGE:")
}

func TestExecute_HelpFlag(t *testing.T) {
	for _, arg := range []string{"-h", "--help", "help"} {
		t.Run(arg, func(t *testing.T) {
			out, err := run(t, arg)
			require.NoError(t, err)
			assert.Contains(t, out, "checktags - build profiles")
		})
	}
}

func TestHelp_ListsCommandsInRegistrationOrder(t *testing.T) {
	out, err := run(t, "help")
	require.NoError(t, err)

	names := []string{"list", "tags", "validate", "version", "help"}
	last := -1
	for _, name := range names {
		idx := strings.Index(out, "    "+name+" ")
		require.GreaterOrEqual(t, idx, 0, "help should list %s", name)
		assert.Greater(t, idx, last, "%s listed out of order", name)
		last = idx
	}
}

func TestHelp_Command(t *testing.T) {
	out, err := run(t, "help", "tags")
	require.NoError(t, err)
	assert.Contains(t, out, "checktags tags <profile.yaml> [flags]")
	assert.Contains(t, out, "EXAMPLES:")

	_, err = run(t, "help", "nope")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "checktags v1.2.3 (commit: abc123, built: 2026-01-02)")
	assert.Contains(t, out, "Go: go")
}

func TestList_Golden(t *testing.T) {
	out, err := run(t, "list", "--compiled=false")
	require.NoError(t, err)
	newGolden(t).Assert(t, "list", []byte(out))
}

func TestList_CompiledColumn(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Compiled in")

	lines := strings.Split(out, "\n")
	var rows int
	for _, line := range lines {
		if strings.HasPrefix(line, "│ ") && !strings.Contains(line, "Category") {
			rows++
			assert.True(t, strings.Contains(line, " yes ") || strings.Contains(line, " no "), line)
		}
	}
	assert.Equal(t, 7, rows)
}

func TestTags_Golden(t *testing.T) {
	for _, name := range []string{"fuzzing", "release"} {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "tags", filepath.Join("testdata", name+".yaml"))
			require.NoError(t, err)
			newGolden(t).Assert(t, "tags_"+name, []byte(out))
		})
	}
}

func TestTags_LinesFormat(t *testing.T) {
	out, err := run(t, "tags", "testdata/fuzzing.yaml", "--format", "lines")
	require.NoError(t, err)
	assert.Equal(t, "debug\nnocheck_filepath\n", out)

	out, err = run(t, "tags", "--format=lines", "testdata/release.yaml")
	require.NoError(t, err)
	assert.Equal(t, "check_bounds\ncheck_subarray\n", out)
}

func TestTags_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing path", []string{"tags"}, "profile path required"},
		{"missing file", []string{"tags", "testdata/absent.yaml"}, "failed to load profile"},
		{"conflict", []string{"tags", "testdata/conflict.yaml"}, "invalid profile"},
		{"bad format", []string{"tags", "testdata/release.yaml", "--format", "xml"}, "unknown format: xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Golden(t *testing.T) {
	for _, name := range []string{"fuzzing", "release"} {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "validate", "testdata/"+name+".yaml")
			require.NoError(t, err)
			newGolden(t).Assert(t, "validate_"+name, []byte(out))
		})
	}
}

func TestValidate_Conflict(t *testing.T) {
	_, err := run(t, "validate", "testdata/conflict.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConflictingCategory))
}

func TestValidate_EmptyProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Tags: (none, all checks compiled out)")
	assert.NotContains(t, out, " on ")
}

func TestReorderFlags(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"a.yaml"}, []string{"a.yaml"}},
		{[]string{"a.yaml", "--format", "lines"}, []string{"--format", "lines", "a.yaml"}},
		{[]string{"a.yaml", "--format=lines"}, []string{"--format=lines", "a.yaml"}},
		{[]string{"--format", "flag", "a.yaml"}, []string{"--format", "flag", "a.yaml"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, reorderFlags(tt.in))
	}
}

func TestTableWriter(t *testing.T) {
	tw := NewTableWriter([]string{"A", "Long header"})
	tw.AddRow([]string{"wide cell", "x"})

	var buf bytes.Buffer
	tw.Print(&buf)

	want := "" +
		"┌───────────┬─────────────┐\n" +
		"│ A         │ Long header │\n" +
		"├───────────┼─────────────┤\n" +
		"│ wide cell │ x           │\n" +
		"└───────────┴─────────────┘\n"
	assert.Equal(t, want, buf.String())
}

func TestSubcommandHelpIsNotAnError(t *testing.T) {
	out, err := run(t, "tags", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "FLAGS:")
	assert.Contains(t, out, "-format")
}
