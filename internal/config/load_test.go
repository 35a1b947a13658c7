package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		want    Profile
		wantErr bool
	}{
		{
			name: "full profile",
			yaml: `
version: 1
name: fuzzing
debug: true
disable: [filepath, compare]
`,
			want: Profile{Version: 1, Name: "fuzzing", Debug: true, Disable: []string{"filepath", "compare"}},
		},
		{
			name: "enable only",
			yaml: `
enable:
  - bounds
  - subrange
`,
			want: Profile{Enable: []string{"bounds", "subrange"}},
		},
		{
			name: "empty document",
			yaml: "",
			want: Profile{},
		},
		{
			name:    "unknown key",
			yaml:    "disabel: [bounds]\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			yaml:    "debug: [true]\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "enable: [bounds\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to parse profile")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "checks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\ndisable: [arith]\n"), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.Debug)
	assert.Equal(t, []string{"arith"}, p.Disable)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read profile")
}
