package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-hashids/pkg/hashids"
	"github.com/huynhanx03/go-hashids/pkg/registry"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hashids.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// =============================================================================
// Codec Command Tests
// =============================================================================

func TestCodecCommands(t *testing.T) {
	const salt = "this is my salt"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"encode_one", []string{"encode", "--salt", salt, "1"}, "NV"},
		{"encode_many", []string{"encode", "-s", salt, "1", "2", "3"}, "laHquq"},
		{"encode_min_length", []string{"encode", "-s", salt, "-m", "8", "1"}, "gB0NV05e"},
		{"encode_no_salt", []string{"encode", "1", "2", "3"}, "o2fXhV"},
		{"decode_one", []string{"decode", "-s", salt, "NkK9"}, "12345"},
		{"decode_many", []string{"decode", "-s", salt, "laHquq"}, "1 2 3"},
		{"decode_guards_only", []string{"decode", "-s", salt, "AdG0"}, ""},
		{"encode_hex", []string{"encode-hex", "-s", salt, "DEADBEEF"}, "zEMBllj"},
		{"decode_hex", []string{"decode-hex", "-s", salt, "zEMBllj"}, "DEADBEEF"},
		{"no_separators", []string{"encode", "-s", "salt", "--alphabet", "0123456789abcdef", "--separators", "", "1", "2", "3"}, "7c1d2e"},
		{"default_separators", []string{"encode", "-s", "salt", "--alphabet", "0123456789abcdef", "1", "2", "3"}, "38ca0e"},
		{"custom_alphabet", []string{"encode", "-s", "salt", "--alphabet", "abcd", "--separators", "xyz", "1", "2", "3"}, "ddbcdbdd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodecCommands_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"negative_number", []string{"encode", "--", "-1"}, hashids.ErrNegativeNumber},
		{"mismatch", []string{"decode", "-s", "this is my salt", "zzzz"}, hashids.ErrDecodeMismatch},
		{"invalid_hex", []string{"encode-hex", "xyz"}, hashids.ErrInvalidHex},
		{"short_alphabet", []string{"encode", "--alphabet", "abc", "1"}, hashids.ErrAlphabetTooShort},
		{"unknown_namespace", []string{"encode", "-n", "invoice", "1"}, registry.ErrNamespaceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("not_a_number", func(t *testing.T) {
		_, err := run(t, "encode", "abc")
		assert.ErrorContains(t, err, "argument 1")
	})

	t.Run("missing_argument", func(t *testing.T) {
		_, err := run(t, "decode")
		assert.Error(t, err)
	})
}

// =============================================================================
// Config Tests
// =============================================================================

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
hashids:
  salt: this is my salt
namespaces:
  user:
    salt: this is my salt
    min_length: 8
`)

	got, err := run(t, "encode", "--config", path, "1")
	require.NoError(t, err)
	assert.Equal(t, "NV", got)

	got, err = run(t, "encode", "-c", path, "-n", "user", "1")
	require.NoError(t, err)
	assert.Equal(t, "gB0NV05e", got)

	// flags win over the file
	got, err = run(t, "encode", "-c", path, "-s", "", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "o2fXhV", got)
}

func TestConfigFile_NoSeparators(t *testing.T) {
	path := writeConfig(t, `
hashids:
  salt: salt
  alphabet: 0123456789abcdef
  separators: ""
`)

	got, err := run(t, "encode", "-c", path, "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "7c1d2e", got)

	got, err = run(t, "decode", "-c", path, "7c1d2e")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3", got)
}

func TestInspect(t *testing.T) {
	got, err := run(t, "inspect", "-s", "this is my salt")
	require.NoError(t, err)

	assert.Contains(t, got, "alphabet:   5N6y2rljDQak4xgzn8ZR1oKYLmJpEbVq3OBv9WwXPMe7")
	assert.Contains(t, got, "separators: UHuhtcITCsFifS")
	assert.Contains(t, got, "guards:     AdG0")
	assert.Contains(t, got, "namespace:  default")
}
