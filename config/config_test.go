package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/k0kubun/sparksql/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMergeDefault(t *testing.T) {
	config := Merge()
	assert.Equal(t, Default(), config)
	assert.Equal(t, -1, config.Concurrency)
	assert.Equal(t, parser.Options{}, config.ParserOptions())
	assert.Nil(t, config.MemoryOptions().DebugFill)
}

func TestMergeInOrder(t *testing.T) {
	first, err := ParseFile(writeConfig(t, "ansi_enabled: true\nconcurrency: 4\nmemory:\n  debug_fill: true\n"))
	require.NoError(t, err)
	second, err := ParseString("legacy_setops_precedence_enabled: true\nconcurrency: 1")
	require.NoError(t, err)
	third, err := ParseString("ansi_enabled: false")
	require.NoError(t, err)

	config := Merge(first, second, third)
	assert.False(t, config.ANSI)
	assert.True(t, config.LegacySetOpsPrecedence)
	assert.Equal(t, 1, config.Concurrency)
	require.NotNil(t, config.MemoryDebugFill)
	assert.True(t, *config.MemoryDebugFill)
	assert.Equal(t, parser.Options{LegacySetOpsPrecedence: true}, config.ParserOptions())
	assert.Equal(t, config.MemoryDebugFill, config.MemoryOptions().DebugFill)
}

func TestParseAllParserOptions(t *testing.T) {
	layer, err := ParseString(`
ansi_enabled: true
legacy_setops_precedence_enabled: true
legacy_exponent_literal_as_decimal_enabled: true
double_quoted_identifiers: true
`)
	require.NoError(t, err)
	assert.Equal(t, parser.Options{
		ANSI:                           true,
		LegacySetOpsPrecedence:         true,
		LegacyExponentLiteralAsDecimal: true,
		DoubleQuotedIdentifiers:        true,
	}, Merge(layer).ParserOptions())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := ParseString("ansi: true")
	assert.ErrorContains(t, err, "failed to parse config")

	path := writeConfig(t, "memory:\n  fill: true\n")
	_, err = ParseFile(path)
	assert.ErrorContains(t, err, path)
}

func TestParseMissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
