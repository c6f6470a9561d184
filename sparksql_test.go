package sparksql

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/k0kubun/sparksql/config"
	"github.com/k0kubun/sparksql/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSQL(t *testing.T, sql string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.sql")
	require.NoError(t, os.WriteFile(path, []byte(sql), 0o644))
	return path
}

func TestRunFormat(t *testing.T) {
	first := writeSQL(t, "select a from t where b = 1; -- done\n")
	second := writeSQL(t, "create table u (a int) using parquet")

	var out bytes.Buffer
	err := Run(&out, &Options{Files: []string{first, second}, Config: config.Default()})
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t WHERE b = 1;\nCREATE TABLE u (a INT) USING parquet;\n", out.String())
}

func TestRunTables(t *testing.T) {
	path := writeSQL(t, "SELECT * FROM b JOIN a ON a.x = b.x; INSERT INTO a SELECT 1")

	var out bytes.Buffer
	err := Run(&out, &Options{Files: []string{path}, Mode: OutputTables, Config: config.Default()})
	require.NoError(t, err)
	assert.Equal(t, "a\t2\nb\t1\n", out.String())
}

func TestRunUsesParserOptions(t *testing.T) {
	path := writeSQL(t, `SELECT "a b"`)
	cfg := config.Default()
	cfg.DoubleQuotedIdentifiers = true

	var out bytes.Buffer
	err := Run(&out, &Options{Files: []string{path}, Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, "SELECT `a b`;\n", out.String())
}

func TestRunParseError(t *testing.T) {
	path := writeSQL(t, "SELECT 1;\nSELECT a FROM")

	err := Run(&bytes.Buffer{}, &Options{Files: []string{path}, Mode: OutputCheck, Config: config.Default()})
	require.Error(t, err)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, err.Error(), path)
}

func TestRunMissingFile(t *testing.T) {
	err := Run(&bytes.Buffer{}, &Options{Files: []string{filepath.Join(t.TempDir(), "missing.sql")}, Config: config.Default()})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunUnknownMode(t *testing.T) {
	path := writeSQL(t, "SELECT 1")
	err := Run(&bytes.Buffer{}, &Options{Files: []string{path}, Mode: "xml", Config: config.Default()})
	assert.EqualError(t, err, `unknown output mode "xml"`)
}

func TestConcurrentMapFuncWithError(t *testing.T) {
	inputs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for _, concurrency := range []int{-1, 0, 3} {
		t.Run(fmt.Sprint(concurrency), func(t *testing.T) {
			outputs, err := ConcurrentMapFuncWithError(inputs, concurrency, func(i int) (string, error) {
				return fmt.Sprint(i * i), nil
			})
			require.NoError(t, err)
			assert.Equal(t, []string{"1", "4", "9", "16", "25", "36", "49", "64"}, outputs)
		})
	}
}

func TestConcurrentMapFuncWithErrorLimit(t *testing.T) {
	var running, peak atomic.Int32
	_, err := ConcurrentMapFuncWithError(make([]int, 20), 2, func(int) (int, error) {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		return 0, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestConcurrentMapFuncWithErrorFails(t *testing.T) {
	boom := errors.New("boom")
	_, err := ConcurrentMapFuncWithError([]int{1, 2, 3}, 0, func(i int) (int, error) {
		if i == 2 {
			return 0, boom
		}
		return i, nil
	})
	assert.ErrorIs(t, err, boom)
}
