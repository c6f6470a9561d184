// Integration test of sparksqlparse command.
//
// Test requirement:
//   - go command
package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k0kubun/sparksql/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const binary = "./sparksqlparse"

func TestMain(m *testing.M) {
	testutil.BuildForTest()
	status := m.Run()
	os.Remove(binary)
	os.Exit(status)
}

func writeSQL(t *testing.T, name string, sql string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	testutil.WriteFile(path, sql)
	return path
}

func TestFormat(t *testing.T) {
	path := writeSQL(t, "query.sql", testutil.StripHeredoc(`
		-- reports
		select a, b from t where a > 1;
		insert into table s select * from t;
		`,
	))

	out := testutil.MustExecute(t, binary, path)
	assert.Equal(t, "SELECT a, b FROM t WHERE a > 1;\nINSERT INTO TABLE s SELECT * FROM t;\n", out)
}

func TestTables(t *testing.T) {
	first := writeSQL(t, "first.sql", "SELECT * FROM t JOIN s ON t.a = s.a;")
	second := writeSQL(t, "second.sql", "DELETE FROM t WHERE a = 1;")

	out := testutil.MustExecute(t, binary, "--mode", "tables", "--concurrency", "2", first, second)
	assert.Equal(t, "s\t1\nt\t2\n", out)
}

func TestStdin(t *testing.T) {
	cmd := exec.Command(binary, "--mode", "check")
	cmd.Stdin = strings.NewReader("SELECT 1; SELECT 2")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Empty(t, string(out))
}

func TestParseError(t *testing.T) {
	path := writeSQL(t, "broken.sql", "SELECT 1;\nSELECT a FROM t WHERE")

	out, err := testutil.Execute(binary, path)
	assert.Error(t, err)
	assert.Contains(t, out, "failed to parse '"+path+"'")
	assert.Contains(t, out, "syntax error at line 2, column 22")
	assert.Contains(t, out, "SELECT a FROM t WHERE\n                     ^")
}

func TestConfigInline(t *testing.T) {
	path := writeSQL(t, "user.sql", "SELECT user FROM t")

	out := testutil.MustExecute(t, binary, path)
	assert.Equal(t, "SELECT `user` FROM t;\n", out)

	out, err := testutil.Execute(binary, "--config-inline", "ansi_enabled: true", path)
	assert.Error(t, err)
	assert.Contains(t, out, "mismatched input 'user'")
}

func TestConfigFile(t *testing.T) {
	config := writeSQL(t, "config.yml", "legacy_setops_precedence_enabled: true\n")
	path := writeSQL(t, "setops.sql", "SELECT 1 UNION SELECT 2 INTERSECT SELECT 3")

	out := testutil.MustExecute(t, binary, "--config", config, path)
	assert.Equal(t, "(SELECT 1 UNION SELECT 2) INTERSECT SELECT 3;\n", out)
}

func TestDump(t *testing.T) {
	path := writeSQL(t, "dump.sql", "SELECT a FROM t")

	out := testutil.MustExecute(t, binary, "--mode", "dump", "--color", "never", path)
	assert.Contains(t, out, "-- SELECT a FROM t\n")
	assert.Contains(t, out, "parser.Query")
	assert.Contains(t, out, "parser.ColumnRef")
}

func TestHelp(t *testing.T) {
	out := testutil.MustExecute(t, binary, "--help")
	assert.Contains(t, out, "--config-inline")

	out = testutil.MustExecute(t, binary, "--version")
	assert.Equal(t, "dev (HEAD)\n", out)
}
