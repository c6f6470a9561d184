package testutil

import (
	"bytes"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/k0kubun/sparksql/util"
)

var stripHeredocRegex = regexp.MustCompilePOSIX("^\t*")

// TestCase is one parser test read from testdata/*.yml.
type TestCase struct {
	SQL       string   // input
	Rule      string   // entry point: statement (default), expression, data_type, table_identifier, function_identifier, multipart_identifier, column_schema or script
	Output    *string  // expected canonical form; default: only round trip is checked
	Error     *string  // expected error message
	ErrorKind string   `yaml:"error_kind"`
	Line      int      // expected error line, checked when non-zero
	Column    int      // expected error column, checked when non-zero
	Tables    []string // expected TableNames, dot-joined
	Options   struct { // parser options for the test
		ANSI                           bool `yaml:"ansi"`
		LegacySetOpsPrecedence         bool `yaml:"legacy_set_ops_precedence"`
		LegacyExponentLiteralAsDecimal bool `yaml:"legacy_exponent_literal_as_decimal"`
		DoubleQuotedIdentifiers        bool `yaml:"double_quoted_identifiers"`
	} `yaml:"options"`
}

func init() {
	util.InitSlog()

	// Keep test output clean unless LOG_LEVEL asks for more.
	if os.Getenv("LOG_LEVEL") == "" {
		opts := &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}
		handler := slog.NewTextHandler(os.Stderr, opts)
		slog.SetDefault(slog.New(handler))
	}
}

// ReadTests reads every file matching pattern. Test names must be unique
// across files.
func ReadTests(pattern string) (map[string]TestCase, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no test files match %s", pattern)
	}

	ret := map[string]TestCase{}
	// Track which file each test case came from for better error messages
	testFileMap := map[string]string{}

	for _, file := range files {
		var tests map[string]*TestCase

		buf, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		dec := yaml.NewDecoder(bytes.NewReader(buf), yaml.DisallowUnknownField())
		err = dec.Decode(&tests)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		for name, test := range tests {
			if test == nil {
				return nil, fmt.Errorf("%s: test case '%s' is empty", file, name)
			}
			if test.Output != nil && test.Error != nil {
				return nil, fmt.Errorf("%s: test case '%s': 'output' and 'error' are mutually exclusive", file, name)
			}
			if test.Error == nil && (test.ErrorKind != "" || test.Line != 0 || test.Column != 0) {
				return nil, fmt.Errorf("%s: test case '%s': 'error_kind', 'line' and 'column' require 'error'", file, name)
			}
			if existingFile, ok := testFileMap[name]; ok {
				return nil, fmt.Errorf("duplicate test case name '%s': defined in both '%s' and '%s'", name, existingFile, file)
			}
			testFileMap[name] = file
			ret[name] = *test
		}
	}

	return ret, nil
}

func MustExecute(t *testing.T, command string, args ...string) string {
	t.Helper()
	out, err := Execute(command, args...)
	if err != nil {
		t.Fatalf("failed to execute '%s %s' (error: '%s'): `%s`", command, strings.Join(args, " "), err, out)
	}
	return out
}

// MustExecuteNoTest executes a command and terminates the program if it errors.
// Use this in TestMain or other setup code where *testing.T is not available.
func MustExecuteNoTest(command string, args ...string) string {
	out, err := Execute(command, args...)
	if err != nil {
		log.Fatalf("failed to execute '%s %s' (error: '%s'): `%s`", command, strings.Join(args, " "), err, out)
	}
	return out
}

// BuildForTest builds the current package, adding -cover flag if GOCOVERDIR is set.
// Use this in TestMain to build binaries that support coverage collection.
func BuildForTest() {
	args := []string{"build"}
	if os.Getenv("GOCOVERDIR") != "" {
		args = append(args, "-cover")
	}
	MustExecuteNoTest("go", args...)
}

func Execute(command string, args ...string) (string, error) {
	cmd := exec.Command(command, args...)
	out, err := cmd.CombinedOutput()
	return strings.ReplaceAll(string(out), "\r\n", "\n"), err
}

func WriteFile(path string, content string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if _, err := file.Write(([]byte)(content)); err != nil {
		log.Fatal(err)
	}
}

func StripHeredoc(heredoc string) string {
	heredoc = strings.TrimPrefix(heredoc, "\n")
	return stripHeredocRegex.ReplaceAllLiteralString(heredoc, "")
}
