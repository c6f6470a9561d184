// Package sparksql parses Spark SQL scripts and reports on them.
package sparksql

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/k0kubun/sparksql/config"
	"github.com/k0kubun/sparksql/parser"
	"github.com/k0kubun/sparksql/util"
	"golang.org/x/term"
)

// OutputMode selects what Run prints for the parsed inputs.
type OutputMode string

const (
	// OutputFormat prints every statement in canonical form.
	OutputFormat OutputMode = "format"
	// OutputDump pretty-prints the parse trees.
	OutputDump OutputMode = "dump"
	// OutputTables lists the referenced tables with their statement counts.
	OutputTables OutputMode = "tables"
	// OutputCheck prints nothing; only parse errors are reported.
	OutputCheck OutputMode = "check"
)

type Options struct {
	Files  []string
	Mode   OutputMode
	Config config.Config
	// Color enables colored dumps.
	Color bool
}

// ParsedFile is the result of parsing one input.
type ParsedFile struct {
	Path       string
	Statements []parser.ScriptStatement
}

// Run parses every input file and writes the report selected by
// options.Mode to w. The first parse error aborts the run.
func Run(w io.Writer, options *Options) error {
	p := parser.NewParser(options.Config.ParserOptions())

	files, err := ConcurrentMapFuncWithError(options.Files, options.Config.Concurrency, func(path string) (ParsedFile, error) {
		return ParseFile(p, path)
	})
	if err != nil {
		return err
	}

	switch options.Mode {
	case OutputFormat, "":
		for _, file := range files {
			for _, stmt := range file.Statements {
				fmt.Fprintf(w, "%s;\n", parser.String(stmt.Statement))
			}
		}
	case OutputDump:
		printer := pp.New()
		printer.SetColoringEnabled(options.Color)
		for _, file := range files {
			for _, stmt := range file.Statements {
				fmt.Fprintf(w, "-- %s\n", stmt.SQL)
				printer.Fprintln(w, stmt.Statement)
			}
		}
	case OutputTables:
		counts := map[string]int{}
		for _, file := range files {
			for _, stmt := range file.Statements {
				for _, name := range parser.TableNames(stmt.Statement) {
					counts[parser.String(name)]++
				}
			}
		}
		for name, count := range util.CanonicalMapIter(counts) {
			fmt.Fprintf(w, "%s\t%d\n", name, count)
		}
	case OutputCheck:
	default:
		return fmt.Errorf("unknown output mode %q", options.Mode)
	}
	return nil
}

// ParseFile reads path ("-" for stdin) and parses it as a script.
func ParseFile(p *parser.Parser, path string) (ParsedFile, error) {
	sql, err := ReadFile(path)
	if err != nil {
		return ParsedFile{}, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	stmts, err := p.ParseScript(sql)
	if err != nil {
		return ParsedFile{}, fmt.Errorf("failed to parse '%s': %w", path, err)
	}
	for i, stmt := range stmts {
		slog.Debug("Parsed statement", "file", path, "index", i, "sql", stmt.SQL)
	}
	return ParsedFile{Path: path, Statements: stmts}, nil
}

func ReadFile(filepath string) (string, error) {
	var err error
	var buf []byte

	if filepath == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return "", fmt.Errorf("stdin is not piped")
		}

		buf, err = io.ReadAll(os.Stdin)
	} else {
		buf, err = os.ReadFile(filepath)
	}

	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// OutputModes lists the accepted output modes for help texts.
func OutputModes() string {
	modes := []OutputMode{OutputFormat, OutputDump, OutputTables, OutputCheck}
	return strings.Join(util.TransformSlice(modes, func(m OutputMode) string { return string(m) }), ", ")
}
