package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/sparksql"
	"github.com/k0kubun/sparksql/config"
	"github.com/k0kubun/sparksql/util"
	"golang.org/x/term"
)

// version and revision are set via -ldflags
var version = "dev"
var revision = "HEAD"

func parseOptions(args []string) *sparksql.Options {
	// Track parsed config layers in order
	var layers []config.Layer

	var opts struct {
		Mode                    string `long:"mode" description:"Output to produce" choice:"format" choice:"dump" choice:"tables" choice:"check" default:"format"`
		ANSI                    bool   `long:"ansi" description:"Only accept non-reserved keywords as identifiers"`
		LegacySetOpsPrecedence  bool   `long:"legacy-setops-precedence" description:"Evaluate all set operations left to right"`
		LegacyExponentAsDecimal bool   `long:"legacy-exponent-as-decimal" description:"Read exponent literals such as 1E10 as decimals"`
		DoubleQuotedIdentifiers bool   `long:"double-quoted-identifiers" description:"Read \"...\" as an identifier instead of a string"`
		Concurrency             int    `long:"concurrency" description:"Number of files parsed at once (0: sequential, -1: unlimited)" value-name:"num" default:"-1"`
		Color                   string `long:"color" description:"Colorize dumps" choice:"auto" choice:"always" choice:"never" default:"auto"`
		Help                    bool   `long:"help" description:"Show this help"`
		Version                 bool   `long:"version" description:"Show this version"`

		// Custom handlers for config flags to preserve order
		Config       func(string) `long:"config" description:"YAML file to specify: ansi_enabled, legacy_setops_precedence_enabled, legacy_exponent_literal_as_decimal_enabled, double_quoted_identifiers, concurrency (can be specified multiple times)"`
		ConfigInline func(string) `long:"config-inline" description:"YAML object to specify the same keys as --config (can be specified multiple times)"`
	}

	opts.Config = func(path string) {
		layer, err := config.ParseFile(path)
		if err != nil {
			log.Fatal(err)
		}
		layers = append(layers, layer)
	}
	opts.ConfigInline = func(yaml string) {
		layer, err := config.ParseString(yaml)
		if err != nil {
			log.Fatal(err)
		}
		layers = append(layers, layer)
	}

	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[OPTIONS] [file.sql ...] < input.sql"
	args, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}

	if opts.Version {
		fmt.Printf("%s (%s)\n", version, revision)
		os.Exit(0)
	}

	// Command-line switches apply after every config layer.
	enabled := true
	flagLayer := config.Layer{Concurrency: &opts.Concurrency}
	if opts.ANSI {
		flagLayer.ANSI = &enabled
	}
	if opts.LegacySetOpsPrecedence {
		flagLayer.LegacySetOpsPrecedence = &enabled
	}
	if opts.LegacyExponentAsDecimal {
		flagLayer.LegacyExponentLiteralAsDecimal = &enabled
	}
	if opts.DoubleQuotedIdentifiers {
		flagLayer.DoubleQuotedIdentifiers = &enabled
	}
	if !parser.FindOptionByLongName("concurrency").IsSet() {
		flagLayer.Concurrency = nil
	}
	layers = append(layers, flagLayer)

	files := args
	if len(files) == 0 {
		files = []string{"-"}
	}

	color := opts.Color == "always" || (opts.Color == "auto" && term.IsTerminal(int(os.Stdout.Fd())))

	return &sparksql.Options{
		Files:  files,
		Mode:   sparksql.OutputMode(opts.Mode),
		Config: config.Merge(layers...),
		Color:  color,
	}
}

func main() {
	util.InitSlog()
	options := parseOptions(os.Args[1:])

	if err := sparksql.Run(os.Stdout, options); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
