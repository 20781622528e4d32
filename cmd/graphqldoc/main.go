// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

// graphqldoc generates per-entity markdown pages from GraphQL SDL.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/woozymasta/graphqldoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/graphqldoc"
	_buildTime string
)

// cliOptions describes graphqldoc CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Template templateCommand `command:"template" description:"Print built-in document template"`
	Generate generateCommand `command:"generate" description:"Generate markdown pages from GraphQL schema"`
}

// renderFlags groups document rendering flags; empty values keep config file settings.
type renderFlags struct {
	BasePath         string   `short:"b" long:"base" description:"Base path of generated links (default: /)"`
	Deprecated       string   `short:"d" long:"deprecated" description:"Deprecated entities policy" choice:"default" choice:"group" choice:"skip"`
	Example          string   `long:"example" description:"Add sample requests to operation pages" choice:"required" choice:"all"`
	GroupByDirective string   `short:"g" long:"group-by-directive" description:"Group entities by directive argument, for example @doc(category|=Common)"`
	SkipDirectives   []string `long:"skip" description:"Skip entities with directive (repeatable)"`
	OnlyDirectives   []string `long:"only" description:"Keep only entities with directive (repeatable)"`
	TagDirectives    []string `long:"tag" description:"Render applied directive as badge (repeatable, * for all)"`
	TemplatePath     string   `short:"f" long:"template-file" description:"Path to custom document template (.gotmpl)"`
	Workers          int      `short:"j" long:"workers" description:"Parallel render workers (default: GOMAXPROCS)"`
	NoParentPrefix   bool     `long:"no-parent-prefix" description:"Hide parent type prefix of fields and arguments"`
	NoRelations      bool     `long:"no-relations" description:"Hide relations section"`
	NoBadges         bool     `long:"no-badges" description:"Hide badges"`
	NoCode           bool     `long:"no-code" description:"Hide declaration code block"`
	Fingerprint      bool     `long:"fingerprint" description:"Add content fingerprint to front matter"`
}

// generateCommand renders every entity of a schema.
type generateCommand struct {
	runner *cliRunner
	Args   struct {
		Schemas []string `positional-arg-name:"schema" description:"GraphQL SDL files (stdin when omitted)"`
	} `positional-args:"yes"`

	Output  string `short:"o" long:"output" description:"Output directory (stdout when omitted)"`
	Config  string `short:"c" long:"config" description:"YAML config file"`
	Ext     string `short:"e" long:"ext" description:"Page file extension (default: md)"`
	Verbose bool   `short:"v" long:"verbose" description:"Verbose logging to stderr"`

	RenderFlags renderFlags `group:"Render"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command)
}

// templateCommand exports built-in document template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "graphqldoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate loads schema and config, renders every entity and writes pages.
func (runner *cliRunner) runGenerate(command *generateCommand) error {
	cfg := defaultConfig()
	if command.Config != "" {
		loaded, err := loadConfig(command.Config)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	cfg.applyFlags(command)

	logger := newLogger(runner.stderr, command.Verbose)
	defer func() {
		_ = logger.Sync()
	}()

	schema, err := runner.loadSchema(command.Args.Schemas)
	if err != nil {
		return err
	}

	opt, err := cfg.renderOptions()
	if err != nil {
		return err
	}

	opt.Logger = logger
	renderer, err := graphqldoc.New(schema, opt)
	if err != nil {
		return fmt.Errorf("configure renderer: %w", err)
	}

	docs, renderErr := renderer.RenderAll(context.Background())

	if strings.TrimSpace(cfg.Output) == "" {
		for _, doc := range docs {
			if _, err := io.WriteString(runner.stdout, doc.Content()); err != nil {
				return fmt.Errorf("write markdown to stdout: %w", err)
			}
		}
	} else {
		written, err := writeDocuments(cfg.Output, cfg.Ext, docs)
		if err != nil {
			return err
		}

		logger.Info("generated documentation", zap.String("output", cfg.Output), zap.Int("pages", len(written)))
	}

	if renderErr != nil {
		return fmt.Errorf("render documents: %w", renderErr)
	}

	return nil
}

// loadSchema reads SDL from files or stdin.
func (runner *cliRunner) loadSchema(paths []string) (*graphqldoc.Schema, error) {
	if len(paths) > 0 {
		return graphqldoc.LoadSchemaFiles(paths...)
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read schema from stdin: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.New("read schema from stdin: empty input")
	}

	return graphqldoc.LoadSchema(&ast.Source{Name: "(stdin)", Input: string(data)})
}

// runTemplate writes the built-in template to stdout or file.
func (runner *cliRunner) runTemplate(outputPath string) error {
	tpl, err := graphqldoc.BuiltinTemplate()
	if err != nil {
		return fmt.Errorf("load built-in template: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, tpl); err != nil {
			return fmt.Errorf("write template to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(tpl), 0o600); err != nil {
		return fmt.Errorf("write template file %q: %w", outputPath, err)
	}

	return nil
}

// newLogger builds a console logger on stderr; verbose enables debug level.
func newLogger(output io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:       "L",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(output), level))
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Template.runner = runner
	options.Version.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in document template text.
Use it as a starting point for a custom template file.

Examples:
> $ %s template > document.gotmpl
`, programName)),
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate one markdown page per type, operation and directive.
Reads SDL from file arguments or stdin; writes pages under output directory
as <category>/<slug>.md, or concatenated to stdout without --output.

Examples:
> $ %s generate -o docs/api schema.graphql
> $ %s generate -d group -g '@doc(category|=Common)' -o docs/api schema/*.graphql
> $ cat schema.graphql | %s generate --no-code
`, programName, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, runner.programName, Version, Commit, BuildTime)
}
