package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"

	"github.com/funvibe/monkey/internal/config"
	"github.com/funvibe/monkey/internal/evaluator"
	"github.com/funvibe/monkey/internal/lexer"
	"github.com/funvibe/monkey/internal/parser"
	"github.com/funvibe/monkey/internal/pipeline"
	"github.com/funvibe/monkey/internal/prettyprinter"
	"github.com/funvibe/monkey/internal/repl"
)

// loadSettings resolves monkey.yaml (explicit --config first, then a search
// from the working directory) and applies the global flags on top.
func loadSettings(c *cli.Context) (*config.Settings, error) {
	path := c.GlobalString(configFlag.Name)
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = config.FindSettings(wd); err != nil {
			return nil, err
		}
	}

	settings := config.DefaultSettings()
	if path != "" {
		var err error
		if settings, err = config.LoadSettings(path); err != nil {
			return nil, err
		}
	}

	if c.GlobalBool(noColorFlag.Name) {
		settings.Color = config.ColorNever
	}
	if c.GlobalBool(traceFlag.Name) {
		settings.Trace = true
	}
	return settings, nil
}

func traceLogger(settings *config.Settings, w io.Writer) *slog.Logger {
	if !settings.Trace {
		return nil
	}
	return evaluator.NewTraceLogger(w)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func fileArg(c *cli.Context) (path, src string, err error) {
	path = c.Args().First()
	if path == "" {
		return "", "", cli.NewExitError(fmt.Sprintf("usage: monkey %s <file%s>", c.Command.Name, config.SourceFileExt), 2)
	}
	if !isSourceFile(path) {
		return "", "", fmt.Errorf("%s: not a source file (expected %s)", path, strings.Join(config.SourceFileExtensions, ", "))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return path, string(data), nil
}

func startRepl(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	fmt.Printf(banner, userName())
	return repl.Start(os.Stdin, os.Stdout, settings, traceLogger(settings, os.Stderr))
}

func runFile(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	path, src, err := fileArg(c)
	if err != nil {
		return err
	}

	errColor := color.New(color.FgRed)
	if settings.UseColor(isTerminal(os.Stderr)) {
		errColor.EnableColor()
	} else {
		errColor.DisableColor()
	}

	if code := runSource(os.Stdout, os.Stderr, errColor, path, src, traceLogger(settings, os.Stderr)); code != 0 {
		return cli.NewExitError("", code)
	}
	return nil
}

// runSource evaluates src as one program. Output of puts goes to out,
// diagnostics to errOut. The return value is the process exit code.
func runSource(out, errOut io.Writer, errColor *color.Color, path, src string, logger *slog.Logger) int {
	eval := evaluator.New()
	eval.Out = out
	if logger != nil {
		eval.Logger = logger
	}

	stages := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&evaluator.EvaluatorProcessor{Evaluator: eval},
	)
	ctx := stages.Run(&pipeline.PipelineContext{
		SourceCode: src,
		FilePath:   path,
		RunID:      uuid.NewString(),
	})

	if !ctx.HasErrors() {
		return 0
	}
	for _, d := range ctx.Errors {
		errColor.Fprintln(errOut, d.Error())
	}
	return 1
}

func dumpTokens(c *cli.Context) error {
	_, src, err := fileArg(c)
	if err != nil {
		return err
	}
	prettyprinter.WriteTokenTable(os.Stdout, lexer.Tokenize(src))
	return nil
}

func dumpAST(c *cli.Context) error {
	_, src, err := fileArg(c)
	if err != nil {
		return err
	}
	out, err := treeOf(src)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func treeOf(src string) (string, error) {
	program, err := parser.Parse(src)
	if err != nil {
		return "", err
	}
	tp := prettyprinter.NewTreePrinter()
	program.Accept(tp)
	return tp.String(), nil
}

func formatFile(c *cli.Context) error {
	_, src, err := fileArg(c)
	if err != nil {
		return err
	}
	program, err := parser.Parse(src)
	if err != nil {
		return err
	}
	fmt.Print(prettyprinter.Format(program))
	return nil
}
