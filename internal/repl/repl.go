package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/funvibe/monkey/internal/config"
	"github.com/funvibe/monkey/internal/diagnostics"
	"github.com/funvibe/monkey/internal/evaluator"
	"github.com/funvibe/monkey/internal/lexer"
	"github.com/funvibe/monkey/internal/parser"
	"github.com/funvibe/monkey/internal/pipeline"
	"github.com/funvibe/monkey/internal/prettyprinter"
	"github.com/funvibe/monkey/internal/token"
)

const MonkeyFace = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

// ContinuationPrompt is shown while an open block or dangling operator
// waits for more input.
const ContinuationPrompt = ".. "

// Console runs source line by line against one environment, so bindings
// persist for the whole session.
type Console struct {
	out       io.Writer
	settings  *config.Settings
	stages    *pipeline.Pipeline
	evalStage *evaluator.EvaluatorProcessor

	errColor  *color.Color
	infoColor *color.Color
}

// New builds a console writing to out. Trace output, if enabled, goes to
// logger; nil keeps tracing off.
func New(out io.Writer, settings *config.Settings, useColor bool, logger *slog.Logger) *Console {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	eval := evaluator.New()
	eval.Out = out
	if logger != nil {
		eval.Logger = logger
	}
	evalStage := &evaluator.EvaluatorProcessor{Env: evaluator.NewEnvironment(), Evaluator: eval}

	c := &Console{
		out:       out,
		settings:  settings,
		evalStage: evalStage,
		stages:    pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}, evalStage),
		errColor:  color.New(color.FgRed),
		infoColor: color.New(color.FgCyan),
	}
	if useColor {
		c.errColor.EnableColor()
		c.infoColor.EnableColor()
	} else {
		c.errColor.DisableColor()
		c.infoColor.DisableColor()
	}
	return c
}

// Start runs an interactive session until :quit or end of input. Line
// editing and history are used when in is a terminal.
func Start(in io.Reader, out io.Writer, settings *config.Settings, logger *slog.Logger) error {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	c := New(out, settings, settings.UseColor(isTerminal(out)), logger)

	if isTerminal(in) {
		return c.runLiner()
	}
	return c.run(&scannerReader{scanner: bufio.NewScanner(in), out: out})
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Env exposes the session environment.
func (c *Console) Env() *evaluator.Environment {
	return c.evalStage.Env
}

type lineReader interface {
	Prompt(prompt string) (string, error)
}

// scannerReader is the lineReader used when input is not a terminal.
type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (r *scannerReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (c *Console) runLiner() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(c.complete)

	// Restore the terminal if we are killed while evaluating.
	sigc := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigc)
		close(done)
	}()
	go watchSignals(ln, sigc, done)

	if path := c.settings.HistoryFile; path != "" {
		if f, err := os.Open(path); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(path); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	return c.run(&historyReader{State: ln})
}

// watchSignals closes the line editor and exits on the first signal. It
// returns once done is closed.
func watchSignals(ln io.Closer, sigc <-chan os.Signal, done <-chan struct{}) {
	select {
	case <-sigc:
		ln.Close()
		os.Exit(130)
	case <-done:
	}
}

// historyReader records every submitted line in liner's history.
type historyReader struct {
	*liner.State
}

func (r *historyReader) Prompt(prompt string) (string, error) {
	line, err := r.State.Prompt(prompt)
	if err == nil && strings.TrimSpace(line) != "" {
		r.AppendHistory(line)
	}
	return line, err
}

func (c *Console) run(r lineReader) error {
	for {
		src, err := c.readSource(r)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
		if c.Execute(src) {
			return nil
		}
	}
}

// readSource reads lines until they form a complete program: an open
// block or a trailing operator asks for another line. An empty line
// submits whatever was typed so far.
func (c *Console) readSource(r lineReader) (string, error) {
	var b strings.Builder

	for {
		prompt := c.settings.Prompt
		if b.Len() > 0 {
			prompt = ContinuationPrompt
		}
		line, err := r.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, nil
		}
		if b.Len() > 0 && strings.TrimSpace(line) == "" {
			return b.String(), nil
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		p := parser.New(lexer.New(b.String()))
		p.ParseProgram()
		if !p.Incomplete() {
			return b.String(), nil
		}
	}
}

// Execute runs one chunk of input and prints the outcome. It reports
// whether the session should end.
func (c *Console) Execute(src string) (quit bool) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ":") {
		return c.command(trimmed)
	}

	ctx := &pipeline.PipelineContext{SourceCode: src, RunID: uuid.NewString()}
	ctx = c.stages.Run(ctx)

	if errObj, ok := ctx.Result.(*evaluator.Error); ok {
		c.errColor.Fprintln(c.out, errObj.Inspect())
		return false
	}
	if ctx.HasErrors() {
		c.printParserErrors(ctx.Errors)
		return false
	}
	if ctx.Result != nil {
		fmt.Fprintln(c.out, ctx.Result.Inspect())
	}
	return false
}

func (c *Console) command(line string) bool {
	name, rest, _ := strings.Cut(line, " ")
	switch strings.ToLower(name) {
	case config.QuitCommand:
		return true
	case config.EnvCommand:
		env := c.Env()
		for _, n := range env.Names() {
			val, _ := env.Get(n)
			fmt.Fprintf(c.out, "%s = %s\n", c.infoColor.Sprint(n), val.Inspect())
		}
	case config.TokensCommand:
		prettyprinter.WriteTokenTable(c.out, lexer.Tokenize(rest))
	default:
		c.errColor.Fprintf(c.out, "unknown command %s. Commands: %s, %s <code>, %s\n",
			name, config.EnvCommand, config.TokensCommand, config.QuitCommand)
	}
	return false
}

func (c *Console) printParserErrors(errs []*diagnostics.DiagnosticError) {
	fmt.Fprint(c.out, MonkeyFace)
	fmt.Fprintln(c.out, "Woops! We ran into some monkey business here!")
	fmt.Fprintln(c.out, " parser errors:")
	for _, e := range errs {
		c.errColor.Fprintf(c.out, "\t%s\n", e.Message)
	}
}

// complete offers keywords, builtins and session bindings for the word
// under the cursor.
func (c *Console) complete(line string) []string {
	start := strings.LastIndexFunc(line, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	}) + 1
	prefix := line[start:]
	if prefix == "" {
		return nil
	}

	seen := map[string]bool{}
	var candidates []string
	add := func(word string) {
		if !seen[word] && strings.HasPrefix(word, prefix) {
			seen[word] = true
			candidates = append(candidates, line[:start]+word)
		}
	}

	for _, kw := range token.Keywords() {
		add(kw)
	}
	for name := range evaluator.Builtins {
		add(name)
	}
	for _, name := range c.Env().Names() {
		add(name)
	}
	sort.Strings(candidates)
	return candidates
}
