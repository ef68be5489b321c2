package main

import (
	"fmt"
	"os"
	"os/user"

	"gopkg.in/urfave/cli.v1"
)

const banner = "Hello %s! This is the Monkey programming language!\nFeel free to type in commands\n"

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to monkey.yaml (default: searched upwards from the working directory)",
	}
	traceFlag = cli.BoolFlag{
		Name:  "trace",
		Usage: "log calls and runtime errors to stderr",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colored output",
	}

	replCommand = cli.Command{
		Action: startRepl,
		Name:   "repl",
		Usage:  "Start an interactive session",
	}
	runCommand = cli.Command{
		Action:    runFile,
		Name:      "run",
		Usage:     "Evaluate a source file",
		ArgsUsage: "<file.mk>",
	}
	tokensCommand = cli.Command{
		Action:    dumpTokens,
		Name:      "tokens",
		Usage:     "Print the tokens of a source file as a table",
		ArgsUsage: "<file.mk>",
	}
	astCommand = cli.Command{
		Action:    dumpAST,
		Name:      "ast",
		Usage:     "Print the syntax tree of a source file",
		ArgsUsage: "<file.mk>",
	}
	fmtCommand = cli.Command{
		Action:    formatFile,
		Name:      "fmt",
		Usage:     "Print a source file in canonical layout",
		ArgsUsage: "<file.mk>",
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "monkey"
	app.Usage = "the Monkey programming language"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{configFlag, traceFlag, noColorFlag}
	app.Commands = []cli.Command{replCommand, runCommand, tokensCommand, astCommand, fmtCommand}
	app.Action = startRepl
	return app
}

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func userName() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "there"
	}
	return u.Username
}
