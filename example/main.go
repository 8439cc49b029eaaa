package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	cmdline "github.com/bibmaster/command-line-parser"
	"github.com/bibmaster/command-line-parser/validator/govalidator"
)

// main is the entrypoint for the demo application.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	os.Exit(run(os.Stdout, os.Stderr, os.Args))
}

// run encapsulates the application logic for easier testing and exit code
// handling.
func run(out, errOut io.Writer, args []string) int {
	var (
		printHelp   bool
		compression *int
		files       []string
	)

	parser := cmdline.New()
	parser.AddFlag(&printHelp, "help,h", "print help").
		Add(&compression, "+compression,c,level", "compression level").
		Add(&files, "+,,path", "file path(s)", cmdline.Rest).
		SetValidator(govalidator.New(govalidator.Rules{
			"compression": "oneof=0 1 2 3 4 5 6 7 8 9",
		}))

	if err := parser.Parse(args); err != nil {
		return usageError(errOut, parser)
	}
	if printHelp {
		fmt.Fprintln(out, parser.Help())

		return 0
	}
	if err := parser.CheckRequired(); err != nil {
		return usageError(errOut, parser)
	}

	slog.Debug("command line parsed", "files", len(files), "help", printHelp)

	if compression != nil {
		fmt.Fprintf(out, "compression level is %d\n", *compression)
	}

	return 0
}

// usageError prints the retained parse error in red, followed by usage.
func usageError(errOut io.Writer, parser *cmdline.Parser) int {
	fmt.Fprintln(errOut, color.RedString("%v", parser.Err()))
	fmt.Fprintln(errOut, parser.Help())

	return 1
}
