package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/tike/internal/argparse"
)

const (
	programName        = "tike"
	programDescription = "TimeKeeper"

	versionName   = "Ymir"
	versionNumber = "1.0.0"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewParser builds the tike argument registry. The help flag is
// auto-registered by argparse.New before any of these.
func NewParser() *argparse.Parser {
	p := argparse.New(programName, programDescription)
	p.AddArg(argparse.Arg{Name: "add", Short: "a", Kind: argparse.Flag, Description: "Add a new task"})
	p.AddArg(argparse.Arg{Name: "complete", Short: "c", Kind: argparse.Int, Description: "Mark a task as completed by id"})
	p.AddArg(argparse.Arg{Name: "description", Short: "d", Kind: argparse.String, Description: "Description of the task"})
	p.AddArg(argparse.Arg{Name: "list", Short: "l", Kind: argparse.Int, Description: "List a task by id"})
	p.AddArg(argparse.Arg{Name: "list-all", Short: "L", Kind: argparse.Flag, Description: "List all tasks"})
	p.AddArg(argparse.Arg{Name: "list-all-completed", Kind: argparse.Flag, Description: "List all completed tasks"})
	p.AddArg(argparse.Arg{Name: "list-completed", Kind: argparse.Int, Description: "List a completed task by id"})
	p.AddArg(argparse.Arg{Name: "remove", Short: "r", Kind: argparse.Int, Description: "Remove a task by id"})
	p.AddArg(argparse.Arg{Name: "title", Short: "t", Kind: argparse.String, Description: "Title of the task"})
	p.AddArg(argparse.Arg{Name: "version", Short: "v", Kind: argparse.Flag, Description: "Prints the version number"})
	return p
}

// Parse processes the raw argument vector (argv[0] is the program name). It
// returns the populated parser for the command layer to query, a boolean
// indicating the program should exit cleanly (help or version was served to
// output), or an ExitError carrying exit code 1 on a parse failure.
func Parse(argv []string, output io.Writer) (*argparse.Parser, bool, error) {
	parser := NewParser()

	if err := parser.Parse(argv); err != nil {
		slog.Debug("argument parsing failed", "error", err)
		return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("Error: %v", err)}
	}

	if parser.HasValue("help") {
		fmt.Fprint(output, parser.RenderHelp())
		return nil, true, nil
	}
	if parser.HasValue("version") {
		fmt.Fprintf(output, "TimeKeeper version %s (%s)\n", versionName, versionNumber)
		return nil, true, nil
	}

	return parser, false, nil
}
