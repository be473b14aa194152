package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/tike/internal/app"
	"github.com/vk/tike/internal/cli"
)

func main() {
	// Anything that escapes run as a panic is unanticipated; report it and
	// exit non-zero instead of dumping a stack trace at the user.
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				fmt.Fprintf(os.Stderr, "Unhandled exception: %v\n", err)
			} else {
				fmt.Fprintln(os.Stderr, "Unknown error occurred")
			}
			os.Exit(1)
		}
	}()

	if err := run(os.Stdout, os.Stderr, os.Args); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling: parse the argument vector, serve help/version, then open the
// database and dispatch the selected command.
func run(outW, logW io.Writer, argv []string) error {
	parser, shouldExit, err := cli.Parse(argv, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	dbPath, err := app.DefaultDBPath()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	cfg, err := app.NewConfig(app.Config{DBPath: dbPath})
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := app.New(ctx, outW, logW, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx, parser)
}
