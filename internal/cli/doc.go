// Package cli owns the tike option set and process-level concerns: it
// registers the application's arguments on an argparse.Parser, runs the
// parse, serves the help and version requests, and translates failures
// into exit codes for main.
package cli
