package argparse

import "fmt"

// ErrorKind classifies every way a parse or lookup can fail. Each failure
// aborts immediately; there is no accumulation of multiple errors per pass.
type ErrorKind int

const (
	// UnknownArgument: a dash-prefixed token matched no registered long
	// name or short alias.
	UnknownArgument ErrorKind = iota
	// MissingValue: a valued option was matched but the token stream ended
	// before its value.
	MissingValue
	// MissingRequiredArgument: after all tokens were consumed, a required
	// definition was never assigned a value.
	MissingRequiredArgument
	// UnexpectedPositional: a token without a leading dash was encountered.
	UnexpectedPositional
	// MalformedDashToken: a bare "--" or a bare "-" token.
	MalformedDashToken
	// NotFound: a strict registry lookup named a definition that does not
	// exist.
	NotFound
)

// Error is the typed failure returned by Parse and ArgByName. Token holds
// whatever identifies the offending input: the raw token for unknown or
// positional arguments, the option name for missing values and missing
// required arguments.
type Error struct {
	Kind  ErrorKind
	Token string
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownArgument:
		return fmt.Sprintf("unknown argument: %s", e.Token)
	case MissingValue:
		return fmt.Sprintf("missing value for argument: %s", e.Token)
	case MissingRequiredArgument:
		return fmt.Sprintf("missing required argument: %s", e.Token)
	case UnexpectedPositional:
		return fmt.Sprintf("unexpected positional argument: %s", e.Token)
	case MalformedDashToken:
		return fmt.Sprintf("unexpected `%s` without argument", e.Token)
	case NotFound:
		return fmt.Sprintf("argument not found with name: %s", e.Token)
	}
	return fmt.Sprintf("argparse: unclassified error on %q", e.Token)
}
