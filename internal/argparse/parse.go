package argparse

import (
	"log/slog"
	"strings"
)

// flagSentinel is the value assigned to flag options when they are present.
const flagSentinel = "true"

// Parse matches the raw argument vector against the registered definitions.
// argv[0] is conventionally the program name and is skipped. Values from a
// previous parse are discarded first, so re-parsing the same Parser
// overwrites rather than accumulates. The first failure aborts the whole
// parse and the values held by the Parser are then undefined to callers.
func (p *Parser) Parse(argv []string) error {
	p.values = make(map[string]string, len(p.args))

	var tokens []string
	if len(argv) > 1 {
		tokens = argv[1:]
	}
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if !strings.HasPrefix(token, "-") {
			return &Error{Kind: UnexpectedPositional, Token: token}
		}
		// A lone "--" or "-" names nothing; there is no end-of-options
		// marker in this grammar.
		if token == "--" || token == "-" {
			return &Error{Kind: MalformedDashToken, Token: token}
		}

		var consumed int
		var err error
		if rest, ok := strings.CutPrefix(token, "--"); ok {
			consumed, err = p.match(rest, matchLong, tokens[i+1:])
		} else {
			consumed, err = p.match(token[1:], matchShort, tokens[i+1:])
		}
		if err != nil {
			if e, ok := err.(*Error); ok && e.Kind == NotFound {
				return &Error{Kind: UnknownArgument, Token: token}
			}
			return err
		}
		i += consumed
	}

	// Required options must have been assigned by now.
	for _, a := range p.args {
		if a.Required {
			if _, ok := p.values[a.Name]; !ok {
				return &Error{Kind: MissingRequiredArgument, Token: "--" + a.Name}
			}
		}
	}

	slog.Debug("argument vector parsed", "program", p.program, "set", len(p.values))
	return nil
}

type matchMode int

const (
	matchLong matchMode = iota
	matchShort
)

// match finds the first definition, in registration order, whose long name
// or short alias equals name, and assigns its value: the sentinel for
// flags, the next pending token for valued options. It returns how many
// pending tokens it consumed.
func (p *Parser) match(name string, mode matchMode, pending []string) (int, error) {
	for _, a := range p.args {
		switch mode {
		case matchLong:
			if a.Name != name {
				continue
			}
		case matchShort:
			// Whole-remainder comparison: "-ab" matches only an alias that
			// is literally "ab", never the flags "a" and "b" bundled.
			if a.Short == "" || a.Short != name {
				continue
			}
		}

		if !a.Kind.takesValue() {
			p.values[a.Name] = flagSentinel
			return 0, nil
		}
		if len(pending) == 0 {
			return 0, &Error{Kind: MissingValue, Token: dashed(mode, name)}
		}
		p.values[a.Name] = pending[0]
		return 1, nil
	}
	return 0, &Error{Kind: NotFound, Token: dashed(mode, name)}
}

func dashed(mode matchMode, name string) string {
	if mode == matchLong {
		return "--" + name
	}
	return "-" + name
}
