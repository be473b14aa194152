package argparse

// Kind describes how an option consumes tokens. String and Int options both
// consume the token following their name verbatim; the Int tag is a
// documentation hint for callers and is never validated here.
type Kind int

const (
	// Flag options take no value; their presence alone is the signal.
	Flag Kind = iota
	// String options consume the next token as free text.
	String
	// Int options consume the next token; integer semantics are the
	// caller's concern.
	Int
)

// takesValue reports whether an option of this kind consumes the following
// token.
func (k Kind) takesValue() bool { return k != Flag }

// Arg is a single option definition. Definitions are immutable once
// registered; parsed values are kept separately on the Parser so that
// re-parsing never mutates a definition.
type Arg struct {
	// Name is the canonical identifier, matched case-sensitively against
	// "--name" tokens. It must be unique within a Parser; duplicates are a
	// caller error and lookups resolve to whichever registered first.
	Name string
	// Short is the optional short alias, matched against "-x" tokens. The
	// entire post-dash remainder is compared, so a two-character alias is
	// matched by a two-character token; there is no single-character flag
	// bundling. Empty means no short form.
	Short string
	// Kind selects flag or valued consumption.
	Kind Kind
	// Description is shown on the help page.
	Description string
	// Required makes Parse fail if the option was never supplied.
	Required bool
}

// Parser holds the ordered option registry and, after a Parse call, the
// values assigned during that parse. It is process-local mutable state with
// no concurrent-access protection; the intended use is register everything
// at startup, parse once, query.
type Parser struct {
	program     string
	description string
	args        []Arg
	values      map[string]string
}

// New returns a Parser for the named program and auto-registers the
// conventional help flag before any caller-supplied definitions.
func New(program, description string) *Parser {
	p := NewWithoutHelp(program, description)
	p.AddArg(Arg{Name: "help", Short: "h", Kind: Flag, Description: "Show this help page"})
	return p
}

// NewWithoutHelp returns a Parser with no auto-registered help flag, for
// callers that provide their own help handling.
func NewWithoutHelp(program, description string) *Parser {
	return &Parser{
		program:     program,
		description: description,
		values:      map[string]string{},
	}
}

// AddArg appends a definition to the registry. No duplicate-name check is
// performed.
func (p *Parser) AddArg(a Arg) {
	p.args = append(p.args, a)
}

// ArgByName returns the first registered definition whose Name matches
// exactly. It fails with a NotFound error when no such definition exists;
// use HasValue for the lenient "did the user supply this" check.
func (p *Parser) ArgByName(name string) (Arg, error) {
	for _, a := range p.args {
		if a.Name == name {
			return a, nil
		}
	}
	return Arg{}, &Error{Kind: NotFound, Token: "--" + name}
}

// HasValue reports whether a definition with the given name exists and was
// assigned a value by the most recent Parse. Unlike ArgByName it never
// fails: an unregistered name simply reports false.
func (p *Parser) HasValue(name string) bool {
	if _, err := p.ArgByName(name); err != nil {
		return false
	}
	_, ok := p.values[name]
	return ok
}

// Value returns the value assigned to the named option by the most recent
// Parse, and whether one was assigned at all. Flags that were supplied
// report the sentinel "true".
func (p *Parser) Value(name string) (string, bool) {
	v, ok := p.values[name]
	return v, ok
}
