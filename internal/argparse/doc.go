// Package argparse implements the declarative command-line option
// mini-framework used by tike. Callers register named option definitions
// (long name, optional short alias, flag vs. valued, description, required)
// on a Parser, hand it the raw process argument vector, and then query the
// parsed values by canonical name. The package also renders the help page
// from the registered definitions.
package argparse
