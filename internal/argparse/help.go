package argparse

import (
	"fmt"
	"sort"
	"strings"
)

// gap is the fixed spacing between the option column and the description.
const gap = 6

// RenderHelp renders the help page from the registered definitions. It is a
// pure function of the registry: parsed values are irrelevant. Rows are
// sorted lexicographically ascending by canonical name regardless of
// registration order, and the option column is padded so descriptions line
// up whether or not a row has a short alias.
func (p *Parser) RenderHelp() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Usage: %s [OPTIONS]\n\n", p.program)
	if p.description != "" {
		fmt.Fprintf(&b, "%s\n\n", p.description)
	}
	b.WriteString("Options:\n")

	sorted := make([]Arg, len(p.args))
	copy(sorted, p.args)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	width := 0
	for _, a := range sorted {
		if n := len(optionColumn(a)); n > width {
			width = n
		}
	}

	for _, a := range sorted {
		fmt.Fprintf(&b, "%-*s%s\n", width+gap, optionColumn(a), a.Description)
	}
	return b.String()
}

// optionColumn renders "-x, --name", or blank padding in place of the short
// alias so long names stay vertically aligned.
func optionColumn(a Arg) string {
	if a.Short != "" {
		return fmt.Sprintf("-%s, --%s", a.Short, a.Name)
	}
	return fmt.Sprintf("    --%s", a.Name)
}
