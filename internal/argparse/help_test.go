package argparse

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHelpSortsByName(t *testing.T) {
	t.Parallel()

	p := NewWithoutHelp("prog", "")
	p.AddArg(Arg{Name: "zeta", Short: "z", Kind: Flag, Description: "Last by name"})
	p.AddArg(Arg{Name: "alpha", Kind: Flag, Description: "First by name"})

	out := p.RenderHelp()
	assert.Less(t, strings.Index(out, "--alpha"), strings.Index(out, "--zeta"),
		"rows must be sorted by canonical name, not registration order")
}

func TestRenderHelpLayout(t *testing.T) {
	t.Parallel()

	p := NewWithoutHelp("tike", "TimeKeeper")
	p.AddArg(Arg{Name: "list-all", Short: "L", Kind: Flag, Description: "List all tasks"})
	p.AddArg(Arg{Name: "add", Short: "a", Kind: Flag, Description: "Add a new task"})
	p.AddArg(Arg{Name: "list-completed", Kind: Int, Description: "List a completed task by id"})

	// Widest option column is "    --list-completed" (20 chars), so every
	// row's description starts at column 26.
	want := "" +
		"Usage: tike [OPTIONS]\n" +
		"\n" +
		"TimeKeeper\n" +
		"\n" +
		"Options:\n" +
		"-a, --add                 Add a new task\n" +
		"-L, --list-all            List all tasks\n" +
		"    --list-completed      List a completed task by id\n"

	if diff := cmp.Diff(want, p.RenderHelp()); diff != "" {
		t.Errorf("rendered help mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHelpOmitsDescriptionBlock(t *testing.T) {
	t.Parallel()

	p := NewWithoutHelp("prog", "")
	p.AddArg(Arg{Name: "x", Kind: Flag, Description: "A flag"})

	out := p.RenderHelp()
	require.True(t, strings.HasPrefix(out, "Usage: prog [OPTIONS]\n\nOptions:\n"),
		"empty program description must not leave a stray blank block:\n%s", out)
}

func TestRenderHelpIgnoresParsedValues(t *testing.T) {
	t.Parallel()

	p := New("prog", "desc")
	p.AddArg(Arg{Name: "add", Short: "a", Kind: Flag, Description: "Add"})

	before := p.RenderHelp()
	require.NoError(t, p.Parse([]string{"prog", "--add"}))
	assert.Equal(t, before, p.RenderHelp(), "help output is a pure function of the definitions")
}
