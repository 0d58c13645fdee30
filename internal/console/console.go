// Package console prints the human-readable side of every demo: status lines
// to stdout, error notices to stderr, and section headers between demos.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Console pairs the two output streams a demo writes to.
type Console struct {
	Out io.Writer
	Err io.Writer

	styled  bool
	section lipgloss.Style
	notice  lipgloss.Style
}

// Option configures a Console.
type Option func(*Console)

// WithColor forces styling on or off regardless of terminal detection.
func WithColor(on bool) Option {
	return func(c *Console) { c.styled = on }
}

// New returns a Console writing to out and errOut. Styling is enabled only
// when out is a terminal, unless WithColor decides otherwise.
func New(out, errOut io.Writer, opts ...Option) *Console {
	c := &Console{
		Out:    out,
		Err:    errOut,
		styled: isTerminal(out),
	}
	for _, opt := range opts {
		opt(c)
	}

	outR, errR := lipgloss.NewRenderer(out), lipgloss.NewRenderer(errOut)
	if c.styled {
		// renderers detect color support from their writer, which a pipe
		// or buffer reports as none
		outR.SetColorProfile(termenv.ANSI256)
		errR.SetColorProfile(termenv.ANSI256)
	}
	c.section = outR.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	c.notice = errR.NewStyle().Foreground(lipgloss.Color("203"))
	return c
}

// Discard returns a Console that drops everything.
func Discard() *Console {
	return New(io.Discard, io.Discard)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Section prints a demo header.
func (c *Console) Section(title string) {
	line := fmt.Sprintf("━━━ %s ━━━", title)
	if c.styled {
		line = c.section.Render(line)
	}
	fmt.Fprintf(c.Out, "\n%s\n", line)
}

// Println writes a status line to stdout.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.Out, a...)
}

// Printf writes formatted status output to stdout.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.Out, format, a...)
}

// Errorf writes an error notice line to stderr. A trailing newline is added.
func (c *Console) Errorf(format string, a ...any) {
	line := fmt.Sprintf(format, a...)
	if c.styled {
		line = c.notice.Render(line)
	}
	fmt.Fprintln(c.Err, line)
}
