package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"wallpaper-aligner/internal/domain"
)

// Printer writes styled messages to a terminal.
type Printer struct {
	out  io.Writer
	warn lipgloss.Style
	fail lipgloss.Style
	ok   lipgloss.Style
	dim  lipgloss.Style
}

// New returns a Printer whose color profile is detected from out.
func New(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:  out,
		warn: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		fail: r.NewStyle().Foreground(lipgloss.Color("9")),
		ok:   r.NewStyle().Foreground(lipgloss.Color("10")),
		dim:  r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Warnf prints a message prefixed with a yellow "!".
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.warn.Render("!"), fmt.Sprintf(format, args...))
}

// Error prints err in red.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out, p.fail.Render("! "+err.Error()))
}

// Success prints msg in green.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.ok.Render(msg))
}

// Highlight renders s in the warning color, for file names inside prompts.
func (p *Printer) Highlight(s string) string {
	return p.warn.UnsetBold().Render(s)
}

// ShowDisplays lists displays one-based with their resolution.
func (p *Printer) ShowDisplays(cfg domain.Configuration) {
	fmt.Fprintf(p.out, "Detected displays (%d total):\n", len(cfg.Displays))
	for i, d := range cfg.Displays {
		w, h := d.Bounds.Resolution()
		fmt.Fprintf(p.out, "%d. %s %s\n", i+1, d.Name, p.dim.Render(fmt.Sprintf("(%dx%d)", w, h)))
	}
}

// CountMismatch explains that the arguments do not match the displays.
func (p *Printer) CountMismatch(e *domain.CountMismatchError) {
	p.Warnf("Detected %s but you provided %s, please check the arguments and try again.",
		Plural("display", e.Displays), Plural("image", e.Sources))
}
