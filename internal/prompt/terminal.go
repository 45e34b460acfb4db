package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"wallpaper-aligner/internal/domain"
)

// Terminal prompts on an interactive terminal.
type Terminal struct {
	in        io.Reader
	out       io.Writer
	highlight func(string) string
}

// NewTerminal returns a Terminal reading keys from in and drawing to out.
// highlight styles the file name inside the overwrite question; nil leaves
// it plain.
func NewTerminal(in io.Reader, out io.Writer, highlight func(string) string) *Terminal {
	if highlight == nil {
		highlight = func(s string) string { return s }
	}
	return &Terminal{in: in, out: out, highlight: highlight}
}

// ConfirmOverwrite asks whether path may be replaced.
func (t *Terminal) ConfirmOverwrite(path string) (bool, error) {
	q := fmt.Sprintf("Output file '%s' already exists. Overwrite?", t.highlight(path))
	final, err := t.run(newConfirmModel(q))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.cancelled {
		return false, domain.ErrPromptCancelled
	}
	return m.answer, nil
}

// AskFilename asks for a new output name.
func (t *Terminal) AskFilename() (string, error) {
	final, err := t.run(newTextModel("Please, enter new name for the output wallpaper:", 1))
	if err != nil {
		return "", err
	}
	m := final.(textModel)
	if m.cancelled {
		return "", domain.ErrPromptCancelled
	}
	return m.Value(), nil
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	if isTerminal(t.in) {
		return t.start(tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out)))
	}
	// Piped or closed input: answer the prompt as cancelled once it runs dry.
	in := &eofReader{r: t.in}
	p := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(t.out))
	in.onEOF = func() { p.Send(inputClosedMsg{}) }
	return t.start(p)
}

func (t *Terminal) start(p *tea.Program) (tea.Model, error) {
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

// inputClosedMsg tells a model that no more keys will arrive.
type inputClosedMsg struct{}

// eofReader calls onEOF the first time r reports io.EOF.
type eofReader struct {
	r     io.Reader
	onEOF func()
	once  sync.Once
}

func (e *eofReader) Read(b []byte) (int, error) {
	n, err := e.r.Read(b)
	if errors.Is(err, io.EOF) && e.onEOF != nil {
		e.once.Do(e.onEOF)
	}
	return n, err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var _ domain.Prompter = (*Terminal)(nil)
