package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// textModel asks for a non-empty line of text.
type textModel struct {
	question  string
	minLength int
	input     textinput.Model
	invalid   string
	done      bool
	cancelled bool
}

func newTextModel(question string, minLength int) textModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return textModel{question: question, minLength: minLength, input: ti}
}

func (m textModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m textModel) Init() tea.Cmd { return textinput.Blink }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(inputClosedMsg); ok {
		m.cancelled = true
		return m, tea.Quit
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if len([]rune(m.Value())) < m.minLength {
				m.invalid = minLengthMessage(m.minLength)
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.invalid = ""
	}
	return m, cmd
}

func (m textModel) View() string {
	if m.done || m.cancelled {
		return m.question + " " + m.Value() + "\n"
	}
	var b strings.Builder
	b.WriteString(m.question)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.invalid != "" {
		b.WriteString("\n")
		b.WriteString(m.invalid)
	}
	b.WriteString("\n")
	return b.String()
}

func minLengthMessage(n int) string {
	if n == 1 {
		return "Minimum of 1 character"
	}
	return fmt.Sprintf("Minimum of %d characters", n)
}
