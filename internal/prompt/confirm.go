package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a yes/no question defaulting to no.
type confirmModel struct {
	question  string
	answer    bool
	done      bool
	cancelled bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(inputClosedMsg); ok {
		m.cancelled = true
		return m, tea.Quit
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer, m.done = true, true
		return m, tea.Quit
	case "n", "N", "enter":
		m.answer, m.done = false, true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.cancelled {
		return m.question + "\n"
	}
	if m.done {
		answer := "No"
		if m.answer {
			answer = "Yes"
		}
		return m.question + " " + answer + "\n"
	}
	return m.question + " (y/N) "
}
