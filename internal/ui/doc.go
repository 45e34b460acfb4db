// Package ui prints user-facing messages: the display list, warnings, errors
// and the final confirmation. Styling uses lipgloss and degrades to plain text
// when the writer is not a terminal or NO_COLOR is set.
package ui
