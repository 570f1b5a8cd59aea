package stylesheet

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrPrintf is a tea.Printf wrapper that colors the output as an error.
func ErrPrintf(format string, a ...interface{}) tea.Cmd {
	return tea.Printf("%s", ErrStyle(format, a...))
}

// ErrStyle formats and colors the given format string as an error.
func ErrStyle(format string, a ...interface{}) string {
	return Sheet.ErrText.Render(fmt.Sprintf(format, a...))
}

// Pip returns the selection rune if field == selected, otherwise it returns a space.
func Pip(selected, field uint) string {
	if selected == field {
		return Sheet.PrimaryText.Render(string(SelectionPrefix))
	}
	return " "
}

// Checkbox returns a simple checkbox with angled edges.
// If val is true, a check mark will be displayed.
func Checkbox(val bool) string {
	c := ' '
	if val {
		c = '✓'
	}
	return fmt.Sprintf("[%s]", Sheet.SecondaryText.Render(string(c)))
}

// Prompt returns the given field name styled as an input prompt.
func Prompt(field string) string {
	return Sheet.PromptText.Render(field) + Sheet.PromptText.Render(": ")
}
