package stylesheet

// pre-built elements for consistent visuals across actions

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// NewTI creates a textinput with common attributes.
func NewTI(defVal string, optional bool) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = 20
	ti.Blur()
	ti.SetValue(defVal)
	ti.KeyMap.WordForward.SetKeys("ctrl+right", "alt+right", "alt+f")
	ti.KeyMap.WordBackward.SetKeys("ctrl+left", "alt+left", "alt+b")
	if optional {
		ti.Placeholder = "(optional)"
	}
	return ti
}

// Table returns a stylized table ready to accept headers and rows.
func Table() *table.Table {
	tbl := table.New().
		Border(Sheet.Table.BorderType).
		BorderStyle(Sheet.Table.BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == 0:
				return Sheet.Table.HeaderCells
			case row%2 == 0:
				return Sheet.Table.EvenCells
			default:
				return Sheet.Table.OddCells
			}
		}).BorderRow(true)

	return tbl
}
