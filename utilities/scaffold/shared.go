// Package scaffold contains packages for generating new actions from skeletons.
// See scaffoldlist, scaffolddelete, etc for more information.
// The bare scaffold package provides functionality shared across multiple scaffolds.
// Typically, this means functionality for edit and create.
package scaffold

import (
	"github.com/Copysiter/O3GO-WA/stylesheet"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// A KeyedTI is a tuple for associating a TI with its field key and whether or not it is required.
type KeyedTI struct {
	Key        string          // key to look up the related field in a config map (if applicable)
	FieldTitle string          // text to display to the left of the TI
	TI         textinput.Model // ti for user modifications
	Required   bool            // this TI must have data in it
}

// ViewKTIs renders the given TIs as a two-column form: field titles on the left,
// inputs on the right, with a pip marking the selection.
func ViewKTIs(fieldWidth uint, ktis []KeyedTI, selectedIdx uint) string {
	var leftAlignerSty = lipgloss.NewStyle().
		Width(int(fieldWidth)).
		AlignHorizontal(lipgloss.Right).
		PaddingRight(1)

	var fields []string
	var TIs []string

	for i, kti := range ktis {
		var sty = stylesheet.Sheet.SecondaryText
		if kti.Required {
			sty = stylesheet.Sheet.PrimaryText
		}
		title := sty.Render(kti.FieldTitle + ":")

		fields = append(fields, leftAlignerSty.Render(stylesheet.Pip(selectedIdx, uint(i))+title))

		TIs = append(TIs, kti.TI.View())
	}

	// compose all fields
	f := lipgloss.JoinVertical(lipgloss.Right, fields...)

	// compose all TIs
	t := lipgloss.JoinVertical(lipgloss.Left, TIs...)

	// conjoin fields and TIs
	return lipgloss.JoinHorizontal(lipgloss.Center, f, t)
}
