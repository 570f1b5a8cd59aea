// Package stylesheet manages the visual effects of wactl.
// Most styling is via lipgloss and encompasses colors, alignment, borders, etc.
//
// The stylesheet package should also be used for maintaining consistent visuals.
// This is accomplished via the provided pre-built elements and the Sheet variable for pre-set styles.
package stylesheet

import "github.com/charmbracelet/lipgloss"

type sheet struct {
	Nav    lipgloss.Style // style of nav/directory items while traversing the tree
	Action lipgloss.Style // style of actions/invokables while traversing the tree

	// for building multi-pane views
	Composable struct {
		FocusedBorder   lipgloss.Style // stylized border for wrapping elements currently in focus
		UnfocusedBorder lipgloss.Style // stylized border for wrapping elements that could be in focus, but are currently blurred
		ModifierText    lipgloss.Style // modifier field names, typically grouped and wrapped by (Un)FocusedBorder
	}

	// for building tables
	Table struct {
		HeaderCells lipgloss.Style
		EvenCells   lipgloss.Style
		OddCells    lipgloss.Style
		BorderType  lipgloss.Border
		BorderStyle lipgloss.Style
	}

	ErrText      lipgloss.Style // text that displays an error
	ExampleText  lipgloss.Style // text that displays an example
	DisabledText lipgloss.Style // text that is currently disabled

	PromptText lipgloss.Style // text that prefixes an input box, but is not a modifier

	PrimaryText   lipgloss.Style // catchall for important/focal text that does not fit into a different category
	SecondaryText lipgloss.Style // catchall for text that does not fit into a different category and is not primary

	Spinner lipgloss.Style
}

// Sheet is the stylesheet currently in-use by wactl.
// This is what other packages should reference when stylizing their elements.
var Sheet sheet

func init() {
	Sheet = chatGreen()
}

func chatGreen() sheet {
	return sheet{
		Nav:    lipgloss.NewStyle().Foreground(NavColor),
		Action: lipgloss.NewStyle().Foreground(ActionColor),

		Composable: struct {
			FocusedBorder   lipgloss.Style
			UnfocusedBorder lipgloss.Style
			ModifierText    lipgloss.Style
		}{
			FocusedBorder: lipgloss.NewStyle().
				Align(lipgloss.Left, lipgloss.Center).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(FocusedColor),
			UnfocusedBorder: lipgloss.NewStyle().
				Align(lipgloss.Left, lipgloss.Center).
				BorderStyle(lipgloss.HiddenBorder()),
			ModifierText: lipgloss.NewStyle().Foreground(UnfocusedColor),
		},

		Table: struct {
			HeaderCells lipgloss.Style
			EvenCells   lipgloss.Style
			OddCells    lipgloss.Style
			BorderType  lipgloss.Border
			BorderStyle lipgloss.Style
		}{
			HeaderCells: lipgloss.NewStyle().
				Foreground(PrimaryColor).
				AlignHorizontal(lipgloss.Center).
				AlignVertical(lipgloss.Center).Bold(true),
			EvenCells:   lipgloss.NewStyle().Padding(0, 1).Foreground(row1Color),
			OddCells:    lipgloss.NewStyle().Padding(0, 1).Foreground(row2Color),
			BorderType:  lipgloss.NormalBorder(),
			BorderStyle: lipgloss.NewStyle().Foreground(borderColor),
		},

		ErrText:      lipgloss.NewStyle().Foreground(ErrorColor),
		ExampleText:  lipgloss.NewStyle().Foreground(AccentColor1),
		DisabledText: lipgloss.NewStyle().Faint(true),

		PromptText: lipgloss.NewStyle().Foreground(PrimaryColor),

		PrimaryText:   lipgloss.NewStyle().Foreground(PrimaryColor),
		SecondaryText: lipgloss.NewStyle().Foreground(SecondaryColor),

		Spinner: lipgloss.NewStyle().Foreground(PrimaryColor),
	}
}
