package stylesheet

// Colors provides constants used to provide uniform, readable colors to the styles

import "github.com/charmbracelet/lipgloss"

// The primary+accents are based on a triadic scheme with #25d366 at the head,
// expanded via https://coolors.co/.

const (
	PrimaryColor   = lipgloss.Color("#25d366")
	SecondaryColor = lipgloss.Color("#34b7f1")
	TertiaryColor  = lipgloss.Color("#7ae6a3")
	AccentColor1   = lipgloss.Color("#f1c734")
	AccentColor2   = lipgloss.Color("#d3259c")
	ErrorColor     = lipgloss.Color("#f1346e")
	NavColor       = SecondaryColor
	ActionColor    = AccentColor1
	FocusedColor   = PrimaryColor
	UnfocusedColor = SecondaryColor // complimentary elements to the focused element
)

const ( // table colors
	borderColor = PrimaryColor
	row1Color   = SecondaryColor
	row2Color   = TertiaryColor
)
