package scaffoldedit

import (
	"github.com/charmbracelet/bubbles/textinput"

	ft "github.com/Copysiter/O3GO-WA/stylesheet/flagtext"
)

// Config is the full set of configuration available to and required from the implementor.
type Config = map[string]*Field

// A Field represents a single, user-editable field within the struct.
// Field structs contain all data required for the field to be editable as well
// as optional parameters for tweaking its appearance or usability.
type Field struct {
	Required      bool   // must this field be populated after the edit?
	Title         string // field name displayed next to the prompt and as the flag name
	Usage         string // OPTIONAL. Flag usage displayed via -h
	FlagName      string // OPTIONAL. Defaults to ft.DeriveFlagName(Title).
	FlagShorthand rune   // OPTIONAL. '-x' form of FlagName.
	Order         int    // OPTIONAL. Top-Down (highest to lowest) display order of this field.

	// OPTIONAL.
	// Called once, at prompt start, to generate a TI instead of the stylesheet default.
	CustomTIFuncInit func() textinput.Model
}

// flag returns the flag name for this field, deriving one from the title if
// the implementor did not set one explicitly.
func (f *Field) flag() string {
	if f.FlagName != "" {
		return f.FlagName
	}
	return ft.DeriveFlagName(f.Title)
}
