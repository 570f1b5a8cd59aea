package scaffoldlist

import (
	"github.com/Copysiter/O3GO-WA/client/tablequery"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// The Options struct allows developers to tweak parameters of an action's specific implementation.
type Options struct {
	// Overrides the default "list" action name.
	Use string
	// Other names for this action.
	Aliases []string
	// AddtlFlags defines a function that generates a fresh flagset to be bolted on to the default list flagset.
	// NOTE it must be a function returning a fresh struct because FlagSets are shallow copies, even when passed by reference.
	AddtlFlags AddtlFlagFunction
	// Sets the default columns to return if --columns is not specified.
	// If not set, defaults to all exported fields.
	DefaultColumns []string
	// ExcludeColumnsFromDefault inverts DefaultColumns: all exported fields minus the given ones.
	// Mutually exclusive with DefaultColumns.
	ExcludeColumnsFromDefault []string
	// ColumnAliases maps fully-dot-qualified field names -> display names in the output header.
	// Keys must exactly match native column names (from weave.StructFields());
	// unmatched aliases will be unused and native column names are case-sensitive.
	ColumnAliases map[string]string
	// Variants maps wire column names -> their filter variant.
	// It drives --filter/--sort validation; a nil map disables validation.
	Variants map[string]tablequery.Variant
	// Scope fetches a normalized page of rows for the interactive table.
	// If nil, --interactive is unavailable for this action.
	Scope tablequery.FetchFunc
	// ScopeColumns is the ordered list of wire column names shown by the interactive table.
	// Required if Scope is set.
	ScopeColumns []string
	// A free-form function allowing implementations to directly alter properties on the command scaffoldlist creates.
	// Applied after all other options, so changes made here may override prior options (such as Use and Aliases).
	CmdMods func(*cobra.Command)
	// Free-form function called at the start of run to validate the given flags.
	// You can assume that the flags have already been parsed, but that no additional actions have been taken on them.
	ValidateArgs func(*pflag.FlagSet) (invalid string, err error)
}
