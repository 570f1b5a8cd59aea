/*
Package scaffoldlist provides a template for building list actions.

A list action is any action that fetches and prints data, typically in a tabular manner.
This provides a consistent interface and the versatility of multiple formats for actions that list arbitrary data.

List actions have the --skip, --limit, --sort, --filter, --search, --output, --append,
--json, --table, --csv, --columns, and --show-columns default flags.
If a Scope fetcher is defined, --interactive is also available.

Implementations will probably look a lot like:

	type someData struct {
		Name string
		A    int
		B    []string
	}

	func listAction() *cobra.Command {
		const (
			short string = "list all data about X"
			long  string = "List data about X but this has more words."
		)

		return scaffoldlist.NewListAction(short, long, someData{},
			func(fs *pflag.FlagSet, p tablequery.Params) ([]someData, error) {
				return fetchData(p)
			},
			scaffoldlist.Options{})
	}
*/
package scaffoldlist

import (
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/clilog"
	ft "github.com/Copysiter/O3GO-WA/stylesheet/flagtext"
	"github.com/Copysiter/O3GO-WA/tablescope"
	"github.com/Copysiter/O3GO-WA/utilities/querysupport"
	"github.com/Copysiter/O3GO-WA/utilities/treeutils"
	"github.com/Copysiter/O3GO-WA/weave"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

//#region enumeration

type outputFormat uint

const (
	json outputFormat = iota
	csv
	tbl
)

func (f outputFormat) String() string {
	switch f {
	case json:
		return "JSON"
	case csv:
		return "CSV"
	case tbl:
		return "table"
	}
	return fmt.Sprintf("unknown format (%d)", f)
}

//#endregion enumeration

const (
	outFilePerm         os.FileMode = 0644
	exportedColumnsOnly bool        = true // only allow users to query for exported fields as columns
)

// ListDataFunction is a function that retrieves an array of structs of type dataStruct
// matching the given, pre-parsed query.
type ListDataFunction[dataStruct_t any] func(*pflag.FlagSet, tablequery.Params) ([]dataStruct_t, error)

// AddtlFlagFunction (if not nil) bolts additional flags onto this action for later during the data func.
type AddtlFlagFunction func() *pflag.FlagSet

// NewListAction creates and returns a cobra.Command suitable for use as a list action,
// complete with common flags and a generic run function operating off the given dataFunction.
//
// If no output module is given, defaults to --table.
//
// ! `dataFn` should be a static wrapper function for a method that returns an array of structures
// containing the data to be listed.
//
// ! `dataStruct` must be the type of struct returned in array by dataFn.
// Its values do not matter.
//
// ! If Options.Use is not specified, it will default to "list".
//
// Any data massaging required to get the data into an array of structures should be performed in
// the data function. Non-list-standard flags (ex: those passed to AddtlFlags, if not nil) should
// also be handled in the data function.
//
// Go's Generics are a godsend.
func NewListAction[dataStruct_t any](short, long string,
	dataStruct dataStruct_t, dataFn ListDataFunction[dataStruct_t], options Options) *cobra.Command {
	// check for developer errors
	if reflect.TypeOf(dataStruct).Kind() != reflect.Struct {
		panic("dataStruct must be a struct")
	} else if dataFn == nil {
		panic("data function cannot be nil")
	} else if short == "" {
		panic("short description cannot be empty")
	} else if long == "" {
		panic("long description cannot be empty")
	} else if options.Scope != nil && len(options.ScopeColumns) == 0 {
		panic("ScopeColumns is required when Scope is set")
	}

	var use = "list"
	if options.Use != "" {
		use = options.Use
	}

	// cache the struct fields so we do not need to reflect through them again later
	availDSColumns, err := weave.StructFields(dataStruct, exportedColumnsOnly)
	if err != nil {
		panic(fmt.Sprintf("failed to cache available columns: %v", err))
	}

	// validate that all column aliases point to valid columns
	for dqcol := range options.ColumnAliases {
		if !slices.Contains(availDSColumns, dqcol) {
			panic("cannot alias unknown column '" + dqcol + "'")
		}
	}

	// set default columns from DefaultColumns or ExcludeColumnsFromDefault
	if options.DefaultColumns != nil && options.ExcludeColumnsFromDefault != nil {
		panic("DefaultColumns and ExcludeColumnsFromDefault are mutually exclusive")
	} else if options.ExcludeColumnsFromDefault != nil {
		var excludeMap = make(map[string]bool, len(options.ExcludeColumnsFromDefault))
		for _, exCol := range options.ExcludeColumnsFromDefault {
			if !slices.Contains(availDSColumns, exCol) {
				panic("cannot exclude unknown column '" + exCol + "'")
			}
			excludeMap[exCol] = true
		}
		options.DefaultColumns = make([]string, 0, len(availDSColumns)-len(options.ExcludeColumnsFromDefault))
		for i := range availDSColumns {
			if !excludeMap[availDSColumns[i]] {
				options.DefaultColumns = append(options.DefaultColumns, availDSColumns[i])
			}
		}
	} else if options.DefaultColumns != nil {
		if err := validateColumns(options.DefaultColumns, availDSColumns); err != nil {
			panic(err)
		}
	} else {
		options.DefaultColumns = availDSColumns
	}

	cmd := treeutils.NewActionCommand(use, short, long, options.Aliases,
		generateRun(dataFn, options, availDSColumns))
	cmd.Example = fmt.Sprintf("%v %v %v", use,
		ft.MutuallyExclusive([]string{"--" + ft.Name.CSV, "--" + ft.Name.JSON, "--" + ft.Name.Table}),
		ft.Optional("--"+ft.Name.Columns+"=col1,col2,..."))

	cmd.Flags().AddFlagSet(buildFlagSet(options.AddtlFlags, options.Scope != nil))
	cmd.Flags().SortFlags = false // does not seem to be respected
	cmd.MarkFlagsMutuallyExclusive(ft.Name.CSV, ft.Name.JSON, ft.Name.Table)
	// apply command modifiers
	if options.CmdMods != nil {
		options.CmdMods(cmd)
	}

	return cmd
}

// generateRun builds and returns a function to be run when this action is invoked via Cobra.
func generateRun[dataStruct_t any](
	dataFn ListDataFunction[dataStruct_t],
	options Options,
	availDataStructColumns []string) func(c *cobra.Command, _ []string) {
	return func(c *cobra.Command, _ []string) {
		// run custom validation
		if options.ValidateArgs != nil {
			if invalid, err := options.ValidateArgs(c.Flags()); err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error())
				return
			} else if invalid != "" {
				fmt.Fprintln(c.OutOrStdout(), invalid)
				return
			}
		}

		// check for --show-columns
		if sc, err := c.Flags().GetBool(ft.Name.ShowColumns); err != nil {
			clilog.LogFlagFailedGet(ft.Name.ShowColumns, err)
			return
		} else if sc {
			fmt.Fprintln(c.OutOrStdout(), showColumnsString(availDataStructColumns, options.ColumnAliases))
			return
		}

		// parse out the shared query flags
		params, err := querysupport.CollectParams(c.Flags(), options.Variants)
		if err != nil {
			fmt.Fprintln(c.ErrOrStderr(), err)
			return
		}

		// check for --interactive
		if options.Scope != nil {
			if interactive, err := c.Flags().GetBool(ft.Name.Interactive); err != nil {
				clilog.LogFlagFailedGet(ft.Name.Interactive, err)
				return
			} else if interactive {
				if err := tablescope.Run(c.Name(), options.ScopeColumns, options.Variants,
					options.Scope, params); err != nil {
					clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error())
				}
				return
			}
		}

		var (
			outFile *os.File
			format  outputFormat
			columns []string
		)
		{ // gather flags and set up variables required for listOutput
			var err error
			outFile, err = initOutFile(c.Flags())
			if err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error())
				return
			} else if outFile != nil {
				defer outFile.Close()
			}

			columns, err = getColumns(c.Flags(), options.DefaultColumns, availDataStructColumns)
			if err != nil {
				fmt.Fprintln(c.ErrOrStderr(), err)
				return
			}
			format = determineFormat(c.Flags())
		}

		s, err := listOutput(c.Flags(), params, format, columns, dataFn, options.ColumnAliases)
		if err != nil {
			clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error())
			return
		}

		if s == "" {
			if outFile == nil {
				fmt.Fprintln(c.OutOrStdout(), "no data found")
			}
			return
		}

		if outFile != nil {
			fmt.Fprintln(outFile, s)
		} else {
			fmt.Fprintln(c.OutOrStdout(), s)
		}
	}
}

// showColumnsString returns a comma-separated list of available column names.
func showColumnsString(dqColumns []string, aliases map[string]string) string {
	var sb strings.Builder
	for _, dqCol := range dqColumns {
		// check for an alias
		if alias, found := aliases[dqCol]; found {
			sb.WriteString(alias)
		} else {
			sb.WriteString(dqCol)
		}
		sb.WriteRune(',')
	}

	return sb.String()[:sb.Len()-1]
}
