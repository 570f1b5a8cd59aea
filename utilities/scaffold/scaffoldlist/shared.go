package scaffoldlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/clilog"
	"github.com/Copysiter/O3GO-WA/stylesheet"
	ft "github.com/Copysiter/O3GO-WA/stylesheet/flagtext"
	"github.com/Copysiter/O3GO-WA/utilities/querysupport"
	"github.com/Copysiter/O3GO-WA/weave"

	"github.com/spf13/pflag"
)

// Given a **parsed** flagset, determines and returns output format.
// If multiple format flags are found, they are selected with the following precedence:
//
// csv -> json -> tbl
//
// Logs errors, allowing execution to continue towards default.
func determineFormat(fs *pflag.FlagSet) outputFormat {
	if !fs.Parsed() {
		clilog.Writer.Warnf("flags must be parsed prior to determining format")
		return tbl
	}
	var format = tbl // default

	// check for CSV
	if fm, err := fs.GetBool(ft.Name.CSV); err != nil {
		clilog.LogFlagFailedGet(ft.Name.CSV, err)
		// non-fatal
	} else if fm {
		return csv
	}

	// check for JSON
	if fm, err := fs.GetBool(ft.Name.JSON); err != nil {
		clilog.LogFlagFailedGet(ft.Name.JSON, err)
	} else if fm {
		format = json
	}

	return format
}

// Driver function to fetch the list output.
// Determines what (pre)processing is required to retrieve output for the given format and does so,
// returning the formatted string.
func listOutput[retStruct any](
	fs *pflag.FlagSet,
	params tablequery.Params,
	format outputFormat,
	columns []string,
	dataFn ListDataFunction[retStruct],
	aliases map[string]string,
) (string, error) {
	// massage the data for weave
	data, err := dataFn(fs, params)
	if err != nil {
		return "", err
	} else if len(data) < 1 {
		return "", nil
	}

	// hand off control
	clilog.Writer.Debugf("List: format %s | row count: %d", format, len(data))
	toRet, err := "", nil
	switch format {
	case csv:
		toRet = weave.ToCSV(data, columns, weave.CSVOptions{Aliases: aliases})
	case json:
		toRet, err = weave.ToJSON(data, columns, weave.JSONOptions{Aliases: aliases})
	case tbl:
		toRet = weave.ToTable(data, columns, weave.TableOptions{
			Base:    stylesheet.Table,
			Aliases: aliases,
		})
	default:
		toRet = ""
		err = fmt.Errorf("unknown output format (%d)", format)
	}
	return toRet, err
}

// buildFlagSet constructs and returns a flagset composed of the default list flags,
// additional flags defined for this action, and --interactive if a Scope fetcher was defined.
func buildFlagSet(afs AddtlFlagFunction, scopeDefined bool) *pflag.FlagSet {
	fs := pflag.FlagSet{}
	fs.AddFlagSet(querysupport.QueryFlagSet("records"))
	fs.Bool(ft.Name.CSV, false, ft.Usage.CSV)
	fs.Bool(ft.Name.JSON, false, ft.Usage.JSON)
	fs.Bool(ft.Name.Table, true, ft.Usage.Table) // default
	fs.StringSlice(ft.Name.Columns, []string{}, ft.Usage.Columns)
	fs.Bool(ft.Name.ShowColumns, false, ft.Usage.ShowColumns)
	fs.StringP(ft.Name.Output, "o", "", ft.Usage.Output)
	fs.Bool(ft.Name.Append, false, ft.Usage.Append)
	// if a scope was defined, bolt on interactive
	if scopeDefined {
		fs.BoolP(ft.Name.Interactive, "i", false, ft.Usage.Interactive)
	}
	// if additional flags are warranted, add them
	if afs != nil {
		fs.AddFlagSet(afs())
	}

	return &fs
}

// Opens a file, per the given --output and --append flags in the flagset, and returns its handle.
// Returns nil if the flags do not call for a file.
func initOutFile(fs *pflag.FlagSet) (*os.File, error) {
	if !fs.Parsed() {
		return nil, nil
	}
	outPath, err := fs.GetString(ft.Name.Output)
	if err != nil {
		return nil, err
	} else if strings.TrimSpace(outPath) == "" {
		return nil, nil
	}
	var flags = os.O_CREATE | os.O_WRONLY
	if app, err := fs.GetBool(ft.Name.Append); err != nil {
		return nil, err
	} else if app {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(outPath, flags, outFilePerm)
}

// getColumns checks for --columns then validates and returns them if found and returns the
// default columns otherwise.
func getColumns(fs *pflag.FlagSet, defaultColumns []string, availDSColumns []string) ([]string, error) {
	cols, err := fs.GetStringSlice(ft.Name.Columns)
	if err != nil {
		return nil, err
	} else if len(cols) < 1 {
		return defaultColumns, nil
	}

	if err := validateColumns(cols, availDSColumns); err != nil {
		return nil, err
	}
	return cols, nil
}

// validateColumns tests that every given column exists within the given struct.
func validateColumns(cols []string, availDSColumns []string) error {
	// transform the DS columns into a map for faster access
	m := make(map[string]bool, len(availDSColumns))
	for _, col := range availDSColumns {
		m[col] = true
	}

	// confirm that each column is an existing column
	for _, col := range cols {
		if _, found := m[col]; !found {
			return fmt.Errorf("'%v' is not a known column", col)
		}
	}

	return nil
}
