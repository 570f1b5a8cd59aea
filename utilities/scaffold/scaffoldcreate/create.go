/*
Package scaffoldcreate provides a template for building actions that create new data or configuration.

A create action creates a shallow list of inputs for the user to fill via flags or interactive
TIs before being passed back to the progenitor to transform into usable data for their create
function.

The available fields are fairly configurable, the progenitor provides their own map of Field
structs, and easily extensible.

! Once a Config is given by the caller, it should be considered ReadOnly.

NOTE: More complex creation with nested options and multi-stage flows should be built
independently. This scaffold is intended for simple, handful-of-field creations.

Example implementation:

	func newCreateAction() *cobra.Command {
		fields := scaffoldcreate.Config{
			"name":  scaffoldcreate.NewField(true, "name", 100),
			"value": scaffoldcreate.NewField(false, "value", 90),
		}

		return scaffoldcreate.NewCreateAction("macro", fields, create, nil)
	}

	func create(_ scaffoldcreate.Config, vals scaffoldcreate.Values, _ *pflag.FlagSet) (any, string, error) {
		id, err := connection.Client.X()
		return id, "", err
	}
*/
package scaffoldcreate

import (
	"fmt"

	"github.com/Copysiter/O3GO-WA/clilog"
	ft "github.com/Copysiter/O3GO-WA/stylesheet/flagtext"
	"github.com/Copysiter/O3GO-WA/utilities/treeutils"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	errMissingRequiredFlags string = "missing required flags %v"
	createdSuccessfully     string = "Successfully created %v (ID: %v)."
)

// A Config maps keys -> Field; used as (ReadOnly) configuration for this creation instance.
type Config = map[string]Field

// Values maps field keys -> the value collected for that field.
type Values = map[string]string

// CreateFunc defines the format of the subroutine that must be passed for creating data.
// The function's return values must be:
//
// the id of the newly created value (as returned by the backend),
//
// a reason the create attempt was invalid (or the empty string),
//
// and an error that occurred (or nil). This is different than an invalid reason and is likely a
// bubbling up of an error from the client library.
type CreateFunc func(cfg Config, values Values, fs *pflag.FlagSet) (id any, invalid string, err error)

// NewCreateAction builds a create action around the given field configuration.
// Required fields left unset via flags are collected by a small prompt TUI,
// unless --script is given (in which case the action fails out).
func NewCreateAction(singular string,
	fields Config,
	create CreateFunc,
	addtlFlags func() *pflag.FlagSet) *cobra.Command {
	if singular == "" {
		panic("singular cannot be empty")
	} else if create == nil {
		panic("create function cannot be nil")
	}
	for k, f := range fields {
		if err := f.Valid(); err != nil {
			panic("field " + k + ": " + err.Error())
		}
	}

	// pull flags from provided fields
	var flags = installFlagsFromFields(fields)
	if addtlFlags != nil {
		flags.AddFlagSet(addtlFlags())
	}

	cmd := treeutils.NewActionCommand(
		"create",
		"create a "+singular,
		"create a new "+singular,
		[]string{},
		func(c *cobra.Command, s []string) {
			// get standard flags
			script, err := c.Flags().GetBool(ft.Name.Script)
			if err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
				return
			}
			// get field flags
			values, mr, err := getValuesFromFlags(c.Flags(), fields)
			if err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
				return
			} else if mr != nil {
				if script {
					fmt.Fprintf(c.OutOrStdout(), errMissingRequiredFlags+"\n", mr)
					return
				}
				// collect the remaining fields interactively
				values, err = promptValues(fields, values)
				if err != nil {
					clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
					return
				}
			}

			// attempt to create the new X
			if id, inv, err := create(fields, values, c.Flags()); err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
			} else if inv != "" { // some of the flags were invalid
				fmt.Fprintln(c.OutOrStdout(), inv)
			} else {
				fmt.Fprintf(c.OutOrStdout(), createdSuccessfully+"\n", singular, id)
			}
		})

	// attach mined flags to cmd
	cmd.Flags().AddFlagSet(&flags)

	return cmd
}

// Given a parsed flagset and the field configuration, builds a corollary map of field values.
//
// Returns the values for each flag (default if unset), a list of required fields (as their flag
// names) that were not set, and an error (if one occurred).
func getValuesFromFlags(fs *pflag.FlagSet, fields Config) (
	values Values, missingRequireds []string, err error,
) {
	values = make(Values)
	for k, f := range fields {
		switch f.Type {
		case Text:
			flagVal, err := fs.GetString(f.FlagName)
			if err != nil {
				return nil, nil, err
			}
			// if this value is required, but unset, add it to the list
			if f.Required && !fs.Changed(f.FlagName) {
				missingRequireds = append(missingRequireds, f.FlagName)
			}

			values[k] = flagVal
		default:
			panic("developer error: unknown field type: " + f.Type)
		}
	}
	return values, missingRequireds, nil
}
