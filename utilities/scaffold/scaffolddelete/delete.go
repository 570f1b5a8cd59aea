/*
Package scaffolddelete provides a template for building actions that remove records by id.

Delete actions have the --dryrun and --id default flags. --id is always required; the
sibling list action is the way to find ids. Outside of script mode, a real deletion asks
the user to type a confirmation phrase before anything is destroyed.

Implementations will probably look a lot like:

	func newDeleteAction() *cobra.Command {
		return scaffolddelete.NewDeleteAction("account", "accounts",
			func(dryrun bool, id int64) error {
				if dryrun {
					_, err := connection.Client.GetAccount(id)
					return err
				}
				_, err := connection.Client.DeleteAccount(id)
				return err
			})
	}
*/
package scaffolddelete

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Copysiter/O3GO-WA/client"
	"github.com/Copysiter/O3GO-WA/clilog"
	ft "github.com/Copysiter/O3GO-WA/stylesheet/flagtext"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold"
	"github.com/Copysiter/O3GO-WA/utilities/treeutils"
)

// A DeleteFunc performs the (faux-, on dryrun) deletion once an id is given.
// It only returns a value if the delete (or select, on dry run) failed.
type DeleteFunc[I scaffold.Id_t] func(dryrun bool, id I) error

const (
	errorNoDeleteText = "An error occured: %v.\nAbstained from deletion."
	dryrunSuccessText = "DRYRUN: %v (ID %v) would have been deleted"
	deleteSuccessText = "%v (ID %v) deleted"
	notFoundText      = "Did not find a valid %v with ID %v"
)

const confirmPhrase = "yes"

// NewDeleteAction creates and returns a cobra.Command suitable for attachment to a
// resource nav.
//
// del is a function that performs the actual (mock) deletion.
// It is given the dryrun boolean and an ID value and returns an error only if the delete
// or select failed.
func NewDeleteAction[I scaffold.Id_t](singular, plural string, del DeleteFunc[I]) *cobra.Command {
	if strings.TrimSpace(singular) == "" {
		panic("singular form of the noun cannot be empty")
	} else if del == nil {
		panic("delete function cannot be nil")
	}

	cmd := treeutils.NewActionCommand(
		"delete",
		"delete a "+singular,
		"delete a "+singular+" by id",
		[]string{"d", "remove"},
		func(c *cobra.Command, _ []string) {
			id, dryrun, err := fetchFlagValues[I](c.Flags())
			if err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
				return
			}

			var zero I
			if id == zero {
				fmt.Fprintf(c.ErrOrStderr(),
					"--%v is required. Use the %v list action to find ids.\n",
					ft.Name.ID, plural)
				return
			}

			script, err := c.Flags().GetBool(ft.Name.Script)
			if err != nil {
				clilog.LogFlagFailedGet(ft.Name.Script, err)
			}
			// real deletions outside of script mode require confirmation
			if !script && !dryrun {
				confirmed, err := confirm(singular, fmt.Sprintf("%v", id))
				if err != nil {
					clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
					return
				} else if !confirmed {
					fmt.Fprintf(c.OutOrStdout(), "Not deleting %v %v.\n", singular, id)
					return
				}
			}

			if err := del(dryrun, id); err != nil {
				var apiErr *client.ApiError
				if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
					fmt.Fprintf(c.OutOrStdout(), notFoundText+"\n", singular, id)
					return
				}
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(),
					fmt.Sprintf(errorNoDeleteText+"\n", err))
				return
			}
			if dryrun {
				fmt.Fprintf(c.OutOrStdout(), dryrunSuccessText+"\n", singular, id)
			} else {
				clilog.Writer.Infof("deleted %v %v", singular, id)
				fmt.Fprintf(c.OutOrStdout(), deleteSuccessText+"\n", singular, id)
			}
		})
	fs := flags(singular)
	cmd.Flags().AddFlagSet(&fs)
	return cmd
}

// base flagset
func flags(singular string) pflag.FlagSet {
	fs := pflag.FlagSet{}
	fs.Bool(ft.Name.Dryrun, false, ft.Usage.Dryrun)
	fs.StringP(ft.Name.ID, "i", "", ft.Mandatory(ft.Usage.ID(singular)))
	return fs
}

// helper function for getting and casting flag values
func fetchFlagValues[I scaffold.Id_t](fs *pflag.FlagSet) (id I, dryrun bool, _ error) {
	if strid, err := fs.GetString(ft.Name.ID); err != nil {
		return id, false, err
	} else if strid != "" {
		id, err = scaffold.FromString[I](strid)
		if err != nil {
			return id, dryrun, err
		}
	}
	if dr, err := fs.GetBool(ft.Name.Dryrun); err != nil {
		return id, dryrun, err
	} else {
		dryrun = dr
	}

	return
}
