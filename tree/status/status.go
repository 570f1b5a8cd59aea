// Package status provides a quick summary of the gateway connection and the active session.
package status

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Copysiter/O3GO-WA/clilog"
	"github.com/Copysiter/O3GO-WA/connection"
	"github.com/Copysiter/O3GO-WA/stylesheet"
	"github.com/Copysiter/O3GO-WA/utilities/treeutils"
)

// NewStatusAction returns an action that prints the server version and session state.
func NewStatusAction() *cobra.Command {
	const (
		short = "display connection and session status"
		long  = "displays the gateway address, its API version, and who you are logged in as"
	)
	return treeutils.NewActionCommand("status", short, long, []string{"info"}, run)
}

func run(c *cobra.Command, _ []string) {
	apiVer, err := connection.Client.ApiVersion()
	if err != nil {
		clilog.Tee(clilog.ERROR, c.ErrOrStderr(), "failed to fetch API version: "+err.Error()+"\n")
		return
	}
	session, err := connection.Client.SessionData()
	if err != nil {
		clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
		return
	}

	tbl := stylesheet.Table()
	tbl.Headers("field", "value")
	tbl.Row("server", connection.Client.Server())
	tbl.Row("api version", apiVer)
	tbl.Row("username", session.Username)
	tbl.Row("user id", strconv.FormatInt(session.User.ID, 10))
	tbl.Row("superuser", strconv.FormatBool(session.User.IsSuperuser))
	tbl.Row("token issued", session.IssuedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(c.OutOrStdout(), tbl)
}
