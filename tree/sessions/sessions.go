// Package sessions provides actions for managing device sessions on the gateway.
package sessions

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Copysiter/O3GO-WA/client"
	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/client/types"
	"github.com/Copysiter/O3GO-WA/connection"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold/scaffoldcreate"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold/scaffolddelete"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold/scaffoldedit"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold/scaffoldlist"
	"github.com/Copysiter/O3GO-WA/utilities/treeutils"
)

// NewSessionsNav returns a nav with children for session handling.
func NewSessionsNav() *cobra.Command {
	const (
		use   = "sessions"
		short = "manage device sessions"
		long  = "Sessions tie a sender account to the device it is currently logged in on.\n" +
			"Message counters and lifecycle state are tracked per session."
	)
	var aliases = []string{"session", "sess"}
	return treeutils.GenerateNav(use, short, long, aliases, []*cobra.Command{},
		[]*cobra.Command{
			newListAction(),
			newCreateAction(),
			newEditAction(),
			newDeleteAction(),
		})
}

// variants drives --filter/--sort validation and the interactive table prompts.
var variants = map[string]tablequery.Variant{
	"id":         tablequery.Number,
	"account_id": tablequery.Select,
	"ext_id":     tablequery.Text,
	"msg_count":  tablequery.Number,
	"status":     tablequery.Select,
	"created_at": tablequery.DateRange,
	"updated_at": tablequery.DateRange,
	"info_1":     tablequery.Text,
	"info_2":     tablequery.Text,
	"info_3":     tablequery.Text,
	"info_4":     tablequery.Text,
}

var scopeColumns = []string{
	"id", "account_id", "ext_id", "msg_count", "status", "created_at",
}

//#region list

func newListAction() *cobra.Command {
	const (
		short = "list device sessions"
		long  = "lists the device sessions visible to your user"
	)
	return scaffoldlist.NewListAction(short, long, types.Session{}, list,
		scaffoldlist.Options{
			DefaultColumns: []string{"ID", "AccountID", "ExtID", "MsgCount", "Status"},
			Variants:       variants,
			Scope:          scope,
			ScopeColumns:   scopeColumns,
		})
}

func list(_ *pflag.FlagSet, p tablequery.Params) ([]types.Session, error) {
	lst, err := connection.Client.ListSessions(p)
	return lst.Data, err
}

func scope(p tablequery.Params) (tablequery.Result, error) {
	return connection.Client.List(client.SESSIONS_URL, p)
}

//#endregion

//#region create

func newCreateAction() *cobra.Command {
	fields := scaffoldcreate.Config{
		"account_id": scaffoldcreate.NewField(true, "account id", 100),
		"ext_id":     scaffoldcreate.NewField(true, "ext id", 90),
		"info_1":     scaffoldcreate.NewField(false, "info 1", 80),
	}
	return scaffoldcreate.NewCreateAction("session", fields, create, nil)
}

func create(_ scaffoldcreate.Config, vals scaffoldcreate.Values, _ *pflag.FlagSet) (
	any, string, error,
) {
	aid, err := strconv.ParseInt(vals["account_id"], 10, 64)
	if err != nil {
		return nil, "account id must be an integer", nil
	}
	req := types.SessionCreate{
		AccountID: aid,
		ExtID:     vals["ext_id"],
		Info1:     vals["info_1"],
	}

	sess, err := connection.Client.CreateSession(req)
	if err != nil {
		return nil, "", err
	}
	return sess.ID, "", nil
}

//#endregion

//#region edit

func newEditAction() *cobra.Command {
	cfg := scaffoldedit.Config{
		"ext_id": &scaffoldedit.Field{
			Required: true,
			Title:    "ext id",
			Usage:    "identifier of the session on the device",
			Order:    100,
		},
		"status": &scaffoldedit.Field{
			Title: "status",
			Usage: "lifecycle state (BANNED|AVAILABLE|ACTIVE|PAUSED or an integer)",
			Order: 90,
		},
		"account_id": &scaffoldedit.Field{
			Title: "account id",
			Usage: "id of the owning account",
			Order: 80,
		},
		"info_1": &scaffoldedit.Field{
			Title: "info 1",
			Usage: "free-form annotation",
			Order: 70,
		},
	}

	funcs := scaffoldedit.SubroutineSet[int64, types.Session]{
		SelectSub: func(id int64) (types.Session, error) {
			return connection.Client.GetSession(id)
		},
		GetFieldSub: func(itm types.Session, fieldKey string) (string, error) {
			switch fieldKey {
			case "ext_id":
				return itm.ExtID, nil
			case "status":
				return itm.Status.String(), nil
			case "account_id":
				return strconv.FormatInt(itm.AccountID, 10), nil
			case "info_1":
				return itm.Info1, nil
			}
			return "", scaffoldedit.ErrUnknownField(fieldKey)
		},
		SetFieldSub: func(itm *types.Session, fieldKey, val string) (string, error) {
			switch fieldKey {
			case "ext_id":
				if val == "" {
					return "ext id cannot be empty", nil
				}
				itm.ExtID = val
			case "status":
				st, err := types.ParseAccountStatus(val)
				if err != nil {
					return err.Error(), nil
				}
				itm.Status = st
			case "account_id":
				aid, err := strconv.ParseInt(val, 10, 64)
				if err != nil {
					return "account id must be an integer", nil
				}
				itm.AccountID = aid
			case "info_1":
				itm.Info1 = val
			default:
				return "", scaffoldedit.ErrUnknownField(fieldKey)
			}
			return "", nil
		},
		UpdateSub: func(itm *types.Session) (string, error) {
			upd := types.SessionUpdate{
				ExtID:     &itm.ExtID,
				Status:    &itm.Status,
				AccountID: &itm.AccountID,
				Info1:     &itm.Info1,
			}
			updated, err := connection.Client.UpdateSession(itm.ID, upd)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%v", updated.ID), nil
		},
	}

	return scaffoldedit.NewEditAction("session", "sessions", cfg, funcs)
}

//#endregion

//#region delete

func newDeleteAction() *cobra.Command {
	return scaffolddelete.NewDeleteAction("session", "sessions",
		func(dryrun bool, id int64) error {
			if dryrun {
				_, err := connection.Client.GetSession(id)
				return err
			}
			_, err := connection.Client.DeleteSession(id)
			return err
		})
}

//#endregion
