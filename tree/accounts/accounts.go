// Package accounts provides actions for managing sender accounts registered with the gateway.
package accounts

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

// NewAccountsNav returns a nav with children for sender account handling.
func NewAccountsNav() *cobra.Command {
	const (
		use   = "accounts"
		short = "manage sender accounts"
		long  = "Accounts are the phone numbers the gateway sends from.\n" +
			"Each account belongs to a user and owns zero or more device sessions."
	)
	var aliases = []string{"account", "acc"}
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
	"id":            tablequery.Number,
	"user_id":       tablequery.Select,
	"number":        tablequery.Text,
	"type":          tablequery.Select,
	"session_count": tablequery.Number,
	"status":        tablequery.Select,
	"created_at":    tablequery.DateRange,
	"updated_at":    tablequery.DateRange,
	"info_1":        tablequery.Text,
	"info_2":        tablequery.Text,
	"info_3":        tablequery.Text,
}

var scopeColumns = []string{
	"id", "user_id", "number", "type", "session_count", "status", "created_at",
}

//#region list

func newListAction() *cobra.Command {
	const (
		short = "list sender accounts"
		long  = "lists the sender accounts visible to your user"
	)
	return scaffoldlist.NewListAction(short, long, types.Account{}, list,
		scaffoldlist.Options{
			DefaultColumns: []string{"ID", "UserID", "Number", "Type", "SessionCount", "Status"},
			Variants:       variants,
			Scope:          scope,
			ScopeColumns:   scopeColumns,
		})
}

func list(_ *pflag.FlagSet, p tablequery.Params) ([]types.Account, error) {
	lst, err := connection.Client.ListAccounts(p)
	return lst.Data, err
}

func scope(p tablequery.Params) (tablequery.Result, error) {
	return connection.Client.List(client.ACCOUNTS_URL, p)
}

//#endregion

//#region create

func newCreateAction() *cobra.Command {
	fields := scaffoldcreate.Config{
		"number":  scaffoldcreate.NewField(true, "number", 100),
		"user_id": scaffoldcreate.NewField(false, "user id", 90),
		"type":    scaffoldcreate.NewField(false, "type", 80),
		"info_1":  scaffoldcreate.NewField(false, "info 1", 70),
	}
	return scaffoldcreate.NewCreateAction("account", fields, create, nil)
}

func create(_ scaffoldcreate.Config, vals scaffoldcreate.Values, _ *pflag.FlagSet) (
	any, string, error,
) {
	req := types.AccountCreate{
		Number: vals["number"],
		Info1:  vals["info_1"],
	}
	if v := vals["user_id"]; v != "" {
		uid, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, "user id must be an integer", nil
		}
		req.UserID = uid
	}
	if v := vals["type"]; v != "" {
		t, err := strconv.Atoi(v)
		if err != nil {
			return nil, "type must be an integer", nil
		}
		req.Type = t
	}

	acc, err := connection.Client.CreateAccount(req)
	if err != nil {
		return nil, "", err
	}
	return acc.ID, "", nil
}

//#endregion

//#region edit

func newEditAction() *cobra.Command {
	cfg := scaffoldedit.Config{
		"number": &scaffoldedit.Field{
			Required: true,
			Title:    "number",
			Usage:    "phone number the account sends from",
			Order:    100,
		},
		"status": &scaffoldedit.Field{
			Title: "status",
			Usage: "lifecycle state (BANNED|AVAILABLE|ACTIVE|PAUSED or an integer)",
			Order: 90,
		},
		"user_id": &scaffoldedit.Field{
			Title: "user id",
			Usage: "id of the owning user",
			Order: 80,
		},
		"info_1": &scaffoldedit.Field{
			Title: "info 1",
			Usage: "free-form annotation",
			Order: 70,
		},
	}

	funcs := scaffoldedit.SubroutineSet[int64, types.Account]{
		SelectSub: func(id int64) (types.Account, error) {
			return connection.Client.GetAccount(id)
		},
		GetFieldSub: func(itm types.Account, fieldKey string) (string, error) {
			switch fieldKey {
			case "number":
				return itm.Number, nil
			case "status":
				return itm.Status.String(), nil
			case "user_id":
				return strconv.FormatInt(itm.UserID, 10), nil
			case "info_1":
				return itm.Info1, nil
			}
			return "", scaffoldedit.ErrUnknownField(fieldKey)
		},
		SetFieldSub: func(itm *types.Account, fieldKey, val string) (string, error) {
			switch fieldKey {
			case "number":
				if val == "" {
					return "number cannot be empty", nil
				}
				itm.Number = val
			case "status":
				st, err := types.ParseAccountStatus(val)
				if err != nil {
					return err.Error(), nil
				}
				itm.Status = st
			case "user_id":
				uid, err := strconv.ParseInt(val, 10, 64)
				if err != nil {
					return "user id must be an integer", nil
				}
				itm.UserID = uid
			case "info_1":
				itm.Info1 = val
			default:
				return "", scaffoldedit.ErrUnknownField(fieldKey)
			}
			return "", nil
		},
		UpdateSub: func(itm *types.Account) (string, error) {
			upd := types.AccountUpdate{
				Number: &itm.Number,
				Status: &itm.Status,
				UserID: &itm.UserID,
				Info1:  &itm.Info1,
			}
			updated, err := connection.Client.UpdateAccount(itm.ID, upd)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%v", updated.ID), nil
		},
	}

	return scaffoldedit.NewEditAction("account", "accounts", cfg, funcs)
}

//#endregion

//#region delete

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

//#endregion
