// Package users provides actions for managing operator accounts on the management API.
package users

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

// NewUsersNav returns a nav with children for operator account handling.
func NewUsersNav() *cobra.Command {
	const (
		use   = "users"
		short = "manage operator accounts"
		long  = "Users are the operator accounts that log into the management API.\n" +
			"Superusers see every record; ordinary users only their own."
	)
	var aliases = []string{"user"}
	return treeutils.GenerateNav(use, short, long, aliases, []*cobra.Command{},
		[]*cobra.Command{
			newListAction(),
			newCreateAction(),
			newEditAction(),
			newDeleteAction(),
		})
}

// variants drives --filter/--sort validation and the interactive table prompts.
// is_active and is_superuser are display-only; the user list endpoint
// declares no filter fields for them.
var variants = map[string]tablequery.Variant{
	"id":    tablequery.Number,
	"name":  tablequery.Text,
	"login": tablequery.Text,
}

var scopeColumns = []string{"id", "name", "login", "is_active", "is_superuser"}

//#region list

func newListAction() *cobra.Command {
	const (
		short = "list operator accounts"
		long  = "lists the operator accounts visible to your user"
	)
	return scaffoldlist.NewListAction(short, long, types.User{}, list,
		scaffoldlist.Options{
			ExcludeColumnsFromDefault: []string{"ExtAPIKey"},
			Variants:                  variants,
			Scope:                     scope,
			ScopeColumns:              scopeColumns,
		})
}

func list(_ *pflag.FlagSet, p tablequery.Params) ([]types.User, error) {
	lst, err := connection.Client.ListUsers(p)
	return lst.Data, err
}

func scope(p tablequery.Params) (tablequery.Result, error) {
	return connection.Client.List(client.USERS_URL, p)
}

//#endregion

//#region create

func newCreateAction() *cobra.Command {
	fields := scaffoldcreate.Config{
		"login":    scaffoldcreate.NewField(true, "login", 100),
		"password": scaffoldcreate.NewField(true, "password", 90),
		"name":     scaffoldcreate.NewField(false, "name", 80),
	}
	return scaffoldcreate.NewCreateAction("user", fields, create, nil)
}

func create(_ scaffoldcreate.Config, vals scaffoldcreate.Values, _ *pflag.FlagSet) (
	any, string, error,
) {
	req := types.UserCreate{
		Login:    vals["login"],
		Password: vals["password"],
		Name:     vals["name"],
	}

	usr, err := connection.Client.CreateUser(req)
	if err != nil {
		return nil, "", err
	}
	return usr.ID, "", nil
}

//#endregion

//#region edit

func newEditAction() *cobra.Command {
	cfg := scaffoldedit.Config{
		"login": &scaffoldedit.Field{
			Required: true,
			Title:    "login",
			Usage:    "login name of the operator",
			Order:    100,
		},
		"name": &scaffoldedit.Field{
			Title: "name",
			Usage: "display name of the operator",
			Order: 90,
		},
		"is_active": &scaffoldedit.Field{
			Title: "is active",
			Usage: "whether the operator may log in (true|false)",
			Order: 80,
		},
		"is_superuser": &scaffoldedit.Field{
			Title: "is superuser",
			Usage: "whether the operator sees every record (true|false)",
			Order: 70,
		},
	}

	funcs := scaffoldedit.SubroutineSet[int64, types.User]{
		SelectSub: func(id int64) (types.User, error) {
			return connection.Client.GetUser(id)
		},
		GetFieldSub: func(itm types.User, fieldKey string) (string, error) {
			switch fieldKey {
			case "login":
				return itm.Login, nil
			case "name":
				return itm.Name, nil
			case "is_active":
				return strconv.FormatBool(itm.IsActive), nil
			case "is_superuser":
				return strconv.FormatBool(itm.IsSuperuser), nil
			}
			return "", scaffoldedit.ErrUnknownField(fieldKey)
		},
		SetFieldSub: func(itm *types.User, fieldKey, val string) (string, error) {
			switch fieldKey {
			case "login":
				if val == "" {
					return "login cannot be empty", nil
				}
				itm.Login = val
			case "name":
				itm.Name = val
			case "is_active":
				b, err := strconv.ParseBool(val)
				if err != nil {
					return "is active must be true or false", nil
				}
				itm.IsActive = b
			case "is_superuser":
				b, err := strconv.ParseBool(val)
				if err != nil {
					return "is superuser must be true or false", nil
				}
				itm.IsSuperuser = b
			default:
				return "", scaffoldedit.ErrUnknownField(fieldKey)
			}
			return "", nil
		},
		UpdateSub: func(itm *types.User) (string, error) {
			upd := types.UserUpdate{
				Login:       &itm.Login,
				Name:        &itm.Name,
				IsActive:    &itm.IsActive,
				IsSuperuser: &itm.IsSuperuser,
			}
			updated, err := connection.Client.UpdateUser(itm.ID, upd)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%v", updated.ID), nil
		},
	}

	return scaffoldedit.NewEditAction("user", "users", cfg, funcs)
}

//#endregion

//#region delete

func newDeleteAction() *cobra.Command {
	return scaffolddelete.NewDeleteAction("user", "users",
		func(dryrun bool, id int64) error {
			if dryrun {
				_, err := connection.Client.GetUser(id)
				return err
			}
			_, err := connection.Client.DeleteUser(id)
			return err
		})
}

//#endregion
