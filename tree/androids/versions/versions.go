// Package versions provides actions for managing published builds of the companion app.
package versions

import (
	"fmt"

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

// NewVersionsNav returns a nav with children for build registry handling.
func NewVersionsNav() *cobra.Command {
	const (
		use   = "versions"
		short = "manage companion app builds"
		long  = "Versions are the published builds of the companion app that devices can fetch."
	)
	var aliases = []string{"version", "builds"}
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
	"id":          tablequery.Number,
	"file_name":   tablequery.Text,
	"description": tablequery.Text,
}

var scopeColumns = []string{"id", "file_name", "description"}

//#region list

func newListAction() *cobra.Command {
	const (
		short = "list companion app builds"
		long  = "lists the published builds of the companion app"
	)
	return scaffoldlist.NewListAction(short, long, types.Version{}, list,
		scaffoldlist.Options{
			Variants:     variants,
			Scope:        scope,
			ScopeColumns: scopeColumns,
		})
}

func list(_ *pflag.FlagSet, p tablequery.Params) ([]types.Version, error) {
	lst, err := connection.Client.ListVersions(p)
	return lst.Data, err
}

func scope(p tablequery.Params) (tablequery.Result, error) {
	return connection.Client.List(client.VERSIONS_URL, p)
}

//#endregion

//#region create

func newCreateAction() *cobra.Command {
	fields := scaffoldcreate.Config{
		"file_name":   scaffoldcreate.NewField(true, "file name", 100),
		"description": scaffoldcreate.NewField(false, "description", 90),
	}
	return scaffoldcreate.NewCreateAction("version", fields, create, nil)
}

func create(_ scaffoldcreate.Config, vals scaffoldcreate.Values, _ *pflag.FlagSet) (
	any, string, error,
) {
	req := types.VersionCreate{
		FileName:    vals["file_name"],
		Description: vals["description"],
	}

	ver, err := connection.Client.CreateVersion(req)
	if err != nil {
		return nil, "", err
	}
	return ver.ID, "", nil
}

//#endregion

//#region edit

func newEditAction() *cobra.Command {
	cfg := scaffoldedit.Config{
		"file_name": &scaffoldedit.Field{
			Required: true,
			Title:    "file name",
			Usage:    "name of the apk on disk",
			Order:    100,
		},
		"description": &scaffoldedit.Field{
			Title: "description",
			Usage: "human-readable notes on this build",
			Order: 90,
		},
	}

	funcs := scaffoldedit.SubroutineSet[int64, types.Version]{
		SelectSub: func(id int64) (types.Version, error) {
			return connection.Client.GetVersion(id)
		},
		GetFieldSub: func(itm types.Version, fieldKey string) (string, error) {
			switch fieldKey {
			case "file_name":
				return itm.FileName, nil
			case "description":
				return itm.Description, nil
			}
			return "", scaffoldedit.ErrUnknownField(fieldKey)
		},
		SetFieldSub: func(itm *types.Version, fieldKey, val string) (string, error) {
			switch fieldKey {
			case "file_name":
				if val == "" {
					return "file name cannot be empty", nil
				}
				itm.FileName = val
			case "description":
				itm.Description = val
			default:
				return "", scaffoldedit.ErrUnknownField(fieldKey)
			}
			return "", nil
		},
		UpdateSub: func(itm *types.Version) (string, error) {
			upd := types.VersionUpdate{
				FileName:    &itm.FileName,
				Description: &itm.Description,
			}
			updated, err := connection.Client.UpdateVersion(itm.ID, upd)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%v", updated.ID), nil
		},
	}

	return scaffoldedit.NewEditAction("version", "versions", cfg, funcs)
}

//#endregion

//#region delete

func newDeleteAction() *cobra.Command {
	return scaffolddelete.NewDeleteAction("version", "versions",
		func(dryrun bool, id int64) error {
			if dryrun {
				_, err := connection.Client.GetVersion(id)
				return err
			}
			_, err := connection.Client.DeleteVersion(id)
			return err
		})
}

//#endregion
