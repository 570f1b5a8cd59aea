// Package androids provides actions for managing the devices running the companion app.
package androids

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Copysiter/O3GO-WA/client"
	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/client/types"
	"github.com/Copysiter/O3GO-WA/connection"
	"github.com/Copysiter/O3GO-WA/tree/androids/versions"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold/scaffoldcreate"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold/scaffolddelete"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold/scaffoldedit"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold/scaffoldlist"
	"github.com/Copysiter/O3GO-WA/utilities/treeutils"
)

// NewAndroidsNav returns a nav with children for device handling,
// including the published build registry.
func NewAndroidsNav() *cobra.Command {
	const (
		use   = "androids"
		short = "manage companion devices"
		long  = "Androids are the physical devices running the companion app.\n" +
			"Each device reports its hardware identity, battery state and push id."
	)
	var aliases = []string{"android", "devices"}
	return treeutils.GenerateNav(use, short, long, aliases,
		[]*cobra.Command{versions.NewVersionsNav()},
		[]*cobra.Command{
			newListAction(),
			newCreateAction(),
			newEditAction(),
			newDeleteAction(),
			newOptionsAction(),
		})
}

// variants drives --filter/--sort validation and the interactive table prompts.
// type and is_active are display-only; the android list endpoint declares
// no filter fields for them.
var variants = map[string]tablequery.Variant{
	"id":              tablequery.Number,
	"device":          tablequery.Text,
	"device_origin":   tablequery.Text,
	"device_name":     tablequery.Text,
	"manufacturer":    tablequery.Text,
	"version":         tablequery.Text,
	"android_version": tablequery.Text,
	"operator_name":   tablequery.Text,
	"push_id":         tablequery.Text,
	"user_id":         tablequery.Select,
}

var scopeColumns = []string{
	"id", "type", "device", "device_name", "manufacturer", "version", "is_active",
}

//#region list

func newListAction() *cobra.Command {
	const (
		short = "list companion devices"
		long  = "lists the companion devices visible to your user"
	)
	return scaffoldlist.NewListAction(short, long, types.Android{}, list,
		scaffoldlist.Options{
			DefaultColumns: []string{"ID", "Type", "Device", "DeviceName", "Manufacturer",
				"Version", "IsActive"},
			Variants:     variants,
			Scope:        scope,
			ScopeColumns: scopeColumns,
		})
}

func list(_ *pflag.FlagSet, p tablequery.Params) ([]types.Android, error) {
	lst, err := connection.Client.ListAndroids(p)
	return lst.Data, err
}

func scope(p tablequery.Params) (tablequery.Result, error) {
	return connection.Client.List(client.ANDROIDS_URL, p)
}

//#endregion

//#region device options

func newOptionsAction() *cobra.Command {
	const (
		short = "list device filter options"
		long  = "lists the label/value pairs the gateway exposes for device selection"
	)
	return scaffoldlist.NewListAction(short, long, types.OptionStr{}, listOptions,
		scaffoldlist.Options{
			Use:     "options",
			Aliases: []string{"opts"},
		})
}

func listOptions(_ *pflag.FlagSet, _ tablequery.Params) ([]types.OptionStr, error) {
	return connection.Client.DeviceOptions()
}

//#endregion

//#region create

func newCreateAction() *cobra.Command {
	fields := scaffoldcreate.Config{
		"type":          scaffoldcreate.NewField(true, "type", 100),
		"device":        scaffoldcreate.NewField(true, "device", 90),
		"device_origin": scaffoldcreate.NewField(true, "device origin", 80),
		"device_name":   scaffoldcreate.NewField(false, "device name", 70),
		"user_id":       scaffoldcreate.NewField(false, "user id", 60),
	}
	return scaffoldcreate.NewCreateAction("android", fields, create, nil)
}

func create(_ scaffoldcreate.Config, vals scaffoldcreate.Values, _ *pflag.FlagSet) (
	any, string, error,
) {
	req := types.AndroidCreate{
		Type:         vals["type"],
		Device:       vals["device"],
		DeviceOrigin: vals["device_origin"],
		DeviceName:   vals["device_name"],
	}
	if v := vals["user_id"]; v != "" {
		uid, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, "user id must be an integer", nil
		}
		req.UserID = uid
	}

	droid, err := connection.Client.CreateAndroid(req)
	if err != nil {
		return nil, "", err
	}
	return droid.ID, "", nil
}

//#endregion

//#region edit

func newEditAction() *cobra.Command {
	cfg := scaffoldedit.Config{
		"device_name": &scaffoldedit.Field{
			Title: "device name",
			Usage: "friendly name of the device",
			Order: 100,
		},
		"operator_name": &scaffoldedit.Field{
			Title: "operator name",
			Usage: "carrier the device is registered with",
			Order: 90,
		},
		"user_id": &scaffoldedit.Field{
			Title: "user id",
			Usage: "id of the owning user",
			Order: 80,
		},
		"is_active": &scaffoldedit.Field{
			Title: "is active",
			Usage: "whether the device accepts work (true|false)",
			Order: 70,
		},
	}

	funcs := scaffoldedit.SubroutineSet[int64, types.Android]{
		SelectSub: func(id int64) (types.Android, error) {
			return connection.Client.GetAndroid(id)
		},
		GetFieldSub: func(itm types.Android, fieldKey string) (string, error) {
			switch fieldKey {
			case "device_name":
				return itm.DeviceName, nil
			case "operator_name":
				return itm.OperatorName, nil
			case "user_id":
				return strconv.FormatInt(itm.UserID, 10), nil
			case "is_active":
				return strconv.FormatBool(itm.IsActive), nil
			}
			return "", scaffoldedit.ErrUnknownField(fieldKey)
		},
		SetFieldSub: func(itm *types.Android, fieldKey, val string) (string, error) {
			switch fieldKey {
			case "device_name":
				itm.DeviceName = val
			case "operator_name":
				itm.OperatorName = val
			case "user_id":
				uid, err := strconv.ParseInt(val, 10, 64)
				if err != nil {
					return "user id must be an integer", nil
				}
				itm.UserID = uid
			case "is_active":
				b, err := strconv.ParseBool(val)
				if err != nil {
					return "is active must be true or false", nil
				}
				itm.IsActive = b
			default:
				return "", scaffoldedit.ErrUnknownField(fieldKey)
			}
			return "", nil
		},
		UpdateSub: func(itm *types.Android) (string, error) {
			upd := types.AndroidUpdate{
				DeviceName:   &itm.DeviceName,
				OperatorName: &itm.OperatorName,
				UserID:       &itm.UserID,
				IsActive:     &itm.IsActive,
			}
			updated, err := connection.Client.UpdateAndroid(itm.ID, upd)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%v", updated.ID), nil
		},
	}

	return scaffoldedit.NewEditAction("android", "androids", cfg, funcs)
}

//#endregion

//#region delete

func newDeleteAction() *cobra.Command {
	return scaffolddelete.NewDeleteAction("android", "androids",
		func(dryrun bool, id int64) error {
			if dryrun {
				_, err := connection.Client.GetAndroid(id)
				return err
			}
			_, err := connection.Client.DeleteAndroid(id)
			return err
		})
}

//#endregion
