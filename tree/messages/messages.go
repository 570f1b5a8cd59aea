// Package messages provides actions for inspecting and managing outbound messages.
package messages

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

// NewMessagesNav returns a nav with children for message handling.
func NewMessagesNav() *cobra.Command {
	const (
		use   = "messages"
		short = "manage outbound messages"
		long  = "Messages are the outbound deliveries tracked by the gateway, from queueing\n" +
			"through delivery (or failure)."
	)
	var aliases = []string{"message", "msg"}
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
	"session_id": tablequery.Select,
	"number":     tablequery.Text,
	"geo":        tablequery.MultiSelect,
	"status":     tablequery.Select,
	"created_at": tablequery.DateRange,
	"sent_at":    tablequery.DateRange,
	"updated_at": tablequery.DateRange,
	"info_1":     tablequery.Text,
	"info_2":     tablequery.Text,
}

var scopeColumns = []string{
	"id", "session_id", "number", "geo", "status", "created_at", "sent_at",
}

//#region list

func newListAction() *cobra.Command {
	const (
		short = "list outbound messages"
		long  = "lists the outbound messages visible to your user"
	)
	return scaffoldlist.NewListAction(short, long, types.Message{}, list,
		scaffoldlist.Options{
			DefaultColumns: []string{"ID", "SessionID", "Number", "Geo", "Status"},
			Variants:       variants,
			Scope:          scope,
			ScopeColumns:   scopeColumns,
		})
}

func list(_ *pflag.FlagSet, p tablequery.Params) ([]types.Message, error) {
	lst, err := connection.Client.ListMessages(p)
	return lst.Data, err
}

func scope(p tablequery.Params) (tablequery.Result, error) {
	return connection.Client.List(client.MESSAGES_URL, p)
}

//#endregion

//#region create

func newCreateAction() *cobra.Command {
	fields := scaffoldcreate.Config{
		"session_id": scaffoldcreate.NewField(true, "session id", 100),
		"number":     scaffoldcreate.NewField(true, "number", 90),
		"geo":        scaffoldcreate.NewField(false, "geo", 80),
		"text":       scaffoldcreate.NewField(false, "text", 70),
	}
	return scaffoldcreate.NewCreateAction("message", fields, create, nil)
}

func create(_ scaffoldcreate.Config, vals scaffoldcreate.Values, _ *pflag.FlagSet) (
	any, string, error,
) {
	sid, err := strconv.ParseInt(vals["session_id"], 10, 64)
	if err != nil {
		return nil, "session id must be an integer", nil
	}
	req := types.MessageCreate{
		SessionID: sid,
		Number:    vals["number"],
		Geo:       vals["geo"],
		Text:      vals["text"],
	}

	resp, err := connection.Client.CreateMessage(req)
	if err != nil {
		return nil, "", err
	}
	return resp.ID, "", nil
}

//#endregion

//#region edit

func newEditAction() *cobra.Command {
	cfg := scaffoldedit.Config{
		"number": &scaffoldedit.Field{
			Required: true,
			Title:    "number",
			Usage:    "destination phone number",
			Order:    100,
		},
		"geo": &scaffoldedit.Field{
			Title: "geo",
			Usage: "destination region code",
			Order: 90,
		},
		"text": &scaffoldedit.Field{
			Title: "text",
			Usage: "message body",
			Order: 80,
		},
		"status": &scaffoldedit.Field{
			Title: "status",
			Usage: "delivery state (WAITING|CREATED|SENT|DELIVERED|UNDELIVERED|FAILED or an integer)",
			Order: 70,
		},
	}

	funcs := scaffoldedit.SubroutineSet[int64, types.Message]{
		SelectSub: func(id int64) (types.Message, error) {
			return connection.Client.GetMessage(id)
		},
		GetFieldSub: func(itm types.Message, fieldKey string) (string, error) {
			switch fieldKey {
			case "number":
				return itm.Number, nil
			case "geo":
				return itm.Geo, nil
			case "text":
				return itm.Text, nil
			case "status":
				return itm.Status.String(), nil
			}
			return "", scaffoldedit.ErrUnknownField(fieldKey)
		},
		SetFieldSub: func(itm *types.Message, fieldKey, val string) (string, error) {
			switch fieldKey {
			case "number":
				if val == "" {
					return "number cannot be empty", nil
				}
				itm.Number = val
			case "geo":
				itm.Geo = val
			case "text":
				itm.Text = val
			case "status":
				st, err := types.ParseMessageStatus(val)
				if err != nil {
					return err.Error(), nil
				}
				itm.Status = st
			default:
				return "", scaffoldedit.ErrUnknownField(fieldKey)
			}
			return "", nil
		},
		UpdateSub: func(itm *types.Message) (string, error) {
			upd := types.MessageUpdate{
				Number: &itm.Number,
				Geo:    &itm.Geo,
				Text:   &itm.Text,
				Status: &itm.Status,
			}
			updated, err := connection.Client.UpdateMessage(itm.ID, upd)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%v", updated.ID), nil
		},
	}

	return scaffoldedit.NewEditAction("message", "messages", cfg, funcs)
}

//#endregion

//#region delete

func newDeleteAction() *cobra.Command {
	return scaffolddelete.NewDeleteAction("message", "messages",
		func(dryrun bool, id int64) error {
			if dryrun {
				_, err := connection.Client.GetMessage(id)
				return err
			}
			_, err := connection.Client.DeleteMessage(id)
			return err
		})
}

//#endregion
