/*
Package scaffoldedit provides a template for building actions that alter existing records.

Edit is the most complex of the scaffolds, requiring the implementor to supply a flat map of
editable fields (a Config) and a set of subroutines to get and set those fields without
reflection. The get/set subroutines are probably switch statements that map (key -> item.X).

An edit action always requires --id; the sibling list action is the way to find ids.
With --script or any field flag set, changes are applied straight from the flags.
Otherwise a small prompt TUI is seeded with the record's current values for the
user to amend in place.

! Once a Config is given by the caller, it should be considered ReadOnly.

! Note that some subs in the SubroutineSet explicitly pass pointers as parameters; these
subroutines are destructive.
*/
package scaffoldedit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Copysiter/O3GO-WA/clilog"
	ft "github.com/Copysiter/O3GO-WA/stylesheet/flagtext"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold"
	"github.com/Copysiter/O3GO-WA/utilities/treeutils"
)

// local handle on the shared id constraint
type id_t = scaffold.Id_t

const (
	successStringF = "Successfully updated %v %v"
	noUpdateString = "no field would be updated; quitting..."
)

// NewEditAction creates and returns a cobra.Command suitable for attachment to a resource nav.
//
// Base flags, not field flags, should be reserved for the target record (--id) plus
// whatever the standard action flags provide; each field in the Config grows its own flag.
func NewEditAction[I id_t, S any](singular, plural string, cfg Config, funcs SubroutineSet[I, S]) *cobra.Command {
	funcs.guarantee() // check that all functions were given
	if len(cfg) < 1 { // check that config has fields in it
		panic("cannot edit with no fields defined")
	}
	if strings.TrimSpace(singular) == "" {
		panic("singular form of the noun cannot be empty")
	} else if strings.TrimSpace(plural) == "" {
		panic("plural form of the noun cannot be empty")
	}

	var fs = generateFlagSet(cfg, singular)

	cmd := treeutils.NewActionCommand(
		"edit",
		"edit a "+singular,
		"edit/alter an existing "+singular,
		[]string{"e"},
		func(c *cobra.Command, _ []string) {
			script, err := c.Flags().GetBool(ft.Name.Script)
			if err != nil {
				clilog.LogFlagFailedGet(ft.Name.Script, err)
			}

			idStr, err := c.Flags().GetString(ft.Name.ID)
			if err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
				return
			}
			if strings.TrimSpace(idStr) == "" {
				fmt.Fprintf(c.ErrOrStderr(),
					"--%v is required. Use the %v list action to find ids.\n",
					ft.Name.ID, plural)
				return
			}
			id, err := scaffold.FromString[I](idStr)
			if err != nil {
				fmt.Fprintf(c.ErrOrStderr(), "failed to parse %v id '%v': %v\n",
					singular, idStr, err)
				return
			}

			// fetch the record to modify
			itm, err := funcs.SelectSub(id)
			if err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
				return
			}

			var updated int
			var invalid string
			if script || anyFieldFlagChanged(c.Flags(), cfg) {
				updated, invalid, err = applyFlagEdits(c.Flags(), cfg, &itm, funcs)
			} else {
				updated, invalid, err = applyPromptEdits(cfg, &itm, funcs)
			}
			if err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
				return
			} else if invalid != "" {
				fmt.Fprintln(c.OutOrStdout(), invalid)
				return
			} else if updated < 1 {
				fmt.Fprintln(c.OutOrStdout(), noUpdateString)
				return
			}

			identifier, err := funcs.UpdateSub(&itm)
			if err != nil {
				clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error()+"\n")
				return
			}
			clilog.Writer.Infof("updated %v %v", singular, identifier)
			fmt.Fprintf(c.OutOrStdout(), successStringF+"\n", singular, identifier)
		})

	cmd.Flags().AddFlagSet(&fs)

	return cmd
}

// generateFlagSet builds the flagset of all fields in the Config, plus the --id flag.
func generateFlagSet(cfg Config, singular string) pflag.FlagSet {
	var fs pflag.FlagSet
	for _, field := range cfg {
		usage := ft.Optional(field.Usage)
		if field.FlagShorthand != 0 {
			fs.StringP(field.flag(), string(field.FlagShorthand), "", usage)
		} else {
			fs.String(field.flag(), "", usage)
		}
	}

	fs.StringP(ft.Name.ID, "i", "", ft.Mandatory(ft.Usage.ID(singular)))

	return fs
}

// anyFieldFlagChanged returns whether at least one field flag was set explicitly.
func anyFieldFlagChanged(fs *pflag.FlagSet, cfg Config) bool {
	for _, field := range cfg {
		if fs.Changed(field.flag()) {
			return true
		}
	}
	return false
}

// applyFlagEdits folds changed field flags into the record.
// Fields whose flag value matches the record's current value are skipped.
// Returns the count of fields actually altered.
func applyFlagEdits[I id_t, S any](fs *pflag.FlagSet, cfg Config, itm *S, funcs SubroutineSet[I, S]) (
	updated int, invalid string, err error,
) {
	for _, key := range orderedKeys(cfg) {
		field := cfg[key]
		if !fs.Changed(field.flag()) {
			continue
		}
		newVal, err := fs.GetString(field.flag())
		if err != nil {
			return updated, "", err
		}
		curVal, err := funcs.GetFieldSub(*itm, key)
		if err != nil {
			return updated, "", err
		}
		if newVal == curVal {
			clilog.Writer.Debugf("skipping field %v: unchanged value '%v'", key, newVal)
			continue
		}
		inv, err := funcs.SetFieldSub(itm, key, newVal)
		if err != nil {
			return updated, "", err
		} else if inv != "" {
			return updated, inv, nil
		}
		updated += 1
	}
	return updated, "", nil
}

// applyPromptEdits collects replacement values via a TI prompt seeded with the
// record's current values, then folds changes into the record.
func applyPromptEdits[I id_t, S any](cfg Config, itm *S, funcs SubroutineSet[I, S]) (
	updated int, invalid string, err error,
) {
	originals := make(map[string]string, len(cfg))
	for key := range cfg {
		cur, err := funcs.GetFieldSub(*itm, key)
		if err != nil {
			return 0, "", err
		}
		originals[key] = cur
	}

	values, err := promptValues(cfg, originals)
	if err != nil {
		return 0, "", err
	}

	for _, key := range orderedKeys(cfg) {
		newVal, found := values[key]
		if !found || newVal == originals[key] {
			continue
		}
		inv, err := funcs.SetFieldSub(itm, key, newVal)
		if err != nil {
			return updated, "", err
		} else if inv != "" {
			return updated, inv, nil
		}
		updated += 1
	}
	return updated, "", nil
}

// orderedKeys returns the config keys sorted from highest Order to lowest, then
// alphabetically for a stable traversal.
func orderedKeys(cfg Config) []string {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if d := cfg[b].Order - cfg[a].Order; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return keys
}
