// Package treeutils provides functions for creating the cobra command tree.
// It has been extracted into its own package to avoid import cycles.
package treeutils

import (
	"strings"

	"github.com/Copysiter/O3GO-WA/group"

	"github.com/spf13/cobra"
)

// GenerateNav creates and returns a Nav (tree node) that can now be assigned subcommands.
func GenerateNav(use, short, long string, aliases []string,
	navCmds []*cobra.Command, actionCmds []*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:     strings.ToLower(use),
		Short:   strings.ToLower(short),
		Long:    long,
		Aliases: aliases,
		GroupID: group.NavID,
		Run:     NavRun,
	}

	// associate groups available to this (and all) navs
	group.AddNavGroup(cmd)
	group.AddActionGroup(cmd)

	// associate subcommands
	for _, sub := range navCmds {
		cmd.AddCommand(sub)
	}
	for _, sub := range actionCmds {
		cmd.AddCommand(sub)
	}

	return cmd
}

// NewActionCommand returns a boilerplate action command (tree leaf) that can be called directly.
func NewActionCommand(use, short, long string, aliases []string,
	runFunc func(*cobra.Command, []string)) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		Aliases: aliases,
		GroupID: group.ActionID,
		Run:     runFunc,
	}

	cmd.SilenceUsage = true

	return cmd
}

// NavRun is the Run function for all Navs (nodes).
// A nav invoked bare has nothing to do but describe its children.
var NavRun = func(cmd *cobra.Command, args []string) {
	cmd.Help()
}
