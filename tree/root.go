/*
Package tree supplies the root node of the command tree and the true "main" function.
Initializes itself and `Executes()`, triggering Cobra to assemble itself.
All singletons are instantiated here or via the cobra pre-run.
*/
package tree

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Copysiter/O3GO-WA/clilog"
	"github.com/Copysiter/O3GO-WA/connection"
	"github.com/Copysiter/O3GO-WA/group"
	"github.com/Copysiter/O3GO-WA/stylesheet"
	"github.com/Copysiter/O3GO-WA/tree/accounts"
	"github.com/Copysiter/O3GO-WA/tree/androids"
	"github.com/Copysiter/O3GO-WA/tree/messages"
	"github.com/Copysiter/O3GO-WA/tree/sessions"
	"github.com/Copysiter/O3GO-WA/tree/status"
	"github.com/Copysiter/O3GO-WA/tree/users"
	"github.com/Copysiter/O3GO-WA/utilities/cfgdir"
	"github.com/Copysiter/O3GO-WA/utilities/treeutils"
)

var profilerFile *os.File

// global PersistentPreRunE.
//
// Ensures the logger is set up and the user has logged into the gateway,
// completing these actions if either is false.
func ppre(cmd *cobra.Command, args []string) error {
	// set up the logger, if it is not already initialized
	if clilog.Writer == nil {
		path, err := cmd.Flags().GetString("log")
		if err != nil {
			return err
		}
		lvl, err := cmd.Flags().GetString("loglevel")
		if err != nil {
			return err
		}
		if err := clilog.Init(path, lvl); err != nil {
			return err
		}
	}

	if noColor, err := cmd.Flags().GetBool("no-color"); err != nil {
		clilog.LogFlagFailedGet("no-color", err)
	} else if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// if this is a 'complete' request, do not enforce login
	if cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
		return nil
	}

	// if this is a 'help' action, do not enforce login
	if cmd.Name() == "help" {
		return nil
	}

	// if a profiler was specified, spin one up targeting the given path
	if fn, err := cmd.Flags().GetString("profile"); err != nil {
		panic(err)
	} else if fn = strings.TrimSpace(fn); fn != "" {
		profilerFile, err = os.Create(fn)
		if err != nil {
			clilog.Writer.Warnf("Failed to create file for profiler: %v", err)
			profilerFile = nil
		} else {
			if err := pprof.StartCPUProfile(profilerFile); err != nil {
				clilog.Writer.Infof("failed to enable cpu profiler: %v", err)
			} else {
				clilog.Writer.Infof("started cpu profiler on %v", profilerFile.Name())
			}
		}
	}

	return EnforceLogin(cmd, args)
}

// EnforceLogin initializes the connection singleton, which logs the client into the
// gateway dictated by the --server flag.
// Safe (ineffectual) to call if already logged in.
func EnforceLogin(cmd *cobra.Command, _ []string) error {
	if connection.Client == nil { // if we just started, initialize connection
		server, err := cmd.Flags().GetString("server")
		if err != nil {
			return err
		}
		insecure, err := cmd.Flags().GetBool("insecure")
		if err != nil {
			return err
		}
		if err = connection.Initialize(server, !insecure, insecure, ""); err != nil {
			return err
		}
	}

	// generate credentials
	var (
		err    error
		script bool
		cred   connection.Credentials
	)
	if script, err = cmd.Flags().GetBool("script"); err != nil {
		return err
	}
	if cred.Username, err = cmd.Flags().GetString("username"); err != nil {
		return err
	}
	if cred.Password, err = cmd.Flags().GetString("password"); err != nil {
		return err
	}
	if cred.PassfilePath, err = cmd.Flags().GetString("passfile"); err != nil {
		return err
	}

	// password and passfile are marked mutually exclusive, so we do not have to check here

	// need to check that, if password/passfile are supplied, username is also supplied
	if (cred.PassfilePath != "" || cred.Password != "") && cred.Username == "" {
		return errors.New("if password or passfile are specified, you must also specify username (-u)")
	}

	// pass all information to Login to decide how to proceed
	if err := connection.Login(cred, script); err != nil {
		return err
	}

	clilog.Writer.Infof("Logged in successfully")

	return nil
}

// global PersistentPostRunE.
// Ensure the client connection to the gateway is dead.
func ppost(_ *cobra.Command, _ []string) error {
	if err := connection.End(); err != nil {
		clilog.Writer.Debugf("failed to destroy connection singleton: %v", err)
	}

	pprof.StopCPUProfile() // idempotent if no profiler is running
	// if a profiler was enabled, make sure we flush it
	if profilerFile != nil {
		profilerFile.Sync()
		profilerFile.Close()
	}

	return nil
}

// GenerateFlags populates all root-relevant flags (ergo global and root-local flags)
func GenerateFlags(root *cobra.Command) {
	// global flags
	root.PersistentFlags().Bool("script", false,
		"disallows wactl from entering interactive mode and prints context help instead.\n"+
			"Recommended for use in scripts to avoid hanging on a malformed command.")
	root.PersistentFlags().StringP("username", "u", "", "login credential.")
	root.PersistentFlags().String("password", "", "login credential.")
	root.PersistentFlags().StringP("passfile", "p", "", "the path to a file containing your password")

	root.MarkFlagsMutuallyExclusive("password", "passfile")

	root.PersistentFlags().Bool("no-color", false, "disables colourized output.")
	root.PersistentFlags().String("server", "localhost:80", "<host>:<port> of the gateway to connect to.\n")
	root.PersistentFlags().StringP("log", "l", cfgdir.DefaultStdLogPath, "log location for developer logs.\n")
	root.PersistentFlags().String("loglevel", "DEBUG", "log level for developer logs (-l).\n"+
		"Possible values: 'OFF', 'DEBUG', 'INFO', 'WARN', 'ERROR', 'CRITICAL', 'FATAL'.\n")
	root.PersistentFlags().Bool("insecure", false, "do not use HTTPS and do not enforce certs.")
	root.PersistentFlags().String("profile", "", "spins up the native CPU profiler to log samples (in pprof format) into the given path")
	root.PersistentFlags().MarkHidden("profile")
}

const ( // usage
	use   string = "wactl"
	short string = "WhatsApp gateway CLI client"
)

// must be variable to allow lipgloss formatting
var long string = "wactl is a CLI client for administering your messaging gateway directly " +
	"from your terminal.\n" +
	"It can be used non-interactively in your scripts or interactively via the built-in TUIs.\n" +
	"You can view help for any submenu or action by providing help a path.\n" +
	"For instance, try: " + stylesheet.Sheet.ExampleText.Render("wactl help accounts create") +
	" or " + stylesheet.Sheet.ExampleText.Render("wactl messages list -h")

const ( // mousetrap
	mousetrapText string = "This is a command line tool.\n" +
		"You need to open wactl.exe and run it from there.\n" +
		"Press Return to close.\n"
	mousetrapDuration time.Duration = (0 * time.Second)
)

// Execute adds all child commands to the root command, sets flags appropriately, and
// launches the program according to the given parameters
// (via cobra.Command.Execute()).
func Execute(args []string) int {
	// spawn the cobra commands in parallel
	var cmdFn = []func() *cobra.Command{
		accounts.NewAccountsNav,
		sessions.NewSessionsNav,
		messages.NewMessagesNav,
		users.NewUsersNav,
		androids.NewAndroidsNav,
	}

	var (
		cmds  []*cobra.Command
		resCh = make(chan *cobra.Command)
	)
	for _, fn := range cmdFn {
		go func(f func() *cobra.Command) {
			// execute the builder and send the command pointer to the dispatcher
			resCh <- f()
		}(fn)
	}
	for range cmdFn { // wait for an equal number of results
		cmds = append(cmds, <-resCh)
	}

	rootCmd := treeutils.GenerateNav(use, short, long, []string{},
		cmds,
		[]*cobra.Command{
			status.NewStatusAction(),
		})
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = ppre
	rootCmd.PersistentPostRunE = ppost
	rootCmd.Version = "alpha 1"

	// associate flags
	GenerateFlags(rootCmd)

	if !rootCmd.AllChildCommandsHaveGroup() {
		panic("some children missing a group")
	}

	// configure the completion command as an action
	rootCmd.SetCompletionCommandGroupID(group.ActionID)

	// configure Windows mouse trap
	cobra.MousetrapHelpText = mousetrapText
	cobra.MousetrapDisplayDuration = mousetrapDuration

	// if args were given (ex: we are in testing mode)
	// use those instead of os.Args
	if args != nil {
		rootCmd.SetArgs(args)
	}

	rootCmd.SetUsageFunc(Usage)

	err := rootCmd.Execute()
	if err != nil {
		return 1
	}

	return 0
}

// Usage provides a replacement for cobra's usage command, dynamically building the usage
// based on the full path the user gave.
func Usage(c *cobra.Command) error {
	var bldr strings.Builder
	// pull off first string, recombine the rest to retrieve a usable path sans root
	root, path := func() (string, string) {
		p := strings.Split(c.CommandPath(), " ")
		if len(p) < 1 { // should be impossible
			clilog.Writer.Critical("exploded command path is zero-length")
			return "UNKNOWN", "UNKNOWN"
		}
		return p[0], strings.Join(p[1:], " ")
	}()

	header := stylesheet.Sheet.PrimaryText

	bldr.WriteString(header.Render("Usage:") +
		strings.TrimRight(fmt.Sprintf(" %v %s", root, path), " "))

	if c.GroupID == group.NavID { // nav
		bldr.WriteString(" [subcommand]\n")
	} else { // action
		bldr.WriteString(" [flags]\n\n")
		bldr.WriteString(header.Render("Local Flags:") + "\n")
		bldr.WriteString(c.LocalNonPersistentFlags().FlagUsages())
	}

	bldr.WriteRune('\n')

	if c.HasExample() {
		bldr.WriteString(header.Render("Example:") + " " + c.Example + "\n\n")
	}

	bldr.WriteString(header.Render("Global Flags:") + "\n")
	bldr.WriteString(c.Root().PersistentFlags().FlagUsages())

	bldr.WriteRune('\n')

	// print aliases
	if len(c.Aliases) != 0 {
		bldr.WriteString(header.Render("Aliases:") + " " +
			strings.Join(c.Aliases, ", ") + "\n")
	}

	// print subcommands, grouped by nav/action
	if c.HasAvailableSubCommands() {
		var navs, actions []string
		for _, sub := range c.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			line := fmt.Sprintf("  %-16s %s", sub.Name(), sub.Short)
			if sub.GroupID == group.NavID {
				navs = append(navs, line)
			} else {
				actions = append(actions, line)
			}
		}
		if len(navs) > 0 {
			bldr.WriteString(header.Render("Submenus:") + "\n" +
				strings.Join(navs, "\n") + "\n")
		}
		if len(actions) > 0 {
			bldr.WriteString(header.Render("Actions:") + "\n" +
				strings.Join(actions, "\n") + "\n")
		}
	}

	fmt.Fprint(c.OutOrStdout(), bldr.String())

	return nil
}
