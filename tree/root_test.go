package tree

import (
	"slices"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Copysiter/O3GO-WA/group"
	"github.com/Copysiter/O3GO-WA/tree/accounts"
	"github.com/Copysiter/O3GO-WA/tree/androids"
	"github.com/Copysiter/O3GO-WA/tree/messages"
	"github.com/Copysiter/O3GO-WA/tree/sessions"
	"github.com/Copysiter/O3GO-WA/tree/users"
)

// The nav builders panic on developer errors (bad field configs, unknown columns,
// missing subroutines), so constructing each one is a meaningful smoke test.
func TestNavConstruction(t *testing.T) {
	builders := map[string]func() *cobra.Command{
		"accounts": accounts.NewAccountsNav,
		"sessions": sessions.NewSessionsNav,
		"messages": messages.NewMessagesNav,
		"users":    users.NewUsersNav,
		"androids": androids.NewAndroidsNav,
	}

	for name, build := range builders {
		nav := build()
		if nav.Name() != name {
			t.Errorf("nav %v: unexpected name %v", name, nav.Name())
		}
		if nav.GroupID != group.NavID {
			t.Errorf("nav %v: not in the nav group", name)
		}

		var childNames []string
		for _, sub := range nav.Commands() {
			if sub.GroupID == "" {
				t.Errorf("nav %v: child %v has no group", name, sub.Name())
			}
			childNames = append(childNames, sub.Name())
		}
		for _, want := range []string{"list", "create", "edit", "delete"} {
			if !slices.Contains(childNames, want) {
				t.Errorf("nav %v: missing %v action", name, want)
			}
		}
	}
}

func TestRootFlags(t *testing.T) {
	root := &cobra.Command{Use: "wactl"}
	GenerateFlags(root)

	for _, f := range []string{"script", "username", "password", "passfile",
		"no-color", "server", "log", "loglevel", "insecure"} {
		if root.PersistentFlags().Lookup(f) == nil {
			t.Errorf("missing persistent flag --%v", f)
		}
	}
}
