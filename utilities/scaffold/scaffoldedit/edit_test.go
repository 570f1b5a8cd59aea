package scaffoldedit

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/Copysiter/O3GO-WA/clilog"
)

type widget struct {
	ID    int64
	Name  string
	Notes string
}

func testConfig() Config {
	return Config{
		"name": &Field{
			Required: true,
			Title:    "name",
			Usage:    "display name of the widget",
			Order:    100,
		},
		"notes": &Field{
			Title: "notes",
			Usage: "free-form notes",
			Order: 90,
		},
	}
}

func testFuncs(store *widget, updated *bool) SubroutineSet[int64, widget] {
	return SubroutineSet[int64, widget]{
		SelectSub: func(id int64) (widget, error) {
			if id != store.ID {
				return widget{}, ErrUnknownID(id)
			}
			return *store, nil
		},
		GetFieldSub: func(itm widget, key string) (string, error) {
			switch key {
			case "name":
				return itm.Name, nil
			case "notes":
				return itm.Notes, nil
			}
			return "", ErrUnknownField(key)
		},
		SetFieldSub: func(itm *widget, key, val string) (string, error) {
			switch key {
			case "name":
				if val == "" {
					return "name cannot be empty", nil
				}
				itm.Name = val
			case "notes":
				itm.Notes = val
			default:
				return "", ErrUnknownField(key)
			}
			return "", nil
		},
		UpdateSub: func(itm *widget) (string, error) {
			*store = *itm
			*updated = true
			return itm.Name, nil
		},
	}
}

func initTestLogger(t *testing.T) {
	t.Helper()
	if err := clilog.Init(filepath.Join(t.TempDir(), "edit_test.log"), "DEBUG"); err != nil {
		t.Fatal(err)
	}
}

func flagsFor(t *testing.T, cfg Config, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := generateFlagSet(cfg, "widget")
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return &fs
}

func TestApplyFlagEdits(t *testing.T) {
	initTestLogger(t)
	cfg := testConfig()
	store := widget{ID: 7, Name: "alpha", Notes: "old"}
	var committed bool
	funcs := testFuncs(&store, &committed)

	itm := store
	fs := flagsFor(t, cfg, "--name", "beta", "--notes", "old")

	updated, invalid, err := applyFlagEdits(fs, cfg, &itm, funcs)
	if err != nil {
		t.Fatal(err)
	}
	if invalid != "" {
		t.Fatalf("unexpected invalid reason %q", invalid)
	}
	// notes matched the current value and must not count as a change
	if updated != 1 {
		t.Fatalf("expected 1 updated field, got %d", updated)
	}
	if itm.Name != "beta" || itm.Notes != "old" {
		t.Fatalf("unexpected item state: %+v", itm)
	}
}

func TestApplyFlagEditsNoChanges(t *testing.T) {
	initTestLogger(t)
	cfg := testConfig()
	store := widget{ID: 7, Name: "alpha", Notes: "old"}
	var committed bool
	funcs := testFuncs(&store, &committed)

	itm := store
	fs := flagsFor(t, cfg, "--name", "alpha")

	updated, invalid, err := applyFlagEdits(fs, cfg, &itm, funcs)
	if err != nil || invalid != "" {
		t.Fatalf("unexpected outcome (invalid %q, err %v)", invalid, err)
	}
	if updated != 0 {
		t.Fatalf("expected 0 updated fields, got %d", updated)
	}
}

func TestApplyFlagEditsInvalidValue(t *testing.T) {
	initTestLogger(t)
	cfg := testConfig()
	store := widget{ID: 7, Name: "alpha"}
	var committed bool
	funcs := testFuncs(&store, &committed)

	itm := store
	fs := flagsFor(t, cfg, "--name", "")

	_, invalid, err := applyFlagEdits(fs, cfg, &itm, funcs)
	if err != nil {
		t.Fatal(err)
	}
	if invalid == "" {
		t.Fatal("expected an invalid reason for the empty name")
	}
}

func TestAnyFieldFlagChanged(t *testing.T) {
	cfg := testConfig()
	if anyFieldFlagChanged(flagsFor(t, cfg, "--id", "7"), cfg) {
		t.Error("--id alone should not count as a field change")
	}
	if !anyFieldFlagChanged(flagsFor(t, cfg, "--notes", "x"), cfg) {
		t.Error("--notes should count as a field change")
	}
}

func TestOrderedKeys(t *testing.T) {
	cfg := testConfig()
	keys := orderedKeys(cfg)
	if len(keys) != 2 || keys[0] != "name" || keys[1] != "notes" {
		t.Errorf("unexpected key order: %v", keys)
	}
}

func TestGuaranteePanicsOnMissingSub(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for the nil update sub")
		}
	}()
	funcs := SubroutineSet[int64, widget]{
		SelectSub:   func(int64) (widget, error) { return widget{}, nil },
		GetFieldSub: func(widget, string) (string, error) { return "", nil },
		SetFieldSub: func(*widget, string, string) (string, error) { return "", nil },
	}
	funcs.guarantee()
}

func TestEditModelSeedAndOrdering(t *testing.T) {
	cfg := testConfig()
	em := newEditModel(cfg, map[string]string{"name": "alpha", "notes": "old"})
	if len(em.orderedTIs) != 2 {
		t.Fatalf("expected 2 TIs, got %d", len(em.orderedTIs))
	}
	if em.orderedTIs[0].Key != "name" || em.orderedTIs[1].Key != "notes" {
		t.Errorf("unexpected TI order: %v, %v", em.orderedTIs[0].Key, em.orderedTIs[1].Key)
	}
	vals := em.values()
	if vals["name"] != "alpha" || vals["notes"] != "old" {
		t.Errorf("seed values not applied: %v", vals)
	}
	if !em.orderedTIs[0].TI.Focused() {
		t.Error("first TI should start focused")
	}
}

func TestEditModelMissingRequireds(t *testing.T) {
	cfg := testConfig()
	em := newEditModel(cfg, map[string]string{"name": "", "notes": "x"})
	missing := em.missingRequireds()
	if len(missing) != 1 || missing[0] != "name" {
		t.Errorf("unexpected missing requireds: %v", missing)
	}
}

func TestErrUnknownID(t *testing.T) {
	err := ErrUnknownID(int64(42))
	if err == nil || err.Error() != "unknown id 42" {
		t.Errorf("unexpected error: %v", err)
	}
	if ErrUnknownField("x").Error() != "unknown field x" {
		t.Error("unexpected unknown field message")
	}
}
