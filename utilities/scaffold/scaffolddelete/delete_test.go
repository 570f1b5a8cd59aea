package scaffolddelete

import (
	"testing"
)

func TestFetchFlagValues(t *testing.T) {
	fs := flags("widget")
	if err := fs.Parse([]string{"--id", "99", "--dryrun"}); err != nil {
		t.Fatal(err)
	}
	id, dryrun, err := fetchFlagValues[int64](&fs)
	if err != nil {
		t.Fatal(err)
	}
	if id != 99 || !dryrun {
		t.Errorf("got id %v dryrun %v, want 99 true", id, dryrun)
	}
}

func TestFetchFlagValuesUnset(t *testing.T) {
	fs := flags("widget")
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	id, dryrun, err := fetchFlagValues[int64](&fs)
	if err != nil {
		t.Fatal(err)
	}
	if id != 0 || dryrun {
		t.Errorf("got id %v dryrun %v, want zero values", id, dryrun)
	}
}

func TestFetchFlagValuesBadID(t *testing.T) {
	fs := flags("widget")
	if err := fs.Parse([]string{"--id", "not-a-number"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := fetchFlagValues[int64](&fs); err == nil {
		t.Error("expected an error for a non-numeric id")
	}
}

func TestConfirmModel(t *testing.T) {
	cm := newConfirmModel("widget", "7")
	cm.ti.SetValue("  YES ")
	if !cm.confirmed() {
		t.Error("case-insensitive, trimmed phrase should confirm")
	}

	cm.ti.SetValue("no")
	if cm.confirmed() {
		t.Error("non-matching phrase should not confirm")
	}

	cm.ti.SetValue("yes")
	cm.killed = true
	if cm.confirmed() {
		t.Error("a killed prompt should never confirm")
	}
}
