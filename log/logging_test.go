package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newFileLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), `test.log`)
	lgr, err := NewFile(p)
	if err != nil {
		t.Fatal(err)
	}
	return lgr, p
}

func TestNewFile(t *testing.T) {
	lgr, _ := newFileLogger(t)
	if err := lgr.Criticalf("test: %d", 99); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestAppend(t *testing.T) {
	p := filepath.Join(t.TempDir(), `test.log`)
	for i := 0; i < 2; i++ {
		lgr, err := NewFile(p)
		if err != nil {
			t.Fatal(err)
		}
		if err := lgr.Errorf("round %d", i); err != nil {
			t.Fatal(err)
		}
		if err := lgr.Close(); err != nil {
			t.Fatal(err)
		}
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(b), "round "); got != 2 {
		t.Fatalf("expected 2 appended records, got %d", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	lgr, p := newFileLogger(t)
	if err := lgr.SetLevelString("ERROR"); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Debugf("dropped"); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Errorf("kept"); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "dropped") {
		t.Error("debug line should have been filtered")
	}
	if !strings.Contains(string(b), "kept") {
		t.Error("error line is missing")
	}
}

func TestLevelFromString(t *testing.T) {
	if l, err := LevelFromString("warn"); err != nil || l != WARN {
		t.Errorf("warn = %v, %v", l, err)
	}
	if _, err := LevelFromString("verbose"); err != ErrInvalidLevel {
		t.Errorf("err = %v, want ErrInvalidLevel", err)
	}
}

func TestClosedLogger(t *testing.T) {
	lgr, _ := newFileLogger(t)
	if err := lgr.Close(); err != nil {
		t.Fatal(err)
	}
	if err := lgr.Infof("after close"); err != ErrNotOpen {
		t.Errorf("err = %v, want ErrNotOpen", err)
	}
	if lgr.GetLevel() != OFF {
		t.Error("closed logger should report OFF")
	}
}
