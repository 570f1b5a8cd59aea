package scaffoldcreate

import (
	"slices"
	"testing"
)

func testConfig() Config {
	return Config{
		"name":  NewField(true, "name", 100),
		"value": NewField(false, "value", 90),
	}
}

func TestGetValuesFromFlags(t *testing.T) {
	fields := testConfig()
	fs := installFlagsFromFields(fields)
	if err := fs.Parse([]string{"--name", "morning", "--value", "hello"}); err != nil {
		t.Fatal(err)
	}

	values, missing, err := getValuesFromFlags(&fs, fields)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("unexpected missing requireds: %v", missing)
	}
	if values["name"] != "morning" || values["value"] != "hello" {
		t.Errorf("bad values: %+v", values)
	}
}

func TestGetValuesFromFlagsMissingRequired(t *testing.T) {
	fields := testConfig()
	fs := installFlagsFromFields(fields)
	if err := fs.Parse([]string{"--value", "hello"}); err != nil {
		t.Fatal(err)
	}

	_, missing, err := getValuesFromFlags(&fs, fields)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(missing, "name") {
		t.Errorf("expected name in missing requireds, got %v", missing)
	}
}

func TestPromptModelOrdering(t *testing.T) {
	fields := testConfig()
	p := newPromptModel(fields, Values{"name": "seeded"})

	// highest order first
	if p.orderedTIs[0].Key != "name" || p.orderedTIs[1].Key != "value" {
		t.Fatalf("bad ordering: %v, %v", p.orderedTIs[0].Key, p.orderedTIs[1].Key)
	}
	// seed value carried into the TI
	if p.orderedTIs[0].TI.Value() != "seeded" {
		t.Errorf("seed value not applied: %q", p.orderedTIs[0].TI.Value())
	}
	// first TI focused
	if !p.orderedTIs[0].TI.Focused() {
		t.Error("first TI should be focused")
	}
}

func TestPromptModelMissingRequireds(t *testing.T) {
	p := newPromptModel(testConfig(), Values{})
	missing := p.missingRequireds()
	if len(missing) != 1 || missing[0] != "name" {
		t.Errorf("missingRequireds() = %v", missing)
	}

	p.orderedTIs[0].TI.SetValue("x")
	if p.missingRequireds() != nil {
		t.Error("expected no missing requireds once populated")
	}
}

func TestPromptModelFocusWraps(t *testing.T) {
	p := newPromptModel(testConfig(), Values{})
	p = p.focus(1)
	if p.selected != 1 || !p.orderedTIs[1].TI.Focused() || p.orderedTIs[0].TI.Focused() {
		t.Errorf("focus(1) did not move focus")
	}
	p = p.focus(2) // wraps to 0
	if p.selected != 0 {
		t.Errorf("focus should wrap to 0, got %d", p.selected)
	}
	p = p.focus(-1) // wraps to end
	if p.selected != 1 {
		t.Errorf("focus should wrap to end, got %d", p.selected)
	}
}

func TestNewFieldDerivesFlagName(t *testing.T) {
	f := NewField(true, "Info 1", 50)
	if f.FlagName != "info-1" {
		t.Errorf("FlagName = %q", f.FlagName)
	}
}
