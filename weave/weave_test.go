package weave

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type owner struct {
	ID    int
	Login string
}

type record struct {
	ID      int
	Number  string
	Status  int
	Tags    []string
	Created time.Time
	Owner   *owner
	hidden  string
}

func TestToCSV(t *testing.T) {
	type args struct {
		st      []record
		columns []string
	}

	tests := []struct {
		name string
		args args
		want string
	}{
		{"single column single row",
			args{
				st:      []record{{ID: 10, Number: "79991234567"}},
				columns: []string{"ID"}},
			"ID\n" + "10",
		},
		{"multiple columns multiple rows",
			args{
				st: []record{
					{ID: 1, Number: "111", Status: 0},
					{ID: 2, Number: "222", Status: 1}},
				columns: []string{"ID", "Number", "Status"}},
			"ID,Number,Status\n" + "1,111,0\n" + "2,222,1",
		},
		{"nested column",
			args{
				st:      []record{{ID: 3, Owner: &owner{ID: 7, Login: "admin"}}},
				columns: []string{"ID", "Owner.Login"}},
			"ID,Owner.Login\n" + "3,admin",
		},
		{"nil pointer leaves cell empty",
			args{
				st:      []record{{ID: 4}},
				columns: []string{"ID", "Owner.Login"}},
			"ID,Owner.Login\n" + "4,",
		},
		{"unknown column skipped",
			args{
				st:      []record{{ID: 5}},
				columns: []string{"ID", "Bogus"}},
			"ID,Bogus\n" + "5,",
		},
		{"no columns",
			args{
				st:      []record{{ID: 5}},
				columns: []string{}},
			"",
		},
		{"no rows",
			args{
				st:      []record{},
				columns: []string{"ID"}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCSV(tt.args.st, tt.args.columns, CSVOptions{}); got != tt.want {
				t.Errorf("ToCSV() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToCSVAliases(t *testing.T) {
	st := []record{{ID: 1, Number: "111"}}
	got := ToCSV(st, []string{"ID", "Number"}, CSVOptions{Aliases: map[string]string{"Number": "phone"}})
	want := "ID,phone\n" + "1,111"
	if got != want {
		t.Errorf("ToCSV() = %v, want %v", got, want)
	}
}

func TestToTable(t *testing.T) {
	st := []record{
		{ID: 1, Number: "111", Owner: &owner{Login: "admin"}},
		{ID: 2, Number: "222"},
	}
	// the pinned lipgloss sizes columns from row content only and truncates
	// headers, so give each cell an explicit width (teacher-style workaround)
	base := func() *table.Table {
		return table.New().StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Width(12)
		})
	}
	got := ToTable(st, []string{"ID", "Number", "Owner.Login"}, TableOptions{Base: base})
	for _, expected := range []string{"ID", "Number", "admin", "222", "nil"} {
		if !strings.Contains(got, expected) {
			t.Errorf("table missing %q:\n%v", expected, got)
		}
	}

	if got := ToTable([]record{}, []string{"ID"}, TableOptions{}); got != "" {
		t.Errorf("expected empty string for empty input, got %v", got)
	}
}

func TestToJSON(t *testing.T) {
	st := []record{
		{ID: 1, Number: "111", Status: 2, Tags: []string{"a", "b"}},
		{ID: 2},
	}
	got, err := ToJSON(st, []string{"ID", "Number", "Status", "Tags", "Owner.Login"}, JSONOptions{})
	if err != nil {
		t.Fatal(err)
	}

	// output must be valid JSON with native typing intact
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%v", err, got)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded))
	}
	if decoded[0]["ID"] != float64(1) {
		t.Errorf("expected numeric ID, got %T %v", decoded[0]["ID"], decoded[0]["ID"])
	}
	if decoded[0]["Number"] != "111" {
		t.Errorf("bad Number: %v", decoded[0]["Number"])
	}
	tags, ok := decoded[0]["Tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("bad Tags: %v", decoded[0]["Tags"])
	}
	// nil pointer along the path nils out the nested key
	nested, ok := decoded[1]["Owner"].(map[string]any)
	if !ok || nested["Login"] != nil {
		t.Errorf("expected nil Owner.Login, got %v", decoded[1]["Owner"])
	}
}

func TestToJSONEmpty(t *testing.T) {
	got, err := ToJSON([]record{}, []string{"ID"}, JSONOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got != "[]" {
		t.Errorf("expected empty array, got %v", got)
	}
}

func TestStructFields(t *testing.T) {
	cols, err := StructFields(record{}, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ID", "Number", "Status", "Tags", "Created", "Owner.ID", "Owner.Login"}
	if !reflect.DeepEqual(cols, want) {
		t.Errorf("StructFields() = %v, want %v", cols, want)
	}

	// unexported fields are included when exportedOnly is unset
	cols, err = StructFields(record{}, false)
	if err != nil {
		t.Fatal(err)
	}
	var foundHidden bool
	for _, c := range cols {
		if c == "hidden" {
			foundHidden = true
		}
	}
	if !foundHidden {
		t.Errorf("expected unexported field in %v", cols)
	}
}

func TestStructFieldsErrors(t *testing.T) {
	if _, err := StructFields(nil, true); err == nil {
		t.Error("expected error on nil")
	}
	if _, err := StructFields(5, true); err == nil {
		t.Error("expected error on non-struct")
	}
}

func TestFindQualifiedField(t *testing.T) {
	field, found, index, err := FindQualifiedField[record]("Owner.Login", record{})
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected to find Owner.Login")
	}
	if field.Name != "Login" {
		t.Errorf("bad field name: %v", field.Name)
	}
	if len(index) != 2 {
		t.Errorf("expected 2-step index path, got %v", index)
	}

	_, found, _, err = FindQualifiedField[record]("Owner.Bogus", record{})
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("should not have found Owner.Bogus")
	}
}
