package querysupport

import (
	"reflect"
	"testing"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
)

var testVariants = map[string]tablequery.Variant{
	"id":         tablequery.Number,
	"number":     tablequery.Text,
	"status":     tablequery.Select,
	"geo":        tablequery.MultiSelect,
	"created_at": tablequery.DateRange,
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    tablequery.Filter
		wantErr bool
	}{
		{"explicit operator", "status__eq=1",
			tablequery.Filter{Field: "status", Op: tablequery.OpEq, Values: []string{"1"}}, false},
		{"implied equality", "status=1",
			tablequery.Filter{Field: "status", Op: tablequery.OpEq, Values: []string{"1"}}, false},
		{"list operator splits on commas", "geo__in=RU,KZ,UA",
			tablequery.Filter{Field: "geo", Op: tablequery.OpIn, Values: []string{"RU", "KZ", "UA"}}, false},
		{"range lower bound", "created_at__gte=2026-01-01",
			tablequery.Filter{Field: "created_at", Op: tablequery.OpGte, Values: []string{"2026-01-01"}}, false},
		{"value containing equals", "number__ilike=a=b",
			tablequery.Filter{Field: "number", Op: tablequery.OpIlike, Values: []string{"a=b"}}, false},
		{"wire spelling of not-equal", "status__neq=1",
			tablequery.Filter{Field: "status", Op: tablequery.OpNe, Values: []string{"1"}}, false},
		{"user spelling of not-equal", "status__ne=1",
			tablequery.Filter{Field: "status", Op: tablequery.OpNe, Values: []string{"1"}}, false},
		{"no value", "status__eq", tablequery.Filter{}, true},
		{"empty column", "__eq=1", tablequery.Filter{}, true},
		{"unknown column", "bogus__eq=1", tablequery.Filter{}, true},
		{"unknown operator", "status__frobnicate=1", tablequery.Filter{}, true},
		{"operator not admitted by variant", "status__gte=1", tablequery.Filter{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.raw, testVariants)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFilter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFilterNoVariants(t *testing.T) {
	// a nil variant map means anything goes
	got, err := ParseFilter("whatever__lt=5", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Field != "whatever" || got.Op != tablequery.OpLt {
		t.Errorf("ParseFilter() = %+v", got)
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    tablequery.Sort
		wantErr bool
	}{
		{"ascending", "id", tablequery.Sort{Field: "id"}, false},
		{"descending", "-created_at", tablequery.Sort{Field: "created_at", Desc: true}, false},
		{"empty", "", tablequery.Sort{}, true},
		{"bare dash", "-", tablequery.Sort{}, true},
		{"unknown column", "bogus", tablequery.Sort{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.raw, testVariants)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSort() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSort() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCollectParams(t *testing.T) {
	fs := QueryFlagSet("records")
	if err := fs.Parse([]string{
		"--skip", "40",
		"--limit", "20",
		"--sort", "-created_at",
		"--sort", "id",
		"--filter", "status__eq=1",
		"--filter", "geo__in=RU,KZ",
		"--search", " hello ",
	}); err != nil {
		t.Fatal(err)
	}

	p, err := CollectParams(fs, testVariants)
	if err != nil {
		t.Fatal(err)
	}
	if p.Skip != 40 || p.Limit != 20 {
		t.Errorf("bad paging: %+v", p)
	}
	if len(p.Sorts) != 2 || !p.Sorts[0].Desc || p.Sorts[1].Field != "id" {
		t.Errorf("bad sorts: %+v", p.Sorts)
	}
	if len(p.Filters) != 2 {
		t.Errorf("bad filters: %+v", p.Filters)
	}
	if p.Search != "hello" {
		t.Errorf("search not trimmed: %q", p.Search)
	}
}

func TestCollectParamsDefaults(t *testing.T) {
	fs := QueryFlagSet("records")
	if err := fs.Parse([]string{}); err != nil {
		t.Fatal(err)
	}
	p, err := CollectParams(fs, testVariants)
	if err != nil {
		t.Fatal(err)
	}
	if p.Skip != 0 || p.Limit != tablequery.DefaultLimit {
		t.Errorf("bad defaults: %+v", p)
	}
	if len(p.Sorts) != 0 || len(p.Filters) != 0 || p.Search != "" {
		t.Errorf("expected empty query, got %+v", p)
	}
}

func TestCollectParamsBadFilter(t *testing.T) {
	fs := QueryFlagSet("records")
	if err := fs.Parse([]string{"--filter", "bogus__eq=1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := CollectParams(fs, testVariants); err == nil {
		t.Error("expected an error for an unknown column")
	}
}
