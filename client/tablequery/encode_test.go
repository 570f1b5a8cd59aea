package tablequery

import (
	"net/url"
	"testing"
)

func TestEncodePagingExactlyOnce(t *testing.T) {
	tests := []struct {
		name      string
		p         Params
		wantSkip  string
		wantLimit string
	}{
		{"zero value", Params{}, "0", "100"},
		{"explicit", Params{Skip: 40, Limit: 20}, "40", "20"},
		{"negative skip clamps", Params{Skip: -5}, "0", "100"},
		{"limit clamps high", Params{Limit: 9999}, "0", "1000"},
		{"limit clamps low", Params{Limit: -1}, "0", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.p.Encode()
			if err != nil {
				t.Fatal(err)
			}
			if got := v["skip"]; len(got) != 1 || got[0] != tt.wantSkip {
				t.Errorf("skip = %v, want [%v]", got, tt.wantSkip)
			}
			if got := v["limit"]; len(got) != 1 || got[0] != tt.wantLimit {
				t.Errorf("limit = %v, want [%v]", got, tt.wantLimit)
			}
		})
	}
}

func TestEncodeOrderBy(t *testing.T) {
	p := Params{Sorts: []Sort{
		{Field: "created_at", Desc: true},
		{Field: "id"},
	}}
	v, err := p.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Get("order_by"); got != "-created_at,id" {
		t.Errorf("order_by = %q, want %q", got, "-created_at,id")
	}
	if len(v["order_by"]) != 1 {
		t.Errorf("order_by emitted %d times", len(v["order_by"]))
	}
}

func TestEncodeRejectsDuplicateSortField(t *testing.T) {
	p := Params{Sorts: []Sort{{Field: "id"}, {Field: "id", Desc: true}}}
	if _, err := p.Encode(); err == nil {
		t.Error("expected error on duplicate sort field")
	}
}

func TestEncodeFilters(t *testing.T) {
	tests := []struct {
		name    string
		f       Filter
		wantKey string
		wantVal string
	}{
		{"eq rides the bare field name", NewFilter("status", OpEq, "1"), "status", "1"},
		{"ne is spelled neq on the wire", NewFilter("type", OpNe, "2"), "type__neq", "2"},
		{"gte", NewFilter("created_at", OpGte, "2026-01-01"), "created_at__gte", "2026-01-01"},
		{"in joins", Filter{Field: "status", Op: OpIn, Values: []string{"1", "2", "3"}}, "status__in", "1,2,3"},
		{"not_in joins", Filter{Field: "geo", Op: OpNotIn, Values: []string{"us", "de"}}, "geo__not_in", "us,de"},
		{"isnull", NewFilter("sent_at", OpIsNull, "true"), "sent_at__isnull", "true"},
		{"ilike", NewFilter("number", OpIlike, "%4915%"), "number__ilike", "%4915%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Filters: []Filter{tt.f}}
			v, err := p.Encode()
			if err != nil {
				t.Fatal(err)
			}
			if got := v.Get(tt.wantKey); got != tt.wantVal {
				t.Errorf("%s = %q, want %q", tt.wantKey, got, tt.wantVal)
			}
		})
	}
}

func TestEncodeFilterErrors(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
	}{
		{"empty field", Filter{Op: OpEq, Values: []string{"x"}}},
		{"no value", Filter{Field: "status", Op: OpEq}},
		{"bad operator", Filter{Field: "status", Op: Op("bogus"), Values: []string{"1"}}},
		{"multi value on scalar op", Filter{Field: "status", Op: OpEq, Values: []string{"1", "2"}}},
		{"isnull non-bool", NewFilter("sent_at", OpIsNull, "yes")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Filters: []Filter{tt.f}}
			if _, err := p.Encode(); err == nil {
				t.Error("expected encode error")
			}
		})
	}
}

func TestEncodeIdempotentAndPure(t *testing.T) {
	p := Params{
		Skip:  20,
		Limit: 10,
		Sorts: []Sort{{Field: "msg_count", Desc: true}},
		Filters: []Filter{
			NewFilter("status", OpEq, "1"),
			{Field: "geo", Op: OpIn, Values: []string{"ru", "kz"}},
		},
		Search:       "test",
		SearchFields: []string{"number", "ext_id"},
	}
	first, err := p.EncodeString()
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.EncodeString()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("encode not stable:\n%s\n%s", first, second)
	}
	// the url package escapes and sorts keys; decode to verify content
	v, err := url.ParseQuery(first)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"skip": "20", "limit": "10",
		"order_by":      "-msg_count",
		"status":        "1",
		"geo__in":       "ru,kz",
		"search":        "test",
		"search_fields": "number,ext_id",
	}
	for k, wv := range want {
		if got := v.Get(k); got != wv {
			t.Errorf("%s = %q, want %q", k, got, wv)
		}
	}
	if len(v) != len(want) {
		t.Errorf("got %d params, want %d: %v", len(v), len(want), v)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	p := Params{Filters: []Filter{NewFilter("status", OpEq, "1")}}
	s, err := p.EncodeString()
	if err != nil {
		t.Fatal(err)
	}
	v, err := url.ParseQuery(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Get("status"); got != "1" {
		t.Errorf("status = %q after round trip", got)
	}
}

func TestEncodeNotEqualWireSpelling(t *testing.T) {
	// the server's operator registry only knows "neq"; an "__ne" parameter
	// would be silently ignored
	p := Params{Filters: []Filter{NewFilter("status", OpNe, "1")}}
	s, err := p.EncodeString()
	if err != nil {
		t.Fatal(err)
	}
	v, err := url.ParseQuery(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Get("status__neq"); got != "1" {
		t.Errorf("status__neq = %q, want %q", got, "1")
	}
	if v.Has("status__ne") {
		t.Error("encoded the unrecognized status__ne parameter")
	}
}

func TestToggleSort(t *testing.T) {
	var p Params
	p = p.ToggleSort("id")
	if len(p.Sorts) != 1 || p.Sorts[0] != (Sort{Field: "id"}) {
		t.Fatalf("after first toggle: %+v", p.Sorts)
	}
	p = p.ToggleSort("id")
	if len(p.Sorts) != 1 || !p.Sorts[0].Desc {
		t.Fatalf("after second toggle: %+v", p.Sorts)
	}
	p = p.ToggleSort("id")
	if len(p.Sorts) != 0 {
		t.Fatalf("after third toggle: %+v", p.Sorts)
	}
}

func TestToggleSortPreservesOthers(t *testing.T) {
	p := Params{Sorts: []Sort{{Field: "a"}, {Field: "b", Desc: true}}}
	got := p.ToggleSort("a")
	if len(got.Sorts) != 2 || !got.Sorts[0].Desc || got.Sorts[1].Field != "b" {
		t.Errorf("sorts = %+v", got.Sorts)
	}
	// the receiver is untouched
	if p.Sorts[0].Desc {
		t.Error("ToggleSort mutated its receiver")
	}
}

func TestWithFilterReplacesAndResetsSkip(t *testing.T) {
	p := Params{Skip: 200, Filters: []Filter{NewFilter("status", OpEq, "0")}}
	got := p.WithFilter(NewFilter("status", OpEq, "1"))
	if len(got.Filters) != 1 || got.Filters[0].Values[0] != "1" {
		t.Errorf("filters = %+v", got.Filters)
	}
	if got.Skip != 0 {
		t.Errorf("skip = %d, want 0", got.Skip)
	}
}

func TestPaging(t *testing.T) {
	p := Params{Limit: 25}
	p = p.NextPage()
	if p.Skip != 25 {
		t.Errorf("skip = %d after next, want 25", p.Skip)
	}
	p = p.PrevPage().PrevPage()
	if p.Skip != 0 {
		t.Errorf("skip = %d after double prev, want 0", p.Skip)
	}
}

func TestVariantCatalog(t *testing.T) {
	// the admitted sets mirror the filter fields the list endpoints declare;
	// anything wider would be silently dropped server-side
	if !Text.Admits(OpIlike) || Text.Admits(OpLike) || Text.Admits(OpIsNull) {
		t.Error("text catalog wrong")
	}
	if !Number.Admits(OpGt) || !Number.Admits(OpIn) || Number.Admits(OpGte) || Number.Admits(OpLte) {
		t.Error("number catalog wrong")
	}
	if !Date.Admits(OpGte) || Date.Admits(OpGt) {
		t.Error("date catalog wrong")
	}
	if !Boolean.Admits(OpEq) || Boolean.Admits(OpNe) {
		t.Error("boolean catalog wrong")
	}
	if !MultiSelect.Admits(OpIn) || MultiSelect.Admits(OpAll) || MultiSelect.Admits(OpNotIn) {
		t.Error("multiSelect catalog wrong")
	}
}

func TestParseOp(t *testing.T) {
	if op, err := ParseOp(""); err != nil || op != OpEq {
		t.Errorf("empty = %v, %v", op, err)
	}
	if op, err := ParseOp("not_in"); err != nil || op != OpNotIn {
		t.Errorf("not_in = %v, %v", op, err)
	}
	// both the user-facing and the wire spelling of not-equal resolve
	if op, err := ParseOp("ne"); err != nil || op != OpNe {
		t.Errorf("ne = %v, %v", op, err)
	}
	if op, err := ParseOp("neq"); err != nil || op != OpNe {
		t.Errorf("neq = %v, %v", op, err)
	}
	if _, err := ParseOp("regex"); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestOpSuffix(t *testing.T) {
	if got := OpEq.Suffix(); got != "" {
		t.Errorf("eq suffix = %q, want none", got)
	}
	if got := OpNe.Suffix(); got != "__neq" {
		t.Errorf("ne suffix = %q, want __neq", got)
	}
	if got := OpGte.Suffix(); got != "__gte" {
		t.Errorf("gte suffix = %q", got)
	}
}
