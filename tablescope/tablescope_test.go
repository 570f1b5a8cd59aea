package tablescope

import (
	"errors"
	"testing"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
)

var testVariants = map[string]tablequery.Variant{
	"id":     tablequery.Number,
	"number": tablequery.Text,
	"status": tablequery.Select,
}

func testModel() model {
	fetch := func(p tablequery.Params) (tablequery.Result, error) {
		return tablequery.Result{}, nil
	}
	return newModel("accounts", []string{"id", "number", "status"}, testVariants,
		fetch, tablequery.Params{Limit: 25})
}

func TestApplyFetchDiscardsStale(t *testing.T) {
	m := testModel()
	m.seq = 3

	// an in-flight result from an older query must not land
	stale := fetchDone{seq: 2, res: tablequery.Result{
		Rows:  []map[string]any{{"id": float64(99)}},
		Total: 1,
	}}
	m = m.applyFetch(stale)
	if m.total != 0 || m.shown != 0 {
		t.Errorf("stale fetch was applied: total=%d shown=%d", m.total, m.shown)
	}

	// the current one does
	fresh := fetchDone{seq: 3, res: tablequery.Result{
		Rows:  []map[string]any{{"id": float64(1)}, {"id": float64(2)}},
		Total: 40,
	}}
	m = m.applyFetch(fresh)
	if m.total != 40 || m.shown != 2 {
		t.Errorf("fresh fetch was not applied: total=%d shown=%d", m.total, m.shown)
	}
}

func TestApplyFetchError(t *testing.T) {
	m := testModel()
	m.loading = true
	m = m.applyFetch(fetchDone{seq: 0, err: errors.New("boom")})
	if m.loading {
		t.Error("loading should clear on error")
	}
	if m.errStr != "boom" {
		t.Errorf("errStr = %q", m.errStr)
	}
}

func TestRequeryBumpsSequence(t *testing.T) {
	m := testModel()
	before := m.seq
	m, cmd := m.requery()
	if m.seq != before+1 {
		t.Errorf("seq = %d, want %d", m.seq, before+1)
	}
	if !m.loading {
		t.Error("requery should mark the model loading")
	}
	if cmd == nil {
		t.Error("requery should dispatch a fetch")
	}
}

func TestHasNextPage(t *testing.T) {
	m := testModel()
	m.params.Skip = 0
	m.shown = 25
	m.total = 40
	if !m.hasNextPage() {
		t.Error("expected a next page at 0+25 of 40")
	}

	m.params.Skip = 25
	m.shown = 15
	if m.hasNextPage() {
		t.Error("did not expect a next page at 25+15 of 40")
	}
}

func TestApplyInputSearch(t *testing.T) {
	m := testModel()
	m.params.Skip = 50
	m.mode = searching
	m, requery := m.applyInput("hello")
	if !requery {
		t.Error("search should trigger a requery")
	}
	if m.params.Search != "hello" {
		t.Errorf("Search = %q", m.params.Search)
	}
	if m.params.Skip != 0 {
		t.Error("search should rewind to the first page")
	}
}

func TestApplyInputFilter(t *testing.T) {
	m := testModel()
	m.mode = filtering

	m, requery := m.applyInput("status__eq=1")
	if !requery {
		t.Error("a valid filter should trigger a requery")
	}
	if len(m.params.Filters) != 1 || m.params.Filters[0].Field != "status" {
		t.Errorf("Filters = %+v", m.params.Filters)
	}

	// invalid input surfaces an error instead of querying
	m.mode = filtering
	m, requery = m.applyInput("bogus__eq=1")
	if requery {
		t.Error("an invalid filter should not trigger a requery")
	}
	if m.errStr == "" {
		t.Error("expected an error message")
	}
}

func TestApplyInputSortCycles(t *testing.T) {
	m := testModel()

	m.mode = sorting
	m, _ = m.applyInput("id")
	if len(m.params.Sorts) != 1 || m.params.Sorts[0].Desc {
		t.Fatalf("Sorts = %+v", m.params.Sorts)
	}

	m.mode = sorting
	m, _ = m.applyInput("id")
	if len(m.params.Sorts) != 1 || !m.params.Sorts[0].Desc {
		t.Fatalf("Sorts = %+v", m.params.Sorts)
	}

	m.mode = sorting
	m, _ = m.applyInput("id")
	if len(m.params.Sorts) != 0 {
		t.Fatalf("Sorts = %+v", m.params.Sorts)
	}
}

func TestApplyInputSortUnknownColumn(t *testing.T) {
	m := testModel()
	m.mode = sorting
	m, requery := m.applyInput("bogus")
	if requery {
		t.Error("unknown sort column should not trigger a requery")
	}
	if m.errStr == "" {
		t.Error("expected an error message")
	}
}

func TestBuildRows(t *testing.T) {
	rows := buildRows([]string{"id", "number"}, 20, []map[string]any{
		{"id": float64(21), "number": "111", "extra": "ignored"},
		{"id": float64(22)},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Data[indexKey] != "21" {
		t.Errorf("index = %v", rows[0].Data[indexKey])
	}
	if rows[0].Data["id"] != "21" || rows[0].Data["number"] != "111" {
		t.Errorf("row 0 = %+v", rows[0].Data)
	}
	if _, found := rows[0].Data["extra"]; found {
		t.Error("unrequested column should not be mapped")
	}
	if rows[1].Data["number"] != "" {
		t.Errorf("missing cell should be empty, got %v", rows[1].Data["number"])
	}
}

func TestDescribeQuery(t *testing.T) {
	p := tablequery.Params{
		Sorts:   []tablequery.Sort{{Field: "created_at", Desc: true}},
		Filters: []tablequery.Filter{{Field: "status", Op: tablequery.OpEq, Values: []string{"1"}}},
		Search:  "abc",
	}
	got := describeQuery(p)
	want := "sort:-created_at status=1 search:abc"
	if got != want {
		t.Errorf("describeQuery() = %q, want %q", got, want)
	}

	if describeQuery(tablequery.Params{}) != "" {
		t.Error("empty params should describe as empty")
	}
}
