package tablequery

import (
	"fmt"

	"github.com/Jeffail/gabs/v2"
)

// Result is a normalized list response: free-form rows plus the total row
// count across all pages.
type Result struct {
	Rows  []map[string]any
	Total int
}

// A FetchFunc retrieves one normalized page of rows for the given query.
type FetchFunc func(Params) (Result, error)

// rowKeys are the envelope keys probed, in order, for the row array when the
// response is an object rather than a bare array.
var rowKeys = []string{"data", "items", "results"}

// Normalize coerces a list response body into a Result.
// Accepted shapes, in order of preference:
//
//	[ {...}, ... ]
//	{ "data":    [...], "total": n }
//	{ "items":   [...] }
//	{ "results": [...] }
//
// The probe order is part of the contract and must not change. For a bare
// array Total is the array length; for an envelope a top-level numeric
// "total" wins, otherwise Total falls back to the number of rows kept.
// Entries that are not objects are skipped (a Row is a field to value
// mapping) without reducing a bare array's Total. Valid JSON of any other
// shape yields an empty Result rather than an error, so a misbehaving
// endpoint degrades to an empty table instead of a dead one. Only malformed
// JSON errors out.
func Normalize(raw []byte) (Result, error) {
	if len(raw) == 0 {
		return Result{Rows: []map[string]any{}}, nil
	}
	c, err := gabs.ParseJSON(raw)
	if err != nil {
		return Result{}, fmt.Errorf("malformed list response: %w", err)
	}

	var arr []*gabs.Container
	var total = -1
	if _, ok := c.Data().([]any); ok {
		arr = c.Children()
		total = len(arr)
	} else {
		for _, k := range rowKeys {
			if ch := c.Path(k); ch != nil {
				if _, ok := ch.Data().([]any); ok {
					arr = ch.Children()
					break
				}
			}
		}
		if t, ok := c.Path("total").Data().(float64); ok {
			total = int(t)
		}
	}

	res := Result{Rows: make([]map[string]any, 0, len(arr))}
	for _, ch := range arr {
		if m, ok := ch.Data().(map[string]any); ok {
			res.Rows = append(res.Rows, m)
		}
	}
	if total >= 0 {
		res.Total = total
	} else {
		res.Total = len(res.Rows)
	}
	return res, nil
}
