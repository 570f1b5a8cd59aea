// Package querysupport translates the shared list-query flags (--skip, --limit, --sort,
// --filter, --search) into a tablequery.Params.
// Allows multiple actions that touch the list endpoints to operate comparably and with
// minimal duplicate code.
package querysupport

import (
	"fmt"
	"strings"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	ft "github.com/Copysiter/O3GO-WA/stylesheet/flagtext"

	"github.com/spf13/pflag"
)

// QueryFlagSet returns a fresh flagset containing the shared list-query flags.
//
// NOTE it must be a function returning a fresh struct because FlagSets are shallow copies,
// even when passed by reference.
func QueryFlagSet(plural string) *pflag.FlagSet {
	fs := &pflag.FlagSet{}
	fs.Int(ft.Name.Skip, 0, ft.Usage.Skip)
	fs.Int(ft.Name.Limit, tablequery.DefaultLimit, ft.Usage.Limit(plural))
	fs.StringArray(ft.Name.Sort, nil, ft.Usage.Sort)
	fs.StringArray(ft.Name.Filter, nil, ft.Usage.Filter)
	fs.String(ft.Name.Search, "", ft.Usage.Search)
	return fs
}

// CollectParams takes a *parsed* flagset and returns the structured query parameters
// described by its --skip, --limit, --sort, --filter, and --search flags.
//
// If variants is not nil, filters and sorts are validated against it: every filter column
// must be a key in the map and its operator must be admitted by the column's variant.
func CollectParams(fs *pflag.FlagSet, variants map[string]tablequery.Variant) (tablequery.Params, error) {
	var p tablequery.Params

	p.Skip, _ = fs.GetInt(ft.Name.Skip)
	p.Limit, _ = fs.GetInt(ft.Name.Limit)
	p.Search, _ = fs.GetString(ft.Name.Search)
	p.Search = strings.TrimSpace(p.Search)

	rawSorts, _ := fs.GetStringArray(ft.Name.Sort)
	for _, rs := range rawSorts {
		s, err := ParseSort(rs, variants)
		if err != nil {
			return tablequery.Params{}, err
		}
		p.Sorts = append(p.Sorts, s)
	}

	rawFilters, _ := fs.GetStringArray(ft.Name.Filter)
	for _, rf := range rawFilters {
		f, err := ParseFilter(rf, variants)
		if err != nil {
			return tablequery.Params{}, err
		}
		p.Filters = append(p.Filters, f)
	}

	return p, nil
}

// ParseSort parses a single --sort value of the form "column" or "-column"
// (the latter for descending order).
func ParseSort(raw string, variants map[string]tablequery.Variant) (tablequery.Sort, error) {
	raw = strings.TrimSpace(raw)
	var s tablequery.Sort
	if strings.HasPrefix(raw, "-") {
		s.Desc = true
		raw = raw[1:]
	}
	if raw == "" {
		return tablequery.Sort{}, fmt.Errorf("empty sort column")
	}
	s.Field = raw
	if variants != nil {
		if _, known := variants[s.Field]; !known {
			return tablequery.Sort{}, ErrUnknownColumn(s.Field)
		}
	}
	return s, nil
}

// ParseFilter parses a single --filter value of the form "<column>__<operator>=<value>".
// The operator may be omitted ("<column>=<value>"), in which case equality is assumed.
// Operators that take a list split the value on commas.
func ParseFilter(raw string, variants map[string]tablequery.Variant) (tablequery.Filter, error) {
	key, val, found := strings.Cut(raw, "=")
	if !found {
		return tablequery.Filter{}, fmt.Errorf("invalid filter %q: expected %v",
			raw, ft.Mandatory("column")+"__"+ft.Mandatory("operator")+"="+ft.Mandatory("value"))
	}
	key = strings.TrimSpace(key)

	// the operator hangs off the last dunder, if one exists
	var field, opStr string
	if i := strings.LastIndex(key, "__"); i >= 0 {
		field, opStr = key[:i], key[i+2:]
	} else {
		field = key
	}
	if field == "" {
		return tablequery.Filter{}, fmt.Errorf("invalid filter %q: empty column", raw)
	}

	op, err := tablequery.ParseOp(opStr)
	if err != nil {
		return tablequery.Filter{}, fmt.Errorf("invalid filter %q: %v", raw, err)
	}

	if variants != nil {
		v, known := variants[field]
		if !known {
			return tablequery.Filter{}, ErrUnknownColumn(field)
		}
		if !v.Admits(op) {
			return tablequery.Filter{}, fmt.Errorf(
				"operator %v cannot be applied to column %v (%v).\nSupported operators: %v",
				op, field, v, supportedOps(v))
		}
	}

	f := tablequery.Filter{Field: field, Op: op}
	if op.TakesList() {
		f.Values = strings.Split(val, ",")
	} else {
		f.Values = []string{val}
	}
	return f, nil
}

func supportedOps(v tablequery.Variant) string {
	ops := v.Ops()
	strs := make([]string, len(ops))
	for i, o := range ops {
		strs[i] = string(o)
	}
	return strings.Join(strs, ", ")
}
