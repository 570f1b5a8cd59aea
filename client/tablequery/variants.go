/*
Package tablequery translates table state (paging, sorting, filtering,
searching) into the query string dialect the management API speaks and
normalizes list responses back into rows.

Filters ride as `<field>__<op>=<value>` parameters (equality as the bare
`<field>=<value>`), sorting as a single comma-joined `order_by` parameter
with a '-' prefix for descending fields, and paging as `skip`/`limit`.
*/
package tablequery

import "fmt"

// Op is a filter operator understood by the list endpoints.
type Op string

const (
	OpEq       Op = "eq"
	OpNe       Op = "ne"
	OpGt       Op = "gt"
	OpGte      Op = "gte"
	OpLt       Op = "lt"
	OpLte      Op = "lte"
	OpIn       Op = "in"
	OpNotIn    Op = "not_in"
	OpLike     Op = "like"
	OpIlike    Op = "ilike"
	OpIsNull   Op = "isnull"
	OpAny      Op = "any"
	OpAll      Op = "all"
	OpContains Op = "contains"
)

// Suffix returns the query parameter suffix for this operator
// (ex: OpGte -> "__gte"). Two operators deviate from their names: equality
// rides on the bare field name (the filter schemas only declare the
// unsuffixed form) and OpNe is spelled "neq" in the server's operator
// registry.
func (o Op) Suffix() string {
	switch o {
	case OpEq:
		return ""
	case OpNe:
		return "__neq"
	}
	return "__" + string(o)
}

// listOps take a comma-joined list of values rather than a scalar.
var listOps = map[Op]bool{
	OpIn:       true,
	OpNotIn:    true,
	OpAny:      true,
	OpAll:      true,
	OpContains: true,
}

// TakesList returns whether the operator expects multiple values.
func (o Op) TakesList() bool {
	return listOps[o]
}

// Variant describes the kind of column a filter targets, which in turn pins
// down the operators that make sense against it.
type Variant uint

const (
	Text Variant = iota
	Number
	Range
	Date
	DateRange
	Boolean
	Select
	MultiSelect
)

func (v Variant) String() string {
	switch v {
	case Text:
		return "text"
	case Number:
		return "number"
	case Range:
		return "range"
	case Date:
		return "date"
	case DateRange:
		return "dateRange"
	case Boolean:
		return "boolean"
	case Select:
		return "select"
	case MultiSelect:
		return "multiSelect"
	}
	return fmt.Sprintf("variant(%d)", v)
}

// variantOps is the operator catalog: which operators each variant admits.
// The sets track the filter fields the server's list endpoints declare per
// column kind; an operator outside them would be silently discarded by the
// server, so it is rejected client-side instead.
var variantOps = map[Variant][]Op{
	Text:        {OpEq, OpNe, OpIn, OpIlike},
	Number:      {OpEq, OpNe, OpGt, OpLt, OpIn},
	Range:       {OpGte, OpLte},
	Date:        {OpEq, OpGte, OpLte},
	DateRange:   {OpGte, OpLte},
	Boolean:     {OpEq},
	Select:      {OpEq, OpNe, OpIn},
	MultiSelect: {OpIn},
}

// Ops returns the operators a column of this variant admits.
// The returned slice must not be modified.
func (v Variant) Ops() []Op {
	return variantOps[v]
}

// Admits returns whether op is legal against a column of this variant.
func (v Variant) Admits(op Op) bool {
	for _, o := range variantOps[v] {
		if o == op {
			return true
		}
	}
	return false
}

// ParseOp resolves an operator name (as typed by a user or found in a
// query string suffix) to its Op. The empty string resolves to OpEq and
// the wire spelling "neq" resolves to OpNe.
func ParseOp(s string) (Op, error) {
	if s == "" {
		return OpEq, nil
	}
	if s == "neq" {
		return OpNe, nil
	}
	switch o := Op(s); o {
	case OpEq, OpNe, OpGt, OpGte, OpLt, OpLte,
		OpIn, OpNotIn, OpLike, OpIlike, OpIsNull,
		OpAny, OpAll, OpContains:
		return o, nil
	}
	return "", fmt.Errorf("unknown filter operator %q", s)
}
