package tablequery

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultLimit is used when Params.Limit is unset.
	DefaultLimit = 100
	// MaxLimit is the largest page size the API will honor.
	MaxLimit = 1000
)

// Sort orders results by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// Filter constrains results to rows where Field relates to Values via Op.
// Scalar operators read Values[0]; list operators comma-join all of them.
type Filter struct {
	Field  string
	Op     Op
	Values []string
}

// NewFilter builds a scalar filter.
func NewFilter(field string, op Op, value string) Filter {
	return Filter{Field: field, Op: op, Values: []string{value}}
}

// Params is the full query state of one table view.
// The zero value is valid and encodes to the first default-sized page.
type Params struct {
	Skip    int
	Limit   int
	Sorts   []Sort
	Filters []Filter
	Search  string
	// SearchFields restricts Search to the named columns.
	SearchFields []string
}

// IsZero returns whether p carries no constraints beyond default paging.
func (p Params) IsZero() bool {
	return p.Skip == 0 && p.Limit == 0 &&
		len(p.Sorts) == 0 && len(p.Filters) == 0 &&
		p.Search == "" && len(p.SearchFields) == 0
}

// NextPage returns a copy of p advanced by one page.
func (p Params) NextPage() Params {
	p.Skip += p.limit()
	return p
}

// PrevPage returns a copy of p moved back one page, clamped at the start.
func (p Params) PrevPage() Params {
	p.Skip -= p.limit()
	if p.Skip < 0 {
		p.Skip = 0
	}
	return p
}

func (p Params) limit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}
	if p.Limit > MaxLimit {
		return MaxLimit
	}
	return p.Limit
}

// Encode renders p as URL query values. skip and limit appear exactly once,
// all sorts collapse into a single order_by parameter (order preserved,
// '-' prefix marks descending), and each filter contributes one parameter
// keyed by the field name plus its operator suffix (none for equality).
// Encode does not mutate p and always produces the same output for the
// same input.
func (p Params) Encode() (url.Values, error) {
	v := url.Values{}

	skip := p.Skip
	if skip < 0 {
		skip = 0
	}
	v.Set("skip", fmt.Sprintf("%d", skip))
	v.Set("limit", fmt.Sprintf("%d", p.limit()))

	if len(p.Sorts) > 0 {
		parts := make([]string, 0, len(p.Sorts))
		seen := make(map[string]bool, len(p.Sorts))
		for _, s := range p.Sorts {
			if s.Field == "" {
				return nil, fmt.Errorf("sort with empty field")
			}
			if seen[s.Field] {
				return nil, fmt.Errorf("duplicate sort field %q", s.Field)
			}
			seen[s.Field] = true
			if s.Desc {
				parts = append(parts, "-"+s.Field)
			} else {
				parts = append(parts, s.Field)
			}
		}
		v.Set("order_by", strings.Join(parts, ","))
	}

	for _, f := range p.Filters {
		if f.Field == "" {
			return nil, fmt.Errorf("filter with empty field")
		}
		if _, err := ParseOp(string(f.Op)); err != nil {
			return nil, err
		}
		key := f.Field + f.Op.Suffix()
		if v.Has(key) {
			return nil, fmt.Errorf("duplicate filter %s", key)
		}
		val, err := f.encodeValue()
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", key, err)
		}
		v.Set(key, val)
	}

	if p.Search != "" {
		v.Set("search", p.Search)
		if len(p.SearchFields) > 0 {
			v.Set("search_fields", strings.Join(p.SearchFields, ","))
		}
	}

	return v, nil
}

func (f Filter) encodeValue() (string, error) {
	if len(f.Values) == 0 {
		return "", fmt.Errorf("no value given")
	}
	if f.Op.TakesList() {
		return strings.Join(f.Values, ","), nil
	}
	if len(f.Values) > 1 {
		return "", fmt.Errorf("operator %s takes a single value", f.Op)
	}
	if f.Op == OpIsNull {
		switch f.Values[0] {
		case "true", "false":
		default:
			return "", fmt.Errorf("isnull wants true or false, not %q", f.Values[0])
		}
	}
	return f.Values[0], nil
}

// EncodeString is Encode flattened to a query string (no leading '?').
func (p Params) EncodeString() (string, error) {
	v, err := p.Encode()
	if err != nil {
		return "", err
	}
	return v.Encode(), nil
}

// ToggleSort cycles the sort state of field: unsorted -> ascending ->
// descending -> unsorted. Other fields' sorts are preserved in place.
func (p Params) ToggleSort(field string) Params {
	for i, s := range p.Sorts {
		if s.Field != field {
			continue
		}
		if !s.Desc {
			sorts := make([]Sort, len(p.Sorts))
			copy(sorts, p.Sorts)
			sorts[i].Desc = true
			p.Sorts = sorts
		} else {
			sorts := make([]Sort, 0, len(p.Sorts)-1)
			sorts = append(sorts, p.Sorts[:i]...)
			sorts = append(sorts, p.Sorts[i+1:]...)
			p.Sorts = sorts
		}
		return p
	}
	sorts := make([]Sort, len(p.Sorts), len(p.Sorts)+1)
	copy(sorts, p.Sorts)
	p.Sorts = append(sorts, Sort{Field: field})
	return p
}

// WithFilter returns a copy of p with f replacing any existing filter on the
// same field and operator.
func (p Params) WithFilter(f Filter) Params {
	filters := make([]Filter, 0, len(p.Filters)+1)
	for _, x := range p.Filters {
		if x.Field == f.Field && x.Op == f.Op {
			continue
		}
		filters = append(filters, x)
	}
	p.Filters = append(filters, f)
	p.Skip = 0
	return p
}

// WithoutFilters returns a copy of p with all filters on field removed.
func (p Params) WithoutFilters(field string) Params {
	filters := make([]Filter, 0, len(p.Filters))
	for _, x := range p.Filters {
		if x.Field == field {
			continue
		}
		filters = append(filters, x)
	}
	p.Filters = filters
	p.Skip = 0
	return p
}
