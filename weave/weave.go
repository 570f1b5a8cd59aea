// Package weave consumes arbitrary structs, orchestrating them into a specified format and returning the formatted string.
package weave

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Jeffail/gabs/v2"
	"github.com/charmbracelet/lipgloss/table"
)

//#region errors

const (
	ErrNotAStruct  string = "given value is not a struct or pointer to a struct"
	ErrStructIsNil string = "given value is nil"
)

func errFailedKindAssert(assertType string, kind string) error {
	return fmt.Errorf("cannot assert to %s despite %s kind", assertType, kind)
}

//#endregion

// ToCSV takes an array of arbitrary struct `st` and the *ordered* columns to
// include and returns a string containing the csv representation of the
// data contained therein.
//
// ! Returns the empty string if columns or st are empty
func ToCSV[Any any](st []Any, columns []string, options CSVOptions) string {
	// We have an ordered list of columns and a map of column names -> field index.
	// For each struct s in the list of structs, iterate through the list of
	// columns and use the map to fetch the column/field's values by index,
	// building the csv token by token.

	if len(st) < 1 || len(columns) < 1 { // superfluous request
		return ""
	}

	// test the first struct is actually a struct
	// if later structs do not match, that is a developer error
	if reflect.TypeOf(st[0]).Kind() != reflect.Struct {
		return ""
	}

	columnMap := buildColumnMap(st[0], columns)

	// generate header line, referencing aliases if relevant
	var hdr string
	if options.Aliases != nil {
		var sb strings.Builder
		for _, col := range columns {
			if alias, found := options.Aliases[col]; found {
				sb.WriteString(alias + ",")
			} else {
				sb.WriteString(col + ",")
			}
		}
		hdr = sb.String()[:sb.Len()-1]
	} else {
		hdr = strings.Join(columns, ",")
	}

	var csv strings.Builder // stores the actual data

	for _, s := range st {
		csv.WriteString(stringifyStructCSV(s, columns, columnMap) + "\n")
	}

	return strings.TrimSpace(hdr + "\n" + csv.String())
}

// returns a string of a CSV row populated by the data in the struct that corresponds to the columns
func stringifyStructCSV(s interface{}, columns []string, columnMap map[string][]int) string {
	var row strings.Builder

	structVals := reflect.ValueOf(s)

	for _, col := range columns {
		findices := columnMap[col]
		if findices != nil {
			data, ok := walkField(structVals, findices)
			if ok {
				row.WriteString(fmt.Sprintf("%v", data))
			}
		}
		row.WriteString(",")
	}

	return strings.TrimSuffix(row.String(), ",")
}

// ToTable when given an array of an arbitrary struct and the list of *fully-qualified* fields,
// outputs a table containing the data in the array of the struct.
// If no columns are specified or st is nil, returns the empty string.
// If ToTable encounters a nil pointer while traversing the data, it will populate the cell with "nil".
func ToTable[Any any](st []Any, columns []string, options TableOptions) string {
	if len(st) < 1 || len(columns) < 1 { // superfluous request
		return ""
	}

	columnMap := buildColumnMap(st[0], columns)

	var rows = make([][]string, len(st))

	for i := range st {
		rows[i] = make([]string, len(columns))
		structVals := reflect.ValueOf(st[i])
		for k := range columns {
			findices := columnMap[columns[k]]
			if findices == nil {
				continue
			}
			data, ok := walkField(structVals, findices)
			if !ok {
				rows[i][k] = "nil"
				continue
			}
			rows[i][k] = fmt.Sprintf("%v", data)
		}
	}

	// generate the table
	var tbl *table.Table
	if options.Base != nil {
		tbl = options.Base()
	} else {
		tbl = table.New()
	}

	// apply aliases
	if options.Aliases != nil {
		withAliases := make([]string, len(columns))
		for i := range columns {
			if alias, found := options.Aliases[columns[i]]; found {
				withAliases[i] = alias
			} else {
				withAliases[i] = columns[i]
			}
		}
		tbl.Headers(withAliases...)
	} else {
		tbl.Headers(columns...)
	}
	tbl.Rows(rows...)

	return tbl.Render()
}

// walkField manually steps through the struct, one index at a time, to check for nils.
// We use this instead of just passing the slice to FieldByIndex because FieldByIndex
// panics on attempting to step through a nil pointer. Panicking won't work for us.
func walkField(structVals reflect.Value, findices []int) (reflect.Value, bool) {
	data := structVals
	for _, findex := range findices {
		data = data.Field(findex)
		if data.Kind() == reflect.Ptr {
			if data.IsNil() { // stop traveling at a nil pointer
				return reflect.Value{}, false
			}
			data = data.Elem()
		}
	}
	if data.Kind() == reflect.Pointer {
		data = data.Elem()
	}
	return data, true
}

// ToJSON when given an array of an arbitrary struct and the list of *fully-qualified* fields,
// outputs a JSON array containing the data in the array of the struct.
func ToJSON[Any any](st []Any, columns []string, options JSONOptions) (string, error) {
	if len(st) < 1 || len(columns) < 1 { // superfluous request
		return "[]", nil
	}

	columnMap := buildColumnMap(st[0], columns)

	var bldr strings.Builder
	bldr.WriteRune('[') // open JSON array
	for _, s := range st {
		g := gabs.New()
		structVO := reflect.ValueOf(s)
		for _, col := range columns {
			fIndex := columnMap[col]
			if fIndex == nil {
				continue
			}
			data, ok := walkField(structVO, fIndex)
			key := col
			// if there is an alias, we write that as the key instead
			if alias, found := options.Aliases[col]; found {
				key = alias
			}
			if !ok { // nil pointer along the path
				if _, err := g.SetP(nil, key); err != nil {
					return "", err
				}
				continue
			}
			if err := setTyped(g, data, key); err != nil {
				return "", err
			}
		}
		bldr.WriteString(g.String())
		bldr.WriteRune(',') // new entry
	}
	toRet := strings.TrimSuffix(bldr.String(), ",") // chomp final comma

	return toRet + "]", nil // close JSON array
}

// setTyped writes the given value into the gabs container under key, retaining native typing
// where the kind allows it.
func setTyped(g *gabs.Container, data reflect.Value, key string) error {
	switch data.Type().Kind() {
	case reflect.Bool:
		_, err := g.SetP(data.Bool(), key)
		return err
	case reflect.Float32, reflect.Float64:
		if !data.CanFloat() {
			return errFailedKindAssert("float", data.Type().Kind().String())
		}
		_, err := g.SetP(data.Float(), key)
		return err
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !data.CanInt() {
			return errFailedKindAssert("int", data.Type().Kind().String())
		}
		_, err := g.SetP(data.Int(), key)
		return err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !data.CanUint() {
			return errFailedKindAssert("uint", data.Type().Kind().String())
		}
		_, err := g.SetP(data.Uint(), key)
		return err
	case reflect.Array, reflect.Slice:
		// arrays must be iterated through and rebuilt to retain proper typing
		if _, err := g.ArrayP(key); err != nil {
			return err
		}
		iCount := data.Len()
		for i := 0; i < iCount; i++ {
			if err := g.ArrayAppendP(data.Index(i).Interface(), key); err != nil {
				return err
			}
		}
		return nil
	case reflect.String:
		_, err := g.SetP(data.String(), key)
		return err
	default: // unsupported type, default to string
		_, err := g.SetP(fmt.Sprintf("%v", data), key)
		return err
	}
}

// FindQualifiedField when given a fully qualified column name (ex: "outerstruct.innerstruct.field"),
// finds the associated field, if it exists.
//
// Qualifications follow Go's rules for nested structs, including embedded
// variable promotion.
//
// Returns the field, whether or not it was found, the index path (for
// FieldByIndex) to the field (more on this below), and any errors.
//
// ! st must be a struct
func FindQualifiedField[Any any](qualCol string, st any) (field reflect.StructField, found bool, index []int, err error) {
	// Index path is returned because field.Index is NOT reliable for some
	// nested fields. Fields do not necessarily know their complete index path
	// for the given parent struct and therefore using field.Index in FieldByIndex
	// can fetch items at a higher depth than the field actually is.
	// The returned index path is composed of the known indices of every field
	// touched during traversal, giving a complete path.

	if qualCol == "" {
		return reflect.StructField{}, false, nil, nil
	}
	if st == nil {
		return reflect.StructField{}, false, nil, errors.New(ErrStructIsNil)
	}
	t := reflect.TypeOf(st)
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false, nil, errors.New(ErrNotAStruct)
	}

	index = make([]int, 0)

	exploded := strings.Split(qualCol, ".")
	field.Type = t
	// iterate down the field tree until we run out of qualifications or cannot
	// locate the next qualification
	for _, e := range exploded {
		if field.Type.Kind() == reflect.Pointer {
			field.Type = field.Type.Elem() // dereference
		}
		field, found = field.Type.FieldByName(e)
		if !found { // no value found
			return reflect.StructField{}, false, nil, nil
		}
		index = append(index, field.Index...)
	}
	// if we reached the end of the loop, we have our final field
	return field, true, index, nil
}

// StructFields returns the fully qualified name of every (exported) field in the struct
// *definition*, as they are ordered internally.
// These qualified names are the expected format for the output modules in this package.
func StructFields(st any, exportedOnly bool) (columns []string, err error) {
	if st == nil {
		return nil, errors.New(ErrStructIsNil)
	}
	to := reflect.TypeOf(st)
	if to.Kind() == reflect.Pointer { // dereference
		to = to.Elem()
	}
	if to.Kind() != reflect.Struct { // prerequisite
		return nil, errors.New(ErrNotAStruct)
	}
	numFields := to.NumField()
	columns = []string{}

	// for each field
	//	if the field is not a struct, append it to the columns
	//	if the field is a struct, repeat

	for i := 0; i < numFields; i++ {
		columns = append(columns, innerStructFields("", to.Field(i), exportedOnly)...)
	}

	return columns, nil
}

// innerStructFields is a helper function for StructFields, returning the
// qualified name of the given field or the list of qualified names of its
// children, if a struct.
// Operates recursively on the given field if it is a struct.
// Operates down the struct, in field-order.
func innerStructFields(qualification string, field reflect.StructField, exportedOnly bool) []string {
	var columns = []string{}

	// do not operate on unexported fields if exportedOnly
	if exportedOnly && !field.IsExported() {
		return columns
	}

	// dereference
	if field.Type.Kind() == reflect.Ptr {
		field.Type = field.Type.Elem()
	}

	if field.Type.Kind() == reflect.Struct && !isLeafStruct(field.Type) {
		for k := 0; k < field.Type.NumField(); k++ {
			var innerQual string
			if qualification == "" {
				innerQual = field.Name
			} else {
				innerQual = qualification + "." + field.Name
			}
			columns = append(columns, innerStructFields(innerQual, field.Type.Field(k), exportedOnly)...)
		}
	} else {
		if qualification == "" {
			columns = append(columns, field.Name)
		} else {
			columns = append(columns, qualification+"."+field.Name)
		}
	}

	return columns
}

var timeType = reflect.TypeOf(time.Time{})

// isLeafStruct reports whether the struct type should be treated as a single
// printable value rather than recursed into. Timestamps carry only unexported
// fields and would otherwise vanish from the column list.
func isLeafStruct(t reflect.Type) bool {
	return t == timeType
}

// Given a struct and the desired fields (columns), maps the full, qualified
// field names to their complete index chain. If a field is not found in the
// struct, its value is set to nil in the map.
func buildColumnMap(st any, columns []string) (columnMap map[string][]int) {
	columnMap = make(map[string][]int, len(columns)) // column name -> recursive field indices
	for i := range columns {
		// map column names to their field indices
		// if a name is not found, nil it so it can be skipped later
		_, fo, index, err := FindQualifiedField[any](columns[i], st)
		if err != nil {
			panic(err)
		}
		if !fo {
			columnMap[columns[i]] = nil
			continue
		}
		columnMap[columns[i]] = index
	}
	return
}
