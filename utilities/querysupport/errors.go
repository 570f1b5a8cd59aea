package querysupport

// ErrUnknownColumn is a user-facing error stating that the given column cannot be
// filtered or sorted on.
//
//	querysupport.ErrUnknownColumn(field)
type ErrUnknownColumn string

var _ error = ErrUnknownColumn("")

func (col ErrUnknownColumn) Error() string {
	return "'" + string(col) + "' is not a filterable column.\n" +
		"Re-run with --show-columns to see the available columns."
}
