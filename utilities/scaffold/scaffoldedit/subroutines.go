package scaffoldedit

// SelectSubroutine pulls the specific, edit-able struct for the given id.
type SelectSubroutine[I id_t, S any] func(id I) (item S, err error)

// GetFieldSubroutine retrieves the struct value associated to the field key without reflection.
// This is probably a switch statement that maps (key -> item.X).
//
// Sister to SetFieldSubroutine.
type GetFieldSubroutine[S any] func(item S, fieldKey string) (value string, err error)

// SetFieldSubroutine sets the struct value associated to the field key without reflection.
// This is probably a switch statement that maps (key -> item.X).
// Returns invalid if the value is invalid for the keyed field and err on an unrecoverable error.
//
// Sister to GetFieldSubroutine.
type SetFieldSubroutine[S any] func(item *S, fieldKey, val string) (invalid string, err error)

// UpdateStructSubroutine performs the actual update of the data on the gateway.
type UpdateStructSubroutine[S any] func(data *S) (identifier string, err error)

// SubroutineSet is the set of all subroutines required by an edit implementation.
//
// ! NewEditAction will panic if any subroutine is nil
type SubroutineSet[I id_t, S any] struct {
	SelectSub   SelectSubroutine[I, S]    // fetch a specific editable struct
	GetFieldSub GetFieldSubroutine[S]     // get a value within the struct
	SetFieldSub SetFieldSubroutine[S]     // set a value within the struct
	UpdateSub   UpdateStructSubroutine[S] // submit the struct as updated
}

// guarantee validates that all functions were set.
// Panics if any are missing.
func (funcs *SubroutineSet[I, S]) guarantee() {
	if funcs.SelectSub == nil {
		panic("select function is required")
	}
	if funcs.GetFieldSub == nil {
		panic("get field function is required")
	}
	if funcs.SetFieldSub == nil {
		panic("set field function is required")
	}
	if funcs.UpdateSub == nil {
		panic("update struct function is required")
	}
}
