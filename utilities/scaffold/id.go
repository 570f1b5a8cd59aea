package scaffold

import (
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// Id_t is the set of types a record identifier may take.
// The gateway hands out numeric ids today, but the actions are generic over
// uuids as well so resources can switch key types without touching the scaffolds.
type Id_t interface {
	constraints.Integer | uuid.UUID
}

// FromString returns str converted to an id of type I.
func FromString[I Id_t](str string) (I, error) {
	var (
		err error
		ret I
	)

	switch p := any(&ret).(type) {
	case *uuid.UUID:
		var u uuid.UUID
		u, err = uuid.Parse(str)
		*p = u
	case *uint:
		var i uint64
		i, err = strconv.ParseUint(str, 10, 64)
		*p = uint(i)
	case *uint8:
		var i uint64
		i, err = strconv.ParseUint(str, 10, 8)
		*p = uint8(i)
	case *uint16:
		var i uint64
		i, err = strconv.ParseUint(str, 10, 16)
		*p = uint16(i)
	case *uint32:
		var i uint64
		i, err = strconv.ParseUint(str, 10, 32)
		*p = uint32(i)
	case *uint64:
		*p, err = strconv.ParseUint(str, 10, 64)
	case *int:
		var i int64
		i, err = strconv.ParseInt(str, 10, 64)
		*p = int(i)
	case *int8:
		var i int64
		i, err = strconv.ParseInt(str, 10, 8)
		*p = int8(i)
	case *int16:
		var i int64
		i, err = strconv.ParseInt(str, 10, 16)
		*p = int16(i)
	case *int32:
		var i int64
		i, err = strconv.ParseInt(str, 10, 32)
		*p = int32(i)
	case *int64:
		*p, err = strconv.ParseInt(str, 10, 64)
	default:
		panic("developer error: unhandled id type")
	}

	return ret, err
}
