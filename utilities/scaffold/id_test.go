package scaffold

import (
	"testing"

	"github.com/google/uuid"
)

func TestFromString(t *testing.T) {
	if v, err := FromString[int64]("1337"); err != nil || v != 1337 {
		t.Errorf("int64: got %v (err %v), want 1337", v, err)
	}
	if v, err := FromString[uint8]("255"); err != nil || v != 255 {
		t.Errorf("uint8: got %v (err %v), want 255", v, err)
	}
	if _, err := FromString[uint8]("256"); err == nil {
		t.Error("uint8 overflow: expected an error")
	}
	if _, err := FromString[int]("not a number"); err == nil {
		t.Error("bad int: expected an error")
	}

	want := uuid.New()
	if v, err := FromString[uuid.UUID](want.String()); err != nil || v != want {
		t.Errorf("uuid: got %v (err %v), want %v", v, err, want)
	}
	if _, err := FromString[uuid.UUID]("definitely-not-a-uuid"); err == nil {
		t.Error("bad uuid: expected an error")
	}
}
