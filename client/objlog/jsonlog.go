package objlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	errNilFout = errors.New("Nil fout file handle")
)

type JSONObjLogger struct {
	fout *os.File
}

// NewJSONLogger opens path in append mode and returns an ObjLog that writes
// one indented JSON object per traced request or response.
func NewJSONLogger(path string) (ObjLog, error) {
	fout, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0660)
	if err != nil {
		return nil, err
	}
	return &JSONObjLogger{
		fout: fout,
	}, nil
}

// Log records a request id, URL, and the object sent or received.
func (jol *JSONObjLogger) Log(id, url string, obj interface{}) error {
	if jol.fout == nil {
		return errNilFout
	}
	b, err := json.MarshalIndent(obj, "", "\t")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(jol.fout, "%s %s:\n%s\n", id, url, b)
	return err
}

// Close flushes and closes the file handle. The logger must not be used
// after Close.
func (jol *JSONObjLogger) Close() error {
	if jol.fout == nil {
		return errNilFout
	}
	if err := jol.fout.Close(); err != nil {
		return err
	}
	jol.fout = nil
	return nil
}
