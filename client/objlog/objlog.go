package objlog

// ObjLog is used by the client so that every API request and response pair
// can be recorded during normal operation. Useful for debugging and for
// tracing what the CLI actually put on the wire.
type ObjLog interface {
	Close() error
	Log(id, url string, obj interface{}) error
}

// NilObjLogger is an empty implementation of the ObjLog interface for use
// when no logging is desired.
type NilObjLogger struct {
}

// NewNilLogger generates a do-nothing logger that implements ObjLog.
func NewNilLogger() (ObjLog, error) {
	return &NilObjLogger{}, nil
}

func (nol *NilObjLogger) Log(id, url string, obj interface{}) error {
	return nil
}

func (nol *NilObjLogger) Close() error {
	return nil
}
