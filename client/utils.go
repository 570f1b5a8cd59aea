package client

import (
	"errors"
	"io"
	"net/http"
)

const maxDrain int64 = 1024 * 1024 * 4

var errCappedWriter = errors.New("write limit exceeded")

// drainResponse empties and closes a response body so the underlying
// connection can be reused. Reads are capped so a hostile or broken server
// cannot pin us in a drain loop.
func drainResponse(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	io.Copy(&cappedWriter{cap: maxDrain}, resp.Body)
	resp.Body.Close()
}

type cappedWriter struct {
	n   int64
	cap int64
}

func (cw *cappedWriter) Write(b []byte) (int, error) {
	cw.n += int64(len(b))
	if cw.n > cw.cap {
		return 0, errCappedWriter
	}
	return len(b), nil
}
