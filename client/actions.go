package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
)

var (
	ErrNotAuthed = errors.New("Not Authed")
	ErrNotFound  = errors.New("Not Found")
)

// ApiError is a non-2xx answer from the server. It is distinct from
// NetworkError so callers can tell "the server said no" from "we never
// reached the server".
type ApiError struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("Bad Status %s(%d): %s", e.Status, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("Bad Status %s(%d)", e.Status, e.StatusCode)
}

// NetworkError is a transport level failure: DNS, refused connection,
// timeout. The request may never have reached the server.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure on %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func networkErr(op string, err error) error {
	return &NetworkError{Op: op, Err: err}
}

func (c *Client) getStaticURL(url string, obj interface{}) error {
	return c.methodStaticURL(http.MethodGet, url, obj)
}

func (c *Client) putStaticURL(url string, sendObj, recvObj interface{}) error {
	return c.methodStaticPushURL(http.MethodPut, url, sendObj, recvObj)
}

func (c *Client) postStaticURL(url string, sendObj, recvObj interface{}) error {
	return c.methodStaticPushURL(http.MethodPost, url, sendObj, recvObj,
		http.StatusOK, http.StatusCreated)
}

func (c *Client) deleteStaticURL(url string, recvObj interface{}) error {
	return c.methodStaticPushURL(http.MethodDelete, url, nil, recvObj)
}

func (c *Client) methodStaticURL(method, url string, obj interface{}) error {
	if c.state != STATE_AUTHED {
		return ErrNoLogin
	}
	uri := fmt.Sprintf("%s://%s%s", c.httpScheme, c.server, url)
	req, err := http.NewRequest(method, uri, nil)
	if err != nil {
		return err
	}
	return c.staticRequest(req, obj, nil)
}

func respOk(rcode int, okCodes ...int) bool {
	for _, c := range okCodes {
		if rcode == c {
			return true
		}
	}
	return false
}

// retryable reports whether a transport error on an idempotent request is
// worth one more attempt.
func retryable(method string, err error) bool {
	if method != http.MethodGet {
		return false
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "connection reset")
}

// do issues the request, retrying exactly once on a network error when the
// method is idempotent. The body must be rebuildable for a retry, which
// holds for every caller here (nil or bytes.Reader).
func (c *Client) do(req *http.Request, rebuild func() io.ReadCloser) (*http.Response, error) {
	resp, err := c.clnt.Do(req)
	if err == nil {
		return resp, nil
	}
	if !retryable(req.Method, err) {
		return nil, networkErr(req.Method, err)
	}
	c.objLog.Log("WEB RETRY "+req.Method, req.URL.String(), nil)
	if rebuild != nil {
		req.Body = rebuild()
	}
	if resp, err = c.clnt.Do(req); err != nil {
		return nil, networkErr(req.Method, err)
	}
	return resp, nil
}

func (c *Client) staticRequest(req *http.Request, obj interface{}, okResponses []int) error {
	if c.state != STATE_AUTHED {
		return ErrNoLogin
	}
	c.hm.populateRequest(req.Header) // add in the headers
	req.Header.Set(`X-Request-Id`, uuid.NewString())

	// add in any sticky queries
	var err error
	if req.URL.RawQuery, err = c.qm.appendEncode(req.URL.RawQuery); err != nil {
		return err
	}

	resp, err := c.do(req, nil)
	if err != nil {
		c.objLog.Log("WEB "+req.Method+" Error "+err.Error(), req.URL.String(), nil)
		return err
	}
	if resp == nil {
		return errors.New("Invalid response")
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		c.state = STATE_LOGGED_OFF
		return ErrNotAuthed
	} else if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	statOk := respOk(resp.StatusCode, okResponses...)
	//either its in the list, or the list is empty and StatusOK is implied
	if !(statOk || (resp.StatusCode == http.StatusOK && len(okResponses) == 0)) {
		c.objLog.Log("WEB "+req.Method, req.URL.String()+" "+resp.Status, nil)
		return &ApiError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     getBodyDetail(resp.Body),
		}
	}

	if obj != nil {
		if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
			return err
		}
	}

	c.objLog.Log("WEB "+req.Method, req.URL.String(), obj)
	return nil
}

func (c *Client) methodStaticPushURL(method, url string, sendObj, recvObj interface{}, okResps ...int) error {
	if c.state != STATE_AUTHED {
		return ErrNoLogin
	}
	var jsonBytes []byte
	var err error

	if sendObj != nil {
		jsonBytes, err = json.Marshal(sendObj)
		if err != nil {
			return err
		}
	}
	uri := fmt.Sprintf("%s://%s%s", c.httpScheme, c.server, url)
	req, err := http.NewRequest(method, uri, bytes.NewReader(jsonBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	c.hm.populateRequest(req.Header) // add in the headers
	req.Header.Set(`X-Request-Id`, uuid.NewString())

	// add in any sticky queries
	if req.URL.RawQuery, err = c.qm.appendEncode(req.URL.RawQuery); err != nil {
		return err
	}

	c.objLog.Log("WEB REQ "+method, url, sendObj)
	resp, err := c.do(req, func() io.ReadCloser {
		return io.NopCloser(bytes.NewReader(jsonBytes))
	})
	if err != nil {
		c.objLog.Log("WEB "+method+" Error "+err.Error(), url, nil)
		return err
	}
	if resp == nil {
		return errors.New("Invalid response")
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		c.state = STATE_LOGGED_OFF
		return ErrNotAuthed
	} else if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK && !respOk(resp.StatusCode, okResps...) {
		c.objLog.Log("WEB "+method, url+" "+resp.Status, nil)
		return &ApiError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     getBodyDetail(resp.Body),
		}
	}

	if recvObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(&recvObj); err != nil {
			return err
		}
	}
	c.objLog.Log("WEB RECV", url, recvObj)
	return nil
}

// List performs an authenticated GET against a list endpoint with the given
// table query and hands back normalized rows. Screens that do not need
// typed rows (the interactive table) ride on this.
func (c *Client) List(pth string, p tablequery.Params) (tablequery.Result, error) {
	if c.state != STATE_AUTHED {
		return tablequery.Result{}, ErrNoLogin
	}
	q, err := p.EncodeString()
	if err != nil {
		return tablequery.Result{}, err
	}
	uri := fmt.Sprintf("%s://%s%s?%s", c.httpScheme, c.server, pth, q)
	req, err := http.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		return tablequery.Result{}, err
	}
	c.hm.populateRequest(req.Header)
	req.Header.Set(`X-Request-Id`, uuid.NewString())
	if req.URL.RawQuery, err = c.qm.appendEncode(req.URL.RawQuery); err != nil {
		return tablequery.Result{}, err
	}

	resp, err := c.do(req, nil)
	if err != nil {
		c.objLog.Log("WEB GET Error "+err.Error(), req.URL.String(), nil)
		return tablequery.Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		c.state = STATE_LOGGED_OFF
		return tablequery.Result{}, ErrNotAuthed
	} else if resp.StatusCode == http.StatusNotFound {
		return tablequery.Result{}, ErrNotFound
	} else if resp.StatusCode != http.StatusOK {
		return tablequery.Result{}, &ApiError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     getBodyDetail(resp.Body),
		}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDrain))
	if err != nil {
		return tablequery.Result{}, err
	}
	res, err := tablequery.Normalize(body)
	if err != nil {
		return tablequery.Result{}, err
	}
	c.objLog.Log("WEB GET", req.URL.String(), res.Total)
	return res, nil
}

// listStaticURL GETs a list endpoint with the encoded query appended and
// decodes the typed envelope.
func (c *Client) listStaticURL(pth string, p tablequery.Params, obj interface{}) error {
	q, err := p.EncodeString()
	if err != nil {
		return err
	}
	return c.methodStaticURL(http.MethodGet, pth+"?"+q, obj)
}

// getBodyDetail pulls a possible error message out of the response body.
// The server wraps errors as {"detail": "..."}; anything else is returned
// as a trimmed 256 byte skim.
func getBodyDetail(rc io.Reader) string {
	resp := make([]byte, 256)
	n, err := rc.Read(resp)
	if (err != nil && err != io.EOF) || n <= 0 {
		return ""
	}
	raw := resp[0:n]
	var d struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &d); err == nil && d.Detail != "" {
		return d.Detail
	}
	return strings.TrimSpace(string(raw))
}
