// Package client wraps the O3GO-WA management REST API.
package client

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/Copysiter/O3GO-WA/client/objlog"
	"github.com/Copysiter/O3GO-WA/client/types"
)

const (
	// requests that stall out past this are killed; large list pulls are
	// still comfortably inside it
	defaultRequestTimeout = time.Second * 10
	clientUserAgent       = `wactl`
	authHeaderName        = `Authorization`
)

var (
	ErrInvalidTestStatus error = errors.New("Invalid status on webserver test")
	ErrLoginFail         error = errors.New(`Login and password are incorrect`)
	ErrInactiveUser      error = errors.New(`User is inactive`)
	ErrNoLogin           error = errors.New("Not logged in")
	ErrEmptyUserAgent    error = errors.New("UserAgent cannot be empty")
)

// Client handles interaction with the management API.
// All methods are safe for concurrent use.
type Client struct {
	hm          *headerMap //additional header values to add to requests
	qm          *queryMap  // sticky values to append to every URL
	server      string
	serverURL   *url.URL
	clnt        *http.Client
	timeout     time.Duration
	mtx         *sync.Mutex
	state       clientState
	enforceCert bool
	sessionData types.ActiveSession
	objLog      objlog.ObjLog
	httpScheme  string
	userAgent   string
	tlsConfig   *tls.Config
	transport   *http.Transport
}

type Opts struct {
	Server                 string
	UseHttps               bool
	InsecureNoEnforceCerts bool
	ObjLogger              objlog.ObjLog
}

// New connects to the specified server and returns a new Client object.
// Setting enforceCertificate to false disables SSL certificate validation,
// allowing self-signed certs.
func New(server string, enforceCertificate, useHttps bool) (*Client, error) {
	opts := Opts{
		Server:                 server,
		InsecureNoEnforceCerts: !enforceCertificate,
		UseHttps:               useHttps,
	}
	opts.ObjLogger, _ = objlog.NewNilLogger()
	return NewOpts(opts)
}

func NewOpts(opts Opts) (*Client, error) {
	var httpScheme string
	var tlsConfig *tls.Config
	if opts.Server == "" {
		return nil, errors.New("invalid base URL")
	}
	if opts.UseHttps {
		httpScheme = `https`
		tlsConfig = &tls.Config{InsecureSkipVerify: opts.InsecureNoEnforceCerts}
	} else {
		httpScheme = `http`
	}
	serverURL, err := url.Parse(fmt.Sprintf("%s://%s", httpScheme, opts.Server))
	if err != nil {
		return nil, err
	}

	tr := &http.Transport{
		TLSClientConfig: tlsConfig,
	}
	// the refresh token rides on a cookie, so keep a jar
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	clnt := http.Client{
		Transport:     tr,
		CheckRedirect: redirectPolicy,
		Timeout:       defaultRequestTimeout,
		Jar:           jar,
	}
	hdrMap := newHeaderMap()
	hdrMap.add(`User-Agent`, clientUserAgent)

	if opts.ObjLogger == nil {
		opts.ObjLogger, _ = objlog.NewNilLogger()
	}

	return &Client{
		server:      opts.Server,
		serverURL:   serverURL,
		clnt:        &clnt,
		timeout:     defaultRequestTimeout,
		mtx:         &sync.Mutex{},
		state:       STATE_NEW,
		enforceCert: !opts.InsecureNoEnforceCerts,
		hm:          hdrMap,
		qm:          newQueryMap(),
		objLog:      opts.ObjLogger,
		httpScheme:  httpScheme,
		tlsConfig:   tlsConfig,
		transport:   tr,
		userAgent:   clientUserAgent,
	}, nil
}

func (c *Client) Server() string {
	return c.server
}

// we allow a single redirect so the server side muxer can clean up paths
// such as '//' to '/'
func redirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= 2 {
		return errors.New("Disallowed multiple redirects")
	} else if len(via) == 1 {
		if path.Clean(req.URL.Path) == path.Clean(via[0].URL.Path) {
			lReq := via[len(via)-1]
			for k, v := range lReq.Header {
				if _, ok := req.Header[k]; !ok {
					req.Header[k] = v
				}
			}
			return nil
		}
		return errors.New("Disallowed non-equivelent redirects")
	}
	return errors.New("Unknown redirect chain")
}

// Test checks if the API is responding to HTTP requests at all.
// It does not require a login.
func (c *Client) Test() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	uri := fmt.Sprintf("%s://%s%s", c.httpScheme, c.server, VERSION_URL)
	resp, err := c.clnt.Get(uri)
	if err != nil {
		return networkErr(http.MethodGet, err)
	}
	drainResponse(resp)
	if resp.StatusCode != http.StatusOK {
		return ErrInvalidTestStatus
	}
	return nil
}

// ApiVersion asks the server which API revision it speaks.
func (c *Client) ApiVersion() (string, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	uri := fmt.Sprintf("%s://%s%s", c.httpScheme, c.server, VERSION_URL)
	resp, err := c.clnt.Get(uri)
	if err != nil {
		return "", networkErr(http.MethodGet, err)
	}
	defer drainResponse(resp)
	if resp.StatusCode != http.StatusOK {
		return "", ErrInvalidTestStatus
	}
	var v struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return "", err
	}
	return v.Version, nil
}

// TestLogin checks that the current token is valid, indicated by a nil
// return. On success the cached user identity is refreshed.
func (c *Client) TestLogin() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	var tt struct {
		User types.User `json:"user"`
	}
	if err := c.postStaticURL(TEST_AUTH_URL, nil, &tt); err != nil {
		return err
	}
	c.sessionData.User = tt.User
	return nil
}

// Login authenticates the client using the given login and password,
// posting them as an OAuth2 password grant form.
func (c *Client) Login(user, pass string) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.state != STATE_NEW && c.state != STATE_LOGGED_OFF {
		return errors.New("Client not ready for login")
	}
	if user == "" {
		return errors.New("Invalid username")
	}

	uri := fmt.Sprintf("%s://%s%s", c.httpScheme, c.server, LOGIN_URL)

	loginCreds := url.Values{}
	loginCreds.Add(USER_FIELD, user)
	loginCreds.Add(PASS_FIELD, pass)

	req, err := http.NewRequest(http.MethodPost, uri, strings.NewReader(loginCreds.Encode()))
	if err != nil {
		return err
	}
	c.hm.populateRequest(req.Header)
	req.Header.Set(`Content-Type`, `application/x-www-form-urlencoded`)

	resp, err := c.clnt.Do(req)
	if err != nil {
		return networkErr(http.MethodPost, err)
	} else if resp == nil {
		return errors.New("Invalid response")
	}
	defer drainResponse(resp)

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusUnprocessableEntity:
		// the server distinguishes bad creds from an inactive user only in
		// the detail text
		if d := getBodyDetail(resp.Body); strings.Contains(d, "Inactive") {
			return ErrInactiveUser
		}
		return ErrLoginFail
	case http.StatusOK:
	default:
		return &ApiError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var loginResp types.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return err
	}
	return c.processLoginResponse(user, loginResp)
}

// RefreshLoginToken rotates the JWT using the refresh-token cookie issued at
// login, discarding the old token. The client must be logged in.
func (c *Client) RefreshLoginToken() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.state != STATE_AUTHED {
		return ErrNoLogin
	}
	uri := fmt.Sprintf("%s://%s%s", c.httpScheme, c.server, REFRESH_TOKEN_URL)

	req, err := http.NewRequest(http.MethodPost, uri, nil)
	if err != nil {
		return err
	}
	c.hm.populateRequest(req.Header)

	resp, err := c.clnt.Do(req)
	if err != nil {
		return networkErr(http.MethodPost, err)
	} else if resp == nil {
		return errors.New("Invalid response")
	}
	defer drainResponse(resp)

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusNotFound:
		return ErrLoginFail
	case http.StatusOK:
	default:
		return &ApiError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var loginResp types.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return err
	}
	return c.processLoginResponse(c.sessionData.Username, loginResp)
}

func (c *Client) importLoginToken(token string) error {
	if len(token) == 0 {
		return errors.New("invalid token")
	}
	//save the token in the header map, it is injected into every request
	c.hm.add(authHeaderName, "Bearer "+token)
	c.sessionData.JWT = token
	c.state = STATE_AUTHED //assume we are logged in when importing a token
	return nil
}

// ImportLoginToken loads an existing JWT into the client. The token is not
// validated at this point; use TestLogin to verify it.
func (c *Client) ImportLoginToken(token string) (err error) {
	c.mtx.Lock()
	err = c.importLoginToken(token)
	c.mtx.Unlock()
	return
}

func (c *Client) ExportLoginToken() (token string, err error) {
	c.mtx.Lock()
	if c.sessionData.JWT != `` {
		token = c.sessionData.JWT
	} else {
		err = ErrNoLogin
	}
	c.mtx.Unlock()
	return
}

func (c *Client) processLoginResponse(user string, loginResp types.LoginResponse) error {
	if loginResp.AccessToken == "" {
		return errors.New("Failed to retrieve access token")
	}
	if err := c.importLoginToken(loginResp.AccessToken); err != nil {
		return err
	}
	c.sessionData.Username = user
	c.sessionData.User = loginResp.User
	c.sessionData.IssuedAt = loginResp.TS
	return nil
}

// LoggedIn returns true if the client is in an authenticated state.
func (c *Client) LoggedIn() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.state == STATE_AUTHED
}

// SessionData returns the auth state of the current login session.
func (c *Client) SessionData() (types.ActiveSession, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.state != STATE_AUTHED {
		return types.ActiveSession{}, ErrNoLogin
	}
	return c.sessionData, nil
}

// Close shuts down the client and cleans up connections. It does NOT
// terminate the server side session.
func (c *Client) Close() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.state == STATE_CLOSED {
		return errors.New("Client already closed")
	}
	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	c.state = STATE_CLOSED
	return nil
}

// SetRequestTimeout overrides the client request timeout value.
func (c *Client) SetRequestTimeout(to time.Duration) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.state == STATE_CLOSED {
		return errors.New("Client already closed")
	}
	if to <= 0 {
		return errors.New("invalid timeout")
	}
	c.clnt.Timeout = to
	c.timeout = to
	return nil
}

// RequestTimeout returns the current client request timeout value.
func (c *Client) RequestTimeout() (time.Duration, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.state == STATE_CLOSED {
		return 0, errors.New("Client already closed")
	}
	return c.timeout, nil
}

// SetUserAgent replaces the User-Agent sent on every request.
func (c *Client) SetUserAgent(v string) error {
	if v == `` {
		return ErrEmptyUserAgent
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.userAgent = v
	c.hm.add(`User-Agent`, v)
	return nil
}
