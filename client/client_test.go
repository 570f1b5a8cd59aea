package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/client/types"
)

const testToken = `eyJ.test.token`

// newTestPair spins up a server with a login handler plus the given mux and
// hands back a logged-in client against it.
func newTestPair(t *testing.T, mux *http.ServeMux) (*Client, *httptest.Server) {
	t.Helper()
	if mux == nil {
		mux = http.NewServeMux()
	}
	mux.HandleFunc(LOGIN_URL, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.PostFormValue(USER_FIELD) != "admin" || r.PostFormValue(PASS_FIELD) != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"detail":"Incorrect login or password"}`)
			return
		}
		json.NewEncoder(w).Encode(types.LoginResponse{
			AccessToken: testToken,
			TokenType:   "bearer",
			User:        types.User{ID: 1, Login: "admin", IsActive: true, IsSuperuser: true},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := New(strings.TrimPrefix(srv.URL, "http://"), false, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Login("admin", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return c, srv
}

func TestLoginInstallsBearerToken(t *testing.T) {
	var gotAuth atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc(ACCOUNTS_URL, func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(types.AccountList{})
	})
	c, _ := newTestPair(t, mux)

	if _, err := c.ListAccounts(tablequery.Params{}); err != nil {
		t.Fatal(err)
	}
	if got := gotAuth.Load(); got != "Bearer "+testToken {
		t.Errorf("Authorization = %q, want bearer token", got)
	}
	if !c.LoggedIn() {
		t.Error("client should be logged in")
	}
}

func TestLoginFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"detail":"Incorrect login or password"}`)
	}))
	defer srv.Close()
	c, err := New(strings.TrimPrefix(srv.URL, "http://"), false, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Login("admin", "wrong"); err != ErrLoginFail {
		t.Errorf("err = %v, want ErrLoginFail", err)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"detail":"Inactive user"}`)
	}))
	defer srv.Close()
	c, err := New(strings.TrimPrefix(srv.URL, "http://"), false, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Login("admin", "secret"); err != ErrInactiveUser {
		t.Errorf("err = %v, want ErrInactiveUser", err)
	}
}

func TestUnauthorizedFlipsState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(ACCOUNTS_URL, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c, _ := newTestPair(t, mux)

	if _, err := c.ListAccounts(tablequery.Params{}); err != ErrNotAuthed {
		t.Errorf("err = %v, want ErrNotAuthed", err)
	}
	if c.LoggedIn() {
		t.Error("client should be logged off after a 401")
	}
}

func TestApiErrorCarriesStatusAndDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(ACCOUNTS_URL, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"detail":"duplicate field in order_by"}`)
	})
	c, _ := newTestPair(t, mux)

	_, err := c.ListAccounts(tablequery.Params{})
	var apiErr *ApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T(%v), want *ApiError", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "duplicate field in order_by" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
}

func TestNotFound(t *testing.T) {
	c, _ := newTestPair(t, nil)
	if _, err := c.GetAccount(99); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestNetworkErrorType(t *testing.T) {
	c, err := New("127.0.0.1:1", false, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.ImportLoginToken(testToken); err != nil {
		t.Fatal(err)
	}
	_, err = c.ListAccounts(tablequery.Params{})
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %T(%v), want *NetworkError", err, err)
	}
}

func TestListQueryOnTheWire(t *testing.T) {
	var gotQuery atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc(MESSAGES_URL, func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		json.NewEncoder(w).Encode(types.MessageList{Total: 0})
	})
	c, _ := newTestPair(t, mux)

	p := tablequery.Params{
		Skip:  50,
		Limit: 25,
		Sorts: []tablequery.Sort{{Field: "created_at", Desc: true}, {Field: "id"}},
		Filters: []tablequery.Filter{
			tablequery.NewFilter("status", tablequery.OpEq, "1"),
			{Field: "geo", Op: tablequery.OpIn, Values: []string{"ru", "kz"}},
		},
	}
	if _, err := c.ListMessages(p); err != nil {
		t.Fatal(err)
	}
	q := gotQuery.Load().(url.Values)
	want := map[string]string{
		"skip": "50", "limit": "25",
		"order_by": "-created_at,id",
		"status":   "1",
		"geo__in":  "ru,kz",
	}
	for k, wv := range want {
		if got := q.Get(k); got != wv {
			t.Errorf("%s = %q, want %q", k, got, wv)
		}
	}
}

func TestGenericListNormalizes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(SESSIONS_URL, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":1,"ext_id":"a"},{"id":2,"ext_id":"b"}],"total":17}`)
	})
	c, _ := newTestPair(t, mux)

	res, err := c.List(SESSIONS_URL, tablequery.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 2 || res.Total != 17 {
		t.Errorf("rows = %d, total = %d", len(res.Rows), res.Total)
	}
	if res.Rows[1]["ext_id"] != "b" {
		t.Errorf("row content = %v", res.Rows[1])
	}
}

func TestRetryOnceOnNetworkError(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc(ACCOUNTS_URL, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// kill the connection mid-response to force a transport error
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("server does not support hijacking")
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Fatal(err)
			}
			conn.Close()
			return
		}
		json.NewEncoder(w).Encode(types.AccountList{Total: 3})
	})
	c, _ := newTestPair(t, mux)

	lst, err := c.ListAccounts(tablequery.Params{})
	if err != nil {
		t.Fatalf("expected the retry to succeed, got %v", err)
	}
	if lst.Total != 3 {
		t.Errorf("total = %d", lst.Total)
	}
	if calls.Load() != 2 {
		t.Errorf("server saw %d calls, want 2", calls.Load())
	}
}

func TestNoRetryOnPost(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc(MESSAGES_URL, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Fatal("server does not support hijacking")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Fatal(err)
		}
		conn.Close()
	})
	c, _ := newTestPair(t, mux)

	_, err := c.CreateMessage(types.MessageCreate{SessionID: 1, Number: "123", Geo: "ru"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls.Load() != 1 {
		t.Errorf("server saw %d calls, want 1 (no retry on POST)", calls.Load())
	}
}

func TestTokenExportImport(t *testing.T) {
	c, srv := newTestPair(t, nil)

	tok, err := c.ExportLoginToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok != testToken {
		t.Errorf("token = %q", tok)
	}

	c2, err := New(strings.TrimPrefix(srv.URL, "http://"), false, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c2.ImportLoginToken(tok); err != nil {
		t.Fatal(err)
	}
	if !c2.LoggedIn() {
		t.Error("imported token should leave the client authed")
	}
}

func TestSessionData(t *testing.T) {
	c, _ := newTestPair(t, nil)
	sd, err := c.SessionData()
	if err != nil {
		t.Fatal(err)
	}
	if sd.Username != "admin" || sd.User.Login != "admin" {
		t.Errorf("session data = %+v", sd)
	}
	if sd.JWT != testToken {
		t.Errorf("jwt = %q", sd.JWT)
	}
}

func TestNotLoggedIn(t *testing.T) {
	c, err := New("localhost:80", false, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListAccounts(tablequery.Params{}); err != ErrNoLogin {
		t.Errorf("err = %v, want ErrNoLogin", err)
	}
}

func TestApiVersion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(VERSION_URL, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"version":"v1"}`)
	})
	c, _ := newTestPair(t, mux)
	v, err := c.ApiVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != "v1" {
		t.Errorf("version = %q", v)
	}
}

func TestClientStateString(t *testing.T) {
	states := map[clientState]string{
		STATE_NEW:        "NEW",
		STATE_AUTHED:     "AUTHED",
		STATE_LOGGED_OFF: "LOGGED_OFF",
		STATE_CLOSED:     "CLOSED",
		clientState(999): "UNKNOWN",
	}
	for cs, want := range states {
		if got := cs.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", cs, got, want)
		}
	}
}
