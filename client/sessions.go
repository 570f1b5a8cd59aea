package client

import (
	"fmt"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/client/types"
)

// ListSessions pulls one page of account sessions matching the query.
func (c *Client) ListSessions(p tablequery.Params) (types.SessionList, error) {
	var lst types.SessionList
	if err := c.listStaticURL(SESSIONS_URL, p, &lst); err != nil {
		return types.SessionList{}, err
	}
	return lst, nil
}

// GetSession fetches a single session by id.
func (c *Client) GetSession(id int64) (types.Session, error) {
	var s types.Session
	if err := c.getStaticURL(fmt.Sprintf(SESSION_ID_URL, id), &s); err != nil {
		return types.Session{}, err
	}
	return s, nil
}

// CreateSession opens a new session and returns the stored record.
func (c *Client) CreateSession(req types.SessionCreate) (types.Session, error) {
	var s types.Session
	if err := c.postStaticURL(SESSIONS_URL, req, &s); err != nil {
		return types.Session{}, err
	}
	return s, nil
}

// UpdateSession applies a partial update and returns the stored record.
func (c *Client) UpdateSession(id int64, req types.SessionUpdate) (types.Session, error) {
	var s types.Session
	if err := c.putStaticURL(fmt.Sprintf(SESSION_ID_URL, id), req, &s); err != nil {
		return types.Session{}, err
	}
	return s, nil
}

// DeleteSession removes a session, returning the record as it stood.
func (c *Client) DeleteSession(id int64) (types.Session, error) {
	var s types.Session
	if err := c.deleteStaticURL(fmt.Sprintf(SESSION_ID_URL, id), &s); err != nil {
		return types.Session{}, err
	}
	return s, nil
}
