package client

import (
	"fmt"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/client/types"
)

// ListUsers pulls one page of users matching the query. Requires superuser.
func (c *Client) ListUsers(p tablequery.Params) (types.UserList, error) {
	var lst types.UserList
	if err := c.listStaticURL(USERS_URL, p, &lst); err != nil {
		return types.UserList{}, err
	}
	return lst, nil
}

// GetUser fetches a single user by id.
func (c *Client) GetUser(id int64) (types.User, error) {
	var u types.User
	if err := c.getStaticURL(fmt.Sprintf(USER_ID_URL, id), &u); err != nil {
		return types.User{}, err
	}
	return u, nil
}

// CreateUser provisions a new user and returns the stored record.
func (c *Client) CreateUser(req types.UserCreate) (types.User, error) {
	var u types.User
	if err := c.postStaticURL(USERS_URL, req, &u); err != nil {
		return types.User{}, err
	}
	return u, nil
}

// UpdateUser applies a partial update and returns the stored record.
func (c *Client) UpdateUser(id int64, req types.UserUpdate) (types.User, error) {
	var u types.User
	if err := c.putStaticURL(fmt.Sprintf(USER_ID_URL, id), req, &u); err != nil {
		return types.User{}, err
	}
	return u, nil
}

// DeleteUser removes a user, returning the record as it stood.
func (c *Client) DeleteUser(id int64) (types.User, error) {
	var u types.User
	if err := c.deleteStaticURL(fmt.Sprintf(USER_ID_URL, id), &u); err != nil {
		return types.User{}, err
	}
	return u, nil
}
