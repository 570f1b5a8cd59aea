package client

import (
	"fmt"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/client/types"
)

// ListAccounts pulls one page of accounts matching the query.
func (c *Client) ListAccounts(p tablequery.Params) (types.AccountList, error) {
	var lst types.AccountList
	if err := c.listStaticURL(ACCOUNTS_URL, p, &lst); err != nil {
		return types.AccountList{}, err
	}
	return lst, nil
}

// GetAccount fetches a single account by id.
func (c *Client) GetAccount(id int64) (types.Account, error) {
	var a types.Account
	if err := c.getStaticURL(fmt.Sprintf(ACCOUNT_ID_URL, id), &a); err != nil {
		return types.Account{}, err
	}
	return a, nil
}

// CreateAccount registers a new account and returns the stored record.
func (c *Client) CreateAccount(req types.AccountCreate) (types.Account, error) {
	var a types.Account
	if err := c.postStaticURL(ACCOUNTS_URL, req, &a); err != nil {
		return types.Account{}, err
	}
	return a, nil
}

// UpdateAccount applies a partial update and returns the stored record.
func (c *Client) UpdateAccount(id int64, req types.AccountUpdate) (types.Account, error) {
	var a types.Account
	if err := c.putStaticURL(fmt.Sprintf(ACCOUNT_ID_URL, id), req, &a); err != nil {
		return types.Account{}, err
	}
	return a, nil
}

// DeleteAccount removes an account, returning the record as it stood.
func (c *Client) DeleteAccount(id int64) (types.Account, error) {
	var a types.Account
	if err := c.deleteStaticURL(fmt.Sprintf(ACCOUNT_ID_URL, id), &a); err != nil {
		return types.Account{}, err
	}
	return a, nil
}
