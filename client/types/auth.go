package types

import "time"

// LoginResponse is returned by the access-token and refresh-token endpoints.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        User      `json:"user"`
	TS          time.Time `json:"ts"`
}

// ActiveSession is the authenticated session state held by a client.
type ActiveSession struct {
	JWT      string
	Username string
	User     User
	IssuedAt time.Time
}
