package types

import "time"

// Session is one login session of an account on a device.
type Session struct {
	ID        int64         `json:"id"`
	AccountID int64         `json:"account_id"`
	ExtID     string        `json:"ext_id"`
	MsgCount  int           `json:"msg_count"`
	Status    AccountStatus `json:"status"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
	Info1     string        `json:"info_1,omitempty"`
	Info2     string        `json:"info_2,omitempty"`
	Info3     string        `json:"info_3,omitempty"`
	Info4     string        `json:"info_4,omitempty"`
	Info5     string        `json:"info_5,omitempty"`
	Info6     string        `json:"info_6,omitempty"`
	Info7     string        `json:"info_7,omitempty"`
	Info8     string        `json:"info_8,omitempty"`
	Account   *Account      `json:"account,omitempty"`
}

// SessionCreate is the request body for opening a session.
type SessionCreate struct {
	AccountID int64          `json:"account_id"`
	ExtID     string         `json:"ext_id"`
	Status    *AccountStatus `json:"status,omitempty"`
	Info1     string         `json:"info_1,omitempty"`
	Info2     string         `json:"info_2,omitempty"`
	Info3     string         `json:"info_3,omitempty"`
	Info4     string         `json:"info_4,omitempty"`
}

// SessionUpdate carries partial changes to a session.
type SessionUpdate struct {
	AccountID *int64         `json:"account_id,omitempty"`
	ExtID     *string        `json:"ext_id,omitempty"`
	MsgCount  *int           `json:"msg_count,omitempty"`
	Status    *AccountStatus `json:"status,omitempty"`
	Info1     *string        `json:"info_1,omitempty"`
	Info2     *string        `json:"info_2,omitempty"`
	Info3     *string        `json:"info_3,omitempty"`
	Info4     *string        `json:"info_4,omitempty"`
	Info5     *string        `json:"info_5,omitempty"`
	Info6     *string        `json:"info_6,omitempty"`
	Info7     *string        `json:"info_7,omitempty"`
	Info8     *string        `json:"info_8,omitempty"`
}

// SessionList is the typed list envelope.
type SessionList struct {
	Data  []Session `json:"data"`
	Total int       `json:"total"`
}

// SessionStatusResponse is returned when a session's status is flipped.
type SessionStatusResponse struct {
	ID     int64  `json:"id"`
	ExtID  string `json:"ext_id"`
	Number string `json:"number"`
	Status string `json:"status"`
}
