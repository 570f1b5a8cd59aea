package types

import "time"

// Account type discriminators.
const (
	AccountTypeWhatsApp         = 1
	AccountTypeWhatsAppBusiness = 2
)

// Account is a sender account registered with the gateway.
type Account struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Number       string     `json:"number"`
	Type         int        `json:"type"`
	SessionCount int        `json:"session_count"`
	Status       AccountStatus `json:"status"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	Info1        string     `json:"info_1,omitempty"`
	Info2        string     `json:"info_2,omitempty"`
	Info3        string     `json:"info_3,omitempty"`
	User         *User      `json:"user,omitempty"`
}

// AccountCreate is the request body for registering an account.
type AccountCreate struct {
	UserID int64          `json:"user_id,omitempty"`
	Number string         `json:"number,omitempty"`
	Type   int            `json:"type,omitempty"`
	Status *AccountStatus `json:"status,omitempty"`
	Info1  string         `json:"info_1,omitempty"`
	Info2  string         `json:"info_2,omitempty"`
	Info3  string         `json:"info_3,omitempty"`
}

// AccountUpdate carries partial changes to an account. Nil fields are left
// untouched server-side.
type AccountUpdate struct {
	UserID *int64         `json:"user_id,omitempty"`
	Number *string        `json:"number,omitempty"`
	Type   *int           `json:"type,omitempty"`
	Status *AccountStatus `json:"status,omitempty"`
	Info1  *string        `json:"info_1,omitempty"`
	Info2  *string        `json:"info_2,omitempty"`
	Info3  *string        `json:"info_3,omitempty"`
}

// AccountList is the typed list envelope.
type AccountList struct {
	Data  []Account `json:"data"`
	Total int       `json:"total"`
}
