package types

import "time"

// Message is one outbound message tracked by the gateway.
type Message struct {
	ID        int64         `json:"id"`
	SessionID int64         `json:"session_id"`
	Number    string        `json:"number"`
	Geo       string        `json:"geo"`
	Text      string        `json:"text"`
	Status    MessageStatus `json:"status"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
	SentAt    *time.Time    `json:"sent_at,omitempty"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
	Info1     string        `json:"info_1,omitempty"`
	Info2     string        `json:"info_2,omitempty"`
	Info3     string        `json:"info_3,omitempty"`
	Info4     string        `json:"info_4,omitempty"`
	Info5     string        `json:"info_5,omitempty"`
	Info6     string        `json:"info_6,omitempty"`
	Info7     string        `json:"info_7,omitempty"`
	Info8     string        `json:"info_8,omitempty"`
	Session   *Session      `json:"session,omitempty"`
}

// MessageCreate is the request body for queueing a message.
type MessageCreate struct {
	SessionID int64          `json:"session_id"`
	Number    string         `json:"number"`
	Geo       string         `json:"geo"`
	Text      string         `json:"text,omitempty"`
	Status    *MessageStatus `json:"status,omitempty"`
}

// MessageUpdate carries partial changes to a message.
type MessageUpdate struct {
	SessionID *int64         `json:"session_id,omitempty"`
	Number    *string        `json:"number,omitempty"`
	Geo       *string        `json:"geo,omitempty"`
	Text      *string        `json:"text,omitempty"`
	Status    *MessageStatus `json:"status,omitempty"`
}

// MessageList is the typed list envelope.
type MessageList struct {
	Data  []Message `json:"data"`
	Total int       `json:"total"`
}

// MessageCreateResponse acknowledges a queued message.
type MessageCreateResponse struct {
	ID int64 `json:"id"`
}

// MessageStatusResponse is returned when a message's status is updated.
type MessageStatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
