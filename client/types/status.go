package types

import (
	"fmt"
	"strconv"
	"strings"
)

// AccountStatus is the lifecycle state of an account (and of its sessions,
// which share the same state machine).
type AccountStatus int

const (
	AccountBanned    AccountStatus = -1
	AccountAvailable AccountStatus = 0
	AccountActive    AccountStatus = 1
	AccountPaused    AccountStatus = 2
)

func (s AccountStatus) String() string {
	switch s {
	case AccountBanned:
		return "BANNED"
	case AccountAvailable:
		return "AVAILABLE"
	case AccountActive:
		return "ACTIVE"
	case AccountPaused:
		return "PAUSED"
	}
	return fmt.Sprintf("AccountStatus(%d)", int(s))
}

// ParseAccountStatus converts a status name or raw integer into an AccountStatus.
func ParseAccountStatus(v string) (AccountStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "BANNED":
		return AccountBanned, nil
	case "AVAILABLE":
		return AccountAvailable, nil
	case "ACTIVE":
		return AccountActive, nil
	case "PAUSED":
		return AccountPaused, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("unknown account status '%v'", v)
	}
	return AccountStatus(i), nil
}

// MessageStatus is the delivery state of a message.
type MessageStatus int

const (
	MessageWaiting     MessageStatus = -1
	MessageCreated     MessageStatus = 0
	MessageSent        MessageStatus = 1
	MessageDelivered   MessageStatus = 2
	MessageUndelivered MessageStatus = 3
	MessageFailed      MessageStatus = 4
)

func (s MessageStatus) String() string {
	switch s {
	case MessageWaiting:
		return "WAITING"
	case MessageCreated:
		return "CREATED"
	case MessageSent:
		return "SENT"
	case MessageDelivered:
		return "DELIVERED"
	case MessageUndelivered:
		return "UNDELIVERED"
	case MessageFailed:
		return "FAILED"
	}
	return fmt.Sprintf("MessageStatus(%d)", int(s))
}

// ParseMessageStatus converts a status name or raw integer into a MessageStatus.
func ParseMessageStatus(v string) (MessageStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "WAITING":
		return MessageWaiting, nil
	case "CREATED":
		return MessageCreated, nil
	case "SENT":
		return MessageSent, nil
	case "DELIVERED":
		return MessageDelivered, nil
	case "UNDELIVERED":
		return MessageUndelivered, nil
	case "FAILED":
		return MessageFailed, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("unknown message status '%v'", v)
	}
	return MessageStatus(i), nil
}
