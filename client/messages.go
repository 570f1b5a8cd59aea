package client

import (
	"fmt"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/client/types"
)

// ListMessages pulls one page of messages matching the query.
func (c *Client) ListMessages(p tablequery.Params) (types.MessageList, error) {
	var lst types.MessageList
	if err := c.listStaticURL(MESSAGES_URL, p, &lst); err != nil {
		return types.MessageList{}, err
	}
	return lst, nil
}

// GetMessage fetches a single message by id.
func (c *Client) GetMessage(id int64) (types.Message, error) {
	var m types.Message
	if err := c.getStaticURL(fmt.Sprintf(MESSAGE_ID_URL, id), &m); err != nil {
		return types.Message{}, err
	}
	return m, nil
}

// CreateMessage queues a message for delivery.
func (c *Client) CreateMessage(req types.MessageCreate) (types.MessageCreateResponse, error) {
	var r types.MessageCreateResponse
	if err := c.postStaticURL(MESSAGES_URL, req, &r); err != nil {
		return types.MessageCreateResponse{}, err
	}
	return r, nil
}

// UpdateMessage applies a partial update and returns the stored record.
func (c *Client) UpdateMessage(id int64, req types.MessageUpdate) (types.Message, error) {
	var m types.Message
	if err := c.putStaticURL(fmt.Sprintf(MESSAGE_ID_URL, id), req, &m); err != nil {
		return types.Message{}, err
	}
	return m, nil
}

// DeleteMessage removes a message, returning the record as it stood.
func (c *Client) DeleteMessage(id int64) (types.Message, error) {
	var m types.Message
	if err := c.deleteStaticURL(fmt.Sprintf(MESSAGE_ID_URL, id), &m); err != nil {
		return types.Message{}, err
	}
	return m, nil
}
