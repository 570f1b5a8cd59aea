package client

import (
	"fmt"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/client/types"
)

// ListAndroids pulls one page of registered devices matching the query.
func (c *Client) ListAndroids(p tablequery.Params) (types.AndroidList, error) {
	var lst types.AndroidList
	if err := c.listStaticURL(ANDROIDS_URL, p, &lst); err != nil {
		return types.AndroidList{}, err
	}
	return lst, nil
}

// GetAndroid fetches a single device record by id.
func (c *Client) GetAndroid(id int64) (types.Android, error) {
	var a types.Android
	if err := c.getStaticURL(fmt.Sprintf(ANDROID_ID_URL, id), &a); err != nil {
		return types.Android{}, err
	}
	return a, nil
}

// CreateAndroid registers a new device and returns the stored record.
func (c *Client) CreateAndroid(req types.AndroidCreate) (types.Android, error) {
	var a types.Android
	if err := c.postStaticURL(ANDROIDS_URL, req, &a); err != nil {
		return types.Android{}, err
	}
	return a, nil
}

// UpdateAndroid applies a partial update and returns the stored record.
func (c *Client) UpdateAndroid(id int64, req types.AndroidUpdate) (types.Android, error) {
	var a types.Android
	if err := c.putStaticURL(fmt.Sprintf(ANDROID_ID_URL, id), req, &a); err != nil {
		return types.Android{}, err
	}
	return a, nil
}

// DeleteAndroid removes a device record, returning it as it stood.
func (c *Client) DeleteAndroid(id int64) (types.Android, error) {
	var a types.Android
	if err := c.deleteStaticURL(fmt.Sprintf(ANDROID_ID_URL, id), &a); err != nil {
		return types.Android{}, err
	}
	return a, nil
}
