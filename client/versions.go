package client

import (
	"fmt"

	"github.com/Copysiter/O3GO-WA/client/tablequery"
	"github.com/Copysiter/O3GO-WA/client/types"
)

// ListVersions pulls one page of published app builds matching the query.
func (c *Client) ListVersions(p tablequery.Params) (types.VersionList, error) {
	var lst types.VersionList
	if err := c.listStaticURL(VERSIONS_URL, p, &lst); err != nil {
		return types.VersionList{}, err
	}
	return lst, nil
}

// GetVersion fetches a single build record by id.
func (c *Client) GetVersion(id int64) (types.Version, error) {
	var v types.Version
	if err := c.getStaticURL(fmt.Sprintf(VERSION_ID_URL, id), &v); err != nil {
		return types.Version{}, err
	}
	return v, nil
}

// CreateVersion publishes a new build record.
func (c *Client) CreateVersion(req types.VersionCreate) (types.Version, error) {
	var v types.Version
	if err := c.postStaticURL(VERSIONS_URL, req, &v); err != nil {
		return types.Version{}, err
	}
	return v, nil
}

// UpdateVersion applies a partial update and returns the stored record.
func (c *Client) UpdateVersion(id int64, req types.VersionUpdate) (types.Version, error) {
	var v types.Version
	if err := c.putStaticURL(fmt.Sprintf(VERSION_ID_URL, id), req, &v); err != nil {
		return types.Version{}, err
	}
	return v, nil
}

// DeleteVersion removes a build record, returning it as it stood.
func (c *Client) DeleteVersion(id int64) (types.Version, error) {
	var v types.Version
	if err := c.deleteStaticURL(fmt.Sprintf(VERSION_ID_URL, id), &v); err != nil {
		return types.Version{}, err
	}
	return v, nil
}
