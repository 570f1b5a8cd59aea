package types

// Version is one published build of the companion app.
type Version struct {
	ID          int64  `json:"id"`
	FileName    string `json:"file_name"`
	Description string `json:"description,omitempty"`
}

// VersionCreate is the request body for publishing a build.
type VersionCreate struct {
	FileName    string `json:"file_name"`
	Description string `json:"description,omitempty"`
}

// VersionUpdate carries partial changes to a build record.
type VersionUpdate struct {
	FileName    *string `json:"file_name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// VersionList is the typed list envelope.
type VersionList struct {
	Data  []Version `json:"data"`
	Total int       `json:"total"`
}
