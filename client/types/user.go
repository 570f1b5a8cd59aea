package types

// User is an operator account on the management API.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name,omitempty"`
	Login       string `json:"login"`
	ExtAPIKey   string `json:"ext_api_key,omitempty"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserCreate is the request body for provisioning a user.
type UserCreate struct {
	Name        string `json:"name,omitempty"`
	Login       string `json:"login"`
	Password    string `json:"password"`
	ExtAPIKey   string `json:"ext_api_key,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
	IsSuperuser *bool  `json:"is_superuser,omitempty"`
}

// UserUpdate carries partial changes to a user.
type UserUpdate struct {
	Name        *string `json:"name,omitempty"`
	Login       *string `json:"login,omitempty"`
	Password    *string `json:"password,omitempty"`
	ExtAPIKey   *string `json:"ext_api_key,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

// UserList is the typed list envelope.
type UserList struct {
	Data  []User `json:"data"`
	Total int    `json:"total"`
}
