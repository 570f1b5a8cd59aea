package types

// Android is a registered device running the companion app.
// Numeric-looking fields (Type, Bat, Charging) stay strings on the wire.
type Android struct {
	ID             int64  `json:"id"`
	Type           string `json:"type,omitempty"`
	Device         string `json:"device"`
	DeviceOrigin   string `json:"device_origin,omitempty"`
	DeviceName     string `json:"device_name,omitempty"`
	Manufacturer   string `json:"manufacturer,omitempty"`
	Version        string `json:"version,omitempty"`
	AndroidVersion string `json:"android_version,omitempty"`
	OperatorName   string `json:"operator_name,omitempty"`
	Bat            string `json:"bat,omitempty"`
	Charging       string `json:"charging,omitempty"`
	PushID         string `json:"push_id,omitempty"`
	InfoData       string `json:"info_data,omitempty"`
	UserID         int64  `json:"user_id,omitempty"`
	IsActive       bool   `json:"is_active"`
	User           *User  `json:"user,omitempty"`
}

// AndroidCreate is the request body for registering a device.
type AndroidCreate struct {
	Type           string `json:"type"`
	Device         string `json:"device"`
	DeviceOrigin   string `json:"device_origin"`
	DeviceName     string `json:"device_name,omitempty"`
	Manufacturer   string `json:"manufacturer,omitempty"`
	Version        string `json:"version,omitempty"`
	AndroidVersion string `json:"android_version,omitempty"`
	OperatorName   string `json:"operator_name,omitempty"`
	PushID         string `json:"push_id,omitempty"`
	UserID         int64  `json:"user_id,omitempty"`
}

// AndroidUpdate carries partial changes to a device record.
type AndroidUpdate struct {
	DeviceName   *string `json:"device_name,omitempty"`
	Version      *string `json:"version,omitempty"`
	OperatorName *string `json:"operator_name,omitempty"`
	PushID       *string `json:"push_id,omitempty"`
	UserID       *int64  `json:"user_id,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// AndroidList is the typed list envelope.
type AndroidList struct {
	Data  []Android `json:"data"`
	Total int       `json:"total"`
}
