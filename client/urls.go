package client

// Paths on the management API. The _ID_ variants are printf patterns.
const (
	VERSION_URL = `/api/v1/`

	LOGIN_URL         = `/api/v1/auth/access-token`
	TEST_AUTH_URL     = `/api/v1/auth/test-token`
	REFRESH_TOKEN_URL = `/api/v1/auth/refresh-token`

	USERS_URL   = `/api/v1/users/`
	USER_ID_URL = `/api/v1/users/%d`

	ACCOUNTS_URL   = `/api/v1/accounts/`
	ACCOUNT_ID_URL = `/api/v1/accounts/%d`

	SESSIONS_URL   = `/api/v1/sessions/`
	SESSION_ID_URL = `/api/v1/sessions/%d`

	MESSAGES_URL   = `/api/v1/messages/`
	MESSAGE_ID_URL = `/api/v1/messages/%d`

	ANDROIDS_URL   = `/api/v1/androids/`
	ANDROID_ID_URL = `/api/v1/androids/%d`

	VERSIONS_URL   = `/api/v1/android/versions/`
	VERSION_ID_URL = `/api/v1/android/versions/%d`

	DEVICE_OPTIONS_URL = `/api/v1/options/`
)

// form field names for the OAuth2 password grant on LOGIN_URL
const (
	USER_FIELD = `username`
	PASS_FIELD = `password`
)
