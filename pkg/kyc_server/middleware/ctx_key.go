package middleware

// keys of values stored in context
type MiddleWareContextKey string

const (
	ENTERPRISE_ID = MiddleWareContextKey("enterprise_id") // The context value is a string representing the enterprise ID.
	API_KEY_ID    = MiddleWareContextKey("api_key_id")    // The context value is a string representing the API key ID.
	USER_TOKEN    = MiddleWareContextKey("user_token")    // The context value is a auth.UserToken.
)
