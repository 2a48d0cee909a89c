package middleware

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	sessionIDKey = contextKey("sessionID")
)
