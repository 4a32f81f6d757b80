package constants

const (
	// ContextKeyUserID is the gin context key holding the authenticated
	// caller's user id.
	ContextKeyUserID = "user_id"

	// BearerPrefix is the expected Authorization header scheme.
	BearerPrefix = "Bearer "
)
