package constants

// Pagination limits
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Validation limits
const (
	MinNameLength     = 2
	MaxNameLength     = 100
	MinPasswordLength = 6
)

// DefaultAvailability is assigned to users that never set an availability.
const DefaultAvailability = "available"

// Session and context keys
const (
	SessionCookieName = "skillbridge_session"
	ContextKeyUserID  = "user_id"
	ContextKeyProject = "project"
)
