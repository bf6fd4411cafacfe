package constants

// Context keys shared between middleware and handlers
const (
	ContextKeySubject = "subject"
	ContextKeyUserID  = "user_id"
	ContextKeyBoat    = "boat"
)

// Validation limits
const (
	MaxStringLen = 255
)

// Pagination
const (
	DefaultBoatPageSize = 10
	DefaultLoadPageSize = 5
	MaxPageSize         = 10
)

// MIMEJSON is the only media type the API speaks.
const MIMEJSON = "application/json"
