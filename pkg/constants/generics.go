package constants

import "time"

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// WaitlistCollection is the table / collection / key that receives waitlist entries
// in every record store backend.
const WaitlistCollection = "users"

const (
	// DefaultRequestTimeout bounds the whole request, not the insert itself.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultShutdownTimeout is how long in-flight requests get on SIGTERM.
	DefaultShutdownTimeout = 30 * time.Second
)
