package domain

import "time"

// StatusCode is the fixed registration status vocabulary exposed to API
// consumers. The set is a stable contract; new codes are a breaking change.
type StatusCode string

const (
	StatusRegistered    StatusCode = "REGISTERED"
	StatusNotRegistered StatusCode = "NOT_REGISTERED"
	StatusPending       StatusCode = "PENDING"
	StatusLookupFailed  StatusCode = "LOOKUP_FAILED"
	StatusUnchecked     StatusCode = "UNCHECKED"
)

// Valid reports whether c is one of the published status codes.
func (c StatusCode) Valid() bool {
	switch c {
	case StatusRegistered, StatusNotRegistered, StatusPending, StatusLookupFailed, StatusUnchecked:
		return true
	}
	return false
}

// RegistrationStatus is the timestamped outcome of a registration lookup.
// CheckedAt always reflects when the underlying data was fetched, even when
// the record is served from cache, so callers can judge staleness. A zero
// CheckedAt means no lookup has ever run (UNCHECKED).
type RegistrationStatus struct {
	ID        string
	VoterID   string // empty for ephemeral (anonymous) statuses
	Code      StatusCode
	Detail    map[string]string
	CheckedAt time.Time
}

// Ephemeral reports whether the status exists only for the current request
// and is never persisted.
func (s RegistrationStatus) Ephemeral() bool {
	return s.VoterID == ""
}
