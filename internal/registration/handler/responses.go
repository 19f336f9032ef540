package handler

import (
	"time"

	"votercheck/internal/domain"
)

// StatusResponse is the HTTP representation of a registration status.
type StatusResponse struct {
	ID        string            `json:"id,omitempty"`
	VoterID   string            `json:"voter_id,omitempty"`
	Status    string            `json:"status"`
	Detail    map[string]string `json:"detail"`
	CheckedAt *time.Time        `json:"checked_at"`
}

// FromStatus converts a domain status to its HTTP representation. Ephemeral
// statuses carry no record or voter id; a zero CheckedAt serializes as null.
func FromStatus(s domain.RegistrationStatus) StatusResponse {
	resp := StatusResponse{
		ID:      s.ID,
		VoterID: s.VoterID,
		Status:  string(s.Code),
		Detail:  s.Detail,
	}
	if resp.Detail == nil {
		resp.Detail = map[string]string{}
	}
	if !s.CheckedAt.IsZero() {
		checkedAt := s.CheckedAt
		resp.CheckedAt = &checkedAt
	}
	return resp
}
