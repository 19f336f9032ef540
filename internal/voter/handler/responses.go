package handler

import (
	"time"

	"votercheck/internal/domain"
)

// VoterResponse is the HTTP representation of a voter profile.
type VoterResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate string    `json:"birth_date,omitempty"`
	Street    string    `json:"street,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FromVoter converts a domain voter to its HTTP representation.
func FromVoter(v domain.Voter) VoterResponse {
	resp := VoterResponse{
		ID:        v.ID,
		Email:     v.Email,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Street:    v.Street,
		City:      v.City,
		State:     v.State,
		ZipCode:   v.ZipCode,
		CreatedAt: v.CreatedAt,
	}
	if !v.BirthDate.IsZero() {
		resp.BirthDate = v.BirthDate.Format(birthDateLayout)
	}
	return resp
}
