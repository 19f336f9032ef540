package handler

import (
	"strings"
	"time"

	"votercheck/internal/voter"
	dErrors "votercheck/pkg/domain-errors"
)

// birthDateLayout is the wire format for birth dates.
const birthDateLayout = "2006-01-02"

// CreateVoterRequest is the HTTP request body for POST /voters.
type CreateVoterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// ToCreateRequest validates the wire representation and converts it to the
// service request. Only email is required at creation; identity fields can be
// completed later and the registration lookup handles their absence.
func (r CreateVoterRequest) ToCreateRequest() (voter.CreateRequest, error) {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return voter.CreateRequest{}, dErrors.New(dErrors.CodeBadRequest, "email is required")
	}

	var birthDate time.Time
	if r.BirthDate != "" {
		parsed, err := time.Parse(birthDateLayout, r.BirthDate)
		if err != nil {
			return voter.CreateRequest{}, dErrors.New(dErrors.CodeBadRequest, "birth_date must be formatted as YYYY-MM-DD")
		}
		birthDate = parsed
	}

	return voter.CreateRequest{
		Email:     r.Email,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		BirthDate: birthDate,
		Street:    strings.TrimSpace(r.Street),
		City:      strings.TrimSpace(r.City),
		State:     strings.TrimSpace(r.State),
		ZipCode:   strings.TrimSpace(r.ZipCode),
	}, nil
}
