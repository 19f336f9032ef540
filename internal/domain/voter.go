package domain

import "time"

// Voter is the registered user of the service. Each voter owns at most one
// RegistrationStatus record, seeded as UNCHECKED at profile creation and
// mutated only by the registration resolver.
type Voter struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	BirthDate time.Time
	Street    string
	City      string
	State     string
	ZipCode   string
	CreatedAt time.Time
}

// Identity projects the voter's stored fields into a lookup identity.
func (v Voter) Identity() Identity {
	return Identity{
		FirstName: v.FirstName,
		LastName:  v.LastName,
		BirthDate: v.BirthDate,
		Street:    v.Street,
		City:      v.City,
		State:     v.State,
		ZipCode:   v.ZipCode,
	}
}
