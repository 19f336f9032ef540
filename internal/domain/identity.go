package domain

import "time"

// Identity is the name/birthdate/address tuple used to query the external
// registration authority. It is an input value, never persisted on its own:
// authenticated requests build one from the stored voter, anonymous requests
// build one from query parameters.
type Identity struct {
	FirstName string
	LastName  string
	BirthDate time.Time
	Street    string
	City      string
	State     string
	ZipCode   string
}

// IsLookupable reports whether the identity carries every field the external
// authority needs for a meaningful query. Syntactic validation (date formats,
// zip shape) happens at the transport boundary; this only checks presence.
func (i Identity) IsLookupable() bool {
	return i.FirstName != "" &&
		i.LastName != "" &&
		!i.BirthDate.IsZero() &&
		i.Street != "" &&
		i.City != "" &&
		i.State != "" &&
		i.ZipCode != ""
}
