package handler

import (
	"net/url"
	"strings"
	"time"

	"votercheck/internal/domain"
	dErrors "votercheck/pkg/domain-errors"
)

const birthDateLayout = "2006-01-02"

// identityFromQuery parses an anonymous lookup identity from query
// parameters. Missing fields are left empty; the resolver reports incomplete
// identities as LOOKUP_FAILED rather than rejecting them here. Only a
// malformed birth date is a client error.
func identityFromQuery(q url.Values) (domain.Identity, error) {
	identity := domain.Identity{
		FirstName: strings.TrimSpace(q.Get("first_name")),
		LastName:  strings.TrimSpace(q.Get("last_name")),
		Street:    strings.TrimSpace(q.Get("street")),
		City:      strings.TrimSpace(q.Get("city")),
		State:     strings.TrimSpace(q.Get("state")),
		ZipCode:   strings.TrimSpace(q.Get("zip_code")),
	}

	if raw := strings.TrimSpace(q.Get("birth_date")); raw != "" {
		parsed, err := time.Parse(birthDateLayout, raw)
		if err != nil {
			return domain.Identity{}, dErrors.New(dErrors.CodeBadRequest, "birth_date must be formatted as YYYY-MM-DD")
		}
		identity.BirthDate = parsed
	}

	return identity, nil
}
