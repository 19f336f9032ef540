package registration

import "votercheck/internal/domain"

// Subject is who a resolution runs for: an authenticated voter whose status is
// persisted, or an anonymous identity supplied with the request. The two are
// an explicit sum so the resolver matches on them exhaustively instead of
// sniffing fields.
type Subject struct {
	voter    *domain.Voter
	identity domain.Identity
}

// ForVoter builds an authenticated subject from a stored voter.
func ForVoter(voter domain.Voter) Subject {
	return Subject{voter: &voter, identity: voter.Identity()}
}

// ForIdentity builds an anonymous subject from request-supplied fields.
func ForIdentity(identity domain.Identity) Subject {
	return Subject{identity: identity}
}

// Voter returns the authenticated voter, if any.
func (s Subject) Voter() (domain.Voter, bool) {
	if s.voter == nil {
		return domain.Voter{}, false
	}
	return *s.voter, true
}

// Identity returns the lookup identity for either subject kind.
func (s Subject) Identity() domain.Identity {
	return s.identity
}
