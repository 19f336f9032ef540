package registration

import (
	"fmt"
	"maps"

	"github.com/google/uuid"

	"votercheck/internal/domain"
	"votercheck/internal/registration/authority"
)

// Detail keys used for non-match outcomes.
const (
	// DetailKeyNote carries a human-readable note for PENDING statuses.
	DetailKeyNote = "note"
	// DetailKeyReason explains a LOOKUP_FAILED that never reached the
	// authority (e.g. an incomplete identity).
	DetailKeyReason = "reason"
	// DetailKeyErrorRef is an opaque reference correlating a LOOKUP_FAILED
	// with server logs. The underlying error text is never exposed.
	DetailKeyErrorRef = "error_ref"
)

const pendingNote = "multiple possible matches found; manual verification is required"

// Normalize maps one authority outcome to exactly one status code plus
// detail. The mapping is the externally visible contract:
//
//	match     -> REGISTERED, authority record passed through verbatim
//	no_match  -> NOT_REGISTERED, empty detail
//	ambiguous -> PENDING, human-readable note
//	error     -> LOOKUP_FAILED, opaque error reference
//
// An outcome kind outside that set is a programming error and panics.
func Normalize(outcome authority.Outcome) (domain.StatusCode, map[string]string) {
	switch outcome.Kind {
	case authority.OutcomeMatch:
		detail := make(map[string]string, len(outcome.Detail))
		maps.Copy(detail, outcome.Detail)
		return domain.StatusRegistered, detail
	case authority.OutcomeNoMatch:
		return domain.StatusNotRegistered, map[string]string{}
	case authority.OutcomeAmbiguous:
		return domain.StatusPending, map[string]string{DetailKeyNote: pendingNote}
	case authority.OutcomeError:
		return domain.StatusLookupFailed, map[string]string{DetailKeyErrorRef: uuid.NewString()}
	default:
		panic(fmt.Sprintf("registration: unknown authority outcome kind %q", outcome.Kind))
	}
}
