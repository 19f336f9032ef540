package authority

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"votercheck/internal/domain"
)

// HTTPClient talks to a registration authority over its JSON lookup endpoint.
// Every request is bounded by the configured timeout; a timeout is reported as
// a transport error and the resolver turns it into LOOKUP_FAILED.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds an authority client against baseURL. The timeout bounds
// the full request including body read.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// lookupResponse is the authority's wire format.
type lookupResponse struct {
	Result string            `json:"result"` // "match", "no_match", "ambiguous"
	Record map[string]string `json:"record,omitempty"`
}

func (c *HTTPClient) Lookup(ctx context.Context, identity domain.Identity) (Outcome, error) {
	q := url.Values{}
	q.Set("first_name", identity.FirstName)
	q.Set("last_name", identity.LastName)
	q.Set("birth_date", identity.BirthDate.Format("2006-01-02"))
	q.Set("street", identity.Street)
	q.Set("city", identity.City)
	q.Set("state", identity.State)
	q.Set("zip_code", identity.ZipCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/lookup?"+q.Encode(), nil)
	if err != nil {
		return Outcome{}, fmt.Errorf("build authority request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("authority request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The authority answered but not usefully. This is its fault, not a
		// protocol-level "no match", so it flows through the error branch.
		return Outcome{}, fmt.Errorf("authority returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Outcome{}, fmt.Errorf("decode authority response: %w", err)
	}

	switch body.Result {
	case "match":
		return Match(body.Record), nil
	case "no_match":
		return NoMatch(), nil
	case "ambiguous":
		return Ambiguous(), nil
	default:
		return Outcome{}, fmt.Errorf("authority returned unknown result %q", body.Result)
	}
}
