package authority

import (
	"context"
	"strings"
	"sync"
	"time"

	"votercheck/internal/domain"
)

// MockRecord is one seeded registration entry for the mock authority.
type MockRecord struct {
	FirstName string
	LastName  string
	BirthDate string // 2006-01-02
	ZipCode   string
	Detail    map[string]string
}

// MockClient is a deterministic in-process authority for dev and tests. It
// matches on name, birthdate, and zip, with a configurable latency to mimic a
// real upstream.
type MockClient struct {
	Latency time.Duration

	mu      sync.RWMutex
	records []MockRecord
}

// NewMockClient seeds a mock authority. With no records it answers NoMatch
// for everyone.
func NewMockClient(records ...MockRecord) *MockClient {
	return &MockClient{records: records}
}

// Add seeds another record after construction. Test helper.
func (c *MockClient) Add(record MockRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, record)
}

func (c *MockClient) Lookup(ctx context.Context, identity domain.Identity) (Outcome, error) {
	if c.Latency > 0 {
		select {
		case <-time.After(c.Latency):
		case <-ctx.Done():
			return Outcome{}, ctx.Err()
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matches []MockRecord
	for _, r := range c.records {
		if strings.EqualFold(r.FirstName, identity.FirstName) &&
			strings.EqualFold(r.LastName, identity.LastName) &&
			r.BirthDate == identity.BirthDate.Format("2006-01-02") &&
			r.ZipCode == identity.ZipCode {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return NoMatch(), nil
	case 1:
		return Match(matches[0].Detail), nil
	default:
		return Ambiguous(), nil
	}
}
