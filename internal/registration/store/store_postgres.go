package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"votercheck/internal/domain"
	"votercheck/pkg/platform/sentinel"
)

// PostgresStatusStore persists registration statuses in PostgreSQL. The
// schema lives in migrations/0001_init.sql; one row per voter, keyed by a
// unique voter_id, so a single INSERT ... ON CONFLICT DO UPDATE gives
// last-write-wins upserts with no field-level interleaving.
type PostgresStatusStore struct {
	db *sql.DB
}

// NewPostgresStatusStore constructs a PostgreSQL-backed status store.
func NewPostgresStatusStore(db *sql.DB) *PostgresStatusStore {
	return &PostgresStatusStore{db: db}
}

func (s *PostgresStatusStore) GetCurrent(ctx context.Context, voterID string) (domain.RegistrationStatus, error) {
	query := `
		SELECT id, voter_id, code, detail, checked_at
		FROM registration_statuses
		WHERE voter_id = $1
	`
	status, err := scanStatus(s.db.QueryRowContext(ctx, query, voterID))
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.RegistrationStatus{VoterID: voterID, Code: domain.StatusUnchecked}, nil
		}
		return domain.RegistrationStatus{}, fmt.Errorf("get current status: %w", err)
	}
	return status, nil
}

func (s *PostgresStatusStore) GetByID(ctx context.Context, statusID string) (domain.RegistrationStatus, error) {
	query := `
		SELECT id, voter_id, code, detail, checked_at
		FROM registration_statuses
		WHERE id = $1
	`
	status, err := scanStatus(s.db.QueryRowContext(ctx, query, statusID))
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.RegistrationStatus{}, fmt.Errorf("status %s: %w", statusID, sentinel.ErrNotFound)
		}
		return domain.RegistrationStatus{}, fmt.Errorf("get status by id: %w", err)
	}
	return status, nil
}

func (s *PostgresStatusStore) Upsert(ctx context.Context, voterID string, code domain.StatusCode, detail map[string]string, checkedAt time.Time) (domain.RegistrationStatus, error) {
	detailJSON, err := json.Marshal(copyDetailNonNil(detail))
	if err != nil {
		return domain.RegistrationStatus{}, fmt.Errorf("marshal status detail: %w", err)
	}

	query := `
		INSERT INTO registration_statuses (id, voter_id, code, detail, checked_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (voter_id) DO UPDATE SET
			code = EXCLUDED.code,
			detail = EXCLUDED.detail,
			checked_at = EXCLUDED.checked_at
		RETURNING id, voter_id, code, detail, checked_at
	`
	status, err := scanStatus(s.db.QueryRowContext(ctx, query, uuid.NewString(), voterID, string(code), detailJSON, nullTime(checkedAt)))
	if err != nil {
		return domain.RegistrationStatus{}, fmt.Errorf("upsert status: %w", err)
	}
	return status, nil
}

func (s *PostgresStatusStore) NewEphemeral(identity domain.Identity) domain.RegistrationStatus {
	return Ephemeral(identity)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStatus(row rowScanner) (domain.RegistrationStatus, error) {
	var (
		status     domain.RegistrationStatus
		code       string
		detailJSON []byte
		checkedAt  sql.NullTime
	)
	if err := row.Scan(&status.ID, &status.VoterID, &code, &detailJSON, &checkedAt); err != nil {
		return domain.RegistrationStatus{}, err
	}
	status.Code = domain.StatusCode(code)
	if checkedAt.Valid {
		status.CheckedAt = checkedAt.Time
	}
	if len(detailJSON) > 0 {
		if err := json.Unmarshal(detailJSON, &status.Detail); err != nil {
			return domain.RegistrationStatus{}, fmt.Errorf("unmarshal status detail: %w", err)
		}
	}
	return status, nil
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func copyDetailNonNil(detail map[string]string) map[string]string {
	if detail == nil {
		return map[string]string{}
	}
	return detail
}
