package voter

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"votercheck/internal/domain"
	"votercheck/pkg/platform/sentinel"
)

// PostgresStore persists voters in PostgreSQL. Schema in
// migrations/0001_init.sql.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, voter domain.Voter) error {
	query := `
		INSERT INTO voters (id, email, first_name, last_name, birth_date, street, city, state, zip_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			birth_date = EXCLUDED.birth_date,
			street = EXCLUDED.street,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip_code = EXCLUDED.zip_code
	`
	_, err := s.db.ExecContext(ctx, query,
		voter.ID,
		voter.Email,
		voter.FirstName,
		voter.LastName,
		nullTime(voter.BirthDate),
		voter.Street,
		voter.City,
		voter.State,
		voter.ZipCode,
		voter.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save voter: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (domain.Voter, error) {
	query := selectVoter + ` WHERE id = $1`
	voter, err := scanVoter(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Voter{}, fmt.Errorf("voter %s: %w", id, sentinel.ErrNotFound)
		}
		return domain.Voter{}, fmt.Errorf("find voter by id: %w", err)
	}
	return voter, nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (domain.Voter, error) {
	query := selectVoter + ` WHERE lower(email) = lower($1) LIMIT 2`
	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return domain.Voter{}, fmt.Errorf("find voter by email: %w", err)
	}
	defer rows.Close()

	var matches []domain.Voter
	for rows.Next() {
		voter, err := scanVoter(rows)
		if err != nil {
			return domain.Voter{}, fmt.Errorf("scan voter: %w", err)
		}
		matches = append(matches, voter)
	}
	if err := rows.Err(); err != nil {
		return domain.Voter{}, fmt.Errorf("find voter by email: %w", err)
	}

	switch len(matches) {
	case 0:
		return domain.Voter{}, fmt.Errorf("voter with email %s: %w", email, sentinel.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.Voter{}, fmt.Errorf("email %s matches multiple voters: %w", email, sentinel.ErrConflict)
	}
}

const selectVoter = `
	SELECT id, email, first_name, last_name, birth_date, street, city, state, zip_code, created_at
	FROM voters`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVoter(row rowScanner) (domain.Voter, error) {
	var (
		voter     domain.Voter
		birthDate sql.NullTime
	)
	err := row.Scan(
		&voter.ID,
		&voter.Email,
		&voter.FirstName,
		&voter.LastName,
		&birthDate,
		&voter.Street,
		&voter.City,
		&voter.State,
		&voter.ZipCode,
		&voter.CreatedAt,
	)
	if err != nil {
		return domain.Voter{}, err
	}
	if birthDate.Valid {
		voter.BirthDate = birthDate.Time
	}
	return voter, nil
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
