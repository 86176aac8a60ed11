package postgres

import (
	"context"

	"migration-stats-service/internal/profile/core/domain"
	"migration-stats-service/internal/profile/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type ProfileRepository struct {
	db DB
}

func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ ports.ProfileReaderPort = (*ProfileRepository)(nil)

const profileByTokenSQL = `
SELECT
    p.user_id,
    p.email,
    p.display_name,
    p.role
FROM sessions s
JOIN profiles p ON p.user_id = s.user_id
WHERE s.token = $1
  AND s.expires_at > now()
`

func (r *ProfileRepository) GetProfileByToken(ctx context.Context, token string) (*domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, profileByTokenSQL, token)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ports.ErrProfileNotFound
	}

	var p domain.Profile
	if err := rows.Scan(&p.UserID, &p.Email, &p.DisplayName, &p.Role); err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &p, nil
}
