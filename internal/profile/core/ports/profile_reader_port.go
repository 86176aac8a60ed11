package ports

import (
	"context"
	"errors"

	"migration-stats-service/internal/profile/core/domain"
)

// ErrProfileNotFound covers both unknown and expired sessions; callers
// cannot tell the two apart.
var ErrProfileNotFound = errors.New("profile not found")

type ProfileReaderPort interface {
	GetProfileByToken(ctx context.Context, token string) (*domain.Profile, error)
}
