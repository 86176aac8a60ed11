package usecase

import (
	"context"
	"errors"

	"migration-stats-service/internal/profile/core/domain"
	"migration-stats-service/internal/profile/core/ports"
)

var ErrInvalidSession = errors.New("invalid session token")

type ResolveProfileUseCase struct {
	reader ports.ProfileReaderPort
}

func NewResolveProfileUseCase(reader ports.ProfileReaderPort) *ResolveProfileUseCase {
	return &ResolveProfileUseCase{reader: reader}
}

// Execute resolves a session token to the profile it belongs to.
func (uc *ResolveProfileUseCase) Execute(ctx context.Context, token string) (*domain.Profile, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	profile, err := uc.reader.GetProfileByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return profile, nil
}
