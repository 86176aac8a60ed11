package usecase_test

import (
	"context"
	"errors"
	"testing"

	"migration-stats-service/internal/profile/core/domain"
	"migration-stats-service/internal/profile/core/ports"
	"migration-stats-service/internal/profile/core/usecase"
)

// fakeProfileReader fakes ProfileReaderPort for tests.
type fakeProfileReader struct {
	GetFn     func(ctx context.Context, token string) (*domain.Profile, error)
	lastToken string
	called    bool
}

func (f *fakeProfileReader) GetProfileByToken(ctx context.Context, token string) (*domain.Profile, error) {
	f.called = true
	f.lastToken = token
	if f.GetFn != nil {
		return f.GetFn(ctx, token)
	}
	return nil, nil
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestResolveProfile_Success(t *testing.T) {
	reader := &fakeProfileReader{
		GetFn: func(ctx context.Context, token string) (*domain.Profile, error) {
			if token != "tok-123" {
				t.Fatalf("expected token tok-123, got %s", token)
			}
			return &domain.Profile{
				UserID:      "u1",
				Email:       "ops@example.com",
				DisplayName: "Ops",
				Role:        domain.RoleAdmin,
			}, nil
		},
	}

	uc := usecase.NewResolveProfileUseCase(reader)

	out, err := uc.Execute(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || out.UserID != "u1" {
		t.Fatalf("unexpected profile: %+v", out)
	}
	if !out.IsAdmin() {
		t.Fatalf("expected admin profile")
	}
}

// ------------------------------------------------------------
// VALIDATION: empty token
// ------------------------------------------------------------

func TestResolveProfile_EmptyToken(t *testing.T) {
	reader := &fakeProfileReader{}
	uc := usecase.NewResolveProfileUseCase(reader)

	out, err := uc.Execute(context.Background(), "")
	if !errors.Is(err, usecase.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil profile on error")
	}
	if reader.called {
		t.Fatalf("reader should not be called on empty token")
	}
}

// ------------------------------------------------------------
// NOT FOUND PROPAGATES
// ------------------------------------------------------------

func TestResolveProfile_NotFound(t *testing.T) {
	reader := &fakeProfileReader{
		GetFn: func(ctx context.Context, token string) (*domain.Profile, error) {
			return nil, ports.ErrProfileNotFound
		},
	}

	uc := usecase.NewResolveProfileUseCase(reader)

	_, err := uc.Execute(context.Background(), "tok-expired")
	if !errors.Is(err, ports.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
