package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"migration-stats-service/internal/profile/core/domain"
	"migration-stats-service/internal/profile/core/ports"
	"migration-stats-service/internal/profile/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// profileLocalKey is where RequireAdmin stores the resolved profile for
// the rest of the request. Read it back with ProfileFromCtx.
const profileLocalKey = "profile"

type ResolveProfileUseCase interface {
	Execute(ctx context.Context, token string) (*domain.Profile, error)
}

type ErrorResponse struct {
	Error   string `json:"error" example:"unauthorized"`
	Message string `json:"message" example:"Session token is missing or invalid"`
}

// RequireAdmin resolves the bearer token to a profile once per request
// and rejects anything but the admin role. Downstream handlers get the
// profile from locals instead of a shared cache.
func RequireAdmin(uc ResolveProfileUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "missing bearer token",
			})
		}

		profile, err := uc.Execute(c.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrInvalidSession),
				errors.Is(err, ports.ErrProfileNotFound):
				return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
					Error:   "unauthorized",
					Message: "session token is invalid or expired",
				})
			default:
				return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
					Error: "internal_server_error",
				})
			}
		}

		if !profile.IsAdmin() {
			return c.Status(http.StatusForbidden).JSON(ErrorResponse{
				Error:   "forbidden",
				Message: "admin role required",
			})
		}

		c.Locals(profileLocalKey, profile)
		return c.Next()
	}
}

// ProfileFromCtx returns the profile RequireAdmin stored, or nil when
// the route is not guarded.
func ProfileFromCtx(c *fiber.Ctx) *domain.Profile {
	p, _ := c.Locals(profileLocalKey).(*domain.Profile)
	return p
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
