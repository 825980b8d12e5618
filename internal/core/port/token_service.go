package port

import (
	"context"
	"sharespace/internal/core/domain"
)

// TokenValidatorPort проверяет bearer-токен, выданный сервисом аутентификации.
type TokenValidatorPort interface {
	ValidateToken(ctx context.Context, tokenString string) (domain.Identity, error)
}
