package contextkeys

import (
	"context"
	"sharespace/internal/core/domain"
)

// ContextWithIdentity используется только REST-слоем: use case получает Identity аргументом.
func ContextWithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok && !identity.IsAnonymous()
}
