// Файл: pkg/utils/context_utils.go

package utils

import (
	"context"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/pkg/contextkeys"
	apperrors "soporte-tecnico/pkg/errors"
)

func WithIdentity(ctx context.Context, identity entities.Identity) context.Context {
	return context.WithValue(ctx, contextkeys.CurrentUserKey, identity)
}

// GetIdentityFromContext достаёт пользователя сессии, положенного middleware.InjectIdentity.
func GetIdentityFromContext(ctx context.Context) (entities.Identity, error) {
	identity, ok := ctx.Value(contextkeys.CurrentUserKey).(entities.Identity)
	if !ok {
		return entities.Identity{}, apperrors.ErrIdentityNotFoundInContext
	}
	return identity, nil
}
