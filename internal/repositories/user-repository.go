package repositories

import (
	"context"

	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	apperrors "soporte-tecnico/pkg/errors"
	"soporte-tecnico/seeders"
)

type UserRepositoryInterface interface {
	GetUsuarios(ctx context.Context) ([]entities.Usuario, error)
	FindUsuario(ctx context.Context, id string) (*entities.Usuario, error)
}

// UserRepository держит две независимые выборки: список экрана /usuarios
// и карточки /usuarios/{id}. Они, как и на экранах, не синхронизируются.
type UserRepository struct {
	list    []entities.Usuario
	details map[string]entities.Usuario
	logger  *zap.Logger
}

func NewUserRepository(logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{
		list:    seeders.Usuarios(),
		details: seeders.UsuariosDetalle(),
		logger:  logger,
	}
}

func (r *UserRepository) GetUsuarios(ctx context.Context) ([]entities.Usuario, error) {
	return cloneSlice(r.list), nil
}

func (r *UserRepository) FindUsuario(ctx context.Context, id string) (*entities.Usuario, error) {
	u, ok := r.details[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}
