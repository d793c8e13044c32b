package repositories

import (
	"context"

	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/seeders"
)

type SolicitudRepositoryInterface interface {
	GetSolicitudes(ctx context.Context, owner entities.Identity) ([]entities.Solicitud, error)
}

// SolicitudRepository - заявки экрана "Mis Solicitudes".
type SolicitudRepository struct {
	solicitudes []entities.Solicitud
	logger      *zap.Logger
}

func NewSolicitudRepository(logger *zap.Logger) SolicitudRepositoryInterface {
	return &SolicitudRepository{solicitudes: seeders.MisSolicitudes(), logger: logger}
}

// GetSolicitudes возвращает набор текущего пользователя. Пока все демо-данные
// принадлежат одной сессии, поэтому owner только пишется в лог.
func (r *SolicitudRepository) GetSolicitudes(ctx context.Context, owner entities.Identity) ([]entities.Solicitud, error) {
	r.logger.Debug("mis solicitudes", zap.String("correo", owner.Correo))
	return cloneSlice(r.solicitudes), nil
}
