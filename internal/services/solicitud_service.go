package services

import (
	"context"

	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/repositories"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/collection"
	"soporte-tecnico/pkg/types"
	"soporte-tecnico/pkg/utils"
)

type SolicitudServiceInterface interface {
	GetMisSolicitudes(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Solicitud], error)
}

type SolicitudService struct {
	repo   repositories.SolicitudRepositoryInterface
	logger *zap.Logger
}

func NewSolicitudService(repo repositories.SolicitudRepositoryInterface, logger *zap.Logger) SolicitudServiceInterface {
	return &SolicitudService{repo: repo, logger: logger}
}

func (s *SolicitudService) GetMisSolicitudes(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Solicitud], error) {
	owner, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	solicitudes, err := s.repo.GetSolicitudes(ctx, owner)
	if err != nil {
		return nil, err
	}

	q := collection.Query[entities.Solicitud]{
		Search: filter.Search,
		SearchFields: []collection.Field[entities.Solicitud]{
			func(s entities.Solicitud) string { return s.Folio },
			func(s entities.Solicitud) string { return s.NombreAfectado },
		},
		Criteria: []collection.Criterion[entities.Solicitud]{
			enumCriterion(filter.Get("estado"), entities.ParseEstadoSolicitud, func(s entities.Solicitud) entities.EstadoSolicitud { return s.Estado }),
			enumCriterion(filter.Get("tipo"), entities.ParseTipoProblema, func(s entities.Solicitud) entities.TipoProblema { return s.TipoProblema }),
		},
	}

	filtered := collection.Filter(solicitudes, q)
	counts := collection.CountBy(filtered, func(s entities.Solicitud) string { return string(s.Estado) })
	text := append([]string{views.Found(len(filtered), "solicitud", "solicitudes", true)},
		countsText(counts, entities.EstadoSolicitudValues())...)

	return &dto.CollectionDTO[entities.Solicitud]{
		Items:   filtered,
		Summary: summaryOf(len(filtered), counts, text...),
		Layout:  solicitudLayout.Render(filtered),
	}, nil
}
