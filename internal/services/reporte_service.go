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
)

type ReporteServiceInterface interface {
	GetReportes(ctx context.Context, filter types.Filter, feed *views.Feed) (*dto.FeedDTO, error)
	GetTecnicos(ctx context.Context) ([]string, error)
}

type ReporteService struct {
	repo   repositories.ReportRepositoryInterface
	logger *zap.Logger
}

func NewReporteService(repo repositories.ReportRepositoryInterface, logger *zap.Logger) ReporteServiceInterface {
	return &ReporteService{repo: repo, logger: logger}
}

func (s *ReporteService) GetReportes(ctx context.Context, filter types.Filter, feed *views.Feed) (*dto.FeedDTO, error) {
	reportes, err := s.repo.GetReportes(ctx)
	if err != nil {
		return nil, err
	}
	tecnicos, err := s.repo.GetTecnicos(ctx)
	if err != nil {
		return nil, err
	}
	if feed == nil {
		feed = views.NewFeed()
	}

	q := collection.Query[entities.Reporte]{
		Search: filter.Search,
		SearchFields: []collection.Field[entities.Reporte]{
			func(r entities.Reporte) string { return r.Folio },
			func(r entities.Reporte) string { return r.Diagnostico },
			func(r entities.Reporte) string { return r.Tecnico },
			func(r entities.Reporte) string { return r.ID },
			func(r entities.Reporte) string { return r.Departamento },
		},
		Criteria: []collection.Criterion[entities.Reporte]{
			enumCriterion(filter.Get("estado"), entities.ParseEstadoReporte, func(r entities.Reporte) entities.EstadoReporte { return r.Estado }),
			labelCriterion(filter.Get("departamento"), entities.ResolveDepartamento, func(r entities.Reporte) string { return r.Departamento }),
			labelCriterion(filter.Get("tecnico"), func(raw string) string { return entities.ResolveLabel(tecnicos, raw) },
				func(r entities.Reporte) string { return r.Tecnico }),
		},
	}

	filtered := collection.Filter(reportes, q)
	counts := collection.CountBy(filtered, func(r entities.Reporte) string { return string(r.Estado) })
	resueltos := counts[string(entities.EstadoReporteResuelto)]
	pendientes := counts[string(entities.EstadoReportePendiente)]

	return &dto.FeedDTO{
		Cards:    feed.Cards(filtered),
		Abiertos: feed.Open(),
		Summary: summaryOf(len(filtered), counts,
			views.Found(len(filtered), "reporte", "reportes", false),
			views.Counted(resueltos, "resuelto", "resueltos"),
			views.Counted(pendientes, "pendiente", "pendientes"),
		),
	}, nil
}

func (s *ReporteService) GetTecnicos(ctx context.Context) ([]string, error) {
	return s.repo.GetTecnicos(ctx)
}
