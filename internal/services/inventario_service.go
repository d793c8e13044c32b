package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/repositories"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/collection"
	"soporte-tecnico/pkg/types"
)

type InventarioServiceInterface interface {
	GetMateriales(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Material], error)
	GetEquipos(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Equipo], error)
	GetMarcas(ctx context.Context) ([]string, error)
}

type InventarioService struct {
	materialRepo repositories.MaterialRepositoryInterface
	equipoRepo   repositories.EquipoRepositoryInterface
	logger       *zap.Logger
}

func NewInventarioService(
	materialRepo repositories.MaterialRepositoryInterface,
	equipoRepo repositories.EquipoRepositoryInterface,
	logger *zap.Logger,
) InventarioServiceInterface {
	return &InventarioService{materialRepo: materialRepo, equipoRepo: equipoRepo, logger: logger}
}

// GetMateriales: признак низкого остатка считается заново на каждом проходе.
func (s *InventarioService) GetMateriales(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Material], error) {
	materiales, err := s.materialRepo.GetMateriales(ctx)
	if err != nil {
		return nil, err
	}

	q := collection.Query[entities.Material]{
		Search: filter.Search,
		SearchFields: []collection.Field[entities.Material]{
			func(m entities.Material) string { return m.Nombre },
			func(m entities.Material) string { return m.ID },
		},
		Criteria: []collection.Criterion[entities.Material]{
			enumCriterion(filter.Get("unidad"), entities.ParseUnidadMedida, func(m entities.Material) entities.UnidadMedida { return m.UnidadMedida }),
			enumCriterion(filter.Get("stock"), entities.ParseNivelStock, entities.Material.StockLevel),
		},
	}

	filtered := collection.Filter(materiales, q)
	low := collection.Count(filtered, entities.Material.IsLowStock)

	return &dto.CollectionDTO[entities.Material]{
		Items: filtered,
		Summary: summaryOf(len(filtered), map[string]int{"bajo_stock": low},
			views.Found(len(filtered), "material", "materiales", false),
			fmt.Sprintf("%d con bajo stock", low),
		),
		Layout: materialLayout.Render(filtered),
	}, nil
}

func (s *InventarioService) GetEquipos(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Equipo], error) {
	equipos, err := s.equipoRepo.GetEquipos(ctx)
	if err != nil {
		return nil, err
	}
	marcas, err := s.equipoRepo.GetMarcas(ctx)
	if err != nil {
		return nil, err
	}

	q := collection.Query[entities.Equipo]{
		Search: filter.Search,
		SearchFields: []collection.Field[entities.Equipo]{
			func(e entities.Equipo) string { return e.NoInventario },
			func(e entities.Equipo) string { return e.Marca },
			func(e entities.Equipo) string { return e.Modelo },
			func(e entities.Equipo) string { return e.Responsable },
		},
		Criteria: []collection.Criterion[entities.Equipo]{
			enumCriterion(filter.Get("tipo"), entities.ParseTipoEquipo, func(e entities.Equipo) entities.TipoEquipo { return e.TipoEquipo }),
			enumCriterion(filter.Get("estado"), entities.ParseEstadoEquipo, func(e entities.Equipo) entities.EstadoEquipo { return e.Estado }),
			labelCriterion(filter.Get("marca"), func(raw string) string { return entities.ResolveLabel(marcas, raw) },
				func(e entities.Equipo) string { return e.Marca }),
		},
	}

	filtered := collection.Filter(equipos, q)
	counts := collection.CountBy(filtered, func(e entities.Equipo) string { return string(e.Estado) })

	return &dto.CollectionDTO[entities.Equipo]{
		Items:   filtered,
		Summary: summaryOf(len(filtered), counts, views.Found(len(filtered), "equipo", "equipos", false)),
		Layout:  equipoLayout.Render(filtered),
	}, nil
}

func (s *InventarioService) GetMarcas(ctx context.Context) ([]string, error) {
	return s.equipoRepo.GetMarcas(ctx)
}
