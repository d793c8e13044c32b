package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/repositories"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/collection"
	apperrors "soporte-tecnico/pkg/errors"
	"soporte-tecnico/pkg/types"
)

const (
	CatalogoDepartamentos = "departamentos"
	CatalogoEtiquetas     = "etiquetas"
	CatalogoPeriodos      = "periodos"
)

// Catalogos - вкладки раздела "Adicionales" в порядке экрана.
var Catalogos = []string{CatalogoDepartamentos, CatalogoEtiquetas, CatalogoPeriodos}

type CatalogoServiceInterface interface {
	GetCatalogo(ctx context.Context, nombre string, filter types.Filter) (*dto.CollectionDTO[any], error)
}

type CatalogoService struct {
	repo   repositories.CatalogRepositoryInterface
	logger *zap.Logger
}

func NewCatalogoService(repo repositories.CatalogRepositoryInterface, logger *zap.Logger) CatalogoServiceInterface {
	return &CatalogoService{repo: repo, logger: logger}
}

func (s *CatalogoService) GetCatalogo(ctx context.Context, nombre string, filter types.Filter) (*dto.CollectionDTO[any], error) {
	switch strings.ToLower(nombre) {
	case CatalogoDepartamentos:
		items, err := s.repo.GetDepartamentos(ctx)
		if err != nil {
			return nil, err
		}
		return catalogView(items, departamentoLayout, filter, func(d entities.Departamento) entities.EstadoRegistro { return d.Estado }), nil
	case CatalogoEtiquetas:
		items, err := s.repo.GetEtiquetas(ctx)
		if err != nil {
			return nil, err
		}
		return catalogView(items, etiquetaLayout, filter, func(e entities.Etiqueta) entities.EstadoRegistro { return e.Estado },
			func(e entities.Etiqueta) string { return e.Color }), nil
	case CatalogoPeriodos:
		items, err := s.repo.GetPeriodos(ctx)
		if err != nil {
			return nil, err
		}
		return catalogView(items, periodoLayout, filter, func(p entities.Periodo) entities.EstadoRegistro { return p.Estado }), nil
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCatalog, nombre)
}

// catalogView: обобщённая таблица справочника ищет по всем значениям записи:
// по тексту каждой колонки и по полям extra, которых нет среди колонок.
func catalogView[T any](items []T, layout views.Renderer[T], filter types.Filter, estado func(T) entities.EstadoRegistro, extra ...collection.Field[T]) *dto.CollectionDTO[any] {
	fields := make([]collection.Field[T], 0, len(layout.Columns)+len(extra))
	for _, col := range layout.Columns {
		fields = append(fields, col.Text)
	}
	fields = append(fields, extra...)
	q := collection.Query[T]{
		Search:       filter.Search,
		SearchFields: fields,
		Criteria: []collection.Criterion[T]{
			enumCriterion(filter.Get("estado"), entities.ParseEstadoRegistro, estado),
		},
	}

	filtered := collection.Filter(items, q)
	out := make([]any, len(filtered))
	for i, it := range filtered {
		out[i] = it
	}
	return &dto.CollectionDTO[any]{
		Items:   out,
		Summary: summaryOf(len(filtered), nil, views.Found(len(filtered), "registro", "registros", false)),
		Layout:  layout.Render(filtered),
	}
}
