package repositories

import (
	"context"

	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/seeders"
)

// CatalogRepositoryInterface - справочники раздела "Adicionales".
type CatalogRepositoryInterface interface {
	GetDepartamentos(ctx context.Context) ([]entities.Departamento, error)
	GetEtiquetas(ctx context.Context) ([]entities.Etiqueta, error)
	GetPeriodos(ctx context.Context) ([]entities.Periodo, error)
}

type CatalogRepository struct {
	departamentos []entities.Departamento
	etiquetas     []entities.Etiqueta
	periodos      []entities.Periodo
	logger        *zap.Logger
}

func NewCatalogRepository(logger *zap.Logger) CatalogRepositoryInterface {
	return &CatalogRepository{
		departamentos: seeders.Departamentos(),
		etiquetas:     seeders.Etiquetas(),
		periodos:      seeders.Periodos(),
		logger:        logger,
	}
}

func (r *CatalogRepository) GetDepartamentos(ctx context.Context) ([]entities.Departamento, error) {
	return cloneSlice(r.departamentos), nil
}

func (r *CatalogRepository) GetEtiquetas(ctx context.Context) ([]entities.Etiqueta, error) {
	return cloneSlice(r.etiquetas), nil
}

func (r *CatalogRepository) GetPeriodos(ctx context.Context) ([]entities.Periodo, error) {
	return cloneSlice(r.periodos), nil
}
