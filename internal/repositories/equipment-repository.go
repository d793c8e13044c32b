package repositories

import (
	"context"

	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/seeders"
)

type EquipoRepositoryInterface interface {
	GetEquipos(ctx context.Context) ([]entities.Equipo, error)
	GetMarcas(ctx context.Context) ([]string, error)
}

type EquipoRepository struct {
	equipos []entities.Equipo
	logger  *zap.Logger
}

func NewEquipoRepository(logger *zap.Logger) EquipoRepositoryInterface {
	return &EquipoRepository{equipos: seeders.Equipos(), logger: logger}
}

func (r *EquipoRepository) GetEquipos(ctx context.Context) ([]entities.Equipo, error) {
	return cloneSlice(r.equipos), nil
}

// GetMarcas - различные марки в порядке первого появления.
func (r *EquipoRepository) GetMarcas(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var marcas []string
	for _, e := range r.equipos {
		if !seen[e.Marca] {
			seen[e.Marca] = true
			marcas = append(marcas, e.Marca)
		}
	}
	return marcas, nil
}
