package repositories

import (
	"context"

	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/seeders"
)

type MaterialRepositoryInterface interface {
	GetMateriales(ctx context.Context) ([]entities.Material, error)
}

type MaterialRepository struct {
	materiales []entities.Material
	logger     *zap.Logger
}

func NewMaterialRepository(logger *zap.Logger) MaterialRepositoryInterface {
	return &MaterialRepository{materiales: seeders.Materiales(), logger: logger}
}

func (r *MaterialRepository) GetMateriales(ctx context.Context) ([]entities.Material, error) {
	return cloneSlice(r.materiales), nil
}
