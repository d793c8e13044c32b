package repositories

import (
	"context"

	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/seeders"
)

type ReportRepositoryInterface interface {
	GetReportes(ctx context.Context) ([]entities.Reporte, error)
	GetTecnicos(ctx context.Context) ([]string, error)
}

type ReportRepository struct {
	reportes []entities.Reporte
	logger   *zap.Logger
}

func NewReportRepository(logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{reportes: seeders.Reportes(), logger: logger}
}

func (r *ReportRepository) GetReportes(ctx context.Context) ([]entities.Reporte, error) {
	return cloneSlice(r.reportes), nil
}

func (r *ReportRepository) GetTecnicos(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var tecnicos []string
	for _, rep := range r.reportes {
		if !seen[rep.Tecnico] {
			seen[rep.Tecnico] = true
			tecnicos = append(tecnicos, rep.Tecnico)
		}
	}
	return tecnicos, nil
}
