package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/repositories"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/collection"
	apperrors "soporte-tecnico/pkg/errors"
	"soporte-tecnico/pkg/types"
)

type TicketServiceInterface interface {
	GetTickets(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Ticket], error)
	FindSolicitud(ctx context.Context, folio string) (*entities.SolicitudDetalle, error)
}

type TicketService struct {
	repo     repositories.TicketRepositoryInterface
	validate *validator.Validate
	logger   *zap.Logger
}

func NewTicketService(repo repositories.TicketRepositoryInterface, validate *validator.Validate, logger *zap.Logger) TicketServiceInterface {
	return &TicketService{repo: repo, validate: validate, logger: logger}
}

func ticketQuery(filter types.Filter) collection.Query[entities.Ticket] {
	return collection.Query[entities.Ticket]{
		Search: filter.Search,
		SearchFields: []collection.Field[entities.Ticket]{
			func(t entities.Ticket) string { return t.Folio },
			func(t entities.Ticket) string { return t.Nombre },
			func(t entities.Ticket) string { return t.Departamento },
		},
		Criteria: []collection.Criterion[entities.Ticket]{
			enumCriterion(filter.Get("estado"), entities.ParseEstadoTicket, func(t entities.Ticket) entities.EstadoTicket { return t.Estado }),
			enumCriterion(filter.Get("prioridad"), entities.ParsePrioridad, func(t entities.Ticket) entities.Prioridad { return t.Prioridad }),
			labelCriterion(filter.Get("departamento"), entities.ResolveDepartamento, func(t entities.Ticket) string { return t.Departamento }),
		},
	}
}

func (s *TicketService) GetTickets(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Ticket], error) {
	tickets, err := s.repo.GetTickets(ctx)
	if err != nil {
		return nil, err
	}

	filtered := collection.Filter(tickets, ticketQuery(filter))
	counts := collection.CountBy(filtered, func(t entities.Ticket) string { return string(t.Estado) })

	return &dto.CollectionDTO[entities.Ticket]{
		Items:   filtered,
		Summary: summaryOf(len(filtered), counts, views.Found(len(filtered), "solicitud", "solicitudes", true)),
		Layout:  ticketLayout.Render(filtered),
	}, nil
}

// FindSolicitud: карточка строится для любого folio правильного формата.
func (s *TicketService) FindSolicitud(ctx context.Context, folio string) (*entities.SolicitudDetalle, error) {
	if err := s.validate.Var(folio, "required,folio"); err != nil {
		s.logger.Debug("folio inválido", zap.String("folio", folio))
		return nil, fmt.Errorf("folio %q: %w", folio, apperrors.ErrNotFound)
	}
	return s.repo.FindSolicitudDetalle(ctx, folio)
}
