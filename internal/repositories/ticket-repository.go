package repositories

import (
	"context"

	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/seeders"
)

type TicketRepositoryInterface interface {
	GetTickets(ctx context.Context) ([]entities.Ticket, error)
	FindSolicitudDetalle(ctx context.Context, folio string) (*entities.SolicitudDetalle, error)
}

type TicketRepository struct {
	tickets []entities.Ticket
	logger  *zap.Logger
}

func NewTicketRepository(logger *zap.Logger) TicketRepositoryInterface {
	return &TicketRepository{tickets: seeders.Tickets(), logger: logger}
}

func (r *TicketRepository) GetTickets(ctx context.Context) ([]entities.Ticket, error) {
	return cloneSlice(r.tickets), nil
}

// FindSolicitudDetalle: карточка заявки собирается из шаблона для любого folio,
// список и карточка не связаны ссылочной целостностью.
func (r *TicketRepository) FindSolicitudDetalle(ctx context.Context, folio string) (*entities.SolicitudDetalle, error) {
	detalle := seeders.SolicitudDetalle(folio)
	return &detalle, nil
}
