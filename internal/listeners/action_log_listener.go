package listeners

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/events"
	"soporte-tecnico/pkg/eventbus"
)

const defaultJournalSize = 50

// ActionLogListener пишет каждое намерение в лог и держит короткий журнал последних квитанций.
type ActionLogListener struct {
	logger *zap.Logger
	size   int

	mu      sync.Mutex
	journal []entities.Receipt
}

func NewActionLogListener(logger *zap.Logger) *ActionLogListener {
	return &ActionLogListener{logger: logger, size: defaultJournalSize}
}

func (l *ActionLogListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.ActionRequestedName, l.handleActionRequested)
	l.logger.Info("ActionLogListener suscrito", zap.String("event", events.ActionRequestedName))
}

func (l *ActionLogListener) handleActionRequested(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.ActionRequested)
	if !ok {
		return nil
	}

	l.logger.Info("Acción solicitada (sin backend)",
		zap.String("receipt", e.Receipt.ID),
		zap.String("entidad", e.Receipt.Entidad),
		zap.String("registro", e.Receipt.RegistroID),
		zap.String("accion", string(e.Receipt.Accion)),
		zap.String("solicitante", e.Receipt.Solicitante.Correo),
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.journal = append(l.journal, e.Receipt)
	if len(l.journal) > l.size {
		l.journal = l.journal[len(l.journal)-l.size:]
	}
	return nil
}

// Recent - последние квитанции, новые в конце.
func (l *ActionLogListener) Recent() []entities.Receipt {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]entities.Receipt(nil), l.journal...)
}
