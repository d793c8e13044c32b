package events

import "soporte-tecnico/internal/entities"

const ActionRequestedName = "accion.solicitada"

// ActionRequested возникает, когда экран отправляет намерение бэкенду-заглушке.
type ActionRequested struct {
	Receipt entities.Receipt
	Payload interface{}
}

// Name - реализуем интерфейс eventbus.Event
func (e ActionRequested) Name() string {
	return ActionRequestedName
}
