package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/events"
	apperrors "soporte-tecnico/pkg/errors"
	"soporte-tecnico/pkg/eventbus"
)

// Backend - внешний исполнитель команд экранов. Экран только отправляет намерение.
type Backend interface {
	SubmitCreate(ctx context.Context, entidad string, datos interface{}) (*entities.Receipt, error)
	SubmitUpdate(ctx context.Context, entidad, id string, datos interface{}) (*entities.Receipt, error)
	SubmitDelete(ctx context.Context, entidad, id string) (*entities.Receipt, error)
}

// PlaceholderBackend принимает намерения и публикует их в шину; ничего не записывает.
type PlaceholderBackend struct {
	bus    *eventbus.Bus
	now    func() time.Time
	logger *zap.Logger
}

func NewPlaceholderBackend(bus *eventbus.Bus, logger *zap.Logger) Backend {
	return &PlaceholderBackend{bus: bus, now: time.Now, logger: logger}
}

func (b *PlaceholderBackend) SubmitCreate(ctx context.Context, entidad string, datos interface{}) (*entities.Receipt, error) {
	return b.submit(ctx, entities.AccionAgregar, entidad, "", datos)
}

func (b *PlaceholderBackend) SubmitUpdate(ctx context.Context, entidad, id string, datos interface{}) (*entities.Receipt, error) {
	return b.submit(ctx, entities.AccionEditar, entidad, id, datos)
}

func (b *PlaceholderBackend) SubmitDelete(ctx context.Context, entidad, id string) (*entities.Receipt, error) {
	return b.submit(ctx, entities.AccionEliminar, entidad, id, nil)
}

func (b *PlaceholderBackend) submit(ctx context.Context, accion entities.AccionTipo, entidad, id string, datos interface{}) (*entities.Receipt, error) {
	receipt := entities.Receipt{
		ID:          uuid.NewString(),
		Entidad:     entidad,
		RegistroID:  id,
		Accion:      accion,
		Solicitante: identityOrAnon(ctx),
		AceptadoEn:  b.now(),
	}
	b.bus.Publish(ctx, events.ActionRequested{Receipt: receipt, Payload: datos})
	return &receipt, nil
}

// Сущности, для которых экраны показывают кнопки действий, и маршрут карточки "ver".
var detailRoutes = map[string]string{
	"solicitud":    "/solicitudes/",
	"usuario":      "/usuarios/",
	"material":     "",
	"equipo":       "",
	"reporte":      "",
	"departamento": "",
	"etiqueta":     "",
	"periodo":      "",
}

type ActionServiceInterface interface {
	Dispatch(ctx context.Context, action dto.ActionDTO) (*dto.ActionResultDTO, error)
}

type ActionService struct {
	backend Backend
	logger  *zap.Logger
}

func NewActionService(backend Backend, logger *zap.Logger) ActionServiceInterface {
	return &ActionService{backend: backend, logger: logger}
}

// Dispatch: "ver" ведёт на карточку, остальные действия уходят в Backend.
func (s *ActionService) Dispatch(ctx context.Context, action dto.ActionDTO) (*dto.ActionResultDTO, error) {
	entidad := strings.ToLower(strings.TrimSpace(action.Entidad))
	route, known := detailRoutes[entidad]
	if !known {
		return nil, apperrors.NewInvalidInputError("entidad desconocida: %q", action.Entidad)
	}
	accion, ok := entities.ParseAccionTipo(action.Accion)
	if !ok {
		return nil, apperrors.NewInvalidInputError("acción desconocida: %q", action.Accion)
	}
	if accion != entities.AccionAgregar && action.ID == "" {
		return nil, apperrors.NewInvalidInputError("la acción %q requiere id", accion)
	}

	var (
		receipt *entities.Receipt
		err     error
	)
	switch accion {
	case entities.AccionVer:
		if route == "" {
			return &dto.ActionResultDTO{}, nil
		}
		return &dto.ActionResultDTO{Redirect: route + action.ID}, nil
	case entities.AccionAgregar:
		receipt, err = s.backend.SubmitCreate(ctx, entidad, action.Datos)
	case entities.AccionEditar:
		receipt, err = s.backend.SubmitUpdate(ctx, entidad, action.ID, action.Datos)
	case entities.AccionEliminar:
		receipt, err = s.backend.SubmitDelete(ctx, entidad, action.ID)
	}
	if err != nil {
		s.logger.Error("backend rechazó la acción", zap.String("accion", string(accion)), zap.Error(err))
		return nil, err
	}
	return &dto.ActionResultDTO{Receipt: receipt}, nil
}
