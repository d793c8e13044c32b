package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/repositories"
)

// EditServiceInterface - режим редактирования карточки пользователя.
// viewing -> editing копирует запись в черновик; Cancel выбрасывает его, Save
// отправляет черновик бэкенду и показывает его как текущую запись сессии.
type EditServiceInterface interface {
	Open(ctx context.Context, usuarioID string) (*dto.EditSessionDTO, error)
	Get(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error)
	Begin(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error)
	Change(ctx context.Context, sessionID string, campos map[string]string) (*dto.EditSessionDTO, error)
	Cancel(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error)
	Save(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error)
	ToggleBaja(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error)
	Close(ctx context.Context, sessionID string) error
}

type EditService struct {
	userRepo repositories.UserRepositoryInterface
	drafts   repositories.DraftStoreInterface
	backend  Backend
	now      func() time.Time
	logger   *zap.Logger
}

func NewEditService(
	userRepo repositories.UserRepositoryInterface,
	drafts repositories.DraftStoreInterface,
	backend Backend,
	logger *zap.Logger,
) EditServiceInterface {
	return &EditService{userRepo: userRepo, drafts: drafts, backend: backend, now: time.Now, logger: logger}
}

func (s *EditService) Open(ctx context.Context, usuarioID string) (*dto.EditSessionDTO, error) {
	usuario, err := s.userRepo.FindUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	session := entities.NewEditSession(uuid.NewString(), *usuario, identityOrAnon(ctx), s.now())
	if err := s.drafts.Save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Debug("sesión de edición abierta", zap.String("sesion", session.ID), zap.String("usuario", usuarioID))
	return s.toDTO(ctx, session, nil)
}

func (s *EditService) Get(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error) {
	session, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toDTO(ctx, session, nil)
}

func (s *EditService) Begin(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error) {
	return s.transition(ctx, sessionID, func(session *entities.EditSession) error {
		return session.Begin(s.now())
	})
}

// Change применяет все поля или ни одного: при ошибке сессия не сохраняется.
func (s *EditService) Change(ctx context.Context, sessionID string, campos map[string]string) (*dto.EditSessionDTO, error) {
	return s.transition(ctx, sessionID, func(session *entities.EditSession) error {
		for _, field := range sortedKeys(campos) {
			if err := session.Change(field, campos[field], s.now()); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *EditService) Cancel(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error) {
	return s.transition(ctx, sessionID, func(session *entities.EditSession) error {
		return session.Cancel(s.now())
	})
}

func (s *EditService) Save(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error) {
	session, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	draft := session.Shown()
	if err := session.Commit(s.now()); err != nil {
		return nil, err
	}
	receipt, err := s.backend.SubmitUpdate(ctx, "usuario", session.UsuarioID, draft)
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.toDTO(ctx, session, receipt)
}

// ToggleBaja меняет Activo <-> Baja у показанной копии, исходная запись не трогается.
func (s *EditService) ToggleBaja(ctx context.Context, sessionID string) (*dto.EditSessionDTO, error) {
	return s.transition(ctx, sessionID, func(session *entities.EditSession) error {
		session.ToggleBaja(s.now())
		return nil
	})
}

func (s *EditService) Close(ctx context.Context, sessionID string) error {
	if _, err := s.drafts.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.drafts.Delete(ctx, sessionID)
}

func (s *EditService) transition(ctx context.Context, sessionID string, apply func(*entities.EditSession) error) (*dto.EditSessionDTO, error) {
	session, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := apply(session); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.toDTO(ctx, session, nil)
}

func (s *EditService) toDTO(ctx context.Context, session *entities.EditSession, receipt *entities.Receipt) (*dto.EditSessionDTO, error) {
	original, err := s.userRepo.FindUsuario(ctx, session.UsuarioID)
	if err != nil {
		return nil, err
	}
	out := &dto.EditSessionDTO{
		ID:        session.ID,
		UsuarioID: session.UsuarioID,
		Modo:      session.Mode,
		Usuario:   session.Shown(),
		Original:  *original,
		Receipt:   receipt,
	}
	if session.Mode == entities.ModeEditing {
		out.Campos = entities.EditableFields
	}
	return out, nil
}
