package entities

import (
	"time"

	apperrors "soporte-tecnico/pkg/errors"
)

// EditMode - состояние карточки пользователя.
type EditMode string

const (
	ModeViewing EditMode = "viewing"
	ModeEditing EditMode = "editing"
)

// EditSession хранит рабочую копию карточки пользователя.
// Current - то, что видит пользователь в режиме просмотра; Draft существует только в режиме редактирования.
// Исходная запись репозитория сессией никогда не изменяется.
type EditSession struct {
	ID        string    `json:"id"`
	UsuarioID string    `json:"usuario_id"`
	Mode      EditMode  `json:"mode"`
	Current   Usuario   `json:"current"`
	Draft     *Usuario  `json:"draft,omitempty"`
	OpenedBy  Identity  `json:"opened_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEditSession(id string, source Usuario, openedBy Identity, now time.Time) *EditSession {
	return &EditSession{
		ID:        id,
		UsuarioID: source.ID,
		Mode:      ModeViewing,
		Current:   source,
		OpenedBy:  openedBy,
		UpdatedAt: now,
	}
}

// Shown - запись, которую рисует экран в текущем состоянии.
func (s *EditSession) Shown() Usuario {
	if s.Mode == ModeEditing && s.Draft != nil {
		return *s.Draft
	}
	return s.Current
}

// Begin: viewing -> editing, черновик копируется из текущей записи.
func (s *EditSession) Begin(now time.Time) error {
	if s.Mode == ModeEditing {
		return apperrors.ErrAlreadyEditing
	}
	draft := s.Current
	s.Draft = &draft
	s.Mode = ModeEditing
	s.UpdatedAt = now
	return nil
}

// Change правит поле черновика; вне режима редактирования - ErrNotEditing.
func (s *EditSession) Change(field, value string, now time.Time) error {
	if s.Mode != ModeEditing || s.Draft == nil {
		return apperrors.ErrNotEditing
	}
	if err := s.Draft.Set(field, value); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

// Cancel: editing -> viewing, черновик выбрасывается.
func (s *EditSession) Cancel(now time.Time) error {
	if s.Mode != ModeEditing {
		return apperrors.ErrNotEditing
	}
	s.Draft = nil
	s.Mode = ModeViewing
	s.UpdatedAt = now
	return nil
}

// Commit: editing -> viewing, черновик становится текущей записью сессии.
func (s *EditSession) Commit(now time.Time) error {
	if s.Mode != ModeEditing || s.Draft == nil {
		return apperrors.ErrNotEditing
	}
	s.Current = *s.Draft
	s.Draft = nil
	s.Mode = ModeViewing
	s.UpdatedAt = now
	return nil
}

// ToggleBaja работает с той копией, которая сейчас на экране.
func (s *EditSession) ToggleBaja(now time.Time) {
	if s.Mode == ModeEditing && s.Draft != nil {
		s.Draft.ToggleBaja()
	} else {
		s.Current.ToggleBaja()
	}
	s.UpdatedAt = now
}
