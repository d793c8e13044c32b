package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "soporte-tecnico/pkg/errors"
)

func newSession() *EditSession {
	src := Usuario{ID: "USR-001", Nombres: "Maria", Correo: "maria.garcia@empresa.com", Estado: EstadoUsuarioActivo}
	return NewEditSession("s-1", src, Identity{Nombre: "Juan Rodriguez"}, time.Unix(0, 0))
}

func TestEditSession_CancelRestoresOriginal(t *testing.T) {
	s := newSession()
	now := time.Now()

	require.NoError(t, s.Begin(now))
	require.NoError(t, s.Change("correo", "otro@empresa.com", now))
	assert.Equal(t, "otro@empresa.com", s.Shown().Correo)
	assert.Equal(t, "maria.garcia@empresa.com", s.Current.Correo)

	require.NoError(t, s.Cancel(now))
	assert.Equal(t, ModeViewing, s.Mode)
	assert.Nil(t, s.Draft)
	assert.Equal(t, "maria.garcia@empresa.com", s.Shown().Correo)
}

func TestEditSession_CommitKeepsDraft(t *testing.T) {
	s := newSession()
	now := time.Now()

	require.NoError(t, s.Begin(now))
	require.NoError(t, s.Change("telefono", "+34 600 000 000", now))
	require.NoError(t, s.Commit(now))

	assert.Equal(t, ModeViewing, s.Mode)
	assert.Equal(t, "+34 600 000 000", s.Current.Telefono.String)

	// повторное редактирование начинается с сохранённой копии
	require.NoError(t, s.Begin(now))
	assert.Equal(t, "+34 600 000 000", s.Draft.Telefono.String)
}

func TestEditSession_TransitionsOutsideEditing(t *testing.T) {
	s := newSession()
	now := time.Now()

	assert.ErrorIs(t, s.Change("correo", "x@y.com", now), apperrors.ErrNotEditing)
	assert.ErrorIs(t, s.Cancel(now), apperrors.ErrNotEditing)
	assert.ErrorIs(t, s.Commit(now), apperrors.ErrNotEditing)

	require.NoError(t, s.Begin(now))
	assert.ErrorIs(t, s.Begin(now), apperrors.ErrAlreadyEditing)
}

func TestEditSession_ToggleBajaTargetsShownCopy(t *testing.T) {
	s := newSession()
	now := time.Now()

	s.ToggleBaja(now)
	assert.Equal(t, EstadoUsuarioBaja, s.Current.Estado)

	require.NoError(t, s.Begin(now))
	s.ToggleBaja(now)
	assert.Equal(t, EstadoUsuarioActivo, s.Draft.Estado)
	assert.Equal(t, EstadoUsuarioBaja, s.Current.Estado)
}
