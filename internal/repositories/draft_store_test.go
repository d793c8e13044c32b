package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soporte-tecnico/internal/entities"
	apperrors "soporte-tecnico/pkg/errors"
)

func TestMemoryDraftStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDraftStore(time.Minute)

	session := entities.NewEditSession("abc", entities.Usuario{ID: "USR-001", Correo: "a@b.com"}, entities.Identity{}, time.Now())
	require.NoError(t, session.Begin(time.Now()))
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, entities.ModeEditing, got.Mode)

	// изменение полученной копии не затрагивает хранилище
	got.Draft.Correo = "cambiado@b.com"
	again, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", again.Draft.Correo)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestMemoryDraftStore_Expires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDraftStore(20 * time.Millisecond)

	require.NoError(t, store.Save(ctx, entities.NewEditSession("x", entities.Usuario{ID: "USR-002"}, entities.Identity{}, time.Now())))
	time.Sleep(40 * time.Millisecond)

	_, err := store.Get(ctx, "x")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
