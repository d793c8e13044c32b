package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "soporte-tecnico/pkg/errors"
)

func TestUserRepository_FindUsuario(t *testing.T) {
	repo := NewUserRepository(zap.NewNop())
	ctx := context.Background()

	u, err := repo.FindUsuario(ctx, "USR-002")
	require.NoError(t, err)
	assert.Equal(t, "carlos.martinez@empresa.com", u.Correo)
	assert.True(t, u.Telefono.Valid)

	_, err = repo.FindUsuario(ctx, "USR-999")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRepositories_ReturnCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMaterialRepository(zap.NewNop())

	first, err := repo.GetMateriales(ctx)
	require.NoError(t, err)
	first[0].Cantidad = 500

	second, err := repo.GetMateriales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, second[0].Cantidad)

	users := NewUserRepository(zap.NewNop())
	u, err := users.FindUsuario(ctx, "USR-001")
	require.NoError(t, err)
	u.Correo = "otro@empresa.com"
	again, err := users.FindUsuario(ctx, "USR-001")
	require.NoError(t, err)
	assert.Equal(t, "maria.garcia@empresa.com", again.Correo)
}

func TestDistinctValues(t *testing.T) {
	marcas, err := NewEquipoRepository(zap.NewNop()).GetMarcas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dell", "HP", "Cisco", "Lenovo", "Epson", "TP-Link"}, marcas)

	tecnicos, err := NewReportRepository(zap.NewNop()).GetTecnicos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Juan Rodriguez", "Ana Torres Ruiz", "Carlos Martinez", "Sofia Ramirez"}, tecnicos)
}
