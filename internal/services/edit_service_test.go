package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/repositories"
	apperrors "soporte-tecnico/pkg/errors"
)

type EditServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	users   repositories.UserRepositoryInterface
	backend *recordingBackend
	service EditServiceInterface
}

func (s *EditServiceTestSuite) SetupTest() {
	s.ctx = testCtx()
	s.users = repositories.NewUserRepository(zap.NewNop())
	s.backend = &recordingBackend{}
	s.service = NewEditService(s.users, repositories.NewMemoryDraftStore(time.Minute), s.backend, zap.NewNop())
}

func (s *EditServiceTestSuite) open(id string) string {
	session, err := s.service.Open(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(entities.ModeViewing, session.Modo)
	s.Empty(session.Campos)
	return session.ID
}

func (s *EditServiceTestSuite) sourceCorreo(id string) string {
	u, err := s.users.FindUsuario(s.ctx, id)
	s.Require().NoError(err)
	return u.Correo
}

func (s *EditServiceTestSuite) TestOpenUnknownUser() {
	_, err := s.service.Open(s.ctx, "USR-999")
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (s *EditServiceTestSuite) TestEditThenCancelRestoresShownRecord() {
	id := s.open("USR-001")

	session, err := s.service.Begin(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(entities.ModeEditing, session.Modo)
	s.Equal(entities.EditableFields, session.Campos)

	session, err = s.service.Change(s.ctx, id, map[string]string{"correo": "nuevo@empresa.com"})
	s.Require().NoError(err)
	s.Equal("nuevo@empresa.com", session.Usuario.Correo)

	session, err = s.service.Cancel(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(entities.ModeViewing, session.Modo)
	s.Equal("maria.garcia@empresa.com", session.Usuario.Correo)
	s.Equal("maria.garcia@empresa.com", s.sourceCorreo("USR-001"))
	s.Empty(s.backend.calls)
}

func (s *EditServiceTestSuite) TestSaveSubmitsDraftWithoutTouchingSource() {
	id := s.open("USR-002")

	_, err := s.service.Begin(s.ctx, id)
	s.Require().NoError(err)
	_, err = s.service.Change(s.ctx, id, map[string]string{"correo": "c.martinez@empresa.com", "rol": "editor"})
	s.Require().NoError(err)

	session, err := s.service.Save(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(session.Receipt)
	s.Equal(entities.AccionEditar, session.Receipt.Accion)
	s.Equal("USR-002", session.Receipt.RegistroID)
	s.Equal(entities.ModeViewing, session.Modo)
	s.Equal("c.martinez@empresa.com", session.Usuario.Correo)
	s.Equal("editor", session.Usuario.Rol.String)
	s.Equal("carlos.martinez@empresa.com", session.Original.Correo)

	submitted := s.backend.datos[0].(entities.Usuario)
	s.Equal("c.martinez@empresa.com", submitted.Correo)
	s.Equal("carlos.martinez@empresa.com", s.sourceCorreo("USR-002"))

	reloaded, err := s.service.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("c.martinez@empresa.com", reloaded.Usuario.Correo)
}

func (s *EditServiceTestSuite) TestTransitionsOutsideEditing() {
	id := s.open("USR-003")

	_, err := s.service.Change(s.ctx, id, map[string]string{"nombres": "X"})
	s.ErrorIs(err, apperrors.ErrNotEditing)
	_, err = s.service.Cancel(s.ctx, id)
	s.ErrorIs(err, apperrors.ErrNotEditing)
	_, err = s.service.Save(s.ctx, id)
	s.ErrorIs(err, apperrors.ErrNotEditing)

	_, err = s.service.Begin(s.ctx, id)
	s.Require().NoError(err)
	_, err = s.service.Begin(s.ctx, id)
	s.ErrorIs(err, apperrors.ErrAlreadyEditing)
}

func (s *EditServiceTestSuite) TestChangeIsAllOrNothing() {
	id := s.open("USR-001")
	_, err := s.service.Begin(s.ctx, id)
	s.Require().NoError(err)

	_, err = s.service.Change(s.ctx, id, map[string]string{"correo": "otra@empresa.com", "sueldo": "1"})
	s.ErrorIs(err, apperrors.ErrUnknownField)

	_, err = s.service.Change(s.ctx, id, map[string]string{"correo": "otra@empresa.com", "rol": "superusuario"})
	var inputErr *apperrors.InvalidInputError
	s.True(errors.As(err, &inputErr))

	session, err := s.service.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("maria.garcia@empresa.com", session.Usuario.Correo)
}

func (s *EditServiceTestSuite) TestToggleBajaActsOnShownCopy() {
	id := s.open("USR-001")

	session, err := s.service.ToggleBaja(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(entities.EstadoUsuarioBaja, session.Usuario.Estado)
	s.Equal(entities.EstadoUsuarioActivo, session.Original.Estado)

	_, err = s.service.Begin(s.ctx, id)
	s.Require().NoError(err)
	session, err = s.service.ToggleBaja(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(entities.EstadoUsuarioActivo, session.Usuario.Estado)

	session, err = s.service.Cancel(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(entities.EstadoUsuarioBaja, session.Usuario.Estado)
}

func (s *EditServiceTestSuite) TestClose() {
	id := s.open("USR-001")
	s.Require().NoError(s.service.Close(s.ctx, id))

	_, err := s.service.Get(s.ctx, id)
	s.ErrorIs(err, apperrors.ErrSessionNotFound)
	s.ErrorIs(s.service.Close(s.ctx, id), apperrors.ErrSessionNotFound)
}

func TestEditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EditServiceTestSuite))
}
