package services

import (
	"context"

	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/repositories"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/collection"
	"soporte-tecnico/pkg/types"
	"soporte-tecnico/pkg/utils"
)

type UsuarioServiceInterface interface {
	GetUsuarios(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Usuario], error)
	FindUsuario(ctx context.Context, id string) (*entities.Usuario, error)
	RegisterUsuario(ctx context.Context, form dto.RegisterUsuarioDTO) (*entities.Receipt, error)
}

type UsuarioService struct {
	repo    repositories.UserRepositoryInterface
	backend Backend
	logger  *zap.Logger
}

func NewUsuarioService(repo repositories.UserRepositoryInterface, backend Backend, logger *zap.Logger) UsuarioServiceInterface {
	return &UsuarioService{repo: repo, backend: backend, logger: logger}
}

func (s *UsuarioService) GetUsuarios(ctx context.Context, filter types.Filter) (*dto.CollectionDTO[entities.Usuario], error) {
	usuarios, err := s.repo.GetUsuarios(ctx)
	if err != nil {
		return nil, err
	}

	q := collection.Query[entities.Usuario]{
		Search: filter.Search,
		SearchFields: []collection.Field[entities.Usuario]{
			entities.Usuario.FullName,
			func(u entities.Usuario) string { return u.Correo },
			func(u entities.Usuario) string { return u.Departamento },
			func(u entities.Usuario) string { return u.ID },
		},
		Criteria: []collection.Criterion[entities.Usuario]{
			enumCriterion(filter.Get("estado"), entities.ParseEstadoUsuario, func(u entities.Usuario) entities.EstadoUsuario { return u.Estado }),
			enumCriterion(filter.Get("tipo"), entities.ParseTipoUsuario, func(u entities.Usuario) entities.TipoUsuario { return u.TipoUsuario }),
			labelCriterion(filter.Get("departamento"), entities.ResolveDepartamento, func(u entities.Usuario) string { return u.Departamento }),
		},
	}

	filtered := collection.Filter(usuarios, q)
	counts := collection.CountBy(filtered, func(u entities.Usuario) string { return string(u.Estado) })
	activos := counts[string(entities.EstadoUsuarioActivo)]
	inactivos := counts[string(entities.EstadoUsuarioInactivo)]
	bajas := counts[string(entities.EstadoUsuarioBaja)]

	return &dto.CollectionDTO[entities.Usuario]{
		Items: filtered,
		Summary: summaryOf(len(filtered), counts,
			views.Found(len(filtered), "usuario", "usuarios", false),
			views.Counted(activos, "activo", "activos"),
			views.Counted(inactivos, "inactivo", "inactivos"),
			views.Counted(bajas, "baja", "bajas"),
		),
		Layout: usuarioLayout.Render(filtered),
	}, nil
}

// FindUsuario ищет в выборке карточек, а не в списке экрана /usuarios.
func (s *UsuarioService) FindUsuario(ctx context.Context, id string) (*entities.Usuario, error) {
	return s.repo.FindUsuario(ctx, id)
}

// RegisterUsuario отправляет новую учётную запись бэкенду; пароль уходит только хешем.
// Форма уже проверена validator-ом в контроллере.
func (s *UsuarioService) RegisterUsuario(ctx context.Context, form dto.RegisterUsuarioDTO) (*entities.Receipt, error) {
	rol, _ := entities.ParseRolUsuario(form.Rol)
	estado, _ := entities.ParseEstadoUsuario(form.Estado)

	hash, err := utils.HashPassword(form.Contrasena)
	if err != nil {
		return nil, err
	}

	payload := map[string]string{
		"correo":           form.Correo,
		"nombres":          form.Nombres,
		"primer_apellido":  form.PrimerApellido,
		"segundo_apellido": form.SegundoApellido,
		"telefono":         form.Telefono,
		"rol":              string(rol),
		"estado":           string(estado),
		"password_hash":    hash,
	}

	s.logger.Info("registro de usuario enviado", zap.String("correo", form.Correo), zap.String("rol", string(rol)))
	return s.backend.SubmitCreate(ctx, "usuario", payload)
}
