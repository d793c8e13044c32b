package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"soporte-tecnico/internal/dto"
	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/listeners"
	"soporte-tecnico/internal/repositories"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/customvalidator"
	"soporte-tecnico/pkg/eventbus"
	"soporte-tecnico/pkg/middleware"
	"soporte-tecnico/pkg/utils"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

type RouterTestSuite struct {
	suite.Suite
	Echo    *echo.Echo
	Bus     *eventbus.Bus
	Journal *listeners.ActionLogListener
}

func (s *RouterTestSuite) SetupTest() {
	nopLogger := zap.NewNop()

	e := echo.New()
	v := validator.New()
	s.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	renderer, err := views.NewTemplateRenderer()
	s.Require().NoError(err)
	e.Renderer = renderer

	e.Use(middleware.InjectLogger(nopLogger))
	e.Use(middleware.InjectIdentity(entities.Identity{Nombre: "Juan Rodriguez", Correo: "admin@helpdesk.com"}))

	s.Bus = eventbus.New(nopLogger)
	s.Journal = listeners.NewActionLogListener(nopLogger)
	s.Journal.Register(s.Bus)

	InitRouter(e, Deps{
		Drafts:    repositories.NewMemoryDraftStore(time.Minute),
		Bus:       s.Bus,
		Journal:   s.Journal,
		Validator: v,
	}, &Loggers{Main: nopLogger, Usuario: nopLogger, Accion: nopLogger})
	s.Echo = e
}

func (s *RouterTestSuite) do(method, target string, body io.Reader, contentType string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) get(target string, headers ...string) *httptest.ResponseRecorder {
	return s.do(http.MethodGet, target, nil, "", headers...)
}

func (s *RouterTestSuite) postJSON(target string, payload interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if payload != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(payload))
	}
	return s.do(http.MethodPost, target, &buf, echo.MIMEApplicationJSON)
}

func (s *RouterTestSuite) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, target, strings.NewReader(form.Encode()), echo.MIMEApplicationForm)
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder, out interface{}) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if out != nil && len(env.Body) > 0 {
		s.Require().NoError(json.Unmarshal(env.Body, out))
	}
	return env
}

func (s *RouterTestSuite) TestTicketSearchIgnoresCase() {
	for _, q := range []string{"SOL-2024-003", "sol-2024-003"} {
		rec := s.get("/api/solicitudes?search=" + q)
		s.Equal(http.StatusOK, rec.Code)

		var res dto.CollectionDTO[entities.Ticket]
		env := s.decode(rec, &res)
		s.True(env.Status)
		s.Require().Len(res.Items, 1)
		s.Equal("SOL-2024-003", res.Items[0].Folio)
		s.Equal(res.Layout.Rows, res.Layout.Cards)
	}
}

func (s *RouterTestSuite) TestTicketFilterAcceptsPlainAlias() {
	rec := s.get("/api/solicitudes?estado=abierto&filter[prioridad]=critica")
	s.Equal(http.StatusOK, rec.Code)

	var res dto.CollectionDTO[entities.Ticket]
	s.decode(rec, &res)
	s.Len(res.Items, 2)

	rec = s.get("/api/solicitudes?estado=todos&filter[prioridad]=todas&departamento=")
	s.decode(rec, &res)
	s.Len(res.Items, 8)
}

func (s *RouterTestSuite) TestSolicitudDetalle() {
	rec := s.get("/api/solicitudes/SOL-2024-010")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.get("/api/solicitudes/abc")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.get("/solicitudes/abc")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "Volver a solicitudes")
}

func (s *RouterTestSuite) TestUsuarioNotFound() {
	rec := s.get("/api/usuarios/USR-999")
	s.Equal(http.StatusNotFound, rec.Code)
	env := s.decode(rec, nil)
	s.False(env.Status)
	s.Equal("Usuario no encontrado (ID: USR-999)", env.Message)

	rec = s.get("/usuarios/USR-999")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "Usuario no encontrado (ID: USR-999)")
}

func (s *RouterTestSuite) TestEditCancelKeepsOriginalCorreo() {
	rec := s.postJSON("/api/usuarios/USR-001/ediciones", nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var session dto.EditSessionDTO
	s.decode(rec, &session)
	s.Equal(entities.ModeViewing, session.Modo)

	base := "/api/ediciones/" + session.ID
	rec = s.postJSON(base+"/editar", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	patch := `{"campos":{"correo":"otro@empresa.com"}}`
	rec = s.do(http.MethodPatch, base, strings.NewReader(patch), echo.MIMEApplicationJSON)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &session)
	s.Equal("otro@empresa.com", session.Usuario.Correo)

	rec = s.postJSON(base+"/cancelar", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &session)
	s.Equal("maria.garcia@empresa.com", session.Usuario.Correo)

	var usuario entities.Usuario
	s.decode(s.get("/api/usuarios/USR-001"), &usuario)
	s.Equal("maria.garcia@empresa.com", usuario.Correo)
}

func (s *RouterTestSuite) TestEditTransitionErrors() {
	rec := s.postJSON("/api/usuarios/USR-002/ediciones", nil)
	var session dto.EditSessionDTO
	s.decode(rec, &session)
	base := "/api/ediciones/" + session.ID

	rec = s.do(http.MethodPatch, base, strings.NewReader(`{"campos":{"correo":"x@y.com"}}`), echo.MIMEApplicationJSON)
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPatch, base, strings.NewReader(`{"campos":{}}`), echo.MIMEApplicationJSON)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.get("/api/ediciones/no-existe")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, base, nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(http.StatusNotFound, s.get(base).Code)
}

func (s *RouterTestSuite) TestEditSaveFromHTMLForm() {
	rec := s.postForm("/api/usuarios/USR-003/ediciones", url.Values{})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	location := rec.Header().Get(echo.HeaderLocation)
	s.True(strings.HasPrefix(location, "/usuarios/USR-003?sesion="), location)
	sesion := strings.TrimPrefix(location, "/usuarios/USR-003?sesion=")

	rec = s.postForm("/api/ediciones/"+sesion+"/editar", url.Values{})
	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Contains(s.get(location).Body.String(), `name="correo" value="ana.torres@empresa.com"`)

	rec = s.postForm("/api/ediciones/"+sesion+"/guardar", url.Values{"correo": {"ana.t@empresa.com"}})
	s.Require().Equal(http.StatusSeeOther, rec.Code)

	page := s.get(location).Body.String()
	s.Contains(page, "ana.t@empresa.com")
	s.Contains(page, "Dar de baja")

	var usuario entities.Usuario
	s.decode(s.get("/api/usuarios/USR-003"), &usuario)
	s.Equal("ana.torres@empresa.com", usuario.Correo)

	s.Bus.Wait()
	recent := s.Journal.Recent()
	s.Require().Len(recent, 1)
	s.Equal("USR-003", recent[0].RegistroID)
	s.Equal(entities.AccionEditar, recent[0].Accion)
}

func (s *RouterTestSuite) TestRegisterUsuario() {
	rec := s.postJSON("/api/usuarios", map[string]string{
		"correo": "no-es-correo", "contrasena": "123", "nombres": "Nuevo", "primer_apellido": "Usuario",
		"rol": "editor", "estado": "activo",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	var fields map[string]string
	s.decode(rec, &fields)
	s.Contains(fields, "Correo")
	s.Contains(fields, "Contrasena")

	rec = s.postJSON("/api/usuarios", map[string]string{
		"correo": "nuevo@empresa.com", "contrasena": "secreta123", "nombres": "Nuevo", "primer_apellido": "Usuario",
		"rol": "editor", "estado": "activo",
	})
	s.Equal(http.StatusAccepted, rec.Code, rec.Body.String())
	var receipt entities.Receipt
	s.decode(rec, &receipt)
	s.Equal(entities.AccionAgregar, receipt.Accion)
	s.Equal("usuario", receipt.Entidad)
}

func (s *RouterTestSuite) TestMaterialesXLSX() {
	rec := s.get("/api/inventarios/materiales?format=xlsx")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "attachment; filename=materiales_")

	f, err := excelize.OpenReader(rec.Body)
	s.Require().NoError(err)
	defer f.Close()
	rows, err := f.GetRows("Materiales")
	s.Require().NoError(err)
	s.Len(rows, 9)
	s.Equal("Toner HP 26A", rows[1][1])
}

func (s *RouterTestSuite) TestMaterialesLowStockSummary() {
	var res dto.CollectionDTO[entities.Material]
	s.decode(s.get("/api/inventarios/materiales?stock=bajo"), &res)
	s.Len(res.Items, 4)
	s.Equal(4, res.Summary.Counts["bajo_stock"])
}

func (s *RouterTestSuite) TestReportesFeedExpansion() {
	var res dto.FeedDTO
	s.decode(s.get("/api/reportes?abiertos=RPT-002"), &res)
	s.Require().Len(res.Cards, 5)
	s.False(res.Cards[0].Expanded)
	s.True(res.Cards[1].Expanded)
	s.NotEmpty(res.Cards[1].DetallesAdicionales)
	s.Equal([]string{"RPT-002"}, res.Abiertos)

	page := s.get("/reportes?abiertos=RPT-002").Body.String()
	s.Contains(page, "Ver menos")
	s.Contains(page, "Ver más")
}

func (s *RouterTestSuite) TestActionDispatch() {
	rec := s.postForm("/api/acciones", url.Values{"accion": {"ver"}, "entidad": {"usuario"}, "id": {"USR-001"}})
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/usuarios/USR-001", rec.Header().Get(echo.HeaderLocation))

	rec = s.postJSON("/api/acciones", map[string]string{"accion": "eliminar", "entidad": "equipo", "id": "EQ-2024-001"})
	s.Equal(http.StatusAccepted, rec.Code)

	rec = s.postJSON("/api/acciones", map[string]string{"accion": "imprimir", "entidad": "equipo", "id": "EQ-2024-001"})
	s.Equal(http.StatusBadRequest, rec.Code)

	s.Bus.Wait()
	var recent []entities.Receipt
	s.decode(s.get("/api/acciones"), &recent)
	s.Require().Len(recent, 1)
	s.Equal("EQ-2024-001", recent[0].RegistroID)
}

func (s *RouterTestSuite) TestSesionUsesHeaders() {
	var sesion dto.SessionDTO
	s.decode(s.get("/api/sesion"), &sesion)
	s.Equal("Juan Rodriguez", sesion.Nombre)
	s.Equal("JR", sesion.Iniciales)

	s.decode(s.get("/api/sesion", middleware.HeaderUsuarioNombre, "Ana Torres"), &sesion)
	s.Equal("AT", sesion.Iniciales)
	s.Equal("admin@helpdesk.com", sesion.Correo)
}

func (s *RouterTestSuite) TestCatalogos() {
	var res dto.CollectionDTO[json.RawMessage]
	s.decode(s.get("/api/adicionales/periodos?estado=activo"), &res)
	s.Len(res.Items, 2)

	s.Equal(http.StatusNotFound, s.get("/api/adicionales/responsables").Code)
	s.Equal(http.StatusNotFound, s.get("/adicionales?catalogo=responsables").Code)
}

func (s *RouterTestSuite) TestHTMLScreens() {
	page := s.get("/")
	s.Require().Equal(http.StatusOK, page.Code)
	html := page.Body.String()
	s.Contains(html, "hidden md:block")
	s.Contains(html, "md:hidden")
	s.Contains(html, "8 solicitudes encontradas")
	s.Contains(html, "Juan Rodriguez")

	for _, path := range []string{
		"/solicitudes", "/solicitudes/SOL-2024-001", "/mis-solicitudes", "/inventarios", "/inventarios?tab=equipos",
		"/usuarios", "/usuarios/registrar", "/usuarios/USR-001", "/reportes", "/adicionales?catalogo=etiquetas",
	} {
		rec := s.get(path)
		s.Equal(http.StatusOK, rec.Code, path)
		s.Contains(rec.Body.String(), "Soporte Técnico", path)
	}

	s.Contains(s.get("/inventarios?tab=materiales&stock=bajo").Body.String(), "4 con bajo stock")
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
