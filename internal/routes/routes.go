package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"soporte-tecnico/internal/controllers"
	"soporte-tecnico/internal/repositories"
	"soporte-tecnico/internal/services"
	"soporte-tecnico/pkg/eventbus"
)

type Loggers struct {
	Main    *zap.Logger
	Usuario *zap.Logger
	Accion  *zap.Logger
}

// Deps - то, что создаётся в main: хранилище черновиков, шина событий и журнал намерений.
type Deps struct {
	Drafts    repositories.DraftStoreInterface
	Bus       *eventbus.Bus
	Journal   controllers.ReceiptJournal
	Validator *validator.Validate
}

func InitRouter(e *echo.Echo, deps Deps, loggers *Loggers) {
	loggers.Main.Info("InitRouter: creando rutas")

	api := e.Group("/api")

	// --- 1. РЕПОЗИТОРИИ ---
	ticketRepo := repositories.NewTicketRepository(loggers.Main)
	solicitudRepo := repositories.NewSolicitudRepository(loggers.Main)
	materialRepo := repositories.NewMaterialRepository(loggers.Main)
	equipoRepo := repositories.NewEquipoRepository(loggers.Main)
	userRepo := repositories.NewUserRepository(loggers.Usuario)
	reportRepo := repositories.NewReportRepository(loggers.Main)
	catalogRepo := repositories.NewCatalogRepository(loggers.Main)

	// --- 2. СЕРВИСЫ ---
	backend := services.NewPlaceholderBackend(deps.Bus, loggers.Accion)
	ticketService := services.NewTicketService(ticketRepo, deps.Validator, loggers.Main)
	solicitudService := services.NewSolicitudService(solicitudRepo, loggers.Main)
	inventarioService := services.NewInventarioService(materialRepo, equipoRepo, loggers.Main)
	usuarioService := services.NewUsuarioService(userRepo, backend, loggers.Usuario)
	editService := services.NewEditService(userRepo, deps.Drafts, backend, loggers.Usuario)
	reporteService := services.NewReporteService(reportRepo, loggers.Main)
	catalogoService := services.NewCatalogoService(catalogRepo, loggers.Main)
	actionService := services.NewActionService(backend, loggers.Accion)

	// --- 3. КОНТРОЛЛЕРЫ ---
	sessionCtrl := controllers.NewSessionController(loggers.Main)
	ticketCtrl := controllers.NewTicketController(ticketService, loggers.Main)
	solicitudCtrl := controllers.NewSolicitudController(solicitudService, loggers.Main)
	inventarioCtrl := controllers.NewInventarioController(inventarioService, loggers.Main)
	usuarioCtrl := controllers.NewUsuarioController(usuarioService, editService, loggers.Usuario)
	editCtrl := controllers.NewEditController(editService, loggers.Usuario)
	reporteCtrl := controllers.NewReporteController(reporteService, loggers.Main)
	catalogoCtrl := controllers.NewCatalogoController(catalogoService, loggers.Main)
	actionCtrl := controllers.NewActionController(actionService, deps.Journal, loggers.Accion)

	// --- 4. РОУТЕРЫ ---
	runSessionRouter(api, sessionCtrl)
	runSolicitudRouter(e, api, ticketCtrl, solicitudCtrl)
	runInventarioRouter(e, api, inventarioCtrl)
	runUsuarioRouter(e, api, usuarioCtrl, editCtrl)
	runReporteRouter(e, api, reporteCtrl)
	runAdicionalesRouter(e, api, catalogoCtrl)
	runActionRouter(api, actionCtrl)

	loggers.Main.Info("InitRouter: rutas creadas")
}
