// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"soporte-tecnico/internal/entities"
	"soporte-tecnico/internal/listeners"
	"soporte-tecnico/internal/repositories"
	"soporte-tecnico/internal/routes"
	"soporte-tecnico/internal/views"
	"soporte-tecnico/pkg/config"
	"soporte-tecnico/pkg/customvalidator"
	apperrors "soporte-tecnico/pkg/errors"
	"soporte-tecnico/pkg/eventbus"
	applogger "soporte-tecnico/pkg/logger"
	"soporte-tecnico/pkg/middleware"
	"soporte-tecnico/pkg/utils"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	// 2. Middleware
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("pánico en el manejador",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Error interno del servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.HeaderUsuarioNombre, middleware.HeaderUsuarioCorreo},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))
	e.Use(middleware.InjectLogger(logger))
	e.Use(middleware.InjectIdentity(entities.Identity{Nombre: cfg.Session.UserName, Correo: cfg.Session.UserEmail}))

	// 3. Валидатор и шаблоны
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("error al registrar reglas de validación", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	renderer, err := views.NewTemplateRenderer()
	if err != nil {
		logger.Fatal("error al cargar plantillas", zap.Error(err))
	}
	e.Renderer = renderer

	// 4. Черновики редактирования: память процесса или Redis
	var drafts repositories.DraftStoreInterface
	switch cfg.Drafts.Store {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Fatal("no se pudo conectar a Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		drafts = repositories.NewRedisDraftStore(redisClient, cfg.Drafts.TTL)
	default:
		drafts = repositories.NewMemoryDraftStore(cfg.Drafts.TTL)
	}
	logger.Info("almacén de borradores", zap.String("store", cfg.Drafts.Store), zap.Duration("ttl", cfg.Drafts.TTL))

	// 5. Шина событий
	bus := eventbus.New(logger)
	journal := listeners.NewActionLogListener(logger.Named("acciones"))
	journal.Register(bus)

	// 6. Маршруты
	routes.InitRouter(e, routes.Deps{
		Drafts:    drafts,
		Bus:       bus,
		Journal:   journal,
		Validator: v,
	}, &routes.Loggers{
		Main:    logger,
		Usuario: logger.Named("usuarios"),
		Accion:  logger.Named("acciones"),
	})

	// 7. Запуск и остановка
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("servidor iniciado", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("error al iniciar el servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("error al detener el servidor", zap.Error(err))
	}
	bus.Wait()
	logger.Info("servidor detenido")
}
