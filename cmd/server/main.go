package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/blackwoods-compta/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/blackwoods-compta/internal/interfaces/http"
	"github.com/jhoicas/blackwoods-compta/pkg/config"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando API")

	// El servidor siempre publica un almacén local, sea cual sea BACKEND_MODE.
	ctx := context.Background()
	store, err := sqlite.Open(ctx, sqlite.Options{
		Path:              cfg.Backend.Local.Path(),
		SeedAdminPassword: cfg.Backend.Local.SeedAdminPassword,
		JWTSecret:         cfg.JWT.Secret,
		JWTIssuer:         cfg.JWT.Issuer,
		JWTExpMinutes:     cfg.JWT.Expiration,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos local")
	}
	defer store.Close()
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: los tokens emitidos no sobreviven a un reinicio")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "BlackWoods Compta API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": store.Info()})
	})

	// Freno a la fuerza bruta sobre el login.
	app.Use("/api/auth/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Repo:      store,
		JWTSecret: store.TokenSecret(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("API detenida")
}
