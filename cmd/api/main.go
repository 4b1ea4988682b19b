package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/invmanagement/internal/application/usecase"
	"github.com/jhoicas/invmanagement/internal/infrastructure/memory"
	"github.com/jhoicas/invmanagement/internal/infrastructure/metrics"
	httpRouter "github.com/jhoicas/invmanagement/internal/interfaces/http"
	"github.com/jhoicas/invmanagement/pkg/config"
	"github.com/jhoicas/invmanagement/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Env: "production"}).Fatal().Err(err).Msg("cargar configuración")
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("strict_part_delete", cfg.Inventory.StrictDelete).
		Msg("iniciando aplicación")

	// Inventario en memoria: vive lo que vive el proceso.
	inv := memory.NewInventory(memory.Config{
		PartIDSeed:    cfg.Inventory.PartIDSeed,
		ProductIDSeed: cfg.Inventory.ProductIDSeed,
	})
	inv.Subscribe(memory.LogListener(log.Component("inventory")))

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(inv.Counts)
		inv.Subscribe(m.InventoryListener())
	}

	partUC := usecase.NewPartUseCase(inv, cfg.Inventory.StrictDelete)
	productUC := usecase.NewProductUseCase(inv, inv)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     "docs",
			Title:    "Inventory Management API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		parts, products := inv.Counts()
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "parts": parts, "products": products})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartUC:      partUC,
		ProductUC:   productUC,
		Logger:      log.Component("http"),
		Metrics:     m,
		MetricsPath: cfg.Metrics.Path,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.HTTP.Addr()).Msg("no se pudo iniciar el servidor HTTP")
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

	log.Info().Msg("aplicación detenida")
}
