package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/invmanagement/internal/application/usecase"
	"github.com/jhoicas/invmanagement/internal/infrastructure/metrics"
	"github.com/jhoicas/invmanagement/pkg/logger"
)

// RouterDeps dependencias para el router. Logger y Metrics son opcionales.
type RouterDeps struct {
	PartUC      *usecase.PartUseCase
	ProductUC   *usecase.ProductUseCase
	Logger      *logger.Logger
	Metrics     *metrics.Metrics
	MetricsPath string
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Parts
	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Get("/", partHandler.List)
	parts.Post("/", partHandler.Create)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Piezas asociadas a un producto
	products.Post("/:id/parts", productHandler.AddPart)
	products.Delete("/:id/parts/:partId", productHandler.RemovePart)
}
