package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invmanagement/pkg/logger"
	"github.com/rs/zerolog"
)

// httpObserver es el contrato mínimo que necesita el middleware de métricas.
// Lo implementa *metrics.Metrics.
type httpObserver interface {
	ObserveHTTP(method, path, status string, seconds float64)
}

// RequestLogger registra cada petición con método, ruta, estado y latencia.
// Las respuestas 5xx se registran como error y las 4xx como warn.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// Metrics cuenta peticiones y mide su duración por ruta registrada (no por URL concreta).
func Metrics(obs httpObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}
		obs.ObserveHTTP(c.Method(), path, strconv.Itoa(c.Response().StatusCode()), time.Since(start).Seconds())
		return err
	}
}
