package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jcastanog/restaurante-api/pkg/logger"
)

// HeaderRequestID header con el identificador de la petición.
const HeaderRequestID = "X-Request-ID"

// RequestLogger registra cada petición con su latencia y un request id. Si el
// cliente no trae X-Request-ID se genera uno.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)

		inicio := time.Now()
		err := c.Next()
		latencia := time.Since(inicio)

		reqLog := log.WithRequestID(requestID)
		status := c.Response().StatusCode()
		evt := reqLog.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = reqLog.Error()
		case status >= fiber.StatusBadRequest:
			evt = reqLog.Warn()
		}
		evt.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", latencia).
			Msg("request")
		return err
	}
}
