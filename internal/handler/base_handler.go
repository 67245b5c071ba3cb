package handler

import (
	"football-championship/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger  *logrus.Logger
	metrics *metrics.Metrics
}

func NewBaseHandler(logger *logrus.Logger, m *metrics.Metrics) *BaseHandler {
	return &BaseHandler{
		logger:  logger,
		metrics: m,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
	})
}
