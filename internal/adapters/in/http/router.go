package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// MetricsExporter records request metrics and serves them.
type MetricsExporter interface {
	RequestObserver
	Handler() http.Handler
}

// NewRouter assembles the echo instance: ambient endpoints, middleware and
// the validated /api/v1 group served by server.
func NewRouter(server *Server, metrics MetricsExporter, logger *slog.Logger) (*echo.Echo, error) {
	doc := NewOpenAPIDocument()

	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(requestMetrics(metrics))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server.RegisterRoutes(e.Group(apiPrefix, validator))

	return e, nil
}
