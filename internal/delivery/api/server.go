// Package api serves the operator and traveler REST API.
package api

import (
	"log/slog"

	"evacuation/config"
	"evacuation/internal/delivery"
	apimiddleware "evacuation/internal/delivery/api/middleware"
	"evacuation/internal/delivery/api/router"
	"evacuation/internal/delivery/api/validator"
	"evacuation/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer wires middleware and routes onto a fresh echo instance and serves
// it over h2c on http.port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError

	// The request id must be scoped before anything logs.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize),
	)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	h2c := &http2.Server{IdleTimeout: httpCfg.Timeouts.IdleTimeout}

	return delivery.NewEchoServer(params.Lc, "api", httpCfg.Port, e, h2c, params.Logger), nil
}
