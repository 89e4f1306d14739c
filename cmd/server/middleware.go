package main

import (
	"github.com/JaimeStill/route-docs/internal/config"
	"github.com/JaimeStill/route-docs/internal/logger"
	"github.com/JaimeStill/route-docs/pkg/middleware"
)

// buildMiddleware creates the middleware stack: request logging, CORS, and
// trailing-slash redirects for the slashed route table.
func buildMiddleware(loggerSys logger.System, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.Logger(loggerSys.Module("http")))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.AddSlash(metricsPath))
	return middlewareSys
}
