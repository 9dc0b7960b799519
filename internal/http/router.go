package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lingua/backend/docs"
	"lingua/backend/internal/config"
	"lingua/backend/internal/handler"
)

// apiPaths are never answered by the static frontend fallback.
var apiPaths = []string{"/translate", "/history", "/chat", "/grammar", "/health", "/metrics", "/swagger"}

func NewRouter(
	translationHandler *handler.TranslationHandler,
	chatHandler *handler.ChatHandler,
	grammarHandler *handler.GrammarHandler,
	corsOrigins []string,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(RequestLoggerMiddleware())

	docs.SwaggerInfo.Title = config.AppName + " API"
	docs.SwaggerInfo.Version = config.AppVersion
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.Health)

	api := e.Group("")
	translationHandler.RegisterRoutes(api)
	chatHandler.RegisterRoutes(api)
	grammarHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
