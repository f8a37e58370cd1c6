package api

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/freelancedesk/billable/docs"
	"github.com/freelancedesk/billable/internal/api/handler"
	"github.com/freelancedesk/billable/internal/api/middleware"
	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
	"github.com/freelancedesk/billable/web"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Auth          ports.AuthService
	Tracker       ports.TrackerService
	SessionTTL    time.Duration
	SecureCookies bool
	// Checks are pinged by the readiness probe, keyed by dependency name.
	Checks map[string]handler.Checker
	Logger zerolog.Logger
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	templates, err := fs.Sub(web.TemplatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("templates fs: %w", err)
	}
	renderer, err := NewTemplateRenderer(templates)
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "same-origin",
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "billable",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health" || c.Path() == "/health/ready"
		},
	}))
	e.Use(middleware.Session(deps.Auth, deps.Logger))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.SessionTTL, deps.SecureCookies, deps.Logger)
	pageHandler := handler.NewPageHandler(deps.Tracker)
	timeLogHandler := handler.NewTimeLogHandler(deps.Tracker)
	healthHandler := handler.NewHealthHandler(deps.Checks)

	// --- Operational routes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.StaticFS("/static", static)

	// --- Auth routes ---
	e.GET("/", authHandler.Root)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Pages (session required) ---
	requireUser := middleware.RequireUser()
	e.GET("/dashboard", pageHandler.Dashboard, requireUser)
	e.GET("/projects", pageHandler.Projects, requireUser)
	e.GET("/timelogs", pageHandler.TimeLogs, requireUser)
	e.POST("/timelogs", timeLogHandler.CreateTimeLog, requireUser, middleware.RBAC(domain.RoleAdmin, domain.RoleFreelancer))
	e.GET("/invoices", pageHandler.Invoices, requireUser)
	e.GET("/reports", pageHandler.Reports, requireUser)

	return e, nil
}
