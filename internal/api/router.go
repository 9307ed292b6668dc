package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/devportfolio/portfolio/docs"
	"github.com/devportfolio/portfolio/internal/api/handler"
	"github.com/devportfolio/portfolio/internal/api/middleware"
	"github.com/devportfolio/portfolio/internal/core/domain"
	"github.com/devportfolio/portfolio/internal/core/ports"
)

const maxBodySize = "1M"

// Dependencies is everything the HTTP layer needs. Revocations and any
// Health entry may be nil.
type Dependencies struct {
	Log zerolog.Logger

	Tokens      ports.TokenAuthority
	Identities  middleware.IdentityFinder
	Revocations ports.RevocationList

	Auth     ports.AuthService
	Projects ports.ProjectService
	Users    ports.UserService

	Health       map[string]handler.Pinger
	AllowOrigins []string

	// Registry receives the HTTP metrics and is served on /metrics.
	// Defaults to the global Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.AllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.BodyLimit(maxBodySize))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portfolio",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || p == "/health" || p == "/health/ready"
		},
	}))

	// --- Handlers ---
	authenticate := middleware.Authenticate(middleware.AuthConfig{
		Tokens:      deps.Tokens,
		Identities:  deps.Identities,
		Revocations: deps.Revocations,
	})
	signedIn := middleware.Protect(authenticate)
	adminOnly := middleware.Protect(authenticate, domain.RoleAdmin)

	authHandler := handler.NewAuthHandler(deps.Auth)
	projectHandler := handler.NewProjectHandler(deps.Projects)
	userHandler := handler.NewUserHandler(deps.Users)
	healthHandler := handler.NewHealthHandler(deps.Health)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, signedIn...)
	api.POST("/auth/logout", authHandler.Logout, signedIn...)

	// --- Projects ---
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)
	api.POST("/projects", projectHandler.Create, signedIn...)
	api.PUT("/projects/:id", projectHandler.Update, signedIn...)
	api.DELETE("/projects/:id", projectHandler.Delete, signedIn...)

	// --- Users (admin) ---
	api.GET("/users", userHandler.List, adminOnly...)
	api.GET("/users/:id", userHandler.Get, adminOnly...)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
