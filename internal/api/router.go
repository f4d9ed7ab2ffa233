package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/clavetec/accounts-api/docs"
	"github.com/clavetec/accounts-api/internal/api/handler"
	"github.com/clavetec/accounts-api/internal/api/middleware"
	"github.com/clavetec/accounts-api/internal/core/service"
	"github.com/clavetec/accounts-api/internal/infrastructure/config"
	"github.com/clavetec/accounts-api/internal/infrastructure/db/postgres"
	"github.com/clavetec/accounts-api/internal/infrastructure/hash"
	"github.com/clavetec/accounts-api/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	hasher := hash.NewBcryptHasher()
	tokens := token.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, roleRepo, hasher, log)
	roleService := service.NewRoleService(roleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	guard := middleware.Auth(tokens, userRepo)

	// --- Open routes: registration and login ---
	v1 := e.Group("/v1")
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/users", userHandler.Create)

	// --- Protected routes ---
	users := v1.Group("/users", guard)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Remove)

	roles := v1.Group("/roles", guard)
	roles.POST("", roleHandler.Create)
	roles.GET("", roleHandler.List)
	roles.GET("/:id", roleHandler.Get)
	roles.PATCH("/:id", roleHandler.Update)
	roles.DELETE("/:id", roleHandler.Remove)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(db)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)    // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
