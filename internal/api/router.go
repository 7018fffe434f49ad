package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sirpyerre/inventario-api/docs"
	"github.com/sirpyerre/inventario-api/internal/api/handler"
	"github.com/sirpyerre/inventario-api/internal/api/middleware"
	"github.com/sirpyerre/inventario-api/internal/core/domain"
	"github.com/sirpyerre/inventario-api/internal/core/security"
	"github.com/sirpyerre/inventario-api/internal/core/service"
	mongodb "github.com/sirpyerre/inventario-api/internal/infrastructure/db/mongo"
	"github.com/sirpyerre/inventario-api/pkg/logger"
)

// Credential endpoints share one fixed-window budget per client IP.
const (
	credentialRateLimit  = 10
	credentialRateWindow = time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *security.TokenIssuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("inventario"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	authService := service.NewAuthService(userRepo, tokens, logger.WithComponent(log, "auth_service"))
	userService := service.NewUserService(userRepo, logger.WithComponent(log, "user_service"))
	productService := service.NewProductService(productRepo, logger.WithComponent(log, "product_service"))

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	authenticate := middleware.Authenticate(authService)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	ownerOrAdmin := middleware.RequireOwnerOrAdmin("id")
	throttle := middleware.NewRateLimiter(rdb, credentialRateLimit, credentialRateWindow).Middleware()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register, throttle)
	e.POST("/auth/login", authHandler.Login, throttle)
	e.GET("/auth/verify", authHandler.Verify, authenticate)

	// --- User routes ---
	e.POST("/usuarios/registro", authHandler.Register, throttle) // legacy alias
	usuarios := e.Group("/usuarios", authenticate)
	usuarios.GET("", userHandler.List, adminOnly)
	usuarios.GET("/me", userHandler.Me)
	usuarios.GET("/:id", userHandler.Get)
	usuarios.PUT("/:id", userHandler.Update, ownerOrAdmin)
	usuarios.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Product routes ---
	productos := e.Group("/productos", authenticate)
	productos.POST("", productHandler.Create)
	productos.GET("", productHandler.List)
	productos.GET("/:id", productHandler.Get)
	productos.PATCH("/:id", productHandler.Update)
	productos.DELETE("/:id", productHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/doc/*", echoswagger.WrapHandler)

	return e
}
