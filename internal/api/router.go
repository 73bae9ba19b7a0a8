package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tradelog/trade-journal/internal/api/handler"
	"github.com/tradelog/trade-journal/internal/api/middleware"
	"github.com/tradelog/trade-journal/internal/core/service"
	mongodb "github.com/tradelog/trade-journal/internal/infrastructure/db/mongo"
	redisdb "github.com/tradelog/trade-journal/internal/infrastructure/db/redis"
	"github.com/tradelog/trade-journal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Secure())
	e.Use(echoprometheus.NewMiddleware("tradelog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tradeRepo := mongodb.NewTradeRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.LoginLimit.MaxAttempts, cfg.LoginLimit.Window)

	authService := service.NewAuthService(userRepo, limiter, cfg.JWTSecret, cfg.TokenTTL, log)
	tradeService := service.NewTradeService(tradeRepo, log)

	userHandler := handler.NewUserHandler(authService)
	tradeHandler := handler.NewTradeHandler(tradeService)
	requireAuth := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.POST("/api/users", userHandler.Register)
	e.POST("/api/users/login", userHandler.Login)

	// --- Protected routes ---
	trades := e.Group("/api/trades", requireAuth)
	trades.GET("", tradeHandler.List)
	trades.GET("/stats", tradeHandler.Stats)
	trades.GET("/:id", tradeHandler.Get)
	trades.POST("", tradeHandler.Create)
	trades.PUT("/:id", tradeHandler.Update)
	trades.DELETE("/:id", tradeHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// Mongo operations inside handlers carry their own per-call timeouts;
	// this is a second bound on the whole request.
	e.Server.ReadHeaderTimeout = 10 * time.Second

	return e
}
