package http

import (
	"time"

	"mastermind_reach/internal/codegen"
	"mastermind_reach/internal/config"
	"mastermind_reach/internal/http/handlers"
	"mastermind_reach/internal/http/middleware"
	"mastermind_reach/internal/repository"
	"mastermind_reach/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires repositories, services and handlers onto the
// engine.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, gen *codegen.Generator, cfg *config.Config, version string) {
	gameRepo := repository.NewGameRepository(db)
	multiplayerRepo := repository.NewMultiplayerRepository(db)

	gameService := service.NewGameService(gameRepo, gen)
	multiplayerService := service.NewMultiplayerService(multiplayerRepo, gameService)

	h := handlers.NewHandler(gameService, multiplayerService)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, h, cfg.GuessRateLimit, cfg.GuessRateWindow)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, guessRateLimit int, guessRateWindow time.Duration) {
	// Guess limiter is per player, not per IP
	guessRL := middleware.GuessRateLimit(guessRateLimit, guessRateWindow)

	api.POST("/auth/guest", h.GuestAuth)

	// Single player
	api.POST("/games", middleware.JWT(), h.StartGame)
	api.GET("/games/:id", h.GetGame)
	api.POST("/games/:id/guess", middleware.JWT(), guessRL, h.SubmitGuess)
	api.GET("/me/games", middleware.JWT(), h.MyGames)

	// Multiplayer (turn rotation)
	api.POST("/multiplayer", middleware.JWT(), h.CreateMultiplayer)
	api.GET("/multiplayer/:id", h.GetMultiplayer)
	api.POST("/multiplayer/:id/guess", middleware.JWT(), guessRL, h.SendMultiplayerGuess)
}
