package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"gamerank/database"
	"gamerank/internal/catalog"
	"gamerank/internal/config"
	"gamerank/internal/handler"
	"gamerank/internal/middleware"
	"gamerank/internal/repository"
	"gamerank/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	gameRepo := repository.NewGameRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewCommentVoteRepository(db)
	followRepo := repository.NewFollowRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	ratingService := service.NewRatingService(ratingRepo, gameRepo)
	commentService := service.NewCommentService(commentRepo, voteRepo, gameRepo)
	followService := service.NewFollowService(followRepo, ratingRepo, gameRepo)
	gameService := service.NewGameService(gameRepo, ratingRepo, commentRepo, followRepo, commentService)
	settingsService := service.NewSettingsService(settingsRepo, userRepo)
	userService := service.NewUserService(userRepo, ratingRepo, commentRepo, followService, settingsService)
	catalogClient := catalog.NewClient(cfg, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	gameHandler := handler.NewGameHandler(gameService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	commentHandler := handler.NewCommentHandler(commentService)
	followHandler := handler.NewFollowHandler(followService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	userHandler := handler.NewUserHandler(userService, followService)
	catalogHandler := handler.NewCatalogHandler(catalogClient)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.AuthMiddleware(authService)

	// Public game pages resolve the viewer when a token is present so the
	// responses can carry per-viewer state (my score, following).
	api := r.Group("/api", middleware.OptionalAuth(authService))
	{
		authHandler.RegisterRoutes(api.Group("/auth"))

		games := api.Group("/games")
		gameHandler.RegisterRoutes(games, api)
		ratingHandler.RegisterRoutes(games, requireAuth)
		commentHandler.RegisterRoutes(games, api.Group("/comments"), requireAuth)
		followHandler.RegisterRoutes(games, requireAuth)

		users := api.Group("/users")
		userHandler.RegisterRoutes(users, requireAuth)
		settingsHandler.RegisterRoutes(users, requireAuth)

		catalogHandler.RegisterRoutes(api.Group("/catalog"))
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("API server listening", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
