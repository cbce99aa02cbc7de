package container

import (
	"fmt"

	"github.com/campushub/backend/internal/config"
	httpdelivery "github.com/campushub/backend/internal/delivery/http"
	"github.com/campushub/backend/internal/delivery/http/handler"
	"github.com/campushub/backend/internal/delivery/http/middleware"
	"github.com/campushub/backend/internal/infrastructure/database"
	"github.com/campushub/backend/internal/infrastructure/gemini"
	"github.com/campushub/backend/internal/infrastructure/notify"
	"github.com/campushub/backend/internal/infrastructure/server"
	"github.com/campushub/backend/internal/repository/postgres"
	"github.com/campushub/backend/internal/usecase/auth"
	"github.com/campushub/backend/internal/usecase/roommate"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient

	matchWorker *roommate.MatchWorker
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis (carries the notification queue)
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini Client
	var geminiClient *gemini.GeminiClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			log.Warn("failed to initialize gemini client, continuing without AI insights", zap.Error(err))
			geminiClient = nil
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewRoommateProfileRepository(db)
	matchRepo := postgres.NewMatchRepository(db)

	// Initialize matching core
	notifier := notify.NewRedisNotifier(redisClient)
	matchingService := roommate.NewMatchingService(profileRepo, matchRepo, notifier, log)
	matchWorker := roommate.NewMatchWorker(matchingService, cfg.Matching.QueueSize, log)
	matchWorker.Start()

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiryMin)
	roommateUseCase := roommate.NewRoommateUseCase(
		profileRepo,
		matchRepo,
		matchingService,
		matchWorker,
		geminiClient,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	roommateHandler := handler.NewRoommateHandler(roommateUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := httpdelivery.NewRouter(authHandler, roommateHandler, authMiddleware)
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config:      cfg,
		Log:         log,
		DB:          db,
		Redis:       redisClient,
		Server:      srv,
		Gemini:      geminiClient,
		matchWorker: matchWorker,
	}, nil
}

// Close stops the background worker and closes all connections
func (c *Container) Close() error {
	if c.matchWorker != nil {
		c.matchWorker.Stop()
	}

	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
