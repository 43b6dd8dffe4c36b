package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/config"
	"github.com/sagheerabbass/talenttrack/internal/app"
	"github.com/sagheerabbass/talenttrack/internal/automation"
	"github.com/sagheerabbass/talenttrack/internal/database"
	"github.com/sagheerabbass/talenttrack/internal/server"
	"github.com/sagheerabbass/talenttrack/internal/services"
	"github.com/sagheerabbass/talenttrack/internal/storage/mongodb"
	"github.com/sagheerabbass/talenttrack/internal/storage/redisstore"

	_ "github.com/sagheerabbass/talenttrack/docs" // Generated swagger docs
)

// @title           TalentTrack API
// @version         1.0
// @description     Candidate tracking backend with audit logging and workflow automation delegation.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	mongoClient, err := database.NewMongoClient(cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())

	redisClient, err := database.NewRedisClient(cfg.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	db := mongoClient.Database(cfg.Mongo.Database)

	candidateRepo, err := mongodb.NewCandidateRepo(db)
	if err != nil {
		logger.Fatal("Failed to prepare candidates collection", zap.Error(err))
	}
	logRepo, err := mongodb.NewLogRepo(db)
	if err != nil {
		logger.Fatal("Failed to prepare logs collection", zap.Error(err))
	}
	userRepo, err := mongodb.NewUserRepo(db)
	if err != nil {
		logger.Fatal("Failed to prepare users collection", zap.Error(err))
	}
	tokenStore := redisstore.NewTokenStore(redisClient)

	automationClient := automation.NewClient(cfg.Automation.BaseURL, cfg.Automation.Token, cfg.Automation.Timeout)

	candidateService := services.NewCandidateService(candidateRepo, logRepo, logger)
	logService := services.NewLogService(logRepo, candidateRepo, logger)
	userService := services.NewUserService(userRepo, tokenStore, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshTTL, logger)
	automationService := services.NewAutomationService(automationClient, candidateRepo, logRepo, logger)

	// Development convenience account, never seeded in production
	if !cfg.IsProduction() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := userService.SeedAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			logger.Warn("Admin seed failed", zap.Error(err))
		}
		cancel()
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		Logger:      logger,
		MongoClient: mongoClient,
		RedisClient: redisClient,
		Validator:   validate,
		Candidates:  candidateService,
		Logs:        logService,
		Users:       userService,
		Automation:  automationService,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
}
