package app

import (
	"github.com/go-playground/validator"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/config"
	"github.com/sagheerabbass/talenttrack/internal/services"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	Logger      *zap.Logger
	MongoClient *mongo.Client
	RedisClient *redis.Client
	Validator   *validator.Validate

	Candidates services.CandidateService
	Logs       services.LogService
	Users      services.UserService
	Automation services.AutomationService
}
