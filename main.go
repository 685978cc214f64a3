package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-grid/api"
	api_i "github.com/beka-birhanu/vinom-grid/api/i"
	"github.com/beka-birhanu/vinom-grid/api/identity"
	resultapi "github.com/beka-birhanu/vinom-grid/api/result"
	"github.com/beka-birhanu/vinom-grid/config"
	"github.com/beka-birhanu/vinom-grid/infrastruture/repo"
	"github.com/beka-birhanu/vinom-grid/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-grid/infrastruture/token"
	"github.com/beka-birhanu/vinom-grid/logger"
	"github.com/beka-birhanu/vinom-grid/service"
	"github.com/beka-birhanu/vinom-grid/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	sqliteRepo       *repo.SQLiteSubmissionRepo
	redisClient      *redis.Client
	submissionRepo   i.SubmissionRepo
	leaderboard      i.Leaderboard
	resultService    i.ResultRecorder
	resultController api_i.Controller
	jwtTokenizer     i.Tokenizer
	router           *api.Router
	appLogger        i.Logger
)

func newLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)
	if config.Envs.DBUser == "" {
		uri = fmt.Sprintf("mongodb://%s:%v", config.Envs.DBHost, config.Envs.DBPort)
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initSubmissionRepo(ctx context.Context) {
	switch config.Envs.StoreDriver {
	case "mongo":
		initMongo(ctx)
		submissionRepo = repo.NewMongoSubmissionRepo(mongoClient, config.Envs.DBName, "results")
	case "sqlite":
		var err error
		sqliteRepo, err = repo.NewSQLiteSubmissionRepo(config.Envs.SQLitePath)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Opening sqlite store: %v", err))
			os.Exit(1)
		}
		submissionRepo = sqliteRepo
	default:
		appLogger.Error(fmt.Sprintf("Unknown STORE_DRIVER %q", config.Envs.StoreDriver))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Submission repository initialized (%s)", config.Envs.StoreDriver))
}

func initLeaderboard(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	var err error
	leaderboard, err = sortedstorage.NewRedisLeaderboard(redisClient, "", config.Envs.LeaderboardTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initResultService() {
	var err error
	resultService, err = service.NewResult(service.ResultConfig{
		Repo:        submissionRepo,
		Leaderboard: leaderboard,
		Logger:      newLogger("RESULT", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating result service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Result service initialized")
}

func initResultController() {
	var err error
	resultController, err = resultapi.NewResultController(resultService, newLogger("API", config.ColorPurple))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating result controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Result controller initialized")
}

func initJWTTokenizer() {
	var err error
	jwtTokenizer, err = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer (is JWT_SECRET set?): %v", err))
		os.Exit(1)
	}
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{resultController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger = newLogger("APP", config.ColorGreen)

	initSubmissionRepo(ctx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
		if sqliteRepo != nil {
			_ = sqliteRepo.Close()
		}
	}()

	initLeaderboard(ctx)
	defer redisClient.Close()

	initResultService()
	initResultController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
