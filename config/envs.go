package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP         string        // Host IP for the result server
	RESTPort       int           // Port for the REST API
	GinMode        string        // Mode for the Gin framework (e.g., release, debug, test)
	StoreDriver    string        // Submission store backend: "sqlite" or "mongo"
	SQLitePath     string        // Path of the sqlite database file
	DBHost         string        // Hostname or IP address for the mongo database
	DBPort         int           // Port number for the mongo database
	DBUser         string        // Username for the mongo database
	DBPassword     string        // Password for the mongo database
	DBName         string        // Name of the mongo database
	RedisAddr      string        // host:port of the redis leaderboard
	RedisPassword  string        // Password for redis, empty when none
	LeaderboardTTL int           // Seconds before an idle leaderboard key expires
	JWTSecret      string        // Secret key for JWT signing
	JWTIssuer      string        // Issuer claim for JWTs
	ResultURL      string        // Endpoint the grid client posts results to
	ResultTimeout  time.Duration // Transport timeout for a single result post
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:       getEnvAsIntWithDefault("REST_PORT", 9000),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		StoreDriver:    getEnvWithDefault("STORE_DRIVER", "sqlite"),
		SQLitePath:     getEnvWithDefault("SQLITE_PATH", "grid.db"),
		DBHost:         getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:         getEnvWithDefault("DB_USER", ""),
		DBPassword:     getEnvWithDefault("DB_PASS", ""),
		DBName:         getEnvWithDefault("DB_NAME", "grid"),
		RedisAddr:      getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnvWithDefault("REDIS_PASSWORD", ""),
		LeaderboardTTL: getEnvAsIntWithDefault("LEADERBOARD_TTL", 7*24*60*60),
		JWTSecret:      getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:      getEnvWithDefault("JWT_ISSUER", "vinom-grid"),
		ResultURL:      getEnvWithDefault("RESULT_URL", "http://localhost:9000/api/result"),
		ResultTimeout:  getEnvAsDurationWithDefault("RESULT_TIMEOUT", 10*time.Second),
	}
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to defaultValue when unset.
// A set but unparsable value is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsDurationWithDefault parses values such as "5s" or "1m30s".
func getEnvAsDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a duration: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
