package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	LogLevel     logrus.Level // Minimum level written by the loggers
	MaxStepSizes int          // Bound on distinct step sizes per search, 0 for none
	HostIP       string       // Host IP for the server
	RESTPort     int          // Port for the REST API
	GinMode      string       // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret    string       // Secret key for JWT signing, empty disables authorization
	JWTIssuer    string       // Issuer claim for JWTs
}

// Load reads the configuration from the environment after loading a .env
// file if one is present. Every key has a default; malformed values are
// reported as warnings and replaced by the default.
func Load(log logrus.FieldLogger) Config {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not found or could not be loaded")
	}

	return Config{
		LogLevel:     getEnvAsLevel(log, "LOG_LEVEL", logrus.InfoLevel),
		MaxStepSizes: getEnvAsInt(log, "MAX_STEP_SIZES", 0),
		HostIP:       getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:     getEnvAsInt(log, "REST_PORT", 8080),
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:    getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:    getEnvWithDefault("JWT_ISSUER", "alice-maze"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves the value of an environment variable as an integer.
func getEnvAsInt(log logrus.FieldLogger, key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.WithError(err).Warnf("Environment variable %s must be an integer, using %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsLevel(log logrus.FieldLogger, key string, defaultValue logrus.Level) logrus.Level {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	level, err := logrus.ParseLevel(valueStr)
	if err != nil {
		log.WithError(err).Warnf("Environment variable %s is not a log level, using %s", key, defaultValue)
		return defaultValue
	}
	return level
}
