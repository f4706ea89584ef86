// config.go
package config

import (
	"errors"
	"os"
	"time"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

const defaultOperationTimeout = 5 * time.Second

// ErrMissingJWTSecret is returned when no signing secret is configured.
// There is deliberately no built-in fallback secret.
var ErrMissingJWTSecret = errors.New("jwt secret is not configured")

// GetEnv returns the environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// ReadConfig reads the configuration from the YAML file, then applies
// environment overrides. A .env file is loaded first when present.
func ReadConfig(filePath string) (*entity.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system env vars")
	}

	var config entity.Config

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read config file", zap.Error(err))
		return nil, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	applyEnvOverrides(&config)

	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}
	config.OperationTimeout = defaultOperationTimeout
	if config.OperationTimeoutSeconds > 0 {
		config.OperationTimeout = time.Duration(config.OperationTimeoutSeconds) * time.Second
	}
	if config.JWTSecretKey == "" {
		return nil, ErrMissingJWTSecret
	}

	return &config, nil
}

func applyEnvOverrides(c *entity.Config) {
	c.PostgresConfig.Host = GetEnv("DB_HOST", c.PostgresConfig.Host)
	c.PostgresConfig.User = GetEnv("DB_USER", c.PostgresConfig.User)
	c.PostgresConfig.Password = GetEnv("DB_PASSWORD", c.PostgresConfig.Password)
	c.PostgresConfig.DBName = GetEnv("DB_NAME", c.PostgresConfig.DBName)
	c.PostgresConfig.Port = GetEnv("DB_PORT", c.PostgresConfig.Port)
	c.PostgresConfig.SSLMode = GetEnv("DB_SSLMODE", c.PostgresConfig.SSLMode)
	c.JWTSecretKey = GetEnv("JWT_SECRET", c.JWTSecretKey)
	c.ServerPort = GetEnv("PORT", c.ServerPort)
}
