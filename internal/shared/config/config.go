package config

import (
	"fmt"
	"spacetrade-server/internal/shared/utils"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
	Galaxy   GalaxyConfig
}

type ServerConfig struct {
	Environment string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
	// SnapshotTTL bounds how long a cached system snapshot may serve reads
	// before falling back to Postgres.
	SnapshotTTL time.Duration
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

type MetricsConfig struct {
	Enabled bool
	Port    string
}

type GalaxyConfig struct {
	// Seed is the galaxy-wide generation seed. Changing it produces an
	// entirely different galaxy, so it is fixed for the lifetime of a
	// deployment.
	Seed string
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config := load()

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func load() *Config {
	return &Config{
		Server:   loadServerConfig(),
		Database: loadDatabaseConfig(),
		Redis:    loadRedisConfig(),
		Logging:  loadLoggingConfig(),
		Metrics:  loadMetricsConfig(),
		Galaxy:   loadGalaxyConfig(),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Environment: utils.GetEnv("ENVIRONMENT", "development"),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	maxOpenConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_OPEN_CONNS", "25"))
	maxIdleConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_IDLE_CONNS", "5"))
	connMaxLifetime, _ := strconv.Atoi(utils.GetEnv("DB_CONN_MAX_LIFETIME_MINUTES", "5"))

	return DatabaseConfig{
		Host:            utils.GetEnv("DB_HOST", "localhost"),
		Port:            utils.GetEnv("DB_PORT", "5432"),
		User:            utils.GetEnv("DB_USER", "postgres"),
		Password:        utils.GetEnv("DB_PASSWORD", "postgres"),
		Name:            utils.GetEnv("DB_NAME", "spacetrade"),
		SSLMode:         utils.GetEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: time.Duration(connMaxLifetime) * time.Minute,
		MigrationsPath:  utils.GetEnv("DB_MIGRATIONS_PATH", "migrations"),
	}
}

func loadRedisConfig() RedisConfig {
	enabled := utils.GetEnv("REDIS_ENABLED", "true") == "true"
	db, _ := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))
	snapshotTTL, _ := strconv.Atoi(utils.GetEnv("REDIS_SNAPSHOT_TTL_MINUTES", "60"))

	return RedisConfig{
		Enabled:     enabled,
		URL:         utils.GetEnv("REDIS_URL", ""),
		Host:        utils.GetEnv("REDIS_HOST", "localhost"),
		Port:        utils.GetEnv("REDIS_PORT", "6379"),
		Password:    utils.GetEnv("REDIS_PASSWORD", ""),
		DB:          db,
		SnapshotTTL: time.Duration(snapshotTTL) * time.Minute,
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")
	jsonFormat := environment == "production"

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		JSONFormat: jsonFormat,
	}
}

func loadMetricsConfig() MetricsConfig {
	enabled := utils.GetEnv("METRICS_ENABLED", "true") == "true"

	return MetricsConfig{
		Enabled: enabled,
		Port:    utils.GetEnv("METRICS_PORT", "9091"),
	}
}

func loadGalaxyConfig() GalaxyConfig {
	return GalaxyConfig{
		Seed: utils.GetEnv("GALAXY_SEED", "andromeda-prime"),
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	if c.Galaxy.Seed == "" {
		return fmt.Errorf("GALAXY_SEED is required")
	}

	return nil
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
