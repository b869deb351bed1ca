package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Server       ServerConfig
	Notification NotificationConfig
	Logging      LoggingConfig
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host        string
	Port        string
	Environment string // development, staging, production
}

// NotificationConfig contains engine tuning knobs
type NotificationConfig struct {
	Workers           int  // ingest worker goroutines
	ChannelBufferSize int  // ingest channel bound
	SweepInterval     int  // seconds between sweeper passes
	SimulatorInterval int  // seconds between synthetic events
	ActionNavDelay    int  // milliseconds before the navigation hand-off
	RealTimeEnabled   bool // start the simulator at boot
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// LoadConfig builds the configuration from environment variables with
// sensible defaults. Call godotenv.Load before this in main.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        getEnvOrDefault("SERVER_HOST", ""),
			Port:        getEnvOrDefault("NOTIF_SERVICE_PORT", "7004"),
			Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Notification: NotificationConfig{
			Workers:           getEnvIntOrDefault("NOTIF_WORKERS", 5),
			ChannelBufferSize: getEnvIntOrDefault("NOTIF_CHANNEL_BUFFER", 256),
			SweepInterval:     getEnvIntOrDefault("NOTIF_SWEEP_INTERVAL", 5),
			SimulatorInterval: getEnvIntOrDefault("NOTIF_SIMULATOR_INTERVAL", 30),
			ActionNavDelay:    getEnvIntOrDefault("NOTIF_ACTION_NAV_DELAY_MS", 500),
			RealTimeEnabled:   getEnvBoolOrDefault("NOTIF_REALTIME_ENABLED", false),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1"
}
