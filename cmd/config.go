package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPPort            = "8080"
	defaultMarkerRetention     = 720 * time.Hour
	defaultMarkerPurgeSchedule = "@hourly"
	defaultEventPublishTimeout = 5 * time.Second
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	LogLevel               string
	Environment            string
	MarkerRetention        time.Duration
	MarkerPurgeSchedule    string
	EventPublishTimeout    time.Duration
}

// ConfigFromEnv reads the configuration from the process environment.
// Variables from a .env file must be loaded beforehand.
func ConfigFromEnv() (Config, error) {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              valueOr(getenv("DB_SSLMODE"), "disable"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		LogLevel:               valueOr(getenv("LOG_LEVEL"), "info"),
		Environment:            valueOr(getenv("ENVIRONMENT"), "local"),
		MarkerRetention:        defaultMarkerRetention,
		MarkerPurgeSchedule:    valueOr(getenv("MARKER_PURGE_SCHEDULE"), defaultMarkerPurgeSchedule),
		EventPublishTimeout:    defaultEventPublishTimeout,
	}

	if raw := getenv("MARKER_RETENTION"); raw != "" {
		retention, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("MARKER_RETENTION: %w", err)
		}
		if retention <= 0 {
			return Config{}, fmt.Errorf("MARKER_RETENTION must be positive, got %s", raw)
		}
		config.MarkerRetention = retention
	}

	if raw := getenv("EVENT_PUBLISH_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return Config{}, fmt.Errorf("EVENT_PUBLISH_TIMEOUT must be a positive duration, got %q", raw)
		}
		config.EventPublishTimeout = timeout
	}

	for key, value := range map[string]string{
		"DB_HOST": config.DBHost,
		"DB_PORT": config.DBPort,
		"DB_USER": config.DBUser,
		"DB_NAME": config.DBName,
	} {
		if value == "" {
			return Config{}, fmt.Errorf("%s is required", key)
		}
	}

	return config, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas. An empty host disables publishing.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
