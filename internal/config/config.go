package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port                  string
	AllowedOrigins        []string
	DatabaseURL           string
	DBMaxOpenConns        int
	DBMaxIdleConns        int
	DBConnMaxLifetimeMin  int
	RedisURL              string
	RedisPassword         string
	FrontendURL           string
	JWTSecret             string
	AttackWeight          float64
	SuggestionAcceptRatio float64
	Suggestion            SuggestionConfig
	DecisionRetentionDays int
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Database Config
	dbURL := GetEnv("DATABASE_URL", "")
	if dbURL != "" {
		if u, err := url.Parse(dbURL); err == nil {
			q := u.Query()
			if q.Get("sslmode") == "" && strings.Contains(u.Host, "localhost") {
				q.Set("sslmode", "disable")
				u.RawQuery = q.Encode()
				dbURL = u.String()
			}
		}
	}
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 25)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 25)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)

	// Engine tuning
	attackWeight := GetEnvAsFloat("ATTACK_WEIGHT", 1.1)
	acceptRatio := GetEnvAsFloat("SUGGESTION_ACCEPT_RATIO", 0.8)

	AppConfig = &Config{
		Port:                  port,
		AllowedOrigins:        allowedOrigins,
		DatabaseURL:           dbURL,
		DBMaxOpenConns:        dbMaxOpenConns,
		DBMaxIdleConns:        dbMaxIdleConns,
		DBConnMaxLifetimeMin:  dbConnMaxLifetimeMin,
		RedisURL:              GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:         GetEnv("REDIS_PASSWORD", ""),
		FrontendURL:           frontendURL,
		JWTSecret:             GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		AttackWeight:          attackWeight,
		SuggestionAcceptRatio: acceptRatio,
		Suggestion:            *LoadSuggestionConfig(),
		DecisionRetentionDays: GetEnvAsInt("DECISION_RETENTION_DAYS", 30),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || value <= 0 {
		log.Printf("Invalid float value for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid bool value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration, unit time.Duration) time.Duration {
	return time.Duration(GetEnvAsInt(key, int(defaultValue/unit))) * unit
}
