// Файл: pkg/config/config.go
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
	File  string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// DraftConfig управляет хранилищем черновиков режима редактирования.
type DraftConfig struct {
	Store string // memory | redis
	TTL   time.Duration
}

// SessionConfig - пользователь по умолчанию, если заголовки идентичности не переданы.
type SessionConfig struct {
	UserName  string
	UserEmail string
}

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Redis   RedisConfig
	Drafts  DraftConfig
	Session SessionConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Advertencia: no se encontró el archivo .env o no se pudo cargar.")
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "debug"),
			File:  getEnv("LOG_FILE", ""),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Drafts: DraftConfig{
			Store: strings.ToLower(getEnv("DRAFT_STORE", "memory")),
			TTL:   getDuration("DRAFT_TTL", 30*time.Minute),
		},
		Session: SessionConfig{
			UserName:  getEnv("SESSION_USER_NAME", "Juan Rodriguez"),
			UserEmail: getEnv("SESSION_USER_EMAIL", "admin@helpdesk.com"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Advertencia: valor inválido para %s=%q, se usa %s", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
