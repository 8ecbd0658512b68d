package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage mô tả driver lưu trữ key-value
type Storage struct {
	Driver      string
	Path        string
	PostgresURI string
	MongoURI    string
	MongoDB     string
	RedisHost   string
	RedisPort   int
	RedisPass   string
	RedisDB     int
	Prefix      string
}

// DefaultCORSOrigins only lets pages served from this machine call the API.
const DefaultCORSOrigins = "http://localhost:3000,http://127.0.0.1:3000"

// Config gom toàn bộ cấu hình đọc từ biến môi trường
type Config struct {
	Port            string
	Storage         Storage
	MQTTURL         string
	CORSOrigins     string
	ShutdownTimeout time.Duration
}

// LoadENV nạp biến môi trường từ file .env (nếu có)
func LoadENV() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// FromEnv builds a Config from the process environment, applying defaults
// for everything that is unset.
func FromEnv() Config {
	return Config{
		Port: getEnv("PORT", "3000"),
		Storage: Storage{
			Driver:      getEnv("STORAGE_DRIVER", "file"),
			Path:        getEnv("STORAGE_PATH", "taskflow.json"),
			PostgresURI: os.Getenv("POSTGRESQL_URI"),
			MongoURI:    os.Getenv("MONGO_URI"),
			MongoDB:     getEnv("DB_NAME", "taskflow"),
			RedisHost:   getEnv("REDIS_HOST", "localhost"),
			RedisPort:   getEnvInt("REDIS_PORT", 6379),
			RedisPass:   os.Getenv("REDIS_PASSWORD"),
			RedisDB:     getEnvInt("REDIS_DATABASE", 0),
			Prefix:      getEnv("STORAGE_PREFIX", "taskflow:"),
		},
		MQTTURL:         os.Getenv("MQTT_URL"),
		CORSOrigins:     getEnv("CORS_ORIGINS", DefaultCORSOrigins),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return d
}
