package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Blob     BlobConfig
	Gemini   GeminiConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Skills   SkillsConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type BlobConfig struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

type GeminiConfig struct {
	APIKey           string
	RetryMaxAttempts int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type StorageConfig struct {
	MaxFileSize int64
}

type SkillsConfig struct {
	Vocabulary []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "job_portal"),
		},
		Blob: BlobConfig{
			Endpoint:      getEnv("BLOB_ENDPOINT", ""),
			Region:        getEnv("BLOB_REGION", "auto"),
			Bucket:        getEnv("BLOB_BUCKET", "cv-uploads"),
			AccessKey:     getEnv("BLOB_ACCESS_KEY", ""),
			SecretKey:     getEnv("BLOB_SECRET_KEY", ""),
			PublicBaseURL: getEnv("BLOB_PUBLIC_BASE_URL", "http://localhost:9000/cv-uploads"),
		},
		Gemini: GeminiConfig{
			APIKey:           getEnv("GEMINI_API_KEY", ""),
			RetryMaxAttempts: getEnvAsInt("GEMINI_RETRY_MAX_ATTEMPTS", 3),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:  getEnvAsDuration("TOKEN_TTL", "24h"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Skills: SkillsConfig{
			Vocabulary: getEnvAsList("SKILL_VOCABULARY", nil),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
