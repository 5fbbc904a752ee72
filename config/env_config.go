package config

import (
	"os"
	"strconv"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Port     string
		Database string
		Username string
		Password string
	}
	JWT struct {
		SecretKey     string
		ExpireMinutes int
	}
	CORS struct {
		AllowedOrigins string
	}
	Minio struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		PublicURL string
		UseSSL    bool
	}
	Cover struct {
		ThumbnailMaxPx    int
		PresignTTLSeconds int
	}
	Telemetry struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Server struct {
		Port string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	config.Postgres.Port = getEnv("POSTGRES_PORT", "5432")
	config.Postgres.Database = getEnv("POSTGRES_DB", "app")
	config.Postgres.Username = getEnv("POSTGRES_USER", "app")
	config.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")

	// JWT
	config.JWT.SecretKey = getEnv("JWT_SECRET_KEY", "change-me")
	config.JWT.ExpireMinutes = getEnvInt("JWT_EXPIRE_MINUTES", 15)

	config.CORS.AllowedOrigins = os.Getenv("ALLOWED_ORIGINS")

	// MinIO
	config.Minio.Endpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	config.Minio.AccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	config.Minio.SecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	config.Minio.Bucket = getEnv("MINIO_BUCKET", "uploads")
	config.Minio.PublicURL = os.Getenv("MINIO_PUBLIC_URL")
	config.Minio.UseSSL = getEnv("MINIO_USE_SSL", "false") == "true"

	// Cover pipeline
	config.Cover.ThumbnailMaxPx = getEnvInt("THUMBNAIL_MAX_PX", 320)
	config.Cover.PresignTTLSeconds = getEnvInt("PRESIGN_TTL_SECONDS", 3600)

	// Telemetry is optional: with no endpoint configured the service
	// logs to stdout and skips the OTLP providers entirely.
	config.Telemetry.OTLPEndpoint = os.Getenv("OTLP_ENDPOINT")
	config.Telemetry.ServiceName = getEnv("SERVICE_NAME", "game-review-service")

	config.Server.Port = getEnv("PORT", "8080")

	return &config
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
