package infra

import (
	"context"
	"fmt"

	"github.com/gamereviewhub/game-review-service/config"
)

type Infra struct {
	Postgres    *PostgresClient
	Minio       *MinioClient
	Logger      *LoggerClient
	Telemetry   *TelemetryClient
	Thumbnailer *Thumbnailer
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	telemetry := InitTelemetryClient(cfg.EnvConfig)

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	minio := InitMinioClient(cfg.EnvConfig)
	if minio == nil {
		panic("Failed to initialize MinIO service")
	}
	if err := minio.EnsureBucket(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to ensure MinIO bucket: %v", err))
	}

	infraInstance = &Infra{
		Postgres:    postgres,
		Minio:       minio,
		Logger:      logger,
		Telemetry:   telemetry,
		Thumbnailer: InitThumbnailer(cfg.EnvConfig),
	}

	return infraInstance
}

func GetClient() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}
