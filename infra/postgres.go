package infra

import (
	"fmt"
	"log"
	"time"

	"github.com/gamereviewhub/game-review-service/config"
	"github.com/gamereviewhub/game-review-service/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresClient struct {
	DB *gorm.DB
}

const connectAttempts = 10

func InitPostgresClient(cfg *config.EnvConfig) *PostgresClient {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Postgres.Host,
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.Port,
	)

	var db *gorm.DB
	var err error

	// The database container may still be starting when the service
	// comes up, so the first connections are retried.
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
		})
		if err == nil {
			break
		}
		log.Printf("Postgres not ready (attempt %d/%d): %v", attempt, connectAttempts, err)
		time.Sleep(3 * time.Second)
	}
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Postgres: %v", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(fmt.Sprintf("Failed to get underlying sql.DB: %v", err))
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	return &PostgresClient{DB: db}
}

// Migrate builds the schema. Uniqueness of emails and of
// (title, platform) pairs must hold across letter case, so those
// constraints live in functional indexes that struct tags cannot
// express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Game{},
		&entity.Review{},
	); err != nil {
		return err
	}

	for _, stmt := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_ci ON users (LOWER(email))",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_games_title_platform_ci ON games (LOWER(title), LOWER(platform))",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
