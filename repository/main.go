package repository

import (
	"github.com/gamereviewhub/game-review-service/infra"
	"gorm.io/gorm"
)

type Repository struct {
	UserRepo   *UserRepository
	GameRepo   *GameRepository
	ReviewRepo *ReviewRepository
}

func InitRepository(infra *infra.Infra) *Repository {
	return NewRepository(infra.Postgres.DB)
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		UserRepo:   NewUserRepository(db),
		GameRepo:   NewGameRepository(db),
		ReviewRepo: NewReviewRepository(db),
	}
}

// WithTransaction rebinds every repo to tx so a multi-statement unit
// commits or rolls back as one.
func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
