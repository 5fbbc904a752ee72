package repository

import (
	"github.com/gamereviewhub/game-review-service/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.db.Create(review).Error
}

// FindByGameID returns all reviews for a game, newest first.
func (r *ReviewRepository) FindByGameID(gameID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.db.Where("game_id = ?", gameID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
