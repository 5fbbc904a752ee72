package repository

import (
	"github.com/gamereviewhub/game-review-service/entity"
	"gorm.io/gorm"
)

type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// GameWithRating is a Game row joined with the average of its review
// ratings (0 when the game has no reviews).
type GameWithRating struct {
	entity.Game `gorm:"embedded"`
	AvgRating   float64 `json:"avg_rating"`
}

const (
	DefaultSort  = "created_at_desc"
	MaxPageLimit = 100
)

// Every sort key carries a descending-id tie-break so the total order
// is stable across pages.
var sortClauses = map[string]string{
	"created_at_asc":  "games.created_at ASC, games.id DESC",
	"created_at_desc": "games.created_at DESC, games.id DESC",
	"title_asc":       "games.title ASC, games.id DESC",
	"title_desc":      "games.title DESC, games.id DESC",
	"avg_rating_asc":  "avg_rating ASC, games.id DESC",
	"avg_rating_desc": "avg_rating DESC, games.id DESC",
}

// OrderClause resolves a client-supplied sort key, falling back to
// created_at_desc for anything unrecognized.
func OrderClause(sort string) string {
	if clause, ok := sortClauses[sort]; ok {
		return clause
	}
	return sortClauses[DefaultSort]
}

func (r *GameRepository) Create(game *entity.Game) error {
	return r.db.Create(game).Error
}

func (r *GameRepository) FindByID(id uint) (*entity.Game, error) {
	var game entity.Game
	err := r.db.Where("id = ?", id).First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GameRepository) ExistsByTitleAndPlatform(title, platform string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Game{}).
		Where("LOWER(title) = LOWER(?) AND LOWER(platform) = LOWER(?)", title, platform).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns one page of games with their average ratings plus the
// total game count. The count deliberately ignores the review join.
func (r *GameRepository) List(page, limit int, sort string) ([]GameWithRating, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	var total int64
	if err := r.db.Model(&entity.Game{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []GameWithRating
	err := r.db.Model(&entity.Game{}).
		Select("games.*, COALESCE(AVG(reviews.rating), 0) AS avg_rating").
		Joins("LEFT JOIN reviews ON reviews.game_id = games.id").
		Group("games.id").
		Order(OrderClause(sort)).
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateCoverKeys persists the cover/thumbnail object keys; nil clears
// the corresponding column.
func (r *GameRepository) UpdateCoverKeys(id uint, coverKey, thumbKey *string) error {
	return r.db.Model(&entity.Game{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"cover_key": coverKey,
			"thumb_key": thumbKey,
		}).Error
}
