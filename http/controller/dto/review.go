package dto

import "time"

type CreateReviewRequest struct {
	GameID  uint    `json:"game_id" binding:"required"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	GameID    uint      `json:"game_id"`
	UserID    *uint     `json:"user_id,omitempty"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
