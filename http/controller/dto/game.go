package dto

import "time"

type CreateGameRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Platform string `json:"platform" binding:"required,max=100"`
	// Date-only, e.g. "2017-03-03".
	ReleasedOn *string `json:"released_on" binding:"omitempty,datetime=2006-01-02"`
}

type GameResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Platform   string    `json:"platform"`
	ReleasedOn *string   `json:"released_on,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	AvgRating  float64   `json:"avg_rating"`
}

type ListGamesResponse struct {
	Items []GameResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type CoverResponse struct {
	CoverURL string `json:"cover_url"`
}
