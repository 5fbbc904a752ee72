package entity

import "time"

// Review belongs to one Game and, when posted by an authenticated
// client, references the posting User. UserID stays nullable for rows
// written before accounts existed.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GameID    uint      `json:"game_id" gorm:"not null;index"`
	UserID    *uint     `json:"user_id,omitempty" gorm:"index"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   *string   `json:"comment,omitempty" gorm:"type:varchar(1000)"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`

	Game *Game `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}
