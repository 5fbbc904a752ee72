package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Game struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Title      string          `json:"title" gorm:"type:varchar(255);not null"`
	Platform   string          `json:"platform" gorm:"type:varchar(100);not null"`
	ReleasedOn *datatypes.Date `json:"released_on,omitempty"`
	CoverKey   *string         `json:"-" gorm:"type:varchar(1024)"`
	ThumbKey   *string         `json:"-" gorm:"type:varchar(1024)"`
	CreatedAt  time.Time       `json:"created_at" gorm:"not null;autoCreateTime;index"`

	Reviews []Review `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}
