package entity

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;autoCreateTime"`

	Reviews []Review `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}
