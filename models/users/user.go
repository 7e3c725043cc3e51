package users

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"size:255;unique;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
