package courses

import "time"

type Lesson struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `json:"title" gorm:"size:255;not null"`
	VideoLink string `json:"video_link" gorm:"size:500;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
