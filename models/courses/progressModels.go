package courses

import "time"

// Progress holds one row per (user, lesson) pair. The composite unique
// index makes the pair identity a database invariant, so the two upsert
// paths (completion, quiz submission) cannot race into duplicate rows.
type Progress struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID  uint `gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	Completed bool `gorm:"not null;default:false"`
	QuizScore int  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
