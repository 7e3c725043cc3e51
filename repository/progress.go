package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/models/courses"
)

// LessonProgress is one dashboard row: a catalog lesson joined with the
// user's progress, defaulted when no progress row exists yet.
type LessonProgress struct {
	LessonID  uint   `json:"lesson_id"`
	Title     string `json:"title"`
	VideoLink string `json:"video_link"`
	Completed bool   `json:"completed"`
	QuizScore int    `json:"quiz_score"`
}

type ProgressRepository interface {
	MarkCompleted(userID, lessonID uint) error
	RecordQuizScore(userID, lessonID uint, score int) error
	ListForUser(userID uint) ([]LessonProgress, error)
}

type progressRepo struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepository {
	return &progressRepo{db: db}
}

// MarkCompleted upserts the (user, lesson) row, touching only the
// completed flag. An existing quiz_score is left as is.
func (r *progressRepo) MarkCompleted(userID, lessonID uint) error {
	record := courses.Progress{
		UserID:    userID,
		LessonID:  lessonID,
		Completed: true,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"completed": true}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	return nil
}

// RecordQuizScore upserts the (user, lesson) row, touching only the
// quiz score. Resubmitting overwrites the previous score.
func (r *progressRepo) RecordQuizScore(userID, lessonID uint, score int) error {
	record := courses.Progress{
		UserID:    userID,
		LessonID:  lessonID,
		QuizScore: score,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quiz_score": score}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("record quiz score: %w", err)
	}
	return nil
}

// ListForUser returns one entry per catalog lesson, in catalog order, with
// completed/quiz_score defaulted to false/0 when the user has no progress
// row for that lesson.
func (r *progressRepo) ListForUser(userID uint) ([]LessonProgress, error) {
	var rows []LessonProgress
	err := r.db.Table("lessons").
		Select("lessons.id AS lesson_id, lessons.title, lessons.video_link, "+
			"COALESCE(progresses.completed, ?) AS completed, "+
			"COALESCE(progresses.quiz_score, 0) AS quiz_score", false).
		Joins("LEFT JOIN progresses ON progresses.lesson_id = lessons.id AND progresses.user_id = ?", userID).
		Order("lessons.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return rows, nil
}
