package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/models/courses"
)

// defaultCatalog is inserted on first startup. The catalog is read-only
// reference data afterwards.
var defaultCatalog = []courses.Lesson{
	{Title: "Python Basics", VideoLink: "videos/sample.mp4"},
	{Title: "Flask Web Development", VideoLink: "videos/sample.mp4"},
}

type LessonRepository interface {
	SeedIfEmpty() error
	List() ([]courses.Lesson, error)
	GetByID(id uint) (*courses.Lesson, error)
}

type lessonRepo struct {
	db *gorm.DB
}

func NewLessonRepo(db *gorm.DB) LessonRepository {
	return &lessonRepo{db: db}
}

// SeedIfEmpty inserts the default lessons only when the table holds none,
// so repeated startups never duplicate seed rows.
func (r *lessonRepo) SeedIfEmpty() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&courses.Lesson{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count lessons: %w", err)
		}
		if count > 0 {
			return nil
		}
		seed := make([]courses.Lesson, len(defaultCatalog))
		copy(seed, defaultCatalog)
		if err := tx.Create(&seed).Error; err != nil {
			return fmt.Errorf("seed lessons: %w", err)
		}
		return nil
	})
}

func (r *lessonRepo) List() ([]courses.Lesson, error) {
	var lessons []courses.Lesson
	err := r.db.Order("id").Find(&lessons).Error
	return lessons, err
}

func (r *lessonRepo) GetByID(id uint) (*courses.Lesson, error) {
	var lesson courses.Lesson
	if err := r.db.First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}
