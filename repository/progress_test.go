package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/models/courses"
)

func setupProgressTest(t *testing.T) (*gorm.DB, ProgressRepository) {
	t.Helper()
	db := setupTestDB(t)
	require.NoError(t, NewLessonRepo(db).SeedIfEmpty())
	return db, NewProgressRepo(db)
}

func countProgress(t *testing.T, db *gorm.DB, userID, lessonID uint) int64 {
	t.Helper()
	var count int64
	err := db.Model(&courses.Progress{}).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestMarkCompletedThenRecordScore(t *testing.T) {
	db, repo := setupProgressTest(t)

	require.NoError(t, repo.MarkCompleted(1, 1))
	require.NoError(t, repo.RecordQuizScore(1, 1, 2))

	assert.EqualValues(t, 1, countProgress(t, db, 1, 1))

	var rec courses.Progress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", 1, 1).First(&rec).Error)
	assert.True(t, rec.Completed)
	assert.Equal(t, 2, rec.QuizScore)
}

func TestRecordScoreThenMarkCompleted(t *testing.T) {
	db, repo := setupProgressTest(t)

	require.NoError(t, repo.RecordQuizScore(1, 1, 1))
	require.NoError(t, repo.MarkCompleted(1, 1))

	assert.EqualValues(t, 1, countProgress(t, db, 1, 1))

	var rec courses.Progress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", 1, 1).First(&rec).Error)
	assert.True(t, rec.Completed)
	assert.Equal(t, 1, rec.QuizScore)
}

func TestRecordScoreOverwritesPrevious(t *testing.T) {
	db, repo := setupProgressTest(t)

	require.NoError(t, repo.RecordQuizScore(1, 1, 2))
	require.NoError(t, repo.RecordQuizScore(1, 1, 0))

	var rec courses.Progress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", 1, 1).First(&rec).Error)
	assert.Equal(t, 0, rec.QuizScore)
	assert.False(t, rec.Completed)
}

func TestMarkCompletedIsScopedToPair(t *testing.T) {
	db, repo := setupProgressTest(t)

	require.NoError(t, repo.MarkCompleted(1, 1))
	require.NoError(t, repo.MarkCompleted(2, 1))
	require.NoError(t, repo.MarkCompleted(1, 2))

	assert.EqualValues(t, 1, countProgress(t, db, 1, 1))
	assert.EqualValues(t, 1, countProgress(t, db, 2, 1))
	assert.EqualValues(t, 1, countProgress(t, db, 1, 2))
}

func TestListForUserDefaultsAndOrder(t *testing.T) {
	_, repo := setupProgressTest(t)

	require.NoError(t, repo.MarkCompleted(1, 2))

	rows, err := repo.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// catalog order, one entry per lesson
	assert.EqualValues(t, 1, rows[0].LessonID)
	assert.EqualValues(t, 2, rows[1].LessonID)

	// lesson without a progress row shows the defaults
	assert.False(t, rows[0].Completed)
	assert.Equal(t, 0, rows[0].QuizScore)

	assert.True(t, rows[1].Completed)
	assert.Equal(t, 0, rows[1].QuizScore)
}

func TestListForUserIgnoresOtherUsers(t *testing.T) {
	_, repo := setupProgressTest(t)

	require.NoError(t, repo.MarkCompleted(2, 1))
	require.NoError(t, repo.RecordQuizScore(2, 1, 2))

	rows, err := repo.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.False(t, row.Completed)
		assert.Equal(t, 0, row.QuizScore)
	}
}
