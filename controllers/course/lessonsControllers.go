package course

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/controllers/authentication"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/models/courses"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/repository"
)

type CourseHandler struct {
	Lessons  repository.LessonRepository
	Progress repository.ProgressRepository
	Sessions *authentication.SessionManager
}

func NewCourseHandler(lessons repository.LessonRepository, progress repository.ProgressRepository, sessions *authentication.SessionManager) *CourseHandler {
	return &CourseHandler{Lessons: lessons, Progress: progress, Sessions: sessions}
}

// Dashboard lists every catalog lesson with this user's completion state
// and quiz score.
func (h *CourseHandler) Dashboard(c *gin.Context) {
	userID := c.GetUint(authentication.ContextUserID)

	rows, err := h.Progress.ListForUser(userID)
	if err != nil {
		log.Printf("list progress for user %d: %v", userID, err)
		c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{
			"Title":    "Dashboard",
			"UserName": c.GetString(authentication.ContextUserName),
			"Error":    "Internal error, please try again later",
		})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":    "Dashboard",
		"UserName": c.GetString(authentication.ContextUserName),
		"Lessons":  rows,
		"Flashes":  h.Sessions.TakeFlashes(c),
	})
}

// ShowLesson renders one lesson's detail page.
func (h *CourseHandler) ShowLesson(c *gin.Context) {
	lesson, ok := h.lessonFromParam(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "course.html", gin.H{
		"Title":  lesson.Title,
		"Lesson": lesson,
	})
}

// Complete marks the lesson completed for the signed-in user and returns
// to the dashboard. The quiz score, if any, is untouched.
func (h *CourseHandler) Complete(c *gin.Context) {
	lesson, ok := h.lessonFromParam(c)
	if !ok {
		return
	}
	userID := c.GetUint(authentication.ContextUserID)

	if err := h.Progress.MarkCompleted(userID, lesson.ID); err != nil {
		log.Printf("mark lesson %d completed for user %d: %v", lesson.ID, userID, err)
		h.Sessions.Flash(c, "danger", "Internal error, please try again later")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	h.Sessions.Flash(c, "success", "Lesson marked as completed!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// lessonFromParam resolves the :lessonId route parameter. An unknown or
// malformed id flashes an error and redirects to the dashboard.
func (h *CourseHandler) lessonFromParam(c *gin.Context) (*courses.Lesson, bool) {
	id, err := strconv.ParseUint(c.Param("lessonId"), 10, 32)
	if err != nil {
		h.Sessions.Flash(c, "danger", "Lesson not found")
		c.Redirect(http.StatusFound, "/dashboard")
		c.Abort()
		return nil, false
	}

	lesson, err := h.Lessons.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Sessions.Flash(c, "danger", "Lesson not found")
		} else {
			log.Printf("get lesson %d: %v", id, err)
			h.Sessions.Flash(c, "danger", "Internal error, please try again later")
		}
		c.Redirect(http.StatusFound, "/dashboard")
		c.Abort()
		return nil, false
	}
	return lesson, true
}
